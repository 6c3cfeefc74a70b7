package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	"github.com/SscSPs/bond_catalog/internal/models"
	"github.com/SscSPs/bond_catalog/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// Dates are stored as YYYY-MM-DD text, so plain comparisons order them correctly.
// Decimals are stored as canonical text and compared in Go with decimal arithmetic.
const bondColumns = `bond_id, name, issuer, rating, issue_date, maturity_date, currency,
	face_value, coupon_rate, defaulted, created_at, last_updated_at`

// SQLiteBondRepository implements the BondRepositoryFacade interface on database/sql.
type SQLiteBondRepository struct {
	db *sql.DB
}

// NewSQLiteBondRepository creates a new SQLite bond repository.
func NewSQLiteBondRepository(db *sql.DB) *SQLiteBondRepository {
	return &SQLiteBondRepository{db: db}
}

var _ portsrepo.BondRepositoryFacade = (*SQLiteBondRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBond(row rowScanner) (models.Bond, error) {
	var (
		m                        models.Bond
		issueDate, maturityDate  string
		faceValue, couponRate    string
		defaulted                int
		createdAt, lastUpdatedAt string
	)
	err := row.Scan(
		&m.BondID, &m.Name, &m.Issuer, &m.Rating, &issueDate, &maturityDate, &m.Currency,
		&faceValue, &couponRate, &defaulted, &createdAt, &lastUpdatedAt,
	)
	if err != nil {
		return m, err
	}

	if m.IssueDate, err = domain.ParseDate(issueDate); err != nil {
		return m, fmt.Errorf("bad issue_date %q: %w", issueDate, err)
	}
	if m.MaturityDate, err = domain.ParseDate(maturityDate); err != nil {
		return m, fmt.Errorf("bad maturity_date %q: %w", maturityDate, err)
	}
	if m.FaceValue, err = decimal.NewFromString(faceValue); err != nil {
		return m, fmt.Errorf("bad face_value %q: %w", faceValue, err)
	}
	if m.CouponRate, err = decimal.NewFromString(couponRate); err != nil {
		return m, fmt.Errorf("bad coupon_rate %q: %w", couponRate, err)
	}
	m.Defaulted = defaulted != 0
	m.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	m.LastUpdatedAt, _ = time.Parse(time.RFC3339Nano, lastUpdatedAt)
	return m, nil
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (r *SQLiteBondRepository) queryBonds(ctx context.Context, what, where string, args ...any) ([]domain.Bond, error) {
	query := `SELECT ` + bondColumns + ` FROM bonds`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY bond_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bonds by "+what, err)
	}
	defer rows.Close()

	var modelBonds []models.Bond
	for rows.Next() {
		m, err := scanBond(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bond", err)
		}
		modelBonds = append(modelBonds, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate bonds", err)
	}
	return mapping.ToDomainBonds(modelBonds), nil
}

func (r *SQLiteBondRepository) queryOneBond(ctx context.Context, what, orderBy string) (*domain.Bond, error) {
	query := `SELECT ` + bondColumns + ` FROM bonds ORDER BY ` + orderBy + ` LIMIT 1`
	m, err := scanBond(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find "+what+" bond", err)
	}
	b := mapping.ToDomainBond(m)
	return &b, nil
}

// filterBonds applies a decimal predicate in Go; SQLite has no exact numeric type.
func (r *SQLiteBondRepository) filterBonds(ctx context.Context, what string, keep func(domain.Bond) bool) ([]domain.Bond, error) {
	bonds, err := r.queryBonds(ctx, what, "")
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Bond, 0, len(bonds))
	for _, b := range bonds {
		if keep(b) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func inClosedRange(v, lo, hi decimal.Decimal) bool {
	return v.GreaterThanOrEqual(lo) && v.LessThanOrEqual(hi)
}

func (r *SQLiteBondRepository) SaveBond(ctx context.Context, bond domain.Bond) (*domain.Bond, error) {
	m := mapping.ToModelBond(bond)
	query := `
		INSERT INTO bonds (
			name, issuer, rating, issue_date, maturity_date, currency,
			face_value, coupon_rate, defaulted, created_at, last_updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		m.Name, m.Issuer, m.Rating,
		domain.FormatDate(m.IssueDate), domain.FormatDate(m.MaturityDate), m.Currency,
		m.FaceValue.String(), m.CouponRate.String(), boolToInt(m.Defaulted),
		formatTimestamp(m.CreatedAt), formatTimestamp(m.LastUpdatedAt),
	)
	if err != nil {
		return nil, bondWriteError(err, "insert")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to get last insert ID", err)
	}
	m.BondID = id
	b := mapping.ToDomainBond(m)
	return &b, nil
}

func (r *SQLiteBondRepository) UpdateBond(ctx context.Context, bondID int64, bond domain.Bond) (*domain.Bond, error) {
	m := mapping.ToModelBond(bond)
	query := `
		UPDATE bonds SET
			name = ?, issuer = ?, rating = ?, issue_date = ?, maturity_date = ?,
			currency = ?, face_value = ?, coupon_rate = ?, defaulted = ?, last_updated_at = ?
		WHERE bond_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		m.Name, m.Issuer, m.Rating, domain.FormatDate(m.IssueDate), domain.FormatDate(m.MaturityDate),
		m.Currency, m.FaceValue.String(), m.CouponRate.String(), boolToInt(m.Defaulted),
		formatTimestamp(m.LastUpdatedAt), bondID,
	)
	if err != nil {
		return nil, bondWriteError(err, "update")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read affected rows", err)
	}
	if affected == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("bond with ID %d not found", bondID))
	}
	return r.FindBondByID(ctx, bondID)
}

func (r *SQLiteBondRepository) DeleteBond(ctx context.Context, bondID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bonds WHERE bond_id = ?`, bondID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete bond", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewAppError(500, "failed to read affected rows", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("bond with ID %d not found", bondID))
	}
	return nil
}

func (r *SQLiteBondRepository) FindBondByID(ctx context.Context, bondID int64) (*domain.Bond, error) {
	query := `SELECT ` + bondColumns + ` FROM bonds WHERE bond_id = ?`
	m, err := scanBond(r.db.QueryRowContext(ctx, query, bondID))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("bond with ID %d not found", bondID))
		}
		return nil, apperrors.NewAppError(500, "failed to find bond", err)
	}
	b := mapping.ToDomainBond(m)
	return &b, nil
}

func (r *SQLiteBondRepository) ListBonds(ctx context.Context) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "all", "")
}

func (r *SQLiteBondRepository) ExistsByNameIssuerMaturity(ctx context.Context, name, issuer string, maturityDate time.Time) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM bonds WHERE name = ? AND issuer = ? AND maturity_date = ?)`,
		name, issuer, domain.FormatDate(maturityDate),
	).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check bond existence", err)
	}
	return exists == 1, nil
}

func (r *SQLiteBondRepository) FindByIssuerContaining(ctx context.Context, issuer string) ([]domain.Bond, error) {
	// instr() keeps % and _ in the search text literal.
	return r.queryBonds(ctx, "issuer", `instr(lower(issuer), lower(?)) > 0`, issuer)
}

func (r *SQLiteBondRepository) FindByRating(ctx context.Context, rating string) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "rating", `rating = ?`, rating)
}

func (r *SQLiteBondRepository) FindByCouponRateAtLeast(ctx context.Context, minRate decimal.Decimal) ([]domain.Bond, error) {
	return r.filterBonds(ctx, "coupon rate", func(b domain.Bond) bool {
		return b.CouponRate.GreaterThanOrEqual(minRate)
	})
}

func (r *SQLiteBondRepository) FindByCouponRateBetween(ctx context.Context, minRate, maxRate decimal.Decimal) ([]domain.Bond, error) {
	return r.filterBonds(ctx, "coupon rate range", func(b domain.Bond) bool {
		return inClosedRange(b.CouponRate, minRate, maxRate)
	})
}

func (r *SQLiteBondRepository) FindByMaturityDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "maturity range", `maturity_date BETWEEN ? AND ?`, domain.FormatDate(start), domain.FormatDate(end))
}

func (r *SQLiteBondRepository) FindByMaturityDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "maturity date", `maturity_date > ?`, domain.FormatDate(date))
}

func (r *SQLiteBondRepository) FindByIssueDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "issue date", `issue_date > ?`, domain.FormatDate(date))
}

func (r *SQLiteBondRepository) FindByIssueDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "issue range", `issue_date BETWEEN ? AND ?`, domain.FormatDate(start), domain.FormatDate(end))
}

func (r *SQLiteBondRepository) FindByFaceValueAtLeast(ctx context.Context, minValue decimal.Decimal) ([]domain.Bond, error) {
	return r.filterBonds(ctx, "face value", func(b domain.Bond) bool {
		return b.FaceValue.GreaterThanOrEqual(minValue)
	})
}

func (r *SQLiteBondRepository) FindByFaceValueBetween(ctx context.Context, minValue, maxValue decimal.Decimal) ([]domain.Bond, error) {
	return r.filterBonds(ctx, "face value range", func(b domain.Bond) bool {
		return inClosedRange(b.FaceValue, minValue, maxValue)
	})
}

func (r *SQLiteBondRepository) FindByStatus(ctx context.Context, status domain.BondStatus, today time.Time) ([]domain.Bond, error) {
	switch status {
	case domain.BondStatusDefaulted:
		return r.queryBonds(ctx, "status", `defaulted = 1`)
	case domain.BondStatusMatured:
		return r.queryBonds(ctx, "status", `defaulted = 0 AND maturity_date < ?`, domain.FormatDate(today))
	case domain.BondStatusActive:
		return r.queryBonds(ctx, "status", `defaulted = 0 AND maturity_date >= ?`, domain.FormatDate(today))
	}
	return nil, apperrors.NewValidationError(fmt.Sprintf("unknown bond status %q", status))
}

func (r *SQLiteBondRepository) CountBonds(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bonds`).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count bonds", err)
	}
	return n, nil
}

// AverageCouponRate sums the stored text values with decimal arithmetic; SQLite's AVG would go through floats.
func (r *SQLiteBondRepository) AverageCouponRate(ctx context.Context) (decimal.NullDecimal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT coupon_rate FROM bonds`)
	if err != nil {
		return decimal.NullDecimal{}, apperrors.NewAppError(500, "failed to read coupon rates", err)
	}
	defer rows.Close()

	sum := decimal.Zero
	var n int64
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return decimal.NullDecimal{}, apperrors.NewAppError(500, "failed to scan coupon rate", err)
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.NullDecimal{}, apperrors.NewAppError(500, "failed to parse coupon rate", err)
		}
		sum = sum.Add(v)
		n++
	}
	if err := rows.Err(); err != nil {
		return decimal.NullDecimal{}, apperrors.NewAppError(500, "failed to iterate coupon rates", err)
	}
	if n == 0 {
		return decimal.NullDecimal{}, nil
	}
	return decimal.NewNullDecimal(sum.Div(decimal.NewFromInt(n))), nil
}

func (r *SQLiteBondRepository) CountDistinctIssuers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT issuer) FROM bonds`).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count issuers", err)
	}
	return n, nil
}

func (r *SQLiteBondRepository) MaxRating(ctx context.Context) (*string, error) {
	var rating sql.NullString
	if err := r.db.QueryRowContext(ctx, `SELECT MAX(rating) FROM bonds`).Scan(&rating); err != nil {
		return nil, apperrors.NewAppError(500, "failed to find max rating", err)
	}
	if !rating.Valid {
		return nil, nil
	}
	return &rating.String, nil
}

func (r *SQLiteBondRepository) FindHighestCouponBond(ctx context.Context) (*domain.Bond, error) {
	return r.extremeCouponBond(ctx, "highest coupon", 1)
}

func (r *SQLiteBondRepository) FindLowestCouponBond(ctx context.Context) (*domain.Bond, error) {
	return r.extremeCouponBond(ctx, "lowest coupon", -1)
}

// extremeCouponBond picks the bond whose coupon compares as sign against every other;
// rows arrive in bond_id order, so the lowest id wins a tie.
func (r *SQLiteBondRepository) extremeCouponBond(ctx context.Context, what string, sign int) (*domain.Bond, error) {
	bonds, err := r.queryBonds(ctx, what, "")
	if err != nil {
		return nil, err
	}
	if len(bonds) == 0 {
		return nil, nil
	}
	best := bonds[0]
	for _, b := range bonds[1:] {
		if b.CouponRate.Cmp(best.CouponRate) == sign {
			best = b
		}
	}
	return &best, nil
}

func (r *SQLiteBondRepository) FindEarliestMaturityBond(ctx context.Context) (*domain.Bond, error) {
	return r.queryOneBond(ctx, "earliest maturity", `maturity_date ASC, bond_id ASC`)
}

func (r *SQLiteBondRepository) CountMaturingBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bonds WHERE maturity_date BETWEEN ? AND ?`,
		domain.FormatDate(start), domain.FormatDate(end),
	).Scan(&n)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count maturing bonds", err)
	}
	return n, nil
}
