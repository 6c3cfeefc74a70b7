package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	"github.com/SscSPs/bond_catalog/internal/models"
	"github.com/SscSPs/bond_catalog/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const bondColumns = `bond_id, name, issuer, rating, issue_date, maturity_date, currency,
	face_value, coupon_rate, defaulted, created_at, last_updated_at`

// PgxBondRepository implements the BondRepositoryFacade interface using pgxpool.
type PgxBondRepository struct {
	BaseRepository
}

// NewPgxBondRepository creates a new PgxBondRepository.
func NewPgxBondRepository(db *pgxpool.Pool) *PgxBondRepository {
	return &PgxBondRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.BondRepositoryFacade = (*PgxBondRepository)(nil)

func scanBond(row pgx.Row) (models.Bond, error) {
	var m models.Bond
	err := row.Scan(
		&m.BondID, &m.Name, &m.Issuer, &m.Rating, &m.IssueDate, &m.MaturityDate, &m.Currency,
		&m.FaceValue, &m.CouponRate, &m.Defaulted, &m.CreatedAt, &m.LastUpdatedAt,
	)
	return m, err
}

// queryBonds runs a SELECT over bondColumns and maps every row.
func (r *PgxBondRepository) queryBonds(ctx context.Context, what, where string, args ...any) ([]domain.Bond, error) {
	query := `SELECT ` + bondColumns + ` FROM bonds`
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY bond_id`

	rows, err := r.Pool.Query(ctx, query, args...)
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

// queryOneBond returns nil, nil when the query yields no row.
func (r *PgxBondRepository) queryOneBond(ctx context.Context, what, orderBy string) (*domain.Bond, error) {
	query := `SELECT ` + bondColumns + ` FROM bonds ORDER BY ` + orderBy + ` LIMIT 1`
	m, err := scanBond(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find "+what+" bond", err)
	}
	b := mapping.ToDomainBond(m)
	return &b, nil
}

func (r *PgxBondRepository) SaveBond(ctx context.Context, bond domain.Bond) (*domain.Bond, error) {
	m := mapping.ToModelBond(bond)
	query := `
		INSERT INTO bonds (
			name, issuer, rating, issue_date, maturity_date, currency,
			face_value, coupon_rate, defaulted, created_at, last_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + bondColumns

	saved, err := scanBond(r.Pool.QueryRow(ctx, query,
		m.Name, m.Issuer, m.Rating, m.IssueDate, m.MaturityDate, m.Currency,
		m.FaceValue, m.CouponRate, m.Defaulted, m.CreatedAt, m.LastUpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("bond with the same name, issuer and maturity date already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to insert bond", err)
	}
	b := mapping.ToDomainBond(saved)
	return &b, nil
}

func (r *PgxBondRepository) UpdateBond(ctx context.Context, bondID int64, bond domain.Bond) (*domain.Bond, error) {
	m := mapping.ToModelBond(bond)
	query := `
		UPDATE bonds SET
			name = $2, issuer = $3, rating = $4, issue_date = $5, maturity_date = $6,
			currency = $7, face_value = $8, coupon_rate = $9, defaulted = $10, last_updated_at = $11
		WHERE bond_id = $1
		RETURNING ` + bondColumns

	updated, err := scanBond(r.Pool.QueryRow(ctx, query, bondID,
		m.Name, m.Issuer, m.Rating, m.IssueDate, m.MaturityDate,
		m.Currency, m.FaceValue, m.CouponRate, m.Defaulted, m.LastUpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("bond with ID %d not found", bondID))
		}
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("bond with the same name, issuer and maturity date already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to update bond", err)
	}
	b := mapping.ToDomainBond(updated)
	return &b, nil
}

func (r *PgxBondRepository) DeleteBond(ctx context.Context, bondID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM bonds WHERE bond_id = $1`, bondID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete bond", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("bond with ID %d not found", bondID))
	}
	return nil
}

func (r *PgxBondRepository) FindBondByID(ctx context.Context, bondID int64) (*domain.Bond, error) {
	query := `SELECT ` + bondColumns + ` FROM bonds WHERE bond_id = $1`
	m, err := scanBond(r.Pool.QueryRow(ctx, query, bondID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("bond with ID %d not found", bondID))
		}
		return nil, apperrors.NewAppError(500, "failed to find bond", err)
	}
	b := mapping.ToDomainBond(m)
	return &b, nil
}

func (r *PgxBondRepository) ListBonds(ctx context.Context) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "all", "")
}

func (r *PgxBondRepository) ExistsByNameIssuerMaturity(ctx context.Context, name, issuer string, maturityDate time.Time) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bonds WHERE name = $1 AND issuer = $2 AND maturity_date = $3)`,
		name, issuer, domain.DateOf(maturityDate),
	).Scan(&exists)
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to check bond existence", err)
	}
	return exists, nil
}

func (r *PgxBondRepository) FindByIssuerContaining(ctx context.Context, issuer string) ([]domain.Bond, error) {
	// position() keeps % and _ in the search text literal.
	return r.queryBonds(ctx, "issuer", `position(lower($1) in lower(issuer)) > 0`, issuer)
}

func (r *PgxBondRepository) FindByRating(ctx context.Context, rating string) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "rating", `rating = $1`, rating)
}

func (r *PgxBondRepository) FindByCouponRateAtLeast(ctx context.Context, minRate decimal.Decimal) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "coupon rate", `coupon_rate >= $1`, minRate)
}

func (r *PgxBondRepository) FindByCouponRateBetween(ctx context.Context, minRate, maxRate decimal.Decimal) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "coupon rate range", `coupon_rate BETWEEN $1 AND $2`, minRate, maxRate)
}

func (r *PgxBondRepository) FindByMaturityDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "maturity range", `maturity_date BETWEEN $1 AND $2`, domain.DateOf(start), domain.DateOf(end))
}

func (r *PgxBondRepository) FindByMaturityDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "maturity date", `maturity_date > $1`, domain.DateOf(date))
}

func (r *PgxBondRepository) FindByIssueDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "issue date", `issue_date > $1`, domain.DateOf(date))
}

func (r *PgxBondRepository) FindByIssueDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "issue range", `issue_date BETWEEN $1 AND $2`, domain.DateOf(start), domain.DateOf(end))
}

func (r *PgxBondRepository) FindByFaceValueAtLeast(ctx context.Context, minValue decimal.Decimal) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "face value", `face_value >= $1`, minValue)
}

func (r *PgxBondRepository) FindByFaceValueBetween(ctx context.Context, minValue, maxValue decimal.Decimal) ([]domain.Bond, error) {
	return r.queryBonds(ctx, "face value range", `face_value BETWEEN $1 AND $2`, minValue, maxValue)
}

func (r *PgxBondRepository) FindByStatus(ctx context.Context, status domain.BondStatus, today time.Time) ([]domain.Bond, error) {
	switch status {
	case domain.BondStatusDefaulted:
		return r.queryBonds(ctx, "status", `defaulted`)
	case domain.BondStatusMatured:
		return r.queryBonds(ctx, "status", `NOT defaulted AND maturity_date < $1`, domain.DateOf(today))
	case domain.BondStatusActive:
		return r.queryBonds(ctx, "status", `NOT defaulted AND maturity_date >= $1`, domain.DateOf(today))
	}
	return nil, apperrors.NewValidationError(fmt.Sprintf("unknown bond status %q", status))
}

func (r *PgxBondRepository) CountBonds(ctx context.Context) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM bonds`).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count bonds", err)
	}
	return n, nil
}

func (r *PgxBondRepository) AverageCouponRate(ctx context.Context) (decimal.NullDecimal, error) {
	var avg decimal.NullDecimal
	if err := r.Pool.QueryRow(ctx, `SELECT AVG(coupon_rate) FROM bonds`).Scan(&avg); err != nil {
		return decimal.NullDecimal{}, apperrors.NewAppError(500, "failed to average coupon rates", err)
	}
	return avg, nil
}

func (r *PgxBondRepository) CountDistinctIssuers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(DISTINCT issuer) FROM bonds`).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count issuers", err)
	}
	return n, nil
}

func (r *PgxBondRepository) MaxRating(ctx context.Context) (*string, error) {
	var rating *string
	if err := r.Pool.QueryRow(ctx, `SELECT MAX(rating) FROM bonds`).Scan(&rating); err != nil {
		return nil, apperrors.NewAppError(500, "failed to find max rating", err)
	}
	return rating, nil
}

func (r *PgxBondRepository) FindHighestCouponBond(ctx context.Context) (*domain.Bond, error) {
	return r.queryOneBond(ctx, "highest coupon", `coupon_rate DESC, bond_id ASC`)
}

func (r *PgxBondRepository) FindLowestCouponBond(ctx context.Context) (*domain.Bond, error) {
	return r.queryOneBond(ctx, "lowest coupon", `coupon_rate ASC, bond_id ASC`)
}

func (r *PgxBondRepository) FindEarliestMaturityBond(ctx context.Context) (*domain.Bond, error) {
	return r.queryOneBond(ctx, "earliest maturity", `maturity_date ASC, bond_id ASC`)
}

func (r *PgxBondRepository) CountMaturingBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var n int64
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM bonds WHERE maturity_date BETWEEN $1 AND $2`,
		domain.DateOf(start), domain.DateOf(end),
	).Scan(&n)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count maturing bonds", err)
	}
	return n, nil
}
