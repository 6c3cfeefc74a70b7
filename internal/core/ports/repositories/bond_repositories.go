package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BondReader defines read operations for single bonds and the full catalog
type BondReader interface {
	// FindBondByID retrieves a bond by its identifier. Returns apperrors.ErrNotFound when absent.
	FindBondByID(ctx context.Context, bondID int64) (*domain.Bond, error)

	// ListBonds retrieves every bond in the catalog.
	ListBonds(ctx context.Context) ([]domain.Bond, error)

	// ExistsByNameIssuerMaturity reports whether the unique triple is already stored.
	ExistsByNameIssuerMaturity(ctx context.Context, name, issuer string, maturityDate time.Time) (bool, error)
}

// BondWriter defines write operations for bonds
type BondWriter interface {
	// SaveBond inserts a new bond and returns it with the assigned identifier.
	SaveBond(ctx context.Context, bond domain.Bond) (*domain.Bond, error)

	// UpdateBond overwrites every mutable field of an existing bond.
	UpdateBond(ctx context.Context, bondID int64, bond domain.Bond) (*domain.Bond, error)

	// DeleteBond removes a bond permanently.
	DeleteBond(ctx context.Context, bondID int64) error
}

// BondQueryRepository defines the filter queries. Bounds named "Between" are inclusive,
// "After" is strict. An empty result is an empty slice, never an error.
type BondQueryRepository interface {
	FindByIssuerContaining(ctx context.Context, issuer string) ([]domain.Bond, error)
	FindByRating(ctx context.Context, rating string) ([]domain.Bond, error)
	FindByCouponRateAtLeast(ctx context.Context, minRate decimal.Decimal) ([]domain.Bond, error)
	FindByCouponRateBetween(ctx context.Context, minRate, maxRate decimal.Decimal) ([]domain.Bond, error)
	FindByMaturityDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error)
	FindByMaturityDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error)
	FindByIssueDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error)
	FindByIssueDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error)
	FindByFaceValueAtLeast(ctx context.Context, minValue decimal.Decimal) ([]domain.Bond, error)
	FindByFaceValueBetween(ctx context.Context, minValue, maxValue decimal.Decimal) ([]domain.Bond, error)

	// FindByStatus evaluates the status rule as a predicate on maturity date and default flag for the given day.
	FindByStatus(ctx context.Context, status domain.BondStatus, today time.Time) ([]domain.Bond, error)
}

// BondAggregateRepository defines the rollup queries behind the summary.
// Extremal lookups return nil, nil on an empty catalog.
type BondAggregateRepository interface {
	CountBonds(ctx context.Context) (int64, error)
	AverageCouponRate(ctx context.Context) (decimal.NullDecimal, error)
	CountDistinctIssuers(ctx context.Context) (int64, error)
	MaxRating(ctx context.Context) (*string, error)
	FindHighestCouponBond(ctx context.Context) (*domain.Bond, error)
	FindLowestCouponBond(ctx context.Context) (*domain.Bond, error)
	FindEarliestMaturityBond(ctx context.Context) (*domain.Bond, error)
	CountMaturingBetween(ctx context.Context, start, end time.Time) (int64, error)
}

// BondRepositoryFacade combines all bond-related repository interfaces
// This is a facade for clients that need access to all operations
type BondRepositoryFacade interface {
	BondReader
	BondWriter
	BondQueryRepository
	BondAggregateRepository
}
