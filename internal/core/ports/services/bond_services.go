package services

import (
	"context"
	"time"

	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/SscSPs/bond_catalog/internal/dto"
	"github.com/shopspring/decimal"
)

// BondReaderSvc defines read operations for single bonds and the full catalog
type BondReaderSvc interface {
	// GetBondByID retrieves a bond with its status derived for today.
	GetBondByID(ctx context.Context, bondID int64) (*domain.Bond, error)

	// ListBonds retrieves every bond with its status derived for today.
	ListBonds(ctx context.Context) ([]domain.Bond, error)
}

// BondWriterSvc defines write operations for bonds
type BondWriterSvc interface {
	// CreateBond validates and stores a new bond. A request carrying a bondID is rejected.
	CreateBond(ctx context.Context, req dto.BondRequest) (*domain.Bond, error)

	// UpdateBond replaces every mutable field of an existing bond.
	UpdateBond(ctx context.Context, bondID int64, req dto.BondRequest) (*domain.Bond, error)

	// DeleteBond removes a bond.
	DeleteBond(ctx context.Context, bondID int64) error
}

// BondFilterSvc defines the validated search operations
type BondFilterSvc interface {
	FindByIssuer(ctx context.Context, issuer string) ([]domain.Bond, error)
	FindByRating(ctx context.Context, rating string) ([]domain.Bond, error)
	FindByCouponRateAtLeast(ctx context.Context, minRate decimal.Decimal) ([]domain.Bond, error)
	FindByCouponRateRange(ctx context.Context, minRate, maxRate decimal.Decimal) ([]domain.Bond, error)
	FindByMaturityBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error)
	FindByMaturityAfter(ctx context.Context, date time.Time) ([]domain.Bond, error)
	FindByIssueDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error)
	FindByIssueDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error)
	FindByFaceValueAtLeast(ctx context.Context, minValue decimal.Decimal) ([]domain.Bond, error)
	FindByFaceValueBetween(ctx context.Context, minValue, maxValue decimal.Decimal) ([]domain.Bond, error)

	// FindByStatus accepts Active, Matured or Defaulted in any letter case.
	FindByStatus(ctx context.Context, status string) ([]domain.Bond, error)
}

// BondSvcFacade combines all bond-related service interfaces
type BondSvcFacade interface {
	BondReaderSvc
	BondWriterSvc
	BondFilterSvc
}

// BondSummarySvc computes the catalog rollup.
type BondSummarySvc interface {
	GetSummary(ctx context.Context) (*domain.BondSummary, error)
}
