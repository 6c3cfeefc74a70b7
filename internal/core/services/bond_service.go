package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"github.com/SscSPs/bond_catalog/internal/dto"
	"github.com/shopspring/decimal"
)

// bondService implements the BondSvcFacade interface
type bondService struct {
	BaseService
	bondRepo portsrepo.BondRepositoryFacade
}

// BondServiceOption is a functional option for configuring the bond service
type BondServiceOption func(*bondService)

// WithBondClock overrides the clock used to derive statuses and date rules.
func WithBondClock(clock Clock) BondServiceOption {
	return func(s *bondService) {
		s.clock = clock
	}
}

// NewBondService creates a new bond service with the provided options
func NewBondService(repo portsrepo.BondRepositoryFacade, options ...BondServiceOption) portssvc.BondSvcFacade {
	svc := &bondService{bondRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BondSvcFacade = (*bondService)(nil)

func (s *bondService) GetBondByID(ctx context.Context, bondID int64) (*domain.Bond, error) {
	if bondID <= 0 {
		return nil, apperrors.NewValidationError("Bond ID must be a positive integer.")
	}
	bond, err := s.bondRepo.FindBondByID(ctx, bondID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bond by ID in repository", slog.Int64("bond_id", bondID))
		}
		return nil, err
	}
	withStatus := bond.WithStatus(s.Today())
	return &withStatus, nil
}

func (s *bondService) ListBonds(ctx context.Context) ([]domain.Bond, error) {
	bonds, err := s.bondRepo.ListBonds(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bonds from repository")
		return nil, fmt.Errorf("failed to list bonds: %w", err)
	}
	return s.finish(ctx, "list", bonds), nil
}

func (s *bondService) CreateBond(ctx context.Context, req dto.BondRequest) (*domain.Bond, error) {
	if req.BondID != nil {
		return nil, apperrors.NewValidationError("Bond ID should be null for new bonds.")
	}
	bond, err := bondFromRequest(req)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	bond.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	// The insert must not be abandoned once issued, even if the client goes away.
	saved, err := s.bondRepo.SaveBond(context.WithoutCancel(ctx), bond)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("A bond named %q from %q maturing %s already exists.",
				bond.Name, bond.Issuer, domain.FormatDate(bond.MaturityDate)))
		}
		s.LogError(ctx, err, "Failed to save bond in repository", slog.String("name", bond.Name))
		return nil, fmt.Errorf("failed to create bond: %w", err)
	}

	s.LogInfo(ctx, "Bond created successfully", slog.Int64("bond_id", saved.BondID))
	withStatus := saved.WithStatus(s.Today())
	return &withStatus, nil
}

func (s *bondService) UpdateBond(ctx context.Context, bondID int64, req dto.BondRequest) (*domain.Bond, error) {
	if bondID <= 0 {
		return nil, apperrors.NewValidationError("Bond ID must be a positive integer.")
	}
	if req.BondID != nil && *req.BondID != bondID {
		return nil, apperrors.NewValidationError("Bond ID in body does not match the path.")
	}
	bond, err := bondFromRequest(req)
	if err != nil {
		return nil, err
	}
	bond.BondID = bondID
	bond.LastUpdatedAt = s.Now()

	updated, err := s.bondRepo.UpdateBond(context.WithoutCancel(ctx), bondID, bond)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, err
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewConflictError("Another bond with the same name, issuer and maturity date already exists.")
		}
		s.LogError(ctx, err, "Failed to update bond in repository", slog.Int64("bond_id", bondID))
		return nil, fmt.Errorf("failed to update bond: %w", err)
	}

	s.LogInfo(ctx, "Bond updated successfully", slog.Int64("bond_id", bondID))
	withStatus := updated.WithStatus(s.Today())
	return &withStatus, nil
}

func (s *bondService) DeleteBond(ctx context.Context, bondID int64) error {
	if bondID <= 0 {
		return apperrors.NewValidationError("Bond ID must be a positive integer.")
	}
	if err := s.bondRepo.DeleteBond(context.WithoutCancel(ctx), bondID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete bond in repository", slog.Int64("bond_id", bondID))
			return fmt.Errorf("failed to delete bond: %w", err)
		}
		return err
	}
	s.LogInfo(ctx, "Bond deleted successfully", slog.Int64("bond_id", bondID))
	return nil
}

func (s *bondService) FindByIssuer(ctx context.Context, issuer string) ([]domain.Bond, error) {
	issuer, err := requireText("Issuer", issuer)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, "issuer", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByIssuerContaining(ctx, issuer)
	})
}

func (s *bondService) FindByRating(ctx context.Context, rating string) ([]domain.Bond, error) {
	rating, err := requireText("Rating", rating)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, "rating", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByRating(ctx, rating)
	})
}

func (s *bondService) FindByCouponRateAtLeast(ctx context.Context, minRate decimal.Decimal) ([]domain.Bond, error) {
	if err := validateCouponRateAtLeast(minRate); err != nil {
		return nil, err
	}
	return s.query(ctx, "coupon_rate_at_least", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByCouponRateAtLeast(ctx, minRate)
	})
}

func (s *bondService) FindByCouponRateRange(ctx context.Context, minRate, maxRate decimal.Decimal) ([]domain.Bond, error) {
	if err := validateCouponRateRange(minRate, maxRate); err != nil {
		return nil, err
	}
	return s.query(ctx, "coupon_rate_between", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByCouponRateBetween(ctx, minRate, maxRate)
	})
}

func (s *bondService) FindByMaturityBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}
	return s.query(ctx, "maturity_between", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByMaturityDateBetween(ctx, domain.DateOf(start), domain.DateOf(end))
	})
}

func (s *bondService) FindByMaturityAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	if err := validateMaturityAfter(date, s.Today()); err != nil {
		return nil, err
	}
	return s.query(ctx, "maturity_after", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByMaturityDateAfter(ctx, domain.DateOf(date))
	})
}

func (s *bondService) FindByIssueDateAfter(ctx context.Context, date time.Time) ([]domain.Bond, error) {
	if err := validateIssueAfter(date, s.Today()); err != nil {
		return nil, err
	}
	return s.query(ctx, "issue_after", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByIssueDateAfter(ctx, domain.DateOf(date))
	})
}

func (s *bondService) FindByIssueDateBetween(ctx context.Context, start, end time.Time) ([]domain.Bond, error) {
	if err := validateIssueRange(start, end, s.Today()); err != nil {
		return nil, err
	}
	return s.query(ctx, "issue_between", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByIssueDateBetween(ctx, domain.DateOf(start), domain.DateOf(end))
	})
}

func (s *bondService) FindByFaceValueAtLeast(ctx context.Context, minValue decimal.Decimal) ([]domain.Bond, error) {
	if err := validateFaceValueAtLeast(minValue); err != nil {
		return nil, err
	}
	return s.query(ctx, "face_value_at_least", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByFaceValueAtLeast(ctx, minValue)
	})
}

func (s *bondService) FindByFaceValueBetween(ctx context.Context, minValue, maxValue decimal.Decimal) ([]domain.Bond, error) {
	if err := validateFaceValueRange(minValue, maxValue); err != nil {
		return nil, err
	}
	return s.query(ctx, "face_value_between", func() ([]domain.Bond, error) {
		return s.bondRepo.FindByFaceValueBetween(ctx, minValue, maxValue)
	})
}

func (s *bondService) FindByStatus(ctx context.Context, status string) ([]domain.Bond, error) {
	st, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	today := s.Today()
	bonds, err := s.bondRepo.FindByStatus(ctx, st, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to filter bonds by status", slog.String("status", string(st)))
		return nil, fmt.Errorf("failed to find bonds by status: %w", err)
	}
	if bonds == nil {
		return []domain.Bond{}, nil
	}
	// Derive against the same day the predicate used so every row carries the requested status.
	return domain.WithStatuses(bonds, today), nil
}

// query runs one validated store lookup and derives statuses on the result.
func (s *bondService) query(ctx context.Context, filter string, run func() ([]domain.Bond, error)) ([]domain.Bond, error) {
	bonds, err := run()
	if err != nil {
		s.LogError(ctx, err, "Failed to filter bonds", slog.String("filter", filter))
		return nil, fmt.Errorf("failed to find bonds by %s: %w", filter, err)
	}
	return s.finish(ctx, filter, bonds), nil
}

func (s *bondService) finish(ctx context.Context, filter string, bonds []domain.Bond) []domain.Bond {
	if bonds == nil {
		bonds = []domain.Bond{}
	}
	s.LogDebug(ctx, "Bonds retrieved", slog.String("filter", filter), slog.Int("count", len(bonds)))
	return domain.WithStatuses(bonds, s.Today())
}
