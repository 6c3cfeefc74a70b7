package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/bond_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// bondSummaryService implements the BondSummarySvc interface
type bondSummaryService struct {
	BaseService
	aggregates portsrepo.BondAggregateRepository
}

// NewBondSummaryService creates the summary aggregator. A nil clock means time.Now.
func NewBondSummaryService(repo portsrepo.BondAggregateRepository, clock Clock) portssvc.BondSummarySvc {
	return &bondSummaryService{
		BaseService: BaseService{clock: clock},
		aggregates:  repo,
	}
}

var _ portssvc.BondSummarySvc = (*bondSummaryService)(nil)

// GetSummary runs the independent aggregate queries concurrently. The first failing
// query cancels the rest and its error is returned.
func (s *bondSummaryService) GetSummary(ctx context.Context) (*domain.BondSummary, error) {
	today := s.Today()
	windowEnd := today.AddDate(0, 0, domain.MaturityWindowDays)

	var (
		summary                       domain.BondSummary
		highest, lowest, nextMaturity *domain.Bond
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.aggregates.CountBonds(gctx)
		summary.TotalBonds = n
		return wrapAggregate("count bonds", err)
	})
	g.Go(func() error {
		avg, err := s.aggregates.AverageCouponRate(gctx)
		if avg.Valid {
			summary.AvgCouponRate = &avg.Decimal
		}
		return wrapAggregate("average coupon rate", err)
	})
	g.Go(func() error {
		r, err := s.aggregates.MaxRating(gctx)
		summary.MaxRating = r
		return wrapAggregate("max rating", err)
	})
	g.Go(func() error {
		n, err := s.aggregates.CountDistinctIssuers(gctx)
		summary.UniqueIssuers = n
		return wrapAggregate("count issuers", err)
	})
	g.Go(func() error {
		b, err := s.aggregates.FindHighestCouponBond(gctx)
		highest = b
		return wrapAggregate("highest coupon", err)
	})
	g.Go(func() error {
		b, err := s.aggregates.FindLowestCouponBond(gctx)
		lowest = b
		return wrapAggregate("lowest coupon", err)
	})
	g.Go(func() error {
		b, err := s.aggregates.FindEarliestMaturityBond(gctx)
		nextMaturity = b
		return wrapAggregate("earliest maturity", err)
	})
	g.Go(func() error {
		n, err := s.aggregates.CountMaturingBetween(gctx, today, windowEnd)
		summary.MaturitiesInNext90Days = n
		return wrapAggregate("count maturing", err)
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute bond summary")
		return nil, err
	}

	if highest != nil {
		summary.HighestCoupon = &highest.CouponRate
		summary.HighestCouponBondName = &highest.Name
	}
	if lowest != nil {
		summary.LowestCoupon = &lowest.CouponRate
		summary.LowestCouponBondName = &lowest.Name
	}
	if nextMaturity != nil {
		summary.NextMaturityBondName = &nextMaturity.Name
		summary.NextMaturityBondDate = &nextMaturity.MaturityDate
	}
	return &summary, nil
}

func wrapAggregate(what string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	return nil
}
