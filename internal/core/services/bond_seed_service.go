package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type seedBond struct {
	name, issuer      string
	faceValue, coupon string
	rating            string
	issued, maturing  string
	currency          string
	defaulted         bool
}

// sampleBonds is the demo catalog loaded on startup.
var sampleBonds = []seedBond{
	{"US Treasury Bond 10Y", "US Government", "1000.00", "3.25", "AAA", "2023-01-01", "2033-12-31", "USD", false},
	{"Corporate Bond - Apple Inc", "Apple Inc", "5000.00", "4.50", "AA+", "2022-04-15", "2030-06-30", "USD", false},
	{"Green Energy Bond", "GreenFuture Ltd", "2000.00", "5.00", "A", "2021-08-10", "2029-03-15", "USD", false},
	{"Emerging Market Bond", "Govt of Nigeria", "1000.00", "7.00", "BB", "2020-11-01", "2031-10-20", "NGN", false},
	{"Eurobond - Mercedes Benz", "Mercedes Benz AG", "3000.00", "2.75", "AA", "2019-03-25", "2028-09-01", "EUR", false},
	{"UK Gilt 5Y", "UK Government", "1000.00", "2.50", "AAA", "2016-06-01", "2021-06-01", "GBP", false},
	{"Corporate Bond - Amazon", "Amazon Inc", "4000.00", "3.80", "AA", "2022-09-15", "2032-09-15", "USD", false},
	{"Municipal Bond - California", "State of California", "1500.00", "2.20", "A+", "2010-01-01", "2020-01-01", "USD", false},
	{"Japanese Government Bond 15Y", "Govt of Japan", "2000.00", "0.80", "AAA", "2020-02-01", "2035-02-01", "JPY", false},
	{"Corporate Bond - Tesla", "Tesla Inc", "3500.00", "6.00", "BBB", "2021-05-10", "2031-05-10", "USD", false},
	{"Green Bond - Siemens", "Siemens AG", "2500.00", "2.90", "AA", "2014-03-20", "2021-03-20", "EUR", false},
	{"Sovereign Bond - Ghana", "Govt of Ghana", "1000.00", "8.25", "B", "2021-07-01", "2031-07-01", "GHS", false},
	{"Corporate Bond - Google", "Alphabet Inc", "6000.00", "3.40", "AA+", "2023-05-15", "2033-05-15", "USD", false},
	{"Corporate Bond - Microsoft", "Microsoft Corp", "5500.00", "3.75", "AAA", "2011-11-01", "2021-11-01", "USD", false},
	{"Municipal Bond - New York City", "NYC Government", "1200.00", "2.60", "A", "2020-08-01", "2030-08-01", "USD", false},
	{"Eurobond - BMW", "BMW AG", "2800.00", "2.50", "A+", "2021-04-15", "2028-04-15", "EUR", false},
	{"Corporate Bond - Netflix", "Netflix Inc", "2200.00", "5.75", "BB+", "2013-06-10", "2020-06-10", "USD", false},
	{"Sovereign Bond - Kenya", "Govt of Kenya", "1000.00", "9.00", "B", "2020-01-01", "2030-01-01", "KES", false},
	{"Eurobond - Nestle", "Nestle SA", "2700.00", "2.40", "AA", "2012-09-01", "2019-09-01", "EUR", false},
	{"Corporate Bond - Meta", "Meta Platforms Inc", "3300.00", "4.10", "A", "2022-02-15", "2032-02-15", "USD", false},
	{"Sovereign Bond - South Africa", "Govt of South Africa", "1000.00", "10.50", "BB", "2020-05-01", "2030-05-01", "ZAR", false},
	{"Corporate Bond - Samsung", "Samsung Electronics", "3100.00", "3.20", "A+", "2021-10-01", "2031-10-01", "KRW", false},
	{"Infrastructure Bond", "World Bank", "4000.00", "2.10", "AAA", "2023-01-01", "2038-01-01", "USD", false},
	{"Corporate Bond - CocaCola", "CocaCola Inc", "2600.00", "3.60", "A+", "2014-12-15", "2022-12-15", "USD", false},
	{"Sustainability-Linked Bond - Unilever", "Unilever PLC", "2400.00", "2.95", "A", "2021-03-01", "2029-03-01", "GBP", false},
	{"Nigeria Eurobond 2027", "Govt of Nigeria", "1000.00", "8.75", "CCC", "2019-06-01", "2027-06-01", "USD", true},
	{"Dangote Cement 2029", "Dangote Cement Plc", "5000.00", "12.50", "BBB", "2022-01-01", "2029-12-31", "NGN", false},
	{"Lagos State 2020 Series", "Lagos State Government", "2000.00", "14.00", "BB", "2015-01-01", "2020-12-31", "NGN", false},
	{"High Yield Corp 2028", "Acme High Yield Ltd", "1500.00", "11.00", "CCC", "2021-09-01", "2028-09-01", "USD", true},
	{"Eurobond - Airbus 2019/2024", "Airbus SE", "3000.00", "1.80", "A", "2019-05-01", "2024-05-01", "EUR", false},
}

// SampleBondCount is the size of the demo catalog.
func SampleBondCount() int {
	return len(sampleBonds)
}

func (sb seedBond) toDomain() (domain.Bond, error) {
	face, err := decimal.NewFromString(sb.faceValue)
	if err != nil {
		return domain.Bond{}, fmt.Errorf("face value of %q: %w", sb.name, err)
	}
	coupon, err := decimal.NewFromString(sb.coupon)
	if err != nil {
		return domain.Bond{}, fmt.Errorf("coupon of %q: %w", sb.name, err)
	}
	issued, err := domain.ParseDate(sb.issued)
	if err != nil {
		return domain.Bond{}, fmt.Errorf("issue date of %q: %w", sb.name, err)
	}
	maturing, err := domain.ParseDate(sb.maturing)
	if err != nil {
		return domain.Bond{}, fmt.Errorf("maturity date of %q: %w", sb.name, err)
	}
	return domain.Bond{
		Name:         sb.name,
		Issuer:       sb.issuer,
		Rating:       sb.rating,
		IssueDate:    issued,
		MaturityDate: maturing,
		Currency:     sb.currency,
		FaceValue:    face,
		CouponRate:   coupon,
		Defaulted:    sb.defaulted,
	}, nil
}

// bondSeedService implements StaticDataService for the sample catalog
type bondSeedService struct {
	BaseService
	bondRepo portsrepo.BondRepositoryFacade
}

// NewBondSeedService creates the sample-data loader.
func NewBondSeedService(repo portsrepo.BondRepositoryFacade) portssvc.StaticDataService {
	return &bondSeedService{bondRepo: repo}
}

var _ portssvc.StaticDataService = (*bondSeedService)(nil)

// InitializeStaticData inserts every sample bond whose (name, issuer, maturity) triple is
// not stored yet. It is idempotent and safe to run from several instances at once.
func (s *bondSeedService) InitializeStaticData(ctx context.Context) error {
	inserted, skipped := 0, 0
	for _, sb := range sampleBonds {
		bond, err := sb.toDomain()
		if err != nil {
			return fmt.Errorf("invalid sample bond: %w", err)
		}

		exists, err := s.bondRepo.ExistsByNameIssuerMaturity(ctx, bond.Name, bond.Issuer, bond.MaturityDate)
		if err != nil {
			return fmt.Errorf("failed to check sample bond %q: %w", bond.Name, err)
		}
		if exists {
			skipped++
			continue
		}

		now := s.Now()
		bond.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
		if _, err := s.bondRepo.SaveBond(ctx, bond); err != nil {
			// Another instance inserted it between the check and the insert
			if errors.Is(err, apperrors.ErrDuplicate) {
				skipped++
				continue
			}
			return fmt.Errorf("failed to insert sample bond %q: %w", bond.Name, err)
		}
		inserted++
	}

	s.LogInfo(ctx, "Sample bonds loaded", slog.Int("inserted", inserted), slog.Int("skipped", skipped))
	return nil
}
