package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaturityWindowDays is the look-ahead of the "maturities in the next N days" statistic.
const MaturityWindowDays = 90

// BondSummary is the rollup over the whole catalog.
// Pointer fields are nil when the catalog is empty.
type BondSummary struct {
	TotalBonds             int64
	AvgCouponRate          *decimal.Decimal
	MaxRating              *string
	UniqueIssuers          int64
	HighestCoupon          *decimal.Decimal
	HighestCouponBondName  *string
	LowestCoupon           *decimal.Decimal
	LowestCouponBondName   *string
	NextMaturityBondName   *string
	NextMaturityBondDate   *time.Time
	MaturitiesInNext90Days int64
}
