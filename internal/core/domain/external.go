package domain

import "github.com/shopspring/decimal"

// World Bank indicator ids used by the catalog.
const (
	IndicatorGDP       = "NY.GDP.MKTP.CD"
	IndicatorInflation = "FP.CPI.TOTL.ZG"
)

// IndicatorNames maps known indicator ids to display names.
var IndicatorNames = map[string]string{
	IndicatorGDP:       "GDP (current US$)",
	IndicatorInflation: "Inflation, CPI (%)",
}

// FXRate is a conversion factor from one currency to another.
type FXRate struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	Rate             decimal.Decimal
}

// BondValuation is a bond's face value expressed in another currency.
type BondValuation struct {
	BondID             int64
	BondName           string
	FromCurrencyCode   string
	ToCurrencyCode     string
	Rate               decimal.Decimal
	OriginalFaceValue  decimal.Decimal
	ConvertedFaceValue decimal.Decimal
}

// MacroIndicator is a single country/year observation. Value is nil when the source has no data point.
type MacroIndicator struct {
	Country       string
	Year          string
	IndicatorID   string
	IndicatorName string
	Value         *decimal.Decimal
}
