package dto

import (
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FXRateResponse is a single currency-pair quote.
type FXRateResponse struct {
	From string          `json:"from"`
	To   string          `json:"to"`
	Rate decimal.Decimal `json:"rate" swaggertype:"string"`
}

// ToFXRateResponse converts a domain.FXRate to its DTO.
func ToFXRateResponse(r *domain.FXRate) FXRateResponse {
	return FXRateResponse{From: r.FromCurrencyCode, To: r.ToCurrencyCode, Rate: r.Rate}
}

// BondValuationResponse is a bond's face value converted into another currency.
type BondValuationResponse struct {
	BondID             int64           `json:"bondId"`
	BondName           string          `json:"bondName"`
	FromCurrency       string          `json:"fromCurrency"`
	ToCurrency         string          `json:"toCurrency"`
	Rate               decimal.Decimal `json:"rate" swaggertype:"string"`
	OriginalFaceValue  decimal.Decimal `json:"originalFaceValue" swaggertype:"string"`
	ConvertedFaceValue decimal.Decimal `json:"convertedFaceValue" swaggertype:"string"`
}

// ToBondValuationResponse converts a domain.BondValuation to its DTO.
func ToBondValuationResponse(v *domain.BondValuation) BondValuationResponse {
	return BondValuationResponse{
		BondID:             v.BondID,
		BondName:           v.BondName,
		FromCurrency:       v.FromCurrencyCode,
		ToCurrency:         v.ToCurrencyCode,
		Rate:               v.Rate,
		OriginalFaceValue:  v.OriginalFaceValue,
		ConvertedFaceValue: v.ConvertedFaceValue,
	}
}

// MacroIndicatorResponse is one country/year observation; value is null when unavailable.
type MacroIndicatorResponse struct {
	Country     string           `json:"country"`
	Year        string           `json:"year"`
	IndicatorID string           `json:"indicatorId"`
	Indicator   string           `json:"indicator"`
	Value       *decimal.Decimal `json:"value" swaggertype:"string"`
}

// ToMacroIndicatorResponse converts a domain.MacroIndicator to its DTO.
func ToMacroIndicatorResponse(m *domain.MacroIndicator) MacroIndicatorResponse {
	return MacroIndicatorResponse{
		Country:     m.Country,
		Year:        m.Year,
		IndicatorID: m.IndicatorID,
		Indicator:   m.IndicatorName,
		Value:       m.Value,
	}
}
