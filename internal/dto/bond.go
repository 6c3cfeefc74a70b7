package dto

import (
	"time"

	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BondRequest defines the payload for creating or fully replacing a bond.
// BondID must be omitted on create; on update it may only repeat the path id.
type BondRequest struct {
	BondID       *int64          `json:"bondID,omitempty"`
	Name         string          `json:"name" binding:"required"`
	Issuer       string          `json:"issuer" binding:"required"`
	Rating       string          `json:"rating" binding:"required"`
	IssueDate    string          `json:"issueDate" binding:"required,datetime=2006-01-02" example:"2023-01-01"`
	MaturityDate string          `json:"maturityDate" binding:"required,datetime=2006-01-02" example:"2033-12-31"`
	Currency     string          `json:"currency" binding:"required,len=3,alpha" example:"USD"`
	FaceValue    decimal.Decimal `json:"faceValue" binding:"dpositive" swaggertype:"string" example:"1000.00"`
	CouponRate   decimal.Decimal `json:"couponRate" binding:"dnonnegative" swaggertype:"string" example:"3.25"`
	Defaulted    bool            `json:"defaulted"`
}

// BondResponse defines the structure for API responses containing bond details.
type BondResponse struct {
	BondID        int64           `json:"bondID"`
	Name          string          `json:"name"`
	Issuer        string          `json:"issuer"`
	Rating        string          `json:"rating"`
	IssueDate     string          `json:"issueDate"`
	MaturityDate  string          `json:"maturityDate"`
	Currency      string          `json:"currency"`
	FaceValue     decimal.Decimal `json:"faceValue" swaggertype:"string"`
	CouponRate    decimal.Decimal `json:"couponRate" swaggertype:"string"`
	Defaulted     bool            `json:"defaulted"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToBondResponse converts a domain.Bond to BondResponse DTO
func ToBondResponse(b *domain.Bond) BondResponse {
	return BondResponse{
		BondID:        b.BondID,
		Name:          b.Name,
		Issuer:        b.Issuer,
		Rating:        b.Rating,
		IssueDate:     domain.FormatDate(b.IssueDate),
		MaturityDate:  domain.FormatDate(b.MaturityDate),
		Currency:      b.Currency,
		FaceValue:     b.FaceValue,
		CouponRate:    b.CouponRate,
		Defaulted:     b.Defaulted,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBondResponse converts a slice of domain.Bond to a slice of BondResponse DTOs.
// The result is never nil so an empty catalog serializes as [].
func ToListBondResponse(bonds []domain.Bond) []BondResponse {
	res := make([]BondResponse, len(bonds))
	for i := range bonds {
		res[i] = ToBondResponse(&bonds[i])
	}
	return res
}

// BondSummaryResponse is the catalog rollup. Nullable fields are null on an empty catalog.
type BondSummaryResponse struct {
	TotalBonds             int64            `json:"totalBonds"`
	AvgCouponRate          *decimal.Decimal `json:"avgCouponRate" swaggertype:"string"`
	MaxRating              *string          `json:"maxRating"`
	UniqueIssuers          int64            `json:"uniqueIssuers"`
	HighestCoupon          *decimal.Decimal `json:"highestCoupon" swaggertype:"string"`
	HighestCouponBondName  *string          `json:"highestCouponBondName"`
	LowestCoupon           *decimal.Decimal `json:"lowestCoupon" swaggertype:"string"`
	LowestCouponBondName   *string          `json:"lowestCouponBondName"`
	NextMaturityBondName   *string          `json:"nextMaturityBondName"`
	NextMaturityBondDate   *string          `json:"nextMaturityBondDate"`
	MaturitiesInNext90Days int64            `json:"maturitiesInNext90Days"`
}

// ToBondSummaryResponse converts a domain.BondSummary to its DTO.
func ToBondSummaryResponse(s *domain.BondSummary) BondSummaryResponse {
	res := BondSummaryResponse{
		TotalBonds:             s.TotalBonds,
		AvgCouponRate:          s.AvgCouponRate,
		MaxRating:              s.MaxRating,
		UniqueIssuers:          s.UniqueIssuers,
		HighestCoupon:          s.HighestCoupon,
		HighestCouponBondName:  s.HighestCouponBondName,
		LowestCoupon:           s.LowestCoupon,
		LowestCouponBondName:   s.LowestCouponBondName,
		NextMaturityBondName:   s.NextMaturityBondName,
		MaturitiesInNext90Days: s.MaturitiesInNext90Days,
	}
	if s.NextMaturityBondDate != nil {
		d := domain.FormatDate(*s.NextMaturityBondDate)
		res.NextMaturityBondDate = &d
	}
	return res
}
