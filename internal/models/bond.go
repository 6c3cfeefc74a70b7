package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields mirrors the audit columns present on every table.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Bond is the row shape of the bonds table.
// Status is not a column; only the explicit default flag is stored.
type Bond struct {
	BondID       int64           `json:"bondID"` // Primary Key (BIGSERIAL / INTEGER PRIMARY KEY)
	Name         string          `json:"name"`
	Issuer       string          `json:"issuer"`
	Rating       string          `json:"rating"`
	IssueDate    time.Time       `json:"issueDate"`
	MaturityDate time.Time       `json:"maturityDate"` // UNIQUE together with name and issuer
	Currency     string          `json:"currency"`
	FaceValue    decimal.Decimal `json:"faceValue"`
	CouponRate   decimal.Decimal `json:"couponRate"`
	Defaulted    bool            `json:"defaulted"`
	AuditFields
}
