package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BondStatus is the lifecycle classification of a bond.
type BondStatus string

const (
	BondStatusActive    BondStatus = "Active"
	BondStatusMatured   BondStatus = "Matured"
	BondStatusDefaulted BondStatus = "Defaulted"
)

// AllBondStatuses lists the statuses in display order.
var AllBondStatuses = []BondStatus{BondStatusActive, BondStatusMatured, BondStatusDefaulted}

// ParseBondStatus matches s case-insensitively against the known statuses.
func ParseBondStatus(s string) (BondStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range AllBondStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// DeriveStatus computes the status of a bond on the given day.
// The default flag wins over the date rule; a bond maturing today is still Active.
func DeriveStatus(maturityDate time.Time, defaulted bool, today time.Time) BondStatus {
	if defaulted {
		return BondStatusDefaulted
	}
	if DateOf(maturityDate).Before(DateOf(today)) {
		return BondStatusMatured
	}
	return BondStatusActive
}

// Bond is a fixed-income catalog entry.
// Status is never persisted; it is filled by WithStatus at read time.
type Bond struct {
	BondID       int64           `json:"bondID"`
	Name         string          `json:"name"`
	Issuer       string          `json:"issuer"`
	Rating       string          `json:"rating"`
	IssueDate    time.Time       `json:"issueDate"`
	MaturityDate time.Time       `json:"maturityDate"`
	Currency     string          `json:"currency"`
	FaceValue    decimal.Decimal `json:"faceValue"`
	CouponRate   decimal.Decimal `json:"couponRate"`
	Defaulted    bool            `json:"defaulted"`
	Status       BondStatus      `json:"status"`
	AuditFields
}

// WithStatus returns a copy of b with Status derived for today.
func (b Bond) WithStatus(today time.Time) Bond {
	b.Status = DeriveStatus(b.MaturityDate, b.Defaulted, today)
	return b
}

// WithStatuses derives the status of every bond in place and returns the slice.
func WithStatuses(bonds []Bond, today time.Time) []Bond {
	for i := range bonds {
		bonds[i].Status = DeriveStatus(bonds[i].MaturityDate, bonds[i].Defaulted, today)
	}
	return bonds
}
