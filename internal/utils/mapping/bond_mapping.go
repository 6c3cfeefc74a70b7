package mapping

import (
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/SscSPs/bond_catalog/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToModelBond converts a domain Bond to a model Bond. Dates are reduced to calendar dates.
func ToModelBond(d domain.Bond) models.Bond {
	return models.Bond{
		BondID:       d.BondID,
		Name:         d.Name,
		Issuer:       d.Issuer,
		Rating:       d.Rating,
		IssueDate:    domain.DateOf(d.IssueDate),
		MaturityDate: domain.DateOf(d.MaturityDate),
		Currency:     d.Currency,
		FaceValue:    d.FaceValue,
		CouponRate:   d.CouponRate,
		Defaulted:    d.Defaulted,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBond converts a model Bond to a domain Bond. Status is left for the service to derive.
func ToDomainBond(m models.Bond) domain.Bond {
	return domain.Bond{
		BondID:       m.BondID,
		Name:         m.Name,
		Issuer:       m.Issuer,
		Rating:       m.Rating,
		IssueDate:    domain.DateOf(m.IssueDate),
		MaturityDate: domain.DateOf(m.MaturityDate),
		Currency:     m.Currency,
		FaceValue:    m.FaceValue,
		CouponRate:   m.CouponRate,
		Defaulted:    m.Defaulted,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBonds converts a slice of model Bonds. The result is never nil.
func ToDomainBonds(ms []models.Bond) []domain.Bond {
	out := make([]domain.Bond, len(ms))
	for i, m := range ms {
		out[i] = ToDomainBond(m)
	}
	return out
}
