package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/SscSPs/bond_catalog/internal/dto"
	"github.com/shopspring/decimal"
)

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.NewValidationError(field + " must not be blank.")
	}
	return value, nil
}

// normalizeCurrencyCode trims and upper-cases a three-letter ISO code.
func normalizeCurrencyCode(field, code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", apperrors.NewValidationError(field + " must not be blank.")
	}
	if len(code) != 3 {
		return "", apperrors.NewValidationError(field + " must be a 3-letter currency code.")
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", apperrors.NewValidationError(field + " must be a 3-letter currency code.")
		}
	}
	return code, nil
}

func parseRequestDate(field, value string) (time.Time, error) {
	d, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field + " must be in ISO format YYYY-MM-DD.")
	}
	return d, nil
}

// bondFromRequest checks the data-model rules and builds the domain value.
// The request's bondID is handled by the callers.
func bondFromRequest(req dto.BondRequest) (domain.Bond, error) {
	var (
		b   domain.Bond
		err error
	)
	if b.Name, err = requireText("Name", req.Name); err != nil {
		return b, err
	}
	if b.Issuer, err = requireText("Issuer", req.Issuer); err != nil {
		return b, err
	}
	if b.Rating, err = requireText("Rating", req.Rating); err != nil {
		return b, err
	}
	if b.Currency, err = normalizeCurrencyCode("Currency", req.Currency); err != nil {
		return b, err
	}
	if b.IssueDate, err = parseRequestDate("Issue date", req.IssueDate); err != nil {
		return b, err
	}
	if b.MaturityDate, err = parseRequestDate("Maturity date", req.MaturityDate); err != nil {
		return b, err
	}
	if b.MaturityDate.Before(b.IssueDate) {
		return b, apperrors.NewValidationError("Maturity date must be on/after issue date.")
	}
	if !req.FaceValue.IsPositive() {
		return b, apperrors.NewValidationError("Face value must be > 0.")
	}
	if req.CouponRate.IsNegative() {
		return b, apperrors.NewValidationError("Coupon rate must be >= 0.")
	}
	b.FaceValue = req.FaceValue
	b.CouponRate = req.CouponRate
	b.Defaulted = req.Defaulted
	return b, nil
}

func validateCouponRateAtLeast(minRate decimal.Decimal) error {
	if !minRate.IsPositive() {
		return apperrors.NewValidationError("Rate must be > 0.")
	}
	return nil
}

// validateCouponRateRange only orders the bounds; unlike the face value range it
// does not require positive bounds.
func validateCouponRateRange(minRate, maxRate decimal.Decimal) error {
	if minRate.GreaterThan(maxRate) {
		return apperrors.NewValidationError("Invalid range. Ensure min ≤ max.")
	}
	return nil
}

func validateDateRange(start, end time.Time) error {
	if domain.DateOf(end).Before(domain.DateOf(start)) {
		return apperrors.NewValidationError("End date must be on/after start date.")
	}
	return nil
}

func validateMaturityAfter(date, today time.Time) error {
	if domain.DateOf(date).Before(today) {
		return apperrors.NewValidationError("Maturity date must be today or in the future.")
	}
	return nil
}

func validateIssueAfter(date, today time.Time) error {
	if domain.DateOf(date).After(today) {
		return apperrors.NewValidationError("Issue date must not be in the future.")
	}
	return nil
}

func validateIssueRange(start, end, today time.Time) error {
	if err := validateDateRange(start, end); err != nil {
		return err
	}
	if domain.DateOf(start).After(today) || domain.DateOf(end).After(today) {
		return apperrors.NewValidationError("Issue dates must not be in the future.")
	}
	return nil
}

func validateFaceValueAtLeast(minValue decimal.Decimal) error {
	if !minValue.IsPositive() {
		return apperrors.NewValidationError("Face value must be > 0.")
	}
	return nil
}

func validateFaceValueRange(minValue, maxValue decimal.Decimal) error {
	if !minValue.IsPositive() || !maxValue.IsPositive() || minValue.GreaterThan(maxValue) {
		return apperrors.NewValidationError("Invalid face value range. Both must be > 0 and min ≤ max.")
	}
	return nil
}

func parseStatus(status string) (domain.BondStatus, error) {
	st, ok := domain.ParseBondStatus(status)
	if !ok {
		return "", apperrors.NewValidationError(fmt.Sprintf("Invalid status %q. Allowed values: Active, Matured, Defaulted.", status))
	}
	return st, nil
}
