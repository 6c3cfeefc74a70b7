package sqlite

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
)

// modernc reports constraint failures only through the message text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE")
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// bondWriteError maps a failed INSERT or UPDATE on bonds to an AppError.
func bondWriteError(err error, action string) error {
	if isUniqueViolation(err) {
		return apperrors.NewConflictError("bond with the same name, issuer and maturity date already exists")
	}
	return apperrors.NewAppError(500, "failed to "+action+" bond", err)
}
