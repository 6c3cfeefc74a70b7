package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/SscSPs/bond_catalog/internal/core/domain"
	"github.com/SscSPs/bond_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// respondWithError maps err to its status code and writes {"error": message}.
// Server-side failures are logged at Error level, client errors at Warn.
func respondWithError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	} else {
		logger.Warn("Rejected request to "+action, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": apperrors.Message(err)})
}

// badRequest aborts with a 400 for input the handler could not even parse.
func badRequest(c *gin.Context, message string) {
	respondWithError(c, apperrors.NewValidationError(message), "parse request")
}

func parseBondID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		badRequest(c, "Invalid bond ID: "+raw)
		return 0, false
	}
	return id, true
}

// parseDate parses a required YYYY-MM-DD value named name.
func parseDate(c *gin.Context, name, raw string) (time.Time, bool) {
	if raw == "" {
		badRequest(c, name+" is required (format YYYY-MM-DD).")
		return time.Time{}, false
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		badRequest(c, "Invalid "+name+": "+raw+" (expected YYYY-MM-DD).")
		return time.Time{}, false
	}
	return t, true
}

// parseDecimal parses a required decimal value named name.
func parseDecimal(c *gin.Context, name, raw string) (decimal.Decimal, bool) {
	if raw == "" {
		badRequest(c, name+" is required.")
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		badRequest(c, "Invalid "+name+": "+raw)
		return decimal.Zero, false
	}
	return d, true
}
