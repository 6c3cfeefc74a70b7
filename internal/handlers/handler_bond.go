package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"github.com/SscSPs/bond_catalog/internal/dto"
	"github.com/SscSPs/bond_catalog/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bondHandler handles HTTP requests related to bonds.
type bondHandler struct {
	bondService    portssvc.BondSvcFacade
	summaryService portssvc.BondSummarySvc
}

func newBondHandler(bs portssvc.BondSvcFacade, ss portssvc.BondSummarySvc) *bondHandler {
	return &bondHandler{bondService: bs, summaryService: ss}
}

// RegisterBondRoutes registers the bond CRUD, search and summary routes.
func RegisterBondRoutes(rg *gin.RouterGroup, bondService portssvc.BondSvcFacade, summaryService portssvc.BondSummarySvc) {
	registerValidators()
	h := newBondHandler(bondService, summaryService)

	bonds := rg.Group("/bonds")
	{
		bonds.GET("", h.listBonds)
		bonds.POST("", h.createBond)
		bonds.GET("/summary", h.getSummary)
		bonds.GET("/status", h.findByStatus)
		bonds.GET("/issued-between", h.findByIssueDateBetween)
		bonds.GET("/face-value-between", h.findByFaceValueBetween)
		bonds.GET("/issuer/:issuer", h.findByIssuer)
		bonds.GET("/rating/:rating", h.findByRating)
		bonds.GET("/coupon-rate/:min", h.findByCouponRateAtLeast)
		bonds.GET("/coupon-rate/:min/:max", h.findByCouponRateRange)
		bonds.GET("/maturing-between/:start/:end", h.findByMaturityBetween)
		bonds.GET("/maturity-date/:date", h.findByMaturityAfter)
		bonds.GET("/issue-date/:date", h.findByIssueDateAfter)
		bonds.GET("/face-value/:value", h.findByFaceValueAtLeast)
		bonds.GET("/:id", h.getBondByID)
		bonds.PUT("/:id", h.updateBond)
		bonds.DELETE("/:id", h.deleteBond)
	}
}

// listBonds godoc
// @Summary List all bonds
// @Description Retrieves every bond in the catalog with its current status
// @Tags bonds
// @Produce  json
// @Success 200 {array} dto.BondResponse
// @Failure 500 {object} map[string]string "Failed to list bonds"
// @Router /bonds [get]
func (h *bondHandler) listBonds(c *gin.Context) {
	bonds, err := h.bondService.ListBonds(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "list bonds")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBondResponse(bonds))
}

// getBondByID godoc
// @Summary Get a bond by ID
// @Tags bonds
// @Produce  json
// @Param   id path int true "Bond ID"
// @Success 200 {object} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid bond ID"
// @Failure 404 {object} map[string]string "Bond not found"
// @Router /bonds/{id} [get]
func (h *bondHandler) getBondByID(c *gin.Context) {
	id, ok := parseBondID(c)
	if !ok {
		return
	}
	bond, err := h.bondService.GetBondByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err, "get bond")
		return
	}
	c.JSON(http.StatusOK, dto.ToBondResponse(bond))
}

// createBond godoc
// @Summary Create a new bond
// @Description Adds a bond to the catalog. The bondID is assigned by the store and must be omitted.
// @Tags bonds
// @Accept  json
// @Produce  json
// @Param   bond body dto.BondRequest true "Bond details"
// @Success 201 {object} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Bond already exists"
// @Router /bonds [post]
func (h *bondHandler) createBond(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	bond, err := h.bondService.CreateBond(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "create bond")
		return
	}

	logger.Info("Bond created", slog.Int64("bond_id", bond.BondID))
	c.JSON(http.StatusCreated, dto.ToBondResponse(bond))
}

// updateBond godoc
// @Summary Replace a bond
// @Description Overwrites every field of an existing bond. A bondID in the body must match the path.
// @Tags bonds
// @Accept  json
// @Produce  json
// @Param   id path int true "Bond ID"
// @Param   bond body dto.BondRequest true "Bond details"
// @Success 200 {object} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bond not found"
// @Failure 409 {object} map[string]string "Bond already exists"
// @Router /bonds/{id} [put]
func (h *bondHandler) updateBond(c *gin.Context) {
	id, ok := parseBondID(c)
	if !ok {
		return
	}
	var req dto.BondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	bond, err := h.bondService.UpdateBond(c.Request.Context(), id, req)
	if err != nil {
		respondWithError(c, err, "update bond")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Bond updated", slog.Int64("bond_id", id))
	c.JSON(http.StatusOK, dto.ToBondResponse(bond))
}

// deleteBond godoc
// @Summary Delete a bond
// @Tags bonds
// @Produce  json
// @Param   id path int true "Bond ID"
// @Success 200 {object} map[string]string "Bond deleted"
// @Failure 404 {object} map[string]string "Bond not found"
// @Router /bonds/{id} [delete]
func (h *bondHandler) deleteBond(c *gin.Context) {
	id, ok := parseBondID(c)
	if !ok {
		return
	}
	if err := h.bondService.DeleteBond(c.Request.Context(), id); err != nil {
		respondWithError(c, err, "delete bond")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Bond deleted", slog.Int64("bond_id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Bond deleted successfully."})
}

// respondWithBonds writes a filter result; an empty result is 200 with [].
func respondWithBonds(c *gin.Context, action string, bonds []dto.BondResponse, err error) {
	if err != nil {
		respondWithError(c, err, action)
		return
	}
	c.JSON(http.StatusOK, bonds)
}

// findByIssuer godoc
// @Summary Search bonds by issuer
// @Description Case-insensitive substring match on the issuer name
// @Tags bonds
// @Produce  json
// @Param   issuer path string true "Issuer text"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Blank issuer"
// @Router /bonds/issuer/{issuer} [get]
func (h *bondHandler) findByIssuer(c *gin.Context) {
	bonds, err := h.bondService.FindByIssuer(c.Request.Context(), c.Param("issuer"))
	respondWithBonds(c, "search bonds by issuer", dto.ToListBondResponse(bonds), err)
}

// findByRating godoc
// @Summary Find bonds by rating
// @Tags bonds
// @Produce  json
// @Param   rating path string true "Exact rating code"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Blank rating"
// @Router /bonds/rating/{rating} [get]
func (h *bondHandler) findByRating(c *gin.Context) {
	bonds, err := h.bondService.FindByRating(c.Request.Context(), c.Param("rating"))
	respondWithBonds(c, "search bonds by rating", dto.ToListBondResponse(bonds), err)
}

// findByCouponRateAtLeast godoc
// @Summary Find bonds with a coupon rate at or above a threshold
// @Tags bonds
// @Produce  json
// @Param   min path string true "Minimum coupon rate (positive)"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid rate"
// @Router /bonds/coupon-rate/{min} [get]
func (h *bondHandler) findByCouponRateAtLeast(c *gin.Context) {
	minRate, ok := parseDecimal(c, "coupon rate", c.Param("min"))
	if !ok {
		return
	}
	bonds, err := h.bondService.FindByCouponRateAtLeast(c.Request.Context(), minRate)
	respondWithBonds(c, "search bonds by coupon rate", dto.ToListBondResponse(bonds), err)
}

// findByCouponRateRange godoc
// @Summary Find bonds with a coupon rate in [min, max]
// @Tags bonds
// @Produce  json
// @Param   min path string true "Minimum coupon rate"
// @Param   max path string true "Maximum coupon rate"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Router /bonds/coupon-rate/{min}/{max} [get]
func (h *bondHandler) findByCouponRateRange(c *gin.Context) {
	minRate, ok := parseDecimal(c, "minimum coupon rate", c.Param("min"))
	if !ok {
		return
	}
	maxRate, ok := parseDecimal(c, "maximum coupon rate", c.Param("max"))
	if !ok {
		return
	}
	bonds, err := h.bondService.FindByCouponRateRange(c.Request.Context(), minRate, maxRate)
	respondWithBonds(c, "search bonds by coupon rate range", dto.ToListBondResponse(bonds), err)
}

// findByMaturityBetween godoc
// @Summary Find bonds maturing in [start, end]
// @Tags bonds
// @Produce  json
// @Param   start path string true "Start date (YYYY-MM-DD)"
// @Param   end path string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid dates"
// @Router /bonds/maturing-between/{start}/{end} [get]
func (h *bondHandler) findByMaturityBetween(c *gin.Context) {
	start, ok := parseDate(c, "start date", c.Param("start"))
	if !ok {
		return
	}
	end, ok := parseDate(c, "end date", c.Param("end"))
	if !ok {
		return
	}
	bonds, err := h.bondService.FindByMaturityBetween(c.Request.Context(), start, end)
	respondWithBonds(c, "search bonds by maturity range", dto.ToListBondResponse(bonds), err)
}

// findByMaturityAfter godoc
// @Summary Find bonds maturing strictly after a date
// @Description The date may not lie in the past
// @Tags bonds
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /bonds/maturity-date/{date} [get]
func (h *bondHandler) findByMaturityAfter(c *gin.Context) {
	date, ok := parseDate(c, "maturity date", c.Param("date"))
	if !ok {
		return
	}
	bonds, err := h.bondService.FindByMaturityAfter(c.Request.Context(), date)
	respondWithBonds(c, "search bonds by maturity date", dto.ToListBondResponse(bonds), err)
}

// findByIssueDateBetween godoc
// @Summary Find bonds issued in [start-date, end-date]
// @Tags bonds
// @Produce  json
// @Param   start-date query string true "Start date (YYYY-MM-DD)"
// @Param   end-date query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid dates"
// @Router /bonds/issued-between [get]
func (h *bondHandler) findByIssueDateBetween(c *gin.Context) {
	start, ok := parseDate(c, "start-date", c.Query("start-date"))
	if !ok {
		return
	}
	end, ok := parseDate(c, "end-date", c.Query("end-date"))
	if !ok {
		return
	}
	bonds, err := h.bondService.FindByIssueDateBetween(c.Request.Context(), start, end)
	respondWithBonds(c, "search bonds by issue range", dto.ToListBondResponse(bonds), err)
}

// findByIssueDateAfter godoc
// @Summary Find bonds issued strictly after a date
// @Description The date may not lie in the future
// @Tags bonds
// @Produce  json
// @Param   date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /bonds/issue-date/{date} [get]
func (h *bondHandler) findByIssueDateAfter(c *gin.Context) {
	date, ok := parseDate(c, "issue date", c.Param("date"))
	if !ok {
		return
	}
	bonds, err := h.bondService.FindByIssueDateAfter(c.Request.Context(), date)
	respondWithBonds(c, "search bonds by issue date", dto.ToListBondResponse(bonds), err)
}

// findByFaceValueAtLeast godoc
// @Summary Find bonds with a face value at or above a threshold
// @Tags bonds
// @Produce  json
// @Param   value path string true "Minimum face value (positive)"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid value"
// @Router /bonds/face-value/{value} [get]
func (h *bondHandler) findByFaceValueAtLeast(c *gin.Context) {
	minValue, ok := parseDecimal(c, "face value", c.Param("value"))
	if !ok {
		return
	}
	bonds, err := h.bondService.FindByFaceValueAtLeast(c.Request.Context(), minValue)
	respondWithBonds(c, "search bonds by face value", dto.ToListBondResponse(bonds), err)
}

// findByFaceValueBetween godoc
// @Summary Find bonds with a face value in [min-value, max-value]
// @Tags bonds
// @Produce  json
// @Param   min-value query string true "Minimum face value"
// @Param   max-value query string true "Maximum face value"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid range"
// @Router /bonds/face-value-between [get]
func (h *bondHandler) findByFaceValueBetween(c *gin.Context) {
	minValue, ok := parseDecimal(c, "min-value", c.Query("min-value"))
	if !ok {
		return
	}
	maxValue, ok := parseDecimal(c, "max-value", c.Query("max-value"))
	if !ok {
		return
	}
	bonds, err := h.bondService.FindByFaceValueBetween(c.Request.Context(), minValue, maxValue)
	respondWithBonds(c, "search bonds by face value range", dto.ToListBondResponse(bonds), err)
}

// findByStatus godoc
// @Summary Find bonds by status
// @Description Status is Active, Matured or Defaulted, in any letter case. An empty result sets X-Message.
// @Tags bonds
// @Produce  json
// @Param   status query string true "Bond status"
// @Success 200 {array} dto.BondResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Router /bonds/status [get]
func (h *bondHandler) findByStatus(c *gin.Context) {
	status := c.Query("status")
	bonds, err := h.bondService.FindByStatus(c.Request.Context(), status)
	if err != nil {
		respondWithError(c, err, "search bonds by status")
		return
	}
	if len(bonds) == 0 {
		c.Header("X-Message", "No bonds found with status: "+status)
	}
	c.JSON(http.StatusOK, dto.ToListBondResponse(bonds))
}

// getSummary godoc
// @Summary Catalog summary
// @Description Totals, averages, extremes and the maturities due in the next 90 days
// @Tags bonds
// @Produce  json
// @Success 200 {object} dto.BondSummaryResponse
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /bonds/summary [get]
func (h *bondHandler) getSummary(c *gin.Context) {
	summary, err := h.summaryService.GetSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "compute bond summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToBondSummaryResponse(summary))
}
