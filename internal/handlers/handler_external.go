package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bond_catalog/internal/core/ports/services"
	"github.com/SscSPs/bond_catalog/internal/dto"
	"github.com/gin-gonic/gin"
)

// externalHandler serves the routes backed by the FX and World Bank sources.
type externalHandler struct {
	fxService    portssvc.ExchangeRateSvcFacade
	macroService portssvc.MacroIndicatorSvc
}

func newExternalHandler(fx portssvc.ExchangeRateSvcFacade, macro portssvc.MacroIndicatorSvc) *externalHandler {
	return &externalHandler{fxService: fx, macroService: macro}
}

// RegisterExternalRoutes registers the enrichment routes. Extra handlers (rate limiting) run first.
func RegisterExternalRoutes(rg *gin.RouterGroup, fx portssvc.ExchangeRateSvcFacade, macro portssvc.MacroIndicatorSvc, extra ...gin.HandlerFunc) {
	h := newExternalHandler(fx, macro)

	external := rg.Group("/external", extra...)
	{
		external.GET("/fx", h.getRate)
		external.GET("/bonds/:id/value-in", h.valueBondIn)
		external.GET("/macro/:country/gdp", h.getGDP)
		external.GET("/macro/:country/inflation", h.getInflation)
	}
}

// getRate godoc
// @Summary Get an exchange rate
// @Description Units of `to` bought by one unit of `from`. Rates are cached for a few minutes.
// @Tags external
// @Produce  json
// @Param   from query string true "Base currency code" example(USD)
// @Param   to query string true "Target currency code" example(NGN)
// @Success 200 {object} dto.FXRateResponse
// @Failure 400 {object} map[string]string "Missing currency"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 502 {object} map[string]string "Exchange rate source failed"
// @Router /external/fx [get]
func (h *externalHandler) getRate(c *gin.Context) {
	rate, err := h.fxService.GetRate(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondWithError(c, err, "get exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToFXRateResponse(rate))
}

// valueBondIn godoc
// @Summary Value a bond in another currency
// @Description Converts the bond's face value into the requested currency at the current rate
// @Tags external
// @Produce  json
// @Param   id path int true "Bond ID"
// @Param   currency query string true "Target currency code" example(EUR)
// @Success 200 {object} dto.BondValuationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bond not found"
// @Failure 502 {object} map[string]string "Exchange rate source failed"
// @Router /external/bonds/{id}/value-in [get]
func (h *externalHandler) valueBondIn(c *gin.Context) {
	id, ok := parseBondID(c)
	if !ok {
		return
	}
	valuation, err := h.fxService.ValueBondIn(c.Request.Context(), id, c.Query("currency"))
	if err != nil {
		respondWithError(c, err, "value bond")
		return
	}
	c.JSON(http.StatusOK, dto.ToBondValuationResponse(valuation))
}

// getGDP godoc
// @Summary Country GDP
// @Description GDP in current US$ for a year (default 2022). value is null when no data exists.
// @Tags external
// @Produce  json
// @Param   country path string true "ISO country code" example(NG)
// @Param   year query string false "Four-digit year" example(2022)
// @Success 200 {object} dto.MacroIndicatorResponse
// @Failure 400 {object} map[string]string "Invalid country or year"
// @Failure 502 {object} map[string]string "World Bank source failed"
// @Router /external/macro/{country}/gdp [get]
func (h *externalHandler) getGDP(c *gin.Context) {
	indicator, err := h.macroService.GDP(c.Request.Context(), c.Param("country"), c.Query("year"))
	if err != nil {
		respondWithError(c, err, "get GDP")
		return
	}
	c.JSON(http.StatusOK, dto.ToMacroIndicatorResponse(indicator))
}

// getInflation godoc
// @Summary Country inflation
// @Description Consumer price inflation (annual %) for a year (default 2022). value is null when no data exists.
// @Tags external
// @Produce  json
// @Param   country path string true "ISO country code" example(NG)
// @Param   year query string false "Four-digit year" example(2022)
// @Success 200 {object} dto.MacroIndicatorResponse
// @Failure 400 {object} map[string]string "Invalid country or year"
// @Failure 502 {object} map[string]string "World Bank source failed"
// @Router /external/macro/{country}/inflation [get]
func (h *externalHandler) getInflation(c *gin.Context) {
	indicator, err := h.macroService.Inflation(c.Request.Context(), c.Param("country"), c.Query("year"))
	if err != nil {
		respondWithError(c, err, "get inflation")
		return
	}
	c.JSON(http.StatusOK, dto.ToMacroIndicatorResponse(indicator))
}
