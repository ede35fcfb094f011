package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/dto"
	"github.com/SscSPs/currency_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// converterHandler handles HTTP requests of the converter view.
type converterHandler struct {
	converterService portssvc.ConverterSvcFacade
}

// newConverterHandler creates a new converterHandler.
func newConverterHandler(cs portssvc.ConverterSvcFacade) *converterHandler {
	return &converterHandler{
		converterService: cs,
	}
}

// RegisterConverterRoutes registers routes related to the converter view.
func RegisterConverterRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvcFacade) {
	h := newConverterHandler(converterService)

	converter := rg.Group("/converter")
	{
		converter.GET("", h.getView)
		converter.PUT("/date", h.setDate)
		converter.PUT("/locale", h.setLocale)
		converter.POST("/locale/toggle", h.toggleLocale)
		converter.PUT("/amount", h.setAmount)
		converter.PUT("/currencies", h.setCurrencies)
		converter.POST("/convert", h.convert)
		converter.DELETE("/alert", h.dismissAlert)
	}
}

// getView godoc
// @Summary Get the converter view
// @Description Returns the rate table, alert, form inputs and conversion result
// @Tags converter
// @Produce  json
// @Success 200 {object} dto.ConverterResponse
// @Router /converter [get]
func (h *converterHandler) getView(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToConverterResponse(h.converterService.Snapshot()))
}

// setDate godoc
// @Summary Change the rate table date
// @Description Cancels the outstanding fetch and loads the table for the given date (not after yesterday)
// @Tags converter
// @Accept  json
// @Produce  json
// @Param   date body dto.SetDateRequest true "Date in YYYY-MM-DD format"
// @Success 200 {object} dto.ConverterResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /converter/date [put]
func (h *converterHandler) setDate(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetDate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := domain.ParseDateKey(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.converterService.SetDate(date); err != nil {
		h.respondError(c, err, "Failed to change date")
		return
	}

	logger.Info("Converter date changed", slog.String("date", date.String()))
	c.JSON(http.StatusOK, dto.ToConverterResponse(h.converterService.Snapshot()))
}

// setLocale godoc
// @Summary Choose the locale
// @Tags converter
// @Accept  json
// @Produce  json
// @Param   locale body dto.SetLocaleRequest true "Locale (en or pl)"
// @Success 200 {object} dto.ConverterResponse
// @Failure 400 {object} map[string]string "Unsupported locale"
// @Router /converter/locale [put]
func (h *converterHandler) setLocale(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SetLocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetLocale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.converterService.SetLocale(c.Request.Context(), domain.Locale(req.Locale)); err != nil {
		h.respondError(c, err, "Failed to change locale")
		return
	}
	c.JSON(http.StatusOK, dto.ToConverterResponse(h.converterService.Snapshot()))
}

// toggleLocale godoc
// @Summary Toggle the locale between en and pl
// @Tags converter
// @Produce  json
// @Success 200 {object} dto.ConverterResponse
// @Router /converter/locale/toggle [post]
func (h *converterHandler) toggleLocale(c *gin.Context) {
	locale, err := h.converterService.ToggleLocale(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to toggle locale")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Converter locale toggled", slog.String("locale", string(locale)))
	c.JSON(http.StatusOK, dto.ToConverterResponse(h.converterService.Snapshot()))
}

// setAmount godoc
// @Summary Update the amount field
// @Tags converter
// @Accept  json
// @Produce  json
// @Param   amount body dto.SetAmountRequest true "Raw amount text"
// @Success 200 {object} dto.ConverterResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Router /converter/amount [put]
func (h *converterHandler) setAmount(c *gin.Context) {
	var req dto.SetAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind JSON for SetAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.converterService.SetAmount(req.Amount)
	c.JSON(http.StatusOK, dto.ToConverterResponse(h.converterService.Snapshot()))
}

// setCurrencies godoc
// @Summary Select the currency pair
// @Tags converter
// @Accept  json
// @Produce  json
// @Param   currencies body dto.SetCurrenciesRequest true "From and to currency codes"
// @Success 200 {object} dto.ConverterResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Router /converter/currencies [put]
func (h *converterHandler) setCurrencies(c *gin.Context) {
	var req dto.SetCurrenciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind JSON for SetCurrencies", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.converterService.SetCurrencies(req.FromCurrencyCode, req.ToCurrencyCode)
	c.JSON(http.StatusOK, dto.ToConverterResponse(h.converterService.Snapshot()))
}

// convert godoc
// @Summary Convert the current amount
// @Description Computes amount × fromRate / toRate. Input problems are reported in alertMessage as well as the status code.
// @Tags converter
// @Produce  json
// @Success 200 {object} dto.ConverterResponse
// @Failure 422 {object} dto.ConverterResponse "Amount empty or rates not found"
// @Router /converter/convert [post]
func (h *converterHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	if _, err := h.converterService.Convert(); err != nil {
		if errors.Is(err, apperrors.ErrEmptyOrInvalidAmount) || errors.Is(err, apperrors.ErrRatesNotFound) {
			logger.Info("Conversion rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, dto.ToConverterResponse(h.converterService.Snapshot()))
			return
		}
		h.respondError(c, err, "Failed to convert")
		return
	}
	c.JSON(http.StatusOK, dto.ToConverterResponse(h.converterService.Snapshot()))
}

// dismissAlert godoc
// @Summary Dismiss the visible alert
// @Tags converter
// @Produce  json
// @Success 200 {object} dto.ConverterResponse
// @Router /converter/alert [delete]
func (h *converterHandler) dismissAlert(c *gin.Context) {
	h.converterService.DismissAlert()
	c.JSON(http.StatusOK, dto.ToConverterResponse(h.converterService.Snapshot()))
}

func (h *converterHandler) respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromContext(c)
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": msg})
		return
	}
	logger.Warn(msg, slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
