package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrovoice/kisanbhai/internal/domains/market"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
)

// MarketHandler handles mandi price HTTP requests
type MarketHandler struct {
	marketService market.MarketService
	logger        *Logger.Logger
}

func NewMarketHandler(marketService market.MarketService, logger *Logger.Logger) *MarketHandler {
	return &MarketHandler{
		marketService: marketService,
		logger:        logger,
	}
}

// GetQuotes returns current prices across selling channels
// @Summary Get crop price quotes
// @Description Current mandi, FPO and private trader prices per quintal
// @Tags Market
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MarketQuotesResponse "Price quotes"
// @Router /market/quotes [get]
func (h *MarketHandler) GetQuotes(c *gin.Context) {
	quotes, err := h.marketService.Quotes(c.Request.Context())
	if err != nil {
		h.logger.Errorf("market quotes error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, MarketQuotesResponse{Quotes: quotes})
}

// GetTrend returns the weekly price trend
// @Summary Get weekly price trend
// @Tags Market
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MarketTrendResponse "Weekly trend points"
// @Router /market/trend [get]
func (h *MarketHandler) GetTrend(c *gin.Context) {
	trend, err := h.marketService.Trend(c.Request.Context())
	if err != nil {
		h.logger.Errorf("market trend error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, MarketTrendResponse{Trend: trend})
}

// GetAdvice returns selling guidance for a crop
// @Summary Get selling advice
// @Tags Market
// @Produce json
// @Security BearerAuth
// @Param crop query string true "Crop name" example(Wheat)
// @Success 200 {object} MarketAdviceResponse "Selling advice"
// @Failure 404 {object} ErrorResponse "Unknown crop"
// @Router /market/advice [get]
func (h *MarketHandler) GetAdvice(c *gin.Context) {
	crop := c.Query("crop")
	if crop == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Crop is required"})
		return
	}

	advice, err := h.marketService.Advice(c.Request.Context(), crop)
	if err != nil {
		if err == market.ErrUnknownCrop {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown crop"})
			return
		}
		h.logger.Errorf("market advice error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, MarketAdviceResponse{Advice: *advice})
}

// RegisterRoutes registers market routes
func (h *MarketHandler) RegisterRoutes(router gin.IRouter, authMiddleware gin.HandlerFunc) {
	mkt := router.Group("/market")
	mkt.Use(authMiddleware)
	{
		mkt.GET("/quotes", h.GetQuotes)
		mkt.GET("/trend", h.GetTrend)
		mkt.GET("/advice", h.GetAdvice)
	}
}
