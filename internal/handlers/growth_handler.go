package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrovoice/kisanbhai/internal/domains/growth"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
)

// GrowthHandler handles growth tracking HTTP requests
type GrowthHandler struct {
	growthService  growth.GrowthService
	profileService profile.ProfileService
	logger         *Logger.Logger
}

func NewGrowthHandler(
	growthService growth.GrowthService,
	profileService profile.ProfileService,
	logger *Logger.Logger,
) *GrowthHandler {
	return &GrowthHandler{
		growthService:  growthService,
		profileService: profileService,
		logger:         logger,
	}
}

// ScanRequest is the request body for a growth scan
type ScanRequest struct {
	Image    string `json:"image" binding:"required"`
	CropType string `json:"cropType" example:"Wheat"`
}

// RecordScan analyzes a crop photo and appends it to the timeline
// @Summary Record a growth scan
// @Description Analyze a crop photo and store the stage assessment on the profile's timeline
// @Tags Growth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ScanRequest true "Crop photo and type"
// @Success 201 {object} GrowthScanResponse "Stored scan"
// @Failure 400 {object} ErrorResponse "Missing image"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /growth/scan [post]
func (h *GrowthHandler) RecordScan(c *gin.Context) {
	info, ok := ExtractProfileInfo(c)
	if !ok {
		return
	}

	prof, err := h.profileService.GetProfileModel(c.Request.Context(), info.ProfileID.String())
	if err != nil {
		if err == profile.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		} else {
			h.logger.Errorf("profile lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image is required", Details: err.Error()})
		return
	}

	record, err := h.growthService.RecordScan(c.Request.Context(), prof, req.Image, req.CropType)
	if err != nil {
		switch err {
		case growth.ErrMissingImage:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image is required"})
		default:
			h.logger.Errorf("growth scan error: %v", err)
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Advisory backend unavailable"})
		}
		return
	}

	c.JSON(http.StatusCreated, GrowthScanResponse{Record: *record})
}

// GetHistory returns the growth scan timeline
// @Summary Get growth history
// @Description Get the profile's growth scans, most recent first
// @Tags Growth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} GrowthHistoryResponse "Growth records"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /growth/history [get]
func (h *GrowthHandler) GetHistory(c *gin.Context) {
	info, ok := ExtractProfileInfo(c)
	if !ok {
		return
	}

	records, err := h.growthService.History(c.Request.Context(), info.ProfileID)
	if err != nil {
		h.logger.Errorf("growth history error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, GrowthHistoryResponse{Records: records})
}

// RegisterRoutes registers growth routes
func (h *GrowthHandler) RegisterRoutes(router gin.IRouter, authMiddleware gin.HandlerFunc) {
	gr := router.Group("/growth")
	gr.Use(authMiddleware)
	{
		gr.POST("/scan", h.RecordScan)
		gr.GET("/history", h.GetHistory)
	}
}
