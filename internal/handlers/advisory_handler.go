package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agrovoice/kisanbhai/internal/domains/advisory"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
)

// AdvisoryHandler exposes the one-shot advisory operations
type AdvisoryHandler struct {
	advisoryService advisory.AdvisoryService
	profileService  profile.ProfileService
	logger          *Logger.Logger
}

func NewAdvisoryHandler(
	advisoryService advisory.AdvisoryService,
	profileService profile.ProfileService,
	logger *Logger.Logger,
) *AdvisoryHandler {
	return &AdvisoryHandler{
		advisoryService: advisoryService,
		profileService:  profileService,
		logger:          logger,
	}
}

// DiseaseRequest is the request body for disease analysis
type DiseaseRequest struct {
	Image string `json:"image" binding:"required"`
}

// FertilizerRequest is the request body for fertilizer guidance
type FertilizerRequest struct {
	Crop  string `json:"crop" binding:"required" example:"Wheat"`
	Soil  string `json:"soil" example:"Alluvial"`
	Stage string `json:"stage" example:"Flowering"`
}

// IrrigationRequest is the request body for irrigation guidance
type IrrigationRequest struct {
	Crop     string `json:"crop" binding:"required" example:"Rice (Paddy)"`
	Moisture int    `json:"moisture" example:"42"`
	Rain     int    `json:"rain" example:"60"`
}

// CropsRequest is the request body for crop recommendations
type CropsRequest struct {
	Season string `json:"season" example:"Rabi"`
	Soil   string `json:"soil" example:"Alluvial"`
}

// profileContext loads location and language for the caller.
func (h *AdvisoryHandler) profileContext(c *gin.Context) (*profile.Profile, bool) {
	info, ok := ExtractProfileInfo(c)
	if !ok {
		return nil, false
	}

	prof, err := h.profileService.GetProfileModel(c.Request.Context(), info.ProfileID.String())
	if err != nil {
		if err == profile.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		} else {
			h.logger.Errorf("profile lookup error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return nil, false
	}
	return prof, true
}

func (h *AdvisoryHandler) fail(c *gin.Context, op string, err error) {
	h.logger.Errorf("%s error: %v", op, err)
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Advisory backend unavailable"})
}

// AnalyzeDisease diagnoses a crop photo
// @Summary Analyze crop disease
// @Description Diagnose a crop disease from a photo, replying in the profile language
// @Tags Advisory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DiseaseRequest true "Base64 or data-URL crop photo"
// @Success 200 {object} DiseaseResponse "Disease report"
// @Failure 400 {object} ErrorResponse "Missing image"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /advisory/disease [post]
func (h *AdvisoryHandler) AnalyzeDisease(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	var req DiseaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Image is required", Details: err.Error()})
		return
	}

	report, err := h.advisoryService.AnalyzeDisease(c.Request.Context(), req.Image, prof.Lang())
	if err != nil {
		h.fail(c, "disease analysis", err)
		return
	}

	c.JSON(http.StatusOK, DiseaseResponse{Report: *report})
}

// GetWeather returns current conditions and a 5 day forecast
// @Summary Get weather report
// @Description Weather for the profile's location, cached briefly per location and language
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Success 200 {object} WeatherResponse "Weather report"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /weather [get]
func (h *AdvisoryHandler) GetWeather(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	weather, err := h.advisoryService.GetWeather(c.Request.Context(), prof.Location, prof.Lang())
	if err != nil {
		h.fail(c, "weather", err)
		return
	}

	c.JSON(http.StatusOK, WeatherResponse{Weather: *weather})
}

// GetProactiveAlerts returns time-sensitive farm alerts
// @Summary Get proactive alerts
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProactiveAlertsResponse "Proactive alerts"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /weather/proactive [get]
func (h *AdvisoryHandler) GetProactiveAlerts(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	alerts, err := h.advisoryService.GetProactiveAlerts(c.Request.Context(), prof.Location, prof.Lang())
	if err != nil {
		h.fail(c, "proactive alerts", err)
		return
	}

	c.JSON(http.StatusOK, ProactiveAlertsResponse{Alerts: alerts})
}

// CheckRain reports whether rain is expected in the next 48 hours
// @Summary Check upcoming rain
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RainCheckResponse "Rain check"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /weather/rain [get]
func (h *AdvisoryHandler) CheckRain(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	rain, err := h.advisoryService.CheckUpcomingRain(c.Request.Context(), prof.Location, prof.Lang())
	if err != nil {
		h.fail(c, "rain check", err)
		return
	}

	c.JSON(http.StatusOK, RainCheckResponse{Rain: *rain})
}

// GetWeatherAlerts returns severe weather alerts
// @Summary Get weather alerts
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Success 200 {object} WeatherAlertsResponse "Weather alerts"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /weather/alerts [get]
func (h *AdvisoryHandler) GetWeatherAlerts(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	alerts, err := h.advisoryService.GetWeatherAlerts(c.Request.Context(), prof.Location, prof.Lang())
	if err != nil {
		h.fail(c, "weather alerts", err)
		return
	}

	c.JSON(http.StatusOK, WeatherAlertsResponse{Alerts: alerts})
}

// GetWeatherAdvice returns farming tips for given conditions
// @Summary Get weather-based farming advice
// @Tags Weather
// @Produce json
// @Security BearerAuth
// @Param temp query int false "Temperature, celsius" default(28)
// @Param humidity query int false "Relative humidity, percent" default(65)
// @Param condition query string false "Sky condition" default(Sunny)
// @Success 200 {object} WeatherAdviceResponse "Farming tips"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /weather/advice [get]
func (h *AdvisoryHandler) GetWeatherAdvice(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	temp, _ := strconv.Atoi(c.DefaultQuery("temp", "28"))
	humidity, _ := strconv.Atoi(c.DefaultQuery("humidity", "65"))
	condition := c.DefaultQuery("condition", "Sunny")

	tips, err := h.advisoryService.GetWeatherAdvice(c.Request.Context(), temp, humidity, condition, prof.Lang())
	if err != nil {
		h.fail(c, "weather advice", err)
		return
	}

	c.JSON(http.StatusOK, WeatherAdviceResponse{Tips: tips})
}

// GetFertilizerAdvice returns a fertilizer plan
// @Summary Get fertilizer guidance
// @Tags Advisory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body FertilizerRequest true "Crop, soil and growth stage"
// @Success 200 {object} FertilizerResponse "Fertilizer plan"
// @Failure 400 {object} ErrorResponse "Missing crop"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /advisory/fertilizer [post]
func (h *AdvisoryHandler) GetFertilizerAdvice(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	var req FertilizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Crop is required", Details: err.Error()})
		return
	}
	if req.Soil == "" {
		req.Soil = prof.SoilType
	}

	advice, err := h.advisoryService.GetFertilizerAdvice(c.Request.Context(), req.Crop, req.Soil, req.Stage, prof.Lang())
	if err != nil {
		h.fail(c, "fertilizer advice", err)
		return
	}

	c.JSON(http.StatusOK, FertilizerResponse{Advice: *advice})
}

// GetIrrigationAdvice returns an irrigation plan
// @Summary Get irrigation guidance
// @Tags Advisory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body IrrigationRequest true "Crop with soil moisture and rain chance readings"
// @Success 200 {object} IrrigationResponse "Irrigation plan"
// @Failure 400 {object} ErrorResponse "Missing crop"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /advisory/irrigation [post]
func (h *AdvisoryHandler) GetIrrigationAdvice(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	var req IrrigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Crop is required", Details: err.Error()})
		return
	}

	advice, err := h.advisoryService.GetIrrigationAdvice(c.Request.Context(), req.Crop, req.Moisture, req.Rain, prof.Lang())
	if err != nil {
		h.fail(c, "irrigation advice", err)
		return
	}

	c.JSON(http.StatusOK, IrrigationResponse{Advice: *advice})
}

// GetSchemes lists relevant government schemes
// @Summary Get government schemes
// @Tags Advisory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SchemesResponse "Schemes"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /advisory/schemes [get]
func (h *AdvisoryHandler) GetSchemes(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	schemes, err := h.advisoryService.GetSchemes(c.Request.Context(), prof.Lang())
	if err != nil {
		h.fail(c, "schemes", err)
		return
	}

	c.JSON(http.StatusOK, SchemesResponse{Schemes: schemes})
}

// GetCropRecommendations suggests crops for the coming season
// @Summary Get crop recommendations
// @Tags Advisory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CropsRequest true "Season and soil type"
// @Success 200 {object} CropsResponse "Recommended crops"
// @Failure 502 {object} ErrorResponse "Advisory backend unavailable"
// @Router /advisory/crops [post]
func (h *AdvisoryHandler) GetCropRecommendations(c *gin.Context) {
	prof, ok := h.profileContext(c)
	if !ok {
		return
	}

	var req CropsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request data", Details: err.Error()})
		return
	}
	if req.Soil == "" {
		req.Soil = prof.SoilType
	}

	recs, err := h.advisoryService.GetCropRecommendations(c.Request.Context(), prof.Location, req.Season, req.Soil, prof.Lang())
	if err != nil {
		h.fail(c, "crop recommendations", err)
		return
	}

	c.JSON(http.StatusOK, CropsResponse{Recommendations: *recs})
}

// RegisterRoutes registers advisory and weather routes
func (h *AdvisoryHandler) RegisterRoutes(router gin.IRouter, authMiddleware gin.HandlerFunc) {
	adv := router.Group("/advisory")
	adv.Use(authMiddleware)
	{
		adv.POST("/disease", h.AnalyzeDisease)
		adv.POST("/fertilizer", h.GetFertilizerAdvice)
		adv.POST("/irrigation", h.GetIrrigationAdvice)
		adv.GET("/schemes", h.GetSchemes)
		adv.POST("/crops", h.GetCropRecommendations)
	}

	weather := router.Group("/weather")
	weather.Use(authMiddleware)
	{
		weather.GET("", h.GetWeather)
		weather.GET("/proactive", h.GetProactiveAlerts)
		weather.GET("/rain", h.CheckRain)
		weather.GET("/alerts", h.GetWeatherAlerts)
		weather.GET("/advice", h.GetWeatherAdvice)
	}
}
