package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/internal/domains/speech"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
)

// SpeechHandler exposes speech synthesis over HTTP
type SpeechHandler struct {
	speechService  speech.SpeechService
	profileService profile.ProfileService
	logger         *Logger.Logger
}

func NewSpeechHandler(
	speechService speech.SpeechService,
	profileService profile.ProfileService,
	logger *Logger.Logger,
) *SpeechHandler {
	return &SpeechHandler{
		speechService:  speechService,
		profileService: profileService,
		logger:         logger,
	}
}

// SpeakRequest is the request body for synthesis
type SpeakRequest struct {
	Text string `json:"text" binding:"required" example:"गेहूं की सिंचाई कल सुबह करें"`
}

// SpeakResponse carries the synthesized utterance
type SpeakResponse struct {
	Utterance *speech.Utterance `json:"utterance"`
	Stopped   bool              `json:"stopped"`
}

// Speak synthesizes text in the profile's language
// @Summary Speak text aloud
// @Description Synthesize the given text; calling again while speaking stops the current utterance instead
// @Tags Speech
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SpeakRequest true "Text to speak"
// @Success 200 {object} SpeakResponse "Utterance audio, or stopped flag"
// @Failure 400 {object} ErrorResponse "Missing text"
// @Failure 502 {object} ErrorResponse "Synthesis unavailable"
// @Router /speech/speak [post]
func (h *SpeechHandler) Speak(c *gin.Context) {
	info, ok := ExtractProfileInfo(c)
	if !ok {
		return
	}

	lang := "en"
	if prof, err := h.profileService.GetProfileModel(c.Request.Context(), info.ProfileID.String()); err == nil {
		lang = prof.Lang()
	}

	var req SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Text is required", Details: err.Error()})
		return
	}

	wasSpeaking := h.speechService.IsSpeaking()
	utt, err := h.speechService.Speak(c.Request.Context(), req.Text, lang)
	if err != nil {
		h.logger.Errorf("speech synthesis error: %v", err)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Synthesis unavailable"})
		return
	}

	c.JSON(http.StatusOK, SpeakResponse{
		Utterance: utt,
		Stopped:   wasSpeaking && utt == nil,
	})
}

// Stop halts the current utterance
// @Summary Stop speaking
// @Tags Speech
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse "Stopped"
// @Router /speech/stop [post]
func (h *SpeechHandler) Stop(c *gin.Context) {
	h.speechService.Stop()
	c.JSON(http.StatusOK, SuccessResponse{Message: "Stopped"})
}

// RegisterRoutes registers speech routes
func (h *SpeechHandler) RegisterRoutes(router gin.IRouter, authMiddleware gin.HandlerFunc) {
	sp := router.Group("/speech")
	sp.Use(authMiddleware)
	{
		sp.POST("/speak", h.Speak)
		sp.POST("/stop", h.Stop)
	}
}
