package livevoice

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/internal/constants/prompts"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
)

// LiveVoiceHandler upgrades client connections into live voice sessions.
type LiveVoiceHandler struct {
	logger         *Logger.Logger
	profileService profile.ProfileService
	config         *config.Settings
	upgrader       websocket.Upgrader
}

func NewLiveVoiceHandler(
	logger *Logger.Logger,
	profileService profile.ProfileService,
	config *config.Settings,
) *LiveVoiceHandler {
	return &LiveVoiceHandler{
		logger:         logger,
		profileService: profileService,
		config:         config,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// TODO: restrict origins once the app domain is fixed
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers the live voice WebSocket route
func (h *LiveVoiceHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/live", h.HandleLiveVoice)
}

// HandleLiveVoice authenticates the caller, dials the upstream stream
// and runs the bridging session until either side hangs up. The token
// rides in the query string because browsers cannot set headers on
// WebSocket upgrades.
func (h *LiveVoiceHandler) HandleLiveVoice(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	claims, err := h.profileService.ValidateToken(c.Request.Context(), token)
	if err != nil {
		h.logger.Errorf("live voice token validation failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	profileID, err := uuid.Parse(claims.ProfileID)
	if err != nil {
		h.logger.Errorf("invalid profile id in token claims: %s", claims.ProfileID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid profile ID in token"})
		return
	}

	// Pin the advisor persona to the profile's language before audio flows.
	lang := "en"
	if p, err := h.profileService.GetProfileModel(c.Request.Context(), claims.ProfileID); err == nil {
		lang = p.Lang()
	}

	dialCtx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	upstream, err := DialUpstream(dialCtx, h.config.Advisory.GeminiAPIKey, h.config.Live.Model, prompts.SystemInstruction(lang))
	cancel()
	if err != nil {
		h.logger.Errorf("live voice upstream dial failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Live voice backend unavailable"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf("live voice upgrade failed: %v", err)
		upstream.Close()
		return
	}

	session := NewSession(profileID, conn, upstream, h.config, h.logger)
	h.logger.Infof("live voice session %s started for profile %s", session.ID, profileID)
	session.Run()
	h.logger.Infof("live voice session %s closed", session.ID)
}
