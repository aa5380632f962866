package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agrovoice/kisanbhai/internal/domains/conversation"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
)

// ConvoHandler handles chat conversation HTTP requests
type ConvoHandler struct {
	conversationService conversation.ConversationService
	profileService      profile.ProfileService
	logger              *Logger.Logger
}

func NewConvoHandler(
	conversationService conversation.ConversationService,
	profileService profile.ProfileService,
	logger *Logger.Logger,
) *ConvoHandler {
	return &ConvoHandler{
		conversationService: conversationService,
		profileService:      profileService,
		logger:              logger,
	}
}

// profileModel loads the full profile for language and farm context.
func (h *ConvoHandler) profileModel(c *gin.Context) (*profile.Profile, bool) {
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

// SendMessage submits one chat turn
// @Summary Send a chat message
// @Description Submit a text or photo message and receive the advisor's reply, voiced when synthesis is available
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body types.CreateMessage true "Message content"
// @Success 200 {object} ExchangeResponse "Completed exchange"
// @Failure 400 {object} ErrorResponse "Empty message"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "A turn is already in flight"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /chat/send [post]
func (h *ConvoHandler) SendMessage(c *gin.Context) {
	prof, ok := h.profileModel(c)
	if !ok {
		return
	}

	var req types.CreateMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	exchange, err := h.conversationService.Send(c.Request.Context(), prof, req)
	if err != nil {
		switch err {
		case conversation.ErrEmptyMessage:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Message is empty"})
		case conversation.ErrBusy:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Previous message still processing"})
		default:
			h.logger.Errorf("send message error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ExchangeResponse{Exchange: *exchange})
}

// GetHistory returns the chat history
// @Summary Get chat history
// @Description Get the profile's chat history, seeded with a greeting in the profile language on first read
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum messages to return" default(50)
// @Success 200 {object} HistoryResponse "Chat messages, oldest first"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /chat/history [get]
func (h *ConvoHandler) GetHistory(c *gin.Context) {
	prof, ok := h.profileModel(c)
	if !ok {
		return
	}

	limit := 50
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil && l > 0 {
		limit = l
	}

	messages, err := h.conversationService.History(c.Request.Context(), prof, limit)
	if err != nil {
		h.logger.Errorf("history error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Messages: messages})
}

// ClearHistory wipes the chat history
// @Summary Clear chat history
// @Description Delete all chat messages for the authenticated profile
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessResponse "History cleared"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /chat [delete]
func (h *ConvoHandler) ClearHistory(c *gin.Context) {
	info, ok := ExtractProfileInfo(c)
	if !ok {
		return
	}

	if err := h.conversationService.Clear(c.Request.Context(), info.ProfileID); err != nil {
		h.logger.Errorf("clear history error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "History cleared"})
}

// RegisterRoutes registers chat routes
func (h *ConvoHandler) RegisterRoutes(router gin.IRouter, authMiddleware gin.HandlerFunc) {
	chat := router.Group("/chat")
	chat.Use(authMiddleware)
	{
		chat.POST("/send", h.SendMessage)
		chat.GET("/history", h.GetHistory)
		chat.DELETE("", h.ClearHistory)
	}
}
