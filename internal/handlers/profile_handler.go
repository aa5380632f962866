package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
)

// ProfileHandler handles farm profile HTTP requests
type ProfileHandler struct {
	profileService profile.ProfileService
	logger         *Logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService profile.ProfileService, logger *Logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// Register handles farm profile registration
// @Summary Register a new farm profile
// @Description Register a farmer with phone, password and farm details
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body profile.CreateProfileRequest true "Profile registration data"
// @Success 201 {object} RegisterResponse "Profile registered successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 409 {object} ErrorResponse "Phone already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *ProfileHandler) Register(c *gin.Context) {
	var req profile.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	profileResponse, err := h.profileService.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case profile.ErrPhoneAlreadyExists:
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Phone already registered"})
		default:
			h.logger.Errorf("registration error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		Message: "Profile registered successfully",
		Profile: *profileResponse,
	})
}

// Login handles farmer login
// @Summary Farmer login
// @Description Authenticate a farmer with phone and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body profile.LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Login successful with profile data and tokens"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *ProfileHandler) Login(c *gin.Context) {
	var req profile.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	profileResponse, tokens, err := h.profileService.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case profile.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
		default:
			h.logger.Errorf("login error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Profile: *profileResponse,
		Tokens:  *tokens,
	})
}

// GetProfile returns the authenticated farmer's profile
// @Summary Get farm profile
// @Description Get the authenticated farmer's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileEnvelope "Farm profile"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	info, ok := ExtractProfileInfo(c)
	if !ok {
		return
	}

	profileResponse, err := h.profileService.GetProfile(c.Request.Context(), info.ProfileID.String())
	if err != nil {
		switch err {
		case profile.ErrProfileNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		default:
			h.logger.Errorf("get profile error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ProfileEnvelope{Profile: *profileResponse})
}

// UpdateProfile updates the authenticated farmer's profile
// @Summary Update farm profile
// @Description Update location, language, soil type or crops
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body profile.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} UpdateProfileResponse "Profile updated"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	info, ok := ExtractProfileInfo(c)
	if !ok {
		return
	}

	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	profileResponse, err := h.profileService.UpdateProfile(c.Request.Context(), info.ProfileID.String(), req)
	if err != nil {
		switch err {
		case profile.ErrProfileNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		default:
			h.logger.Errorf("update profile error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateProfileResponse{
		Message: "Profile updated successfully",
		Profile: *profileResponse,
	})
}

// DeleteProfile removes the authenticated farmer's profile
// @Summary Delete farm profile
// @Description Permanently delete the authenticated farmer's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DeleteProfileResponse "Profile deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Profile not found"
// @Router /profile [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	info, ok := ExtractProfileInfo(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), info.ProfileID.String()); err != nil {
		switch err {
		case profile.ErrProfileNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		default:
			h.logger.Errorf("delete profile error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, DeleteProfileResponse{Message: "Profile deleted successfully"})
}

// RegisterRoutes registers profile routes
func (h *ProfileHandler) RegisterRoutes(router gin.IRouter, authMiddleware gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	prof := router.Group("/profile")
	prof.Use(authMiddleware)
	{
		prof.GET("", h.GetProfile)
		prof.PUT("", h.UpdateProfile)
		prof.DELETE("", h.DeleteProfile)
	}
}
