package handlers

import (
	"github.com/agrovoice/kisanbhai/internal/domains/conversation"
	"github.com/agrovoice/kisanbhai/internal/domains/market"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/internal/types"
)

// Response wrapper types for Swagger documentation

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Message string `json:"message" example:"Operation completed successfully"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Something went wrong"`
	Details string `json:"details,omitempty" example:"Validation error details"`
}

// RegisterResponse represents the response for profile registration
type RegisterResponse struct {
	Message string                  `json:"message" example:"Profile registered successfully"`
	Profile profile.ProfileResponse `json:"profile"`
}

// LoginResponse represents the response for login
type LoginResponse struct {
	Message string                  `json:"message" example:"Login successful"`
	Profile profile.ProfileResponse `json:"profile"`
	Tokens  profile.AuthTokens      `json:"tokens"`
}

// ProfileEnvelope represents the response for getting a farm profile
type ProfileEnvelope struct {
	Profile profile.ProfileResponse `json:"profile"`
}

// UpdateProfileResponse represents the response for updating a farm profile
type UpdateProfileResponse struct {
	Message string                  `json:"message" example:"Profile updated successfully"`
	Profile profile.ProfileResponse `json:"profile"`
}

// DeleteProfileResponse represents the response for profile deletion
type DeleteProfileResponse struct {
	Message string `json:"message" example:"Profile deleted successfully"`
}

// ExchangeResponse represents the response for one conversation turn
type ExchangeResponse struct {
	Exchange conversation.Exchange `json:"exchange"`
}

// HistoryResponse represents the response for conversation history
type HistoryResponse struct {
	Messages []types.ChatMessage `json:"messages"`
}

// DiseaseResponse represents the response for disease analysis
type DiseaseResponse struct {
	Report types.DiseaseReport `json:"report"`
}

// WeatherResponse represents the response for a weather report
type WeatherResponse struct {
	Weather types.WeatherReport `json:"weather"`
}

// RainCheckResponse represents the upcoming rain check
type RainCheckResponse struct {
	Rain types.RainCheck `json:"rain"`
}

// WeatherAlertsResponse represents severe weather alerts
type WeatherAlertsResponse struct {
	Alerts []types.WeatherAlert `json:"alerts"`
}

// ProactiveAlertsResponse represents proactive farm alerts
type ProactiveAlertsResponse struct {
	Alerts []types.ProactiveAlert `json:"alerts"`
}

// WeatherAdviceResponse represents condition-based farming tips
type WeatherAdviceResponse struct {
	Tips []string `json:"tips"`
}

// FertilizerResponse represents the response for fertilizer guidance
type FertilizerResponse struct {
	Advice types.FertilizerAdvice `json:"advice"`
}

// IrrigationResponse represents the response for irrigation guidance
type IrrigationResponse struct {
	Advice types.IrrigationAdvice `json:"advice"`
}

// SchemesResponse represents the response for government schemes
type SchemesResponse struct {
	Schemes []types.Scheme `json:"schemes"`
}

// CropsResponse represents the response for crop recommendations
type CropsResponse struct {
	Recommendations types.CropRecommendations `json:"recommendations"`
}

// GrowthScanResponse represents the response for a growth scan
type GrowthScanResponse struct {
	Record types.GrowthRecord `json:"record"`
}

// GrowthHistoryResponse represents the growth scan timeline
type GrowthHistoryResponse struct {
	Records []types.GrowthRecord `json:"records"`
}

// MarketQuotesResponse represents current mandi price quotes
type MarketQuotesResponse struct {
	Quotes []market.CropQuote `json:"quotes"`
}

// MarketTrendResponse represents the weekly price trend
type MarketTrendResponse struct {
	Trend []market.TrendPoint `json:"trend"`
}

// MarketAdviceResponse represents selling guidance for a crop
type MarketAdviceResponse struct {
	Advice market.SellingAdvice `json:"advice"`
}
