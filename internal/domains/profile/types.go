package profile

import (
	"time"
)

// Profile is a registered farm profile. Phone number is the login
// identity; Language drives advisory replies and speech synthesis.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Password  string    `json:"-"`
	Location  string    `json:"location"`
	Language  string    `json:"language"` // "en", "hi", "pa", "mr"
	SoilType  string    `json:"soilType"`
	Crops     []string  `json:"crops"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Lang returns the profile language, defaulting to English.
func (p *Profile) Lang() string {
	if p.Language == "" {
		return "en"
	}
	return p.Language
}

// ProfileResponse is the public view of a profile
// @Description Farm profile information
type ProfileResponse struct {
	ID        string    `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name" example:"Ramesh Kumar"`
	Phone     string    `json:"phone" example:"+919876543210"`
	Location  string    `json:"location" example:"Ludhiana, Punjab"`
	Language  string    `json:"language" example:"pa"`
	SoilType  string    `json:"soilType" example:"alluvial"`
	Crops     []string  `json:"crops" example:"wheat,rice"`
	CreatedAt time.Time `json:"createdAt" example:"2023-01-02T12:00:00Z"`
}

// ToResponse converts a Profile to its public view
func (p *Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Location:  p.Location,
		Language:  p.Language,
		SoilType:  p.SoilType,
		Crops:     p.Crops,
		CreatedAt: p.CreatedAt,
	}
}

// CreateProfileRequest registers a new farm profile
// @Description Farm profile registration request
type CreateProfileRequest struct {
	Name     string   `json:"name" binding:"required" example:"Ramesh Kumar"`
	Phone    string   `json:"phone" binding:"required" example:"+919876543210"`
	Password string   `json:"password" binding:"required,min=6" example:"secret123"`
	Location string   `json:"location" example:"Ludhiana, Punjab"`
	Language string   `json:"language" example:"pa"`
	SoilType string   `json:"soilType" example:"alluvial"`
	Crops    []string `json:"crops" example:"wheat,rice"`
}

// LoginRequest authenticates a farm profile
// @Description Login request
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required" example:"+919876543210"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UpdateProfileRequest carries partial profile updates; nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Name     *string   `json:"name,omitempty"`
	Location *string   `json:"location,omitempty"`
	Language *string   `json:"language,omitempty"`
	SoilType *string   `json:"soilType,omitempty"`
	Crops    *[]string `json:"crops,omitempty"`
}
