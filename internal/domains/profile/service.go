package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Common errors
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrPhoneAlreadyExists = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthTokens represents JWT tokens for authentication
// @Description JWT authentication tokens
type AuthTokens struct {
	AccessToken string    `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt   time.Time `json:"expiresAt" example:"2023-01-02T12:00:00Z"`
}

// Claims represents JWT claims
type Claims struct {
	ProfileID string `json:"profileId"`
	Phone     string `json:"phone"`
	jwt.RegisteredClaims
}

// ProfileService defines the interface for farm profile business logic
type ProfileService interface {
	Register(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error)
	Login(ctx context.Context, req LoginRequest) (*ProfileResponse, *AuthTokens, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	GetProfile(ctx context.Context, profileID string) (*ProfileResponse, error)
	// GetProfileModel exposes the full domain model for internal callers
	// that need language and crop context, not the public view.
	GetProfileModel(ctx context.Context, profileID string) (*Profile, error)
	UpdateProfile(ctx context.Context, profileID string, req UpdateProfileRequest) (*ProfileResponse, error)
	DeleteProfile(ctx context.Context, profileID string) error
}

type profileService struct {
	repository ProfileRepository
	logger     *Logger.Logger
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewProfileService(repo ProfileRepository, logger *Logger.Logger, jwtSecret string, tokenTTL time.Duration) ProfileService {
	return &profileService{
		repository: repo,
		logger:     logger,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}

// Register implements ProfileService
func (s *profileService) Register(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error) {
	exists, err := s.repository.PhoneExists(req.Phone)
	if err != nil {
		s.logger.Errorf("error checking phone existence: %v", err)
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if exists {
		return nil, ErrPhoneAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Errorf("error hashing password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	p := &Profile{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Phone:    req.Phone,
		Password: string(hashedPassword),
		Location: req.Location,
		Language: language,
		SoilType: req.SoilType,
		Crops:    req.Crops,
	}

	if err := s.repository.Create(p); err != nil {
		s.logger.Errorf("error creating profile: %v", err)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Infof("profile registered: %s (%s)", p.ID, p.Phone)
	response := p.ToResponse()
	return &response, nil
}

// Login implements ProfileService
func (s *profileService) Login(ctx context.Context, req LoginRequest) (*ProfileResponse, *AuthTokens, error) {
	p, err := s.repository.GetByPhone(req.Phone)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		s.logger.Errorf("error getting profile by phone: %v", err)
		return nil, nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.generateTokens(p.ID, p.Phone)
	if err != nil {
		s.logger.Errorf("error generating tokens: %v", err)
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.logger.Infof("profile logged in: %s (%s)", p.ID, p.Phone)
	response := p.ToResponse()
	return &response, tokens, nil
}

// ValidateToken implements ProfileService
func (s *profileService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetProfile implements ProfileService
func (s *profileService) GetProfile(ctx context.Context, profileID string) (*ProfileResponse, error) {
	p, err := s.repository.GetByID(profileID)
	if err != nil {
		return nil, err
	}

	response := p.ToResponse()
	return &response, nil
}

// GetProfileModel implements ProfileService
func (s *profileService) GetProfileModel(ctx context.Context, profileID string) (*Profile, error) {
	return s.repository.GetByID(profileID)
}

// UpdateProfile implements ProfileService
func (s *profileService) UpdateProfile(ctx context.Context, profileID string, req UpdateProfileRequest) (*ProfileResponse, error) {
	updated, err := s.repository.Update(profileID, req)
	if err != nil {
		s.logger.Errorf("error updating profile: %v", err)
		return nil, err
	}

	s.logger.Infof("profile updated: %s", profileID)
	response := updated.ToResponse()
	return &response, nil
}

// DeleteProfile implements ProfileService
func (s *profileService) DeleteProfile(ctx context.Context, profileID string) error {
	if err := s.repository.Delete(profileID); err != nil {
		s.logger.Errorf("error deleting profile: %v", err)
		return err
	}

	s.logger.Infof("profile deleted: %s", profileID)
	return nil
}

func (s *profileService) generateTokens(profileID, phone string) (*AuthTokens, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := &Claims{
		ProfileID: profileID,
		Phone:     phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   profileID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthTokens{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
	}, nil
}
