package app

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"gorm.io/gorm"

	"github.com/agrovoice/kisanbhai/internal/cache"
	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/internal/domains/advisory"
	"github.com/agrovoice/kisanbhai/internal/domains/conversation"
	"github.com/agrovoice/kisanbhai/internal/domains/growth"
	"github.com/agrovoice/kisanbhai/internal/domains/market"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/internal/domains/speech"
	"github.com/agrovoice/kisanbhai/internal/offline"
	convoRepo "github.com/agrovoice/kisanbhai/internal/repository/conversation"
	growthRepo "github.com/agrovoice/kisanbhai/internal/repository/growth"
	profileRepo "github.com/agrovoice/kisanbhai/internal/repository/profile"
	"github.com/agrovoice/kisanbhai/internal/server"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/agrovoice/kisanbhai/pkg/advisor"
	"github.com/agrovoice/kisanbhai/pkg/advisor/providers/gemini"
	"github.com/agrovoice/kisanbhai/pkg/advisor/providers/openai"
	"github.com/agrovoice/kisanbhai/pkg/io/tts/local"
)

// chat history stays warm in redis this long
const messageTTL = 7 * 24 * time.Hour

// App represents the application with all its dependencies
type App struct {
	Config *config.Settings
	Logger *Logger.Logger
	DB     *gorm.DB
	RC     *redis.Client

	Provider advisor.Provider

	ProfileRepo  profile.ProfileRepository
	MessageRepo  conversation.MessageRepository
	GrowthRepo   growth.GrowthRepository

	ServerDeps server.Dependencies
}

// NewApp creates a new application instance with all dependencies properly wired
func NewApp(cfg *config.Settings, logger *Logger.Logger, db *gorm.DB, rc *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		RC:     rc,
	}

	if err := app.setupDependencies(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupDependencies initializes all application dependencies
func (a *App) setupDependencies() error {
	provider, err := a.setupProvider()
	if err != nil {
		return err
	}
	a.Provider = provider

	responseCache := cache.New(cache.NewRedisStore(a.RC))

	// repositories
	a.ProfileRepo = profileRepo.NewGormProfileRepo(a.DB)
	a.MessageRepo = convoRepo.NewGormConversationRepo(a.DB, a.RC, messageTTL)
	a.GrowthRepo = growthRepo.NewGormGrowthRepo(a.DB)

	// JWT settings from config
	jwtSecret := a.Config.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "default-secret-key-change-in-production"
		a.Logger.Warn("JWT secret not configured, using default (not secure for production)")
	}

	tokenTTLHours := a.Config.Auth.TokenTTLHours
	if tokenTTLHours == 0 {
		tokenTTLHours = 24
	}
	tokenTTL := time.Duration(tokenTTLHours) * time.Hour

	// services
	profileService := profile.NewProfileService(a.ProfileRepo, a.Logger, jwtSecret, tokenTTL)
	advisoryService := advisory.NewAdvisoryService(provider, responseCache, a.Config.Advisory, a.Logger)

	var daemon *local.Client
	if a.Config.Speech.LocalTTSURL != "" {
		daemon = local.New(a.Config.Speech.LocalTTSURL)
	} else if len(a.Config.Speech.LocalVoices) > 0 {
		a.Logger.Warn("local voices configured without a synthesis daemon URL, remote synthesis only")
		a.Config.Speech.LocalVoices = nil
	}
	speechService := speech.NewSpeechService(a.Config.Speech, provider, daemon, a.Logger)

	conversationService := conversation.NewConversationService(
		a.MessageRepo,
		offline.New(),
		advisoryService,
		speechService,
		a.Logger,
	)
	growthService := growth.NewGrowthService(a.GrowthRepo, advisoryService, a.Logger)
	marketService := market.NewMarketService()

	a.ServerDeps = server.Dependencies{
		Configs:             a.Config,
		Logger:              a.Logger,
		ProfileService:      profileService,
		ConversationService: conversationService,
		AdvisoryService:     advisoryService,
		GrowthService:       growthService,
		MarketService:       marketService,
		SpeechService:       speechService,
	}

	return nil
}

// setupProvider picks the generative backend from configuration.
func (a *App) setupProvider() (advisor.Provider, error) {
	switch a.Config.Advisory.Provider {
	case "gemini", "":
		if a.Config.Advisory.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider selected but no API key configured")
		}
		p, err := gemini.New(a.Config.Advisory.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "openai":
		if a.Config.Advisory.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai provider selected but no API key configured")
		}
		p, err := openai.New(a.Config.Advisory.OpenAIAPIKey)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown advisory provider %q", a.Config.Advisory.Provider)
	}
}

// GetServerDependencies returns the server dependencies
func (a *App) GetServerDependencies() server.Dependencies {
	return a.ServerDeps
}
