package server

import (
	"github.com/gin-gonic/gin"

	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/internal/domains/advisory"
	"github.com/agrovoice/kisanbhai/internal/domains/conversation"
	"github.com/agrovoice/kisanbhai/internal/domains/growth"
	"github.com/agrovoice/kisanbhai/internal/domains/market"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/internal/domains/speech"
	"github.com/agrovoice/kisanbhai/internal/handlers"
	"github.com/agrovoice/kisanbhai/internal/handlers/livevoice"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
)

// Dependencies carries every service the HTTP surface needs.
type Dependencies struct {
	Configs *config.Settings
	Logger  *Logger.Logger

	ProfileService      profile.ProfileService
	ConversationService conversation.ConversationService
	AdvisoryService     advisory.AdvisoryService
	GrowthService       growth.GrowthService
	MarketService       market.MarketService
	SpeechService       speech.SpeechService
}

// InitializeRoutes mounts the whole API under /api/v1 plus the live
// voice WebSocket and health checks.
func InitializeRoutes(cfg *config.Settings, r *gin.Engine, dep Dependencies) {
	r.Use(handlers.CORSMiddleware())
	r.Use(handlers.RequestLoggerMiddleware(dep.Logger))
	r.Use(handlers.ErrorHandlerMiddleware(dep.Logger))

	r.GET("/", func(ctx *gin.Context) { ctx.JSON(200, gin.H{"message": "Server healthy"}) })
	r.GET("/health", func(ctx *gin.Context) { ctx.JSON(200, gin.H{"status": "ok"}) })

	auth := handlers.AuthMiddleware(dep.ProfileService, dep.Logger)

	api := r.Group("/api/v1")

	profileHandler := handlers.NewProfileHandler(dep.ProfileService, dep.Logger)
	profileHandler.RegisterRoutes(api, auth)

	convoHandler := handlers.NewConvoHandler(dep.ConversationService, dep.ProfileService, dep.Logger)
	convoHandler.RegisterRoutes(api, auth)

	advisoryHandler := handlers.NewAdvisoryHandler(dep.AdvisoryService, dep.ProfileService, dep.Logger)
	advisoryHandler.RegisterRoutes(api, auth)

	growthHandler := handlers.NewGrowthHandler(dep.GrowthService, dep.ProfileService, dep.Logger)
	growthHandler.RegisterRoutes(api, auth)

	marketHandler := handlers.NewMarketHandler(dep.MarketService, dep.Logger)
	marketHandler.RegisterRoutes(api, auth)

	speechHandler := handlers.NewSpeechHandler(dep.SpeechService, dep.ProfileService, dep.Logger)
	speechHandler.RegisterRoutes(api, auth)

	// Live voice rides on its own WebSocket route; auth happens inside
	// the handler because the token arrives as a query parameter.
	liveHandler := livevoice.NewLiveVoiceHandler(dep.Logger, dep.ProfileService, cfg)
	liveHandler.RegisterRoutes(api)
}
