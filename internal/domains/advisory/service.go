package advisory

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/agrovoice/kisanbhai/internal/cache"
	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/internal/constants/prompts"
	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/agrovoice/kisanbhai/pkg/advisor"
)

// AdvisoryService is the gateway to the generative model. Structured
// operations decode the model's JSON into the declared reply shapes;
// demo-wired operations serve fixed payloads without touching the network.
type AdvisoryService interface {
	Chat(ctx context.Context, history []types.ChatMessage, message, image, lang string) (string, error)
	AnalyzeDisease(ctx context.Context, image, lang string) (*types.DiseaseReport, error)
	GetWeather(ctx context.Context, location, lang string) (*types.WeatherReport, error)
	GetProactiveAlerts(ctx context.Context, location, lang string) ([]types.ProactiveAlert, error)
	GetFertilizerAdvice(ctx context.Context, crop, soil, stage, lang string) (*types.FertilizerAdvice, error)
	GetIrrigationAdvice(ctx context.Context, crop string, moisture, rain int, lang string) (*types.IrrigationAdvice, error)
	CheckUpcomingRain(ctx context.Context, location, lang string) (*types.RainCheck, error)
	GetWeatherAlerts(ctx context.Context, location, lang string) ([]types.WeatherAlert, error)
	AnalyzeGrowth(ctx context.Context, image, cropType, lang string) (*types.GrowthReport, error)
	GetSchemes(ctx context.Context, lang string) ([]types.Scheme, error)
	GetCropRecommendations(ctx context.Context, location, season, soil, lang string) (*types.CropRecommendations, error)
	GetWeatherAdvice(ctx context.Context, temp, humidity int, condition, lang string) ([]string, error)
}

type advisoryService struct {
	provider advisor.Provider
	cache    *cache.Cache
	cfg      config.AdvisoryConfig
	logger   *Logger.Logger
}

func NewAdvisoryService(provider advisor.Provider, c *cache.Cache, cfg config.AdvisoryConfig, logger *Logger.Logger) AdvisoryService {
	return &advisoryService{
		provider: provider,
		cache:    c,
		cfg:      cfg,
		logger:   logger,
	}
}

// Chat implements AdvisoryService
func (s *advisoryService) Chat(ctx context.Context, history []types.ChatMessage, message, image, lang string) (string, error) {
	turns := make([]advisor.Turn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, advisor.Turn{
			FromUser: msg.Role == types.RoleUser,
			Text:     msg.Content,
		})
	}

	imageBytes, err := decodeImage(image)
	if err != nil {
		return "", err
	}

	reply, err := s.provider.Complete(ctx, advisor.ChatRequest{
		Model:   s.cfg.TextModel,
		System:  prompts.SystemInstruction(lang),
		History: turns,
		Message: message,
		Image:   imageBytes,
	})
	if err != nil {
		s.logger.Errorf("chat request failed: %v", err)
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "I'm sorry, I couldn't process that.", nil
	}
	return reply, nil
}

// AnalyzeDisease implements AdvisoryService
func (s *advisoryService) AnalyzeDisease(ctx context.Context, image, lang string) (*types.DiseaseReport, error) {
	var report types.DiseaseReport
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.VisionModel,
		prompt: fmt.Sprintf("Analyze crop disease in %s.", lang),
		image:  image,
		schema: diseaseSchema,
	}, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetWeather implements AdvisoryService
func (s *advisoryService) GetWeather(ctx context.Context, location, lang string) (*types.WeatherReport, error) {
	if s.cfg.IsDemoOp("weather") {
		return demoWeather(lang), nil
	}

	key := cache.Key("weather", location, lang)
	var cached types.WeatherReport
	if s.cache.Get(key, &cached) {
		return &cached, nil
	}

	var report types.WeatherReport
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.TextModel,
		prompt: fmt.Sprintf("Current weather and 5-day forecast for %s in %s. JSON format.", location, lang),
		schema: weatherSchema,
	}, &report)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, report, cache.WeatherTTL)
	return &report, nil
}

// GetProactiveAlerts implements AdvisoryService
func (s *advisoryService) GetProactiveAlerts(ctx context.Context, location, lang string) ([]types.ProactiveAlert, error) {
	key := cache.Key("alerts", location, lang)
	var cached []types.ProactiveAlert
	if s.cache.Get(key, &cached) {
		return cached, nil
	}

	var wrapped struct {
		Alerts []types.ProactiveAlert `json:"alerts"`
	}
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.TextModel,
		prompt: fmt.Sprintf("Generate 2 proactive alerts for %s in %s.", location, lang),
		schema: proactiveAlertsSchema,
	}, &wrapped)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, wrapped.Alerts, cache.AlertsTTL)
	return wrapped.Alerts, nil
}

// GetFertilizerAdvice implements AdvisoryService
func (s *advisoryService) GetFertilizerAdvice(ctx context.Context, crop, soil, stage, lang string) (*types.FertilizerAdvice, error) {
	if s.cfg.IsDemoOp("fertilizer") {
		return demoFertilizer(lang), nil
	}

	var advice types.FertilizerAdvice
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.VisionModel,
		prompt: fmt.Sprintf("Fertilizer advice for %s at %s in %s soil in %s.", crop, stage, soil, lang),
		schema: fertilizerSchema,
	}, &advice)
	if err != nil {
		return nil, err
	}
	return &advice, nil
}

// GetIrrigationAdvice implements AdvisoryService
func (s *advisoryService) GetIrrigationAdvice(ctx context.Context, crop string, moisture, rain int, lang string) (*types.IrrigationAdvice, error) {
	var advice types.IrrigationAdvice
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.VisionModel,
		prompt: fmt.Sprintf("Irrigation for %s, %d%% moisture, %dmm rain in %s.", crop, moisture, rain, lang),
		schema: irrigationSchema,
	}, &advice)
	if err != nil {
		return nil, err
	}
	return &advice, nil
}

// CheckUpcomingRain implements AdvisoryService
func (s *advisoryService) CheckUpcomingRain(ctx context.Context, location, lang string) (*types.RainCheck, error) {
	var check types.RainCheck
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.TextModel,
		prompt: fmt.Sprintf("Is heavy rain predicted in %s next 24h? Respond JSON.", location),
		schema: rainCheckSchema,
	}, &check)
	if err != nil {
		return nil, err
	}
	return &check, nil
}

// GetWeatherAlerts implements AdvisoryService
func (s *advisoryService) GetWeatherAlerts(ctx context.Context, location, lang string) ([]types.WeatherAlert, error) {
	key := cache.Key("weather_alerts", location)
	var cached []types.WeatherAlert
	if s.cache.Get(key, &cached) {
		return cached, nil
	}

	var wrapped struct {
		Alerts []types.WeatherAlert `json:"alerts"`
	}
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.TextModel,
		prompt: fmt.Sprintf("Critical weather alerts for farmers in %s in %s.", location, lang),
		schema: weatherAlertsSchema,
	}, &wrapped)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, wrapped.Alerts, cache.WeatherTTL)
	return wrapped.Alerts, nil
}

// AnalyzeGrowth implements AdvisoryService
func (s *advisoryService) AnalyzeGrowth(ctx context.Context, image, cropType, lang string) (*types.GrowthReport, error) {
	var report types.GrowthReport
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.VisionModel,
		prompt: fmt.Sprintf("Growth analysis for %s in %s.", cropType, lang),
		image:  image,
		schema: growthSchema,
	}, &report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetSchemes implements AdvisoryService
func (s *advisoryService) GetSchemes(ctx context.Context, lang string) ([]types.Scheme, error) {
	if s.cfg.IsDemoOp("schemes") {
		return demoSchemes(lang), nil
	}

	key := cache.Key("schemes", lang)
	var cached []types.Scheme
	if s.cache.Get(key, &cached) {
		return cached, nil
	}

	var wrapped struct {
		Schemes []types.Scheme `json:"schemes"`
	}
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.TextModel,
		prompt: fmt.Sprintf("Indian agri schemes in %s.", lang),
		schema: schemesSchema,
	}, &wrapped)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, wrapped.Schemes, cache.SchemesTTL)
	return wrapped.Schemes, nil
}

// GetCropRecommendations implements AdvisoryService
func (s *advisoryService) GetCropRecommendations(ctx context.Context, location, season, soil, lang string) (*types.CropRecommendations, error) {
	if s.cfg.IsDemoOp("crops") {
		return demoCrops(lang), nil
	}

	var recs types.CropRecommendations
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.VisionModel,
		prompt: fmt.Sprintf("Recommend crops for %s, %s, %s in %s.", location, season, soil, lang),
		schema: cropsSchema,
	}, &recs)
	if err != nil {
		return nil, err
	}
	return &recs, nil
}

// GetWeatherAdvice implements AdvisoryService
func (s *advisoryService) GetWeatherAdvice(ctx context.Context, temp, humidity int, condition, lang string) ([]string, error) {
	var wrapped struct {
		Tips []string `json:"tips"`
	}
	err := s.structured(ctx, structuredCall{
		model:  s.cfg.TextModel,
		prompt: fmt.Sprintf("Tips for %dC, %d%%, %s in %s.", temp, humidity, condition, lang),
		schema: weatherTipsSchema,
	}, &wrapped)
	if err != nil {
		return nil, err
	}
	return wrapped.Tips, nil
}

type structuredCall struct {
	model  string
	prompt string
	image  string
	schema *advisor.Schema
}

func (s *advisoryService) structured(ctx context.Context, call structuredCall, out any) error {
	imageBytes, err := decodeImage(call.image)
	if err != nil {
		return err
	}

	raw, err := s.provider.CompleteJSON(ctx, advisor.StructuredRequest{
		Model:  call.model,
		Prompt: call.prompt,
		Image:  imageBytes,
		Schema: call.schema,
	})
	if err != nil {
		s.logger.Errorf("structured request failed: %v", err)
		return err
	}

	// An empty reply decodes to the zero-value shape, never an error.
	body := stripFences(raw)
	if body == "" {
		body = "{}"
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return fmt.Errorf("failed to decode model reply: %w", err)
	}
	return nil
}

// stripFences removes a markdown code fence wrapping a JSON reply. Models
// occasionally fence their output despite the JSON response mode.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// decodeImage accepts either a bare base64 JPEG or a data URL and returns
// the raw bytes. Empty input is fine and returns nil.
func decodeImage(image string) ([]byte, error) {
	if strings.TrimSpace(image) == "" {
		return nil, nil
	}
	if idx := strings.Index(image, ","); idx >= 0 && strings.HasPrefix(image, "data:") {
		image = image[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		return nil, fmt.Errorf("invalid image payload: %w", err)
	}
	return data, nil
}
