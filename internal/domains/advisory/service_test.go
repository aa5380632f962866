package advisory

import (
	"context"
	"testing"

	"github.com/agrovoice/kisanbhai/internal/cache"
	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/agrovoice/kisanbhai/pkg/advisor"
)

type fakeProvider struct {
	jsonReply  string
	chatReply  string
	jsonCalls  int
	chatCalls  int
	lastPrompt string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, req advisor.ChatRequest) (string, error) {
	f.chatCalls++
	return f.chatReply, nil
}

func (f *fakeProvider) CompleteJSON(ctx context.Context, req advisor.StructuredRequest) (string, error) {
	f.jsonCalls++
	f.lastPrompt = req.Prompt
	return f.jsonReply, nil
}

func (f *fakeProvider) Synthesize(ctx context.Context, req advisor.SpeechRequest) (string, error) {
	return "", advisor.ErrUnsupported
}

func newTestService(t *testing.T, provider advisor.Provider, demoOps []string) AdvisoryService {
	t.Helper()
	logger := Logger.BuildLogger(false)
	c := cache.New(cache.NewMemoryStore())
	cfg := config.AdvisoryConfig{
		Provider:    "gemini",
		TextModel:   "text-model",
		VisionModel: "vision-model",
		DemoOps:     demoOps,
	}
	return NewAdvisoryService(provider, c, cfg, logger)
}

func TestDemoOpsSkipProvider(t *testing.T) {
	provider := &fakeProvider{}
	svc := newTestService(t, provider, []string{"weather", "fertilizer", "schemes", "crops"})
	ctx := context.Background()

	weather, err := svc.GetWeather(ctx, "Ludhiana", "en")
	if err != nil {
		t.Fatalf("weather: %v", err)
	}
	if weather.Current.Temp != 15 || len(weather.Forecast) != 5 {
		t.Errorf("unexpected demo weather: %+v", weather)
	}

	schemes, err := svc.GetSchemes(ctx, "en")
	if err != nil {
		t.Fatalf("schemes: %v", err)
	}
	if len(schemes) != 4 || schemes[0].Name != "PM Kisan Samman Nidhi" {
		t.Errorf("unexpected demo schemes: %+v", schemes)
	}

	if provider.jsonCalls != 0 {
		t.Errorf("demo ops must not call the provider, got %d calls", provider.jsonCalls)
	}
}

func TestDemoPayloadsLocalized(t *testing.T) {
	svc := newTestService(t, &fakeProvider{}, []string{"fertilizer"})

	advice, err := svc.GetFertilizerAdvice(context.Background(), "wheat", "alluvial", "sowing", "hi")
	if err != nil {
		t.Fatalf("fertilizer: %v", err)
	}
	if advice.Quantity != "50 किलो प्रति एकड़" {
		t.Errorf("expected Hindi quantity, got %q", advice.Quantity)
	}

	// Punjabi has no dedicated demo wording and falls back to English.
	advice, err = svc.GetFertilizerAdvice(context.Background(), "wheat", "alluvial", "sowing", "pa")
	if err != nil {
		t.Fatalf("fertilizer: %v", err)
	}
	if advice.Quantity != "50 kg per acre" {
		t.Errorf("expected English fallback, got %q", advice.Quantity)
	}
}

func TestWeatherCachedOnRealPath(t *testing.T) {
	provider := &fakeProvider{
		jsonReply: `{"current":{"temp":28,"humidity":60,"condition":"Clear","wind":5,"uv":"High"},"forecast":[]}`,
	}
	svc := newTestService(t, provider, nil)
	ctx := context.Background()

	first, err := svc.GetWeather(ctx, "Nagpur", "en")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.GetWeather(ctx, "Nagpur", "en")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if provider.jsonCalls != 1 {
		t.Errorf("second call should be served from cache, provider called %d times", provider.jsonCalls)
	}
	if first.Current.Temp != 28 || second.Current.Temp != 28 {
		t.Errorf("unexpected reports: %+v / %+v", first, second)
	}

	// Different location is a different cache entry.
	if _, err := svc.GetWeather(ctx, "Pune", "en"); err != nil {
		t.Fatalf("third call: %v", err)
	}
	if provider.jsonCalls != 2 {
		t.Errorf("expected a fresh provider call for a new location, got %d", provider.jsonCalls)
	}
}

func TestStructuredReplyToleratesFences(t *testing.T) {
	provider := &fakeProvider{
		jsonReply: "```json\n{\"isRainExpected\":true,\"intensity\":\"heavy\"}\n```",
	}
	svc := newTestService(t, provider, nil)

	check, err := svc.CheckUpcomingRain(context.Background(), "Ludhiana", "en")
	if err != nil {
		t.Fatalf("rain check: %v", err)
	}
	if !check.IsRainExpected || check.Intensity != "heavy" {
		t.Errorf("unexpected rain check: %+v", check)
	}
}

func TestStructuredReplyMissingFieldsDecodeToZero(t *testing.T) {
	provider := &fakeProvider{jsonReply: `{"diseaseName":"Early Blight"}`}
	svc := newTestService(t, provider, nil)

	report, err := svc.AnalyzeDisease(context.Background(), "", "en")
	if err != nil {
		t.Fatalf("disease: %v", err)
	}
	if report.DiseaseName != "Early Blight" || report.Severity != "" {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestStructuredEmptyReplyDecodesToZero(t *testing.T) {
	provider := &fakeProvider{jsonReply: ""}
	svc := newTestService(t, provider, nil)

	report, err := svc.AnalyzeDisease(context.Background(), "", "en")
	if err != nil {
		t.Fatalf("empty reply must decode to the zero-value shape, got error: %v", err)
	}
	if report.DiseaseName != "" || report.Severity != "" {
		t.Errorf("expected zero-value report, got %+v", report)
	}

	provider.jsonReply = "   \n"
	if _, err := svc.GetIrrigationAdvice(context.Background(), "wheat", 40, 60, "en"); err != nil {
		t.Fatalf("whitespace reply must decode to the zero-value shape, got error: %v", err)
	}
}

func TestChatEmptyReplyGetsDefault(t *testing.T) {
	provider := &fakeProvider{chatReply: "   "}
	svc := newTestService(t, provider, nil)

	reply, err := svc.Chat(context.Background(), nil, "hello", "", "en")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "I'm sorry, I couldn't process that." {
		t.Errorf("unexpected reply: %q", reply)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, c := range cases {
		if got := stripFences(c.in); got != c.want {
			t.Errorf("stripFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeImageHandlesDataURL(t *testing.T) {
	raw, err := decodeImage("data:image/jpeg;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(raw) != "hello" {
		t.Errorf("want hello, got %q", raw)
	}

	raw, err = decodeImage("aGVsbG8=")
	if err != nil {
		t.Fatalf("decode bare: %v", err)
	}
	if string(raw) != "hello" {
		t.Errorf("want hello, got %q", raw)
	}

	if raw, err := decodeImage("  "); err != nil || raw != nil {
		t.Errorf("empty image should decode to nil, got %v / %v", raw, err)
	}
}
