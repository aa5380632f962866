package speech

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/agrovoice/kisanbhai/pkg/advisor"
	"github.com/agrovoice/kisanbhai/pkg/io/tts/local"
)

type synthProvider struct {
	calls     int
	lastVoice string
	lastLang  string
}

func (p *synthProvider) Name() string { return "synth" }

func (p *synthProvider) Complete(ctx context.Context, req advisor.ChatRequest) (string, error) {
	return "", advisor.ErrUnsupported
}

func (p *synthProvider) CompleteJSON(ctx context.Context, req advisor.StructuredRequest) (string, error) {
	return "", advisor.ErrUnsupported
}

func (p *synthProvider) Synthesize(ctx context.Context, req advisor.SpeechRequest) (string, error) {
	p.calls++
	p.lastVoice = req.Voice
	p.lastLang = req.Lang
	return base64.StdEncoding.EncodeToString([]byte("pcm-bytes")), nil
}

func testConfig(voices ...config.LocalVoice) config.SpeechConfig {
	return config.SpeechConfig{
		LocalVoices:    voices,
		PlaybackRate:   24000,
		CaptureRate:    16000,
		FrameSamples:   4096,
		SynthVoiceIN:   "Kore",
		SynthVoiceBase: "Puck",
	}
}

func TestSpeakUsesLocalVoiceWhenAvailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("voice"); got != "hi-speaker" {
			t.Errorf("daemon received voice %q", got)
		}
		w.Write([]byte("RIFFwav-bytes"))
	}))
	defer ts.Close()

	provider := &synthProvider{}
	svc := NewSpeechService(
		testConfig(config.LocalVoice{Name: "hi-speaker", Locale: "hi-IN"}),
		provider,
		local.New(ts.URL),
		Logger.BuildLogger(false),
	)

	utt, err := svc.Speak(context.Background(), "नमस्ते किसान", "hi")
	if err != nil {
		t.Fatalf("speak: %v", err)
	}
	if utt == nil || utt.Source != "local" || utt.Format != "wav" {
		t.Fatalf("expected local wav utterance, got %+v", utt)
	}
	if provider.calls != 0 {
		t.Errorf("remote synthesis must not run when a local voice matches")
	}
	if svc.IsSpeaking() {
		t.Error("service should return to idle after speaking")
	}
}

func TestSpeakEscalatesWithoutLocalVoice(t *testing.T) {
	provider := &synthProvider{}
	svc := NewSpeechService(testConfig(), provider, nil, Logger.BuildLogger(false))

	utt, err := svc.Speak(context.Background(), "ਕਣਕ ਦੀ ਬਿਜਾਈ", "pa")
	if err != nil {
		t.Fatalf("speak: %v", err)
	}
	if utt == nil || utt.Source != "remote" || utt.Format != "wav" {
		t.Fatalf("expected remote wav utterance, got %+v", utt)
	}
	if utt.SampleRate != 24000 {
		t.Errorf("remote audio should be 24000 Hz, got %d", utt.SampleRate)
	}
	wav, err := base64.StdEncoding.DecodeString(utt.Audio)
	if err != nil {
		t.Fatalf("decode audio: %v", err)
	}
	if len(wav) != 44+len("pcm-bytes") || string(wav[:4]) != "RIFF" {
		t.Errorf("remote pcm should come back wrapped in a wav container, got %d bytes", len(wav))
	}
	if string(wav[44:]) != "pcm-bytes" {
		t.Errorf("wav payload corrupted: %q", wav[44:])
	}
	if provider.lastVoice != "Kore" || provider.lastLang != "pa" {
		t.Errorf("wrong remote voice selection: voice=%q lang=%q", provider.lastVoice, provider.lastLang)
	}
}

func TestRemoteVoicePerLanguage(t *testing.T) {
	provider := &synthProvider{}
	svc := NewSpeechService(testConfig(), provider, nil, Logger.BuildLogger(false))

	if _, err := svc.Speak(context.Background(), "hello there", "en"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if provider.lastVoice != "Puck" {
		t.Errorf("English should use the base voice, got %q", provider.lastVoice)
	}
}

// blockingProvider parks Synthesize until its context is cancelled or
// the release channel closes, so a second caller can arrive mid-utterance.
type blockingProvider struct {
	synthProvider
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) Synthesize(ctx context.Context, req advisor.SpeechRequest) (string, error) {
	p.calls++
	close(p.started)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.release:
		return base64.StdEncoding.EncodeToString([]byte("pcm-bytes")), nil
	}
}

func TestSpeakWhileSpeakingStopsCurrentUtterance(t *testing.T) {
	provider := &blockingProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	defer close(provider.release)
	svc := NewSpeechService(testConfig(), provider, nil, Logger.BuildLogger(false))

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Speak(context.Background(), "pehli baat", "hi")
		firstDone <- err
	}()

	select {
	case <-provider.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first utterance never reached synthesis")
	}
	if !svc.IsSpeaking() {
		t.Fatal("service should report speaking while synthesis runs")
	}

	// The second request toggles: no new audio, and the first is cut off.
	utt, err := svc.Speak(context.Background(), "dusri baat", "hi")
	if err != nil {
		t.Fatalf("toggle speak: %v", err)
	}
	if utt != nil {
		t.Errorf("toggle must not produce audio, got %+v", utt)
	}

	select {
	case err := <-firstDone:
		if err == nil {
			t.Error("interrupted utterance should report cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first utterance was not cancelled")
	}
	if provider.calls != 1 {
		t.Errorf("exactly one synthesis expected, got %d", provider.calls)
	}
	if svc.IsSpeaking() {
		t.Error("service should return to idle after the toggle")
	}
}

func TestSpeakIgnoresEmptyText(t *testing.T) {
	provider := &synthProvider{}
	svc := NewSpeechService(testConfig(), provider, nil, Logger.BuildLogger(false))

	utt, err := svc.Speak(context.Background(), "   ", "en")
	if err != nil || utt != nil {
		t.Errorf("blank text should be a no-op, got %v / %v", utt, err)
	}
	if provider.calls != 0 {
		t.Errorf("no synthesis expected for blank text")
	}
}
