package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/agrovoice/kisanbhai/internal/config"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/agrovoice/kisanbhai/pkg/audio"
	"github.com/agrovoice/kisanbhai/pkg/advisor"
	"github.com/agrovoice/kisanbhai/pkg/io/tts/local"
	"github.com/looplab/fsm"
)

const (
	stateIdle     = "idle"
	stateSpeaking = "speaking"

	eventSpeak = "speak"
	eventStop  = "stop"
)

// Utterance is one synthesized reply.
type Utterance struct {
	Audio      string `json:"audio"`  // base64 wav payload
	Format     string `json:"format"` // always "wav"; remote pcm is wrapped before return
	SampleRate int    `json:"sampleRate"`
	Locale     string `json:"locale"`
	Source     string `json:"source"` // "local" or "remote"
}

// SpeechService turns advisory replies into audio. Synthesis is strictly
// one utterance at a time: a Speak call while speaking acts as a stop
// toggle and produces no audio.
type SpeechService interface {
	Speak(ctx context.Context, text, profileLang string) (*Utterance, error)
	Stop()
	IsSpeaking() bool
}

type speechService struct {
	cfg      config.SpeechConfig
	provider advisor.Provider
	daemon   *local.Client
	logger   *Logger.Logger

	mu      sync.Mutex
	machine *fsm.FSM
	cancel  context.CancelFunc
}

func NewSpeechService(cfg config.SpeechConfig, provider advisor.Provider, daemon *local.Client, logger *Logger.Logger) SpeechService {
	machine := fsm.NewFSM(
		stateIdle,
		fsm.Events{
			{Name: eventSpeak, Src: []string{stateIdle}, Dst: stateSpeaking},
			{Name: eventStop, Src: []string{stateSpeaking, stateIdle}, Dst: stateIdle},
		},
		fsm.Callbacks{},
	)
	return &speechService{
		cfg:      cfg,
		provider: provider,
		daemon:   daemon,
		logger:   logger,
		machine:  machine,
	}
}

// Speak implements SpeechService.
func (s *speechService) Speak(ctx context.Context, text, profileLang string) (*Utterance, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	s.mu.Lock()
	if s.machine.Is(stateSpeaking) {
		// toggle: a second request interrupts the current utterance
		s.stopLocked()
		s.mu.Unlock()
		return nil, nil
	}
	if err := s.machine.Event(ctx, eventSpeak); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("speech busy: %w", err)
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.stopLocked()
		s.mu.Unlock()
	}()

	locale := DetectLocale(text, profileLang)
	if voice, ok := s.localVoiceFor(locale); ok {
		utt, err := s.speakLocal(ctx, text, voice, locale)
		if err == nil {
			return utt, nil
		}
		s.logger.Warnf("local synthesis failed, escalating: %v", err)
	}
	return s.speakRemote(ctx, text, locale)
}

// localVoiceFor finds a configured daemon voice matching the locale's
// language prefix. English always resolves locally when any voice exists.
func (s *speechService) localVoiceFor(locale string) (string, bool) {
	prefix := strings.SplitN(locale, "-", 2)[0]
	for _, v := range s.cfg.LocalVoices {
		if strings.HasPrefix(strings.ToLower(v.Locale), prefix) {
			return v.Name, true
		}
	}
	if prefix == "en" && len(s.cfg.LocalVoices) > 0 {
		return s.cfg.LocalVoices[0].Name, true
	}
	return "", false
}

func (s *speechService) speakLocal(ctx context.Context, text, voice, locale string) (*Utterance, error) {
	if s.daemon == nil {
		return nil, fmt.Errorf("no local daemon configured")
	}
	wav, err := s.daemon.Synthesize(ctx, text, voice)
	if err != nil {
		return nil, err
	}
	// wav carries its own sample rate in the header
	return &Utterance{
		Audio:  base64.StdEncoding.EncodeToString(wav),
		Format: "wav",
		Locale: locale,
		Source: "local",
	}, nil
}

func (s *speechService) speakRemote(ctx context.Context, text, locale string) (*Utterance, error) {
	lang := strings.SplitN(locale, "-", 2)[0]
	voice := s.cfg.SynthVoiceBase
	if lang == "hi" || lang == "pa" || lang == "mr" {
		voice = s.cfg.SynthVoiceIN
	}

	reply, err := s.provider.Synthesize(ctx, advisor.SpeechRequest{
		Text:  text,
		Lang:  lang,
		Voice: voice,
	})
	if err != nil {
		return nil, fmt.Errorf("remote synthesis failed: %w", err)
	}
	pcm, err := audio.DecodeBase64(reply)
	if err != nil {
		return nil, fmt.Errorf("remote synthesis returned bad audio: %w", err)
	}
	// Providers hand back raw s16le samples. Wrapping them in a wav
	// container makes local and remote utterances interchangeable for
	// the client.
	wav := append(audio.WAVHeader(len(pcm), s.cfg.PlaybackRate), pcm...)
	return &Utterance{
		Audio:      base64.StdEncoding.EncodeToString(wav),
		Format:     "wav",
		SampleRate: s.cfg.PlaybackRate,
		Locale:     locale,
		Source:     "remote",
	}, nil
}

// Stop implements SpeechService.
func (s *speechService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *speechService) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.machine.Is(stateSpeaking) {
		_ = s.machine.Event(context.Background(), eventStop)
	}
}

// IsSpeaking implements SpeechService.
func (s *speechService) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Is(stateSpeaking)
}
