package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	PoolSize int    `mapstructure:"pool_size"`
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Name)
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
	Pass string `mapstructure:"pass"`
}

// AdvisoryConfig drives the gateway to the generative model.
// DemoOps lists the operations that serve fixed demonstration payloads
// instead of calling the network; both paths are first-class.
type AdvisoryConfig struct {
	Provider     string   `mapstructure:"provider"` // "gemini" or "openai"
	GeminiAPIKey string   `mapstructure:"gemini_api_key"`
	OpenAIAPIKey string   `mapstructure:"openai_api_key"`
	TextModel    string   `mapstructure:"text_model"`
	VisionModel  string   `mapstructure:"vision_model"`
	DemoOps      []string `mapstructure:"demo_ops"`
}

func (a AdvisoryConfig) IsDemoOp(name string) bool {
	for _, op := range a.DemoOps {
		if op == name {
			return true
		}
	}
	return false
}

// LocalVoice describes one voice available on the local synthesis daemon.
type LocalVoice struct {
	Name   string `mapstructure:"name"`
	Locale string `mapstructure:"locale"` // e.g. "hi-IN"
}

type SpeechConfig struct {
	LocalTTSURL    string       `mapstructure:"local_tts_url"`
	LocalVoices    []LocalVoice `mapstructure:"local_voices"`
	PlaybackRate   int          `mapstructure:"playback_rate"`   // Hz, synthesized audio
	CaptureRate    int          `mapstructure:"capture_rate"`    // Hz, live-mode microphone
	FrameSamples   int          `mapstructure:"frame_samples"`   // samples per live capture frame
	SynthVoiceIN   string       `mapstructure:"synth_voice_in"`  // remote voice for Indic languages
	SynthVoiceBase string       `mapstructure:"synth_voice_base"`
}

type LiveConfig struct {
	Model      string `mapstructure:"model"`
	BufferSize int    `mapstructure:"buffer_size"` // capture ring buffer, bytes
}

type AuthConfig struct {
	JWTSecret     string `mapstructure:"jwt_secret"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Settings struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Advisory AdvisoryConfig `mapstructure:"advisory"`
	Speech   SpeechConfig   `mapstructure:"speech"`
	Live     LiveConfig     `mapstructure:"live"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Env      string         `mapstructure:"env"`
	Debug    bool           `mapstructure:"debug"`
}

func Load() (*Settings, error) {
	viper.SetConfigName("config_" + genEnv())
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")

	// API credentials come from process environment, never the file.
	viper.SetEnvPrefix("KISAN")
	viper.AutomaticEnv()
	viper.BindEnv("advisory.gemini_api_key", "KISAN_GEMINI_API_KEY", "GEMINI_API_KEY")
	viper.BindEnv("advisory.openai_api_key", "KISAN_OPENAI_API_KEY", "OPENAI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	settings.applyDefaults()

	return &settings, nil
}

func (s *Settings) applyDefaults() {
	if s.Server.Addr == "" {
		s.Server.Addr = ":8080"
	}
	if s.Server.ShutdownTimeout == 0 {
		s.Server.ShutdownTimeout = 5 * time.Second
	}
	if s.Advisory.Provider == "" {
		s.Advisory.Provider = "gemini"
	}
	if s.Advisory.TextModel == "" {
		s.Advisory.TextModel = "gemini-2.5-flash"
	}
	if s.Advisory.VisionModel == "" {
		s.Advisory.VisionModel = "gemini-2.5-pro"
	}
	if s.Advisory.DemoOps == nil {
		// mirrors the operations that ship demo-wired
		s.Advisory.DemoOps = []string{"weather", "fertilizer", "schemes", "crops"}
	}
	if s.Speech.PlaybackRate == 0 {
		s.Speech.PlaybackRate = 24000
	}
	if s.Speech.CaptureRate == 0 {
		s.Speech.CaptureRate = 16000
	}
	if s.Speech.FrameSamples == 0 {
		s.Speech.FrameSamples = 4096
	}
	if s.Speech.SynthVoiceIN == "" {
		s.Speech.SynthVoiceIN = "Kore"
	}
	if s.Speech.SynthVoiceBase == "" {
		s.Speech.SynthVoiceBase = "Puck"
	}
	if s.Live.Model == "" {
		s.Live.Model = "models/gemini-2.0-flash-exp"
	}
	if s.Live.BufferSize == 0 {
		s.Live.BufferSize = 1024 * 1024
	}
}

func genEnv() string {
	env := viper.GetString("ENV")
	if env == "" {
		return "dev"
	}
	return env
}
