package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agrovoice/kisanbhai/pkg/advisor"
)

// Speech goes through the REST surface with response_format "pcm", which
// yields s16le mono samples at 24000 Hz, the same wire format the rest of
// the playback path expects.

const speechURL = "https://api.openai.com/v1/audio/speech"

type speechBody struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// voiceFor maps the configured synthesis voice names onto the openai
// catalog. Anything unrecognized falls back to "alloy".
func voiceFor(name string) string {
	switch name {
	case "Kore":
		return "nova"
	case "Puck":
		return "echo"
	case "alloy", "echo", "fable", "onyx", "nova", "shimmer":
		return name
	default:
		return "alloy"
	}
}

// Synthesize implements advisor.Provider.
func (o *OpenAIProvider) Synthesize(ctx context.Context, req advisor.SpeechRequest) (string, error) {
	body := speechBody{
		Model:          "tts-1",
		Input:          req.Text,
		Voice:          voiceFor(req.Voice),
		ResponseFormat: "pcm",
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal speech request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, speechURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build speech request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("speech request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("speech request returned %d: %s", resp.StatusCode, string(msg))
	}

	pcm, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read speech audio: %w", err)
	}
	return base64.StdEncoding.EncodeToString(pcm), nil
}
