package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agrovoice/kisanbhai/pkg/advisor"
)

// The Go genai client has no audio response modality, so speech goes
// through the REST surface directly. The reply carries base64 s16le mono
// PCM at 24000 Hz.

const speechEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

const speechModel = "gemini-2.5-flash"

type speechRequest struct {
	Contents         []speechContent `json:"contents"`
	GenerationConfig struct {
		ResponseModalities []string `json:"responseModalities"`
		SpeechConfig       struct {
			VoiceConfig struct {
				PrebuiltVoiceConfig struct {
					VoiceName string `json:"voiceName"`
				} `json:"prebuiltVoiceConfig"`
			} `json:"voiceConfig"`
		} `json:"speechConfig"`
	} `json:"generationConfig"`
}

type speechContent struct {
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

type speechResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData struct {
					Data string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Synthesize implements advisor.Provider.
func (gp *GeminiProvider) Synthesize(ctx context.Context, req advisor.SpeechRequest) (string, error) {
	body := speechRequest{}
	content := speechContent{}
	content.Parts = append(content.Parts, struct {
		Text string `json:"text"`
	}{Text: fmt.Sprintf("Say in %s: %s", req.Lang, req.Text)})
	body.Contents = append(body.Contents, content)
	body.GenerationConfig.ResponseModalities = []string{"AUDIO"}
	body.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName = req.Voice

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal speech request: %w", err)
	}

	url := fmt.Sprintf(speechEndpoint, speechModel, gp.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build speech request: %w", err)
	}
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

	var parsed speechResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode speech response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("speech response carried no audio")
	}

	data := parsed.Candidates[0].Content.Parts[0].InlineData.Data
	if data == "" {
		return "", fmt.Errorf("speech response carried no audio")
	}
	return data, nil
}
