package livevoice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"
)

const upstreamHost = "generativelanguage.googleapis.com"
const upstreamPath = "/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"

// Upstream is the bidirectional link to the live generation backend.
// Audio flows up as 16 kHz PCM media chunks and comes back as 24 kHz
// PCM inline data.
type Upstream struct {
	conn *websocket.Conn
}

// ServerEvent is one decoded frame from the upstream stream.
type ServerEvent struct {
	Audio        []string // base64 PCM chunks from the model turn
	Text         string
	Interrupted  bool
	TurnComplete bool
	SetupDone    bool
}

type setupMessage struct {
	Setup struct {
		Model            string `json:"model"`
		GenerationConfig struct {
			ResponseModalities []string `json:"responseModalities"`
		} `json:"generationConfig"`
		SystemInstruction *upstreamContent `json:"systemInstruction,omitempty"`
	} `json:"setup"`
}

type upstreamContent struct {
	Parts []upstreamPart `json:"parts"`
	Role  string         `json:"role,omitempty"`
}

type upstreamPart struct {
	Text       string              `json:"text,omitempty"`
	InlineData *upstreamInlineData `json:"inlineData,omitempty"`
}

type upstreamInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type realtimeInputMessage struct {
	RealtimeInput struct {
		MediaChunks []upstreamInlineData `json:"mediaChunks"`
	} `json:"realtimeInput"`
}

type clientContentMessage struct {
	ClientContent struct {
		Turns        []upstreamContent `json:"turns"`
		TurnComplete bool              `json:"turnComplete"`
	} `json:"clientContent"`
}

type serverMessage struct {
	SetupComplete *struct{} `json:"setupComplete,omitempty"`
	ServerContent *struct {
		ModelTurn *struct {
			Parts []upstreamPart `json:"parts"`
		} `json:"modelTurn,omitempty"`
		Interrupted  bool `json:"interrupted,omitempty"`
		TurnComplete bool `json:"turnComplete,omitempty"`
	} `json:"serverContent,omitempty"`
}

// DialUpstream connects and performs the setup exchange. The system
// instruction pins the advisor persona and response language.
func DialUpstream(ctx context.Context, apiKey, model, systemInstruction string) (*Upstream, error) {
	u := url.URL{
		Scheme:   "wss",
		Host:     upstreamHost,
		Path:     upstreamPath,
		RawQuery: "key=" + url.QueryEscape(apiKey),
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial live backend: %w", err)
	}

	var setup setupMessage
	setup.Setup.Model = model
	setup.Setup.GenerationConfig.ResponseModalities = []string{"AUDIO"}
	if systemInstruction != "" {
		setup.Setup.SystemInstruction = &upstreamContent{
			Parts: []upstreamPart{{Text: systemInstruction}},
		}
	}

	if err := conn.WriteJSON(setup); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to send live setup: %w", err)
	}

	up := &Upstream{conn: conn}

	// The backend acknowledges setup before it accepts media.
	ev, err := up.Read()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("live setup not acknowledged: %w", err)
	}
	if !ev.SetupDone {
		conn.Close()
		return nil, fmt.Errorf("unexpected first live frame")
	}

	return up, nil
}

// SendAudio forwards one base64 microphone frame (s16le mono 16 kHz).
func (u *Upstream) SendAudio(b64 string) error {
	var msg realtimeInputMessage
	msg.RealtimeInput.MediaChunks = []upstreamInlineData{{
		MimeType: "audio/pcm;rate=16000",
		Data:     b64,
	}}
	return u.conn.WriteJSON(msg)
}

// SendText submits a typed turn mid-session.
func (u *Upstream) SendText(text string) error {
	var msg clientContentMessage
	msg.ClientContent.Turns = []upstreamContent{{
		Role:  "user",
		Parts: []upstreamPart{{Text: text}},
	}}
	msg.ClientContent.TurnComplete = true
	return u.conn.WriteJSON(msg)
}

// Read blocks for the next upstream frame and decodes it.
func (u *Upstream) Read() (*ServerEvent, error) {
	_, data, err := u.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	return decodeServerFrame(data)
}

func decodeServerFrame(data []byte) (*ServerEvent, error) {
	var msg serverMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to decode live frame: %w", err)
	}

	ev := &ServerEvent{}
	if msg.SetupComplete != nil {
		ev.SetupDone = true
		return ev, nil
	}
	if sc := msg.ServerContent; sc != nil {
		ev.Interrupted = sc.Interrupted
		ev.TurnComplete = sc.TurnComplete
		if sc.ModelTurn != nil {
			for _, part := range sc.ModelTurn.Parts {
				if part.InlineData != nil && part.InlineData.Data != "" {
					ev.Audio = append(ev.Audio, part.InlineData.Data)
				}
				if part.Text != "" {
					ev.Text += part.Text
				}
			}
		}
	}
	return ev, nil
}

func (u *Upstream) Close() error {
	return u.conn.Close()
}
