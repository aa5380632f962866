package livevoice

import "time"

// MessageType defines the type of live session WebSocket message
type MessageType string

const (
	MessageTypeReady       MessageType = "ready"
	MessageTypeAudio       MessageType = "audio"
	MessageTypeText        MessageType = "text"
	MessageTypeInterrupted MessageType = "interrupted"
	MessageTypeTurnDone    MessageType = "turn_done"
	MessageTypeError       MessageType = "error"
	MessageTypeClose       MessageType = "close"
)

// WSMessage represents the structure of live session messages
type WSMessage struct {
	Type      MessageType `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	SessionID string      `json:"sessionId,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// CaptureFrame is one inbound microphone frame: base64 s16le mono PCM at
// the capture rate (16000 Hz), 4096 samples per frame.
type CaptureFrame struct {
	Data       string `json:"data"`
	SampleRate int    `json:"sampleRate"`
}

// PlaybackChunk is one outbound model audio chunk: base64 s16le mono PCM
// at the playback rate, with its start offset on the session timeline.
type PlaybackChunk struct {
	ID         uint64 `json:"id"`
	Data       string `json:"data"`
	SampleRate int    `json:"sampleRate"`
	StartMs    int64  `json:"startMs"`
}

// TextMessage carries typed input sent while the session is live.
type TextMessage struct {
	Content string `json:"content"`
}

// ErrorMessage contains error information
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
