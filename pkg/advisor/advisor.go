// Package advisor abstracts the generative model behind the advisory
// gateway. Providers return raw JSON text for structured operations; the
// caller owns decoding into the declared reply shape.
package advisor

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by a provider for operations it cannot serve.
// The gateway treats it like any other failure and falls back.
var ErrUnsupported = errors.New("operation not supported by provider")

// Turn is one prior exchange in a chat history.
type Turn struct {
	FromUser bool
	Text     string
}

// ChatRequest is a free-text conversational exchange. Image, when set,
// carries raw JPEG bytes attached to the final user turn.
type ChatRequest struct {
	Model   string
	System  string
	History []Turn
	Message string
	Image   []byte
}

// StructuredRequest asks for a reply conforming to Schema, returned as raw
// JSON text.
type StructuredRequest struct {
	Model  string
	Prompt string
	Image  []byte // optional JPEG
	Schema *Schema
}

// SpeechRequest asks for synthesized speech. The reply is s16le mono PCM
// at 24000 Hz, base64 encoded.
type SpeechRequest struct {
	Text  string
	Lang  string
	Voice string
}

type Provider interface {
	Name() string
	Complete(ctx context.Context, req ChatRequest) (string, error)
	CompleteJSON(ctx context.Context, req StructuredRequest) (string, error)
	Synthesize(ctx context.Context, req SpeechRequest) (string, error)
}
