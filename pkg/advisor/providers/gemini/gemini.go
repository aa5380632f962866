package gemini

import (
	"context"
	"fmt"

	"github.com/agrovoice/kisanbhai/pkg/advisor"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiProvider struct {
	client *genai.Client
	apiKey string
}

// New creates a new GeminiProvider instance.
func New(apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini API client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		apiKey: apiKey,
	}, nil
}

func (gp *GeminiProvider) Name() string { return "gemini" }

// Complete implements advisor.Provider.
func (gp *GeminiProvider) Complete(ctx context.Context, req advisor.ChatRequest) (string, error) {
	model := gp.client.GenerativeModel(req.Model)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}

	cs := model.StartChat()
	for _, turn := range req.History {
		role := "model"
		if turn.FromUser {
			role = "user"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	var parts []genai.Part
	if req.Message != "" {
		parts = append(parts, genai.Text(req.Message))
	}
	if len(req.Image) > 0 {
		parts = append(parts, genai.ImageData("jpeg", req.Image))
	}

	resp, err := cs.SendMessage(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini chat failed: %w", err)
	}
	return extractText(resp)
}

// CompleteJSON implements advisor.Provider.
func (gp *GeminiProvider) CompleteJSON(ctx context.Context, req advisor.StructuredRequest) (string, error) {
	model := gp.client.GenerativeModel(req.Model)
	model.ResponseMIMEType = "application/json"
	if req.Schema != nil {
		model.ResponseSchema = toGenaiSchema(req.Schema)
	}

	var parts []genai.Part
	if len(req.Image) > 0 {
		parts = append(parts, genai.ImageData("jpeg", req.Image))
	}
	parts = append(parts, genai.Text(req.Prompt))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini structured request failed: %w", err)
	}
	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			out += string(t)
		}
	}
	if out == "" {
		return "", fmt.Errorf("gemini returned no text parts")
	}
	return out, nil
}

func toGenaiSchema(s *advisor.Schema) *genai.Schema {
	return objectSchema(s.Fields)
}

func objectSchema(fields []advisor.Field) *genai.Schema {
	props := make(map[string]*genai.Schema, len(fields))
	var required []string
	for _, f := range fields {
		props[f.Name] = fieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}

func fieldSchema(f advisor.Field) *genai.Schema {
	switch f.Type {
	case advisor.TypeNumber:
		return &genai.Schema{Type: genai.TypeNumber}
	case advisor.TypeBoolean:
		return &genai.Schema{Type: genai.TypeBoolean}
	case advisor.TypeStringArray:
		return &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		}
	case advisor.TypeObjectArray:
		return &genai.Schema{
			Type:  genai.TypeArray,
			Items: objectSchema(f.Items),
		}
	case advisor.TypeObject:
		return objectSchema(f.Items)
	default:
		return &genai.Schema{Type: genai.TypeString}
	}
}
