package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/agrovoice/kisanbhai/pkg/advisor"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

type OpenAIProvider struct {
	client openai.Client
	apiKey string
}

// New creates a new OpenAIProvider instance.
func New(apiKey string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key is not configured")
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		apiKey: apiKey,
	}, nil
}

func (o *OpenAIProvider) Name() string { return "openai" }

// Complete implements advisor.Provider.
func (o *OpenAIProvider) Complete(ctx context.Context, req advisor.ChatRequest) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+2)
	if req.System != "" {
		msgs = append(msgs, openai.SystemMessage(req.System))
	}
	for _, turn := range req.History {
		if turn.FromUser {
			msgs = append(msgs, openai.UserMessage(turn.Text))
		} else {
			msgs = append(msgs, openai.AssistantMessage(turn.Text))
		}
	}
	msgs = append(msgs, o.userMessage(req.Message, req.Image))

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: msgs,
		Model:    req.Model,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// CompleteJSON implements advisor.Provider. OpenAI has no schema-typed
// response mode matching ours, so the shape is spelled out in the prompt
// and json_object mode keeps the reply parseable.
func (o *OpenAIProvider) CompleteJSON(ctx context.Context, req advisor.StructuredRequest) (string, error) {
	prompt := req.Prompt
	if req.Schema != nil {
		prompt = fmt.Sprintf("%s\nRespond with a JSON object shaped as: %s", prompt, describeSchema(req.Schema))
	}

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			o.userMessage(prompt, req.Image),
		},
		Model: req.Model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai structured request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

func (o *OpenAIProvider) userMessage(text string, image []byte) openai.ChatCompletionMessageParamUnion {
	if len(image) == 0 {
		return openai.UserMessage(text)
	}
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
	return openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(text),
		openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
	})
}

func describeSchema(s *advisor.Schema) string {
	return describeFields(s.Fields)
}

func describeFields(fields []advisor.Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%q: %s", f.Name, describeType(f)))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func describeType(f advisor.Field) string {
	switch f.Type {
	case advisor.TypeNumber:
		return "number"
	case advisor.TypeBoolean:
		return "boolean"
	case advisor.TypeStringArray:
		return "[string]"
	case advisor.TypeObjectArray:
		return "[" + describeFields(f.Items) + "]"
	case advisor.TypeObject:
		return describeFields(f.Items)
	default:
		return "string"
	}
}
