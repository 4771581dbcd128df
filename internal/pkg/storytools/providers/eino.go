package providers

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/chaesu44438/emotion-theater/internal/pkg/storytools"
)

// EinoTextGenerator adapts an eino ChatModel to the storytools
// TextGenerator interface. The ChatModel is created through
// ai/component.NewChatModel, so every configured provider works here.
type EinoTextGenerator struct {
	chatModel model.ChatModel
}

// NewEinoTextGenerator creates the adapter.
func NewEinoTextGenerator(chatModel model.ChatModel) *EinoTextGenerator {
	return &EinoTextGenerator{chatModel: chatModel}
}

// Generate produces text from a system prompt and a user prompt.
func (g *EinoTextGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string, opts storytools.GenerateOptions) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userPrompt),
	}
	return g.generate(ctx, messages, opts)
}

// GenerateWithImage attaches a reference image to the user prompt at low
// detail for vision-conditioned prompting.
func (g *EinoTextGenerator) GenerateWithImage(ctx context.Context, systemPrompt, userPrompt, imageURL string, opts storytools.GenerateOptions) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		{
			Role: schema.User,
			MultiContent: []schema.ChatMessagePart{
				{Type: schema.ChatMessagePartTypeText, Text: userPrompt},
				{
					Type: schema.ChatMessagePartTypeImageURL,
					ImageURL: &schema.ChatMessageImageURL{
						URL:    imageURL,
						Detail: schema.ImageURLDetailLow,
					},
				},
			},
		},
	}
	return g.generate(ctx, messages, opts)
}

func (g *EinoTextGenerator) generate(ctx context.Context, messages []*schema.Message, opts storytools.GenerateOptions) (string, error) {
	if g.chatModel == nil {
		return "", fmt.Errorf("chatModel is required")
	}

	var callOpts []model.Option
	if opts.Temperature > 0 {
		callOpts = append(callOpts, model.WithTemperature(float32(opts.Temperature)))
	}
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, model.WithMaxTokens(opts.MaxTokens))
	}

	response, err := g.chatModel.Generate(ctx, messages, callOpts...)
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}
	if response.Content == "" {
		return "", fmt.Errorf("empty response from chat model")
	}
	return response.Content, nil
}
