package genai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"health-advisor/internal/triage"
)

// OpenAIClient is the alternate provider behind the factory, kept API-compatible
// with the Gemini client so the orchestrator never knows which one it holds.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  "gpt-4o-mini",
	}
}

func NewOpenAIClientWithModel(apiKey, model string) *OpenAIClient {
	c := NewOpenAIClient(apiKey)
	c.model = model
	return c
}

func (c *OpenAIClient) GeneratePathway(ctx context.Context, input triage.TriageInput, summary CatalogSummary, history []Turn) (*triage.GeneratedPathway, error) {
	messages := make([]openai.ChatCompletionMessage, 0, maxHistoryTurns+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: buildSystemInstruction(input.AgeBand, input.CaregiverTag),
	})
	for _, turn := range trimHistory(history) {
		role := openai.ChatMessageRoleUser
		if turn.Role == "model" || turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: buildUserPrompt(input, summary),
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.4,
		MaxTokens:   2048,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &UpstreamError{Message: err.Error()}
	}
	if len(resp.Choices) == 0 {
		return nil, &UpstreamError{Message: "empty response from OpenAI"}
	}

	return parsePathwayJSON(resp.Choices[0].Message.Content)
}
