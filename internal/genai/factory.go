package genai

import (
	"fmt"
	"strings"
)

// NewFromEnv selects a provider from configuration. An empty provider
// defaults to Gemini. A missing credential is not an error: the caller gets
// a nil client and must degrade to rule-based-only mode with a
// serviceUnavailable warning instead of failing hard.
func NewFromEnv(provider, geminiKey, openaiKey, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case "", "gemini":
		if geminiKey == "" {
			return nil, nil
		}
		if model != "" {
			return NewGeminiClientWithModel(geminiKey, model), nil
		}
		return NewGeminiClient(geminiKey), nil

	case "openai":
		if openaiKey == "" {
			return nil, nil
		}
		if model != "" {
			return NewOpenAIClientWithModel(openaiKey, model), nil
		}
		return NewOpenAIClient(openaiKey), nil

	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s (supported: gemini, openai)", provider)
	}
}
