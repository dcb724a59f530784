package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"health-advisor/internal/triage"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent REST API directly.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   "gemini-1.5-flash",
		baseURL: defaultGeminiBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func NewGeminiClientWithModel(apiKey, model string) *GeminiClient {
	c := NewGeminiClient(apiKey)
	c.model = model
	return c
}

// Request/response wire types for generateContent.

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
	SafetySettings    []geminiSafetySetting  `json:"safetySettings"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// defaultSafetySettings pins moderate-or-stricter blocking for the harm
// categories required for health content.
var defaultSafetySettings = []geminiSafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// GeneratePathway sends the constrained prompt to Gemini and parses the
// generated JSON pathway. Non-2xx responses and unparseable payloads surface
// as *UpstreamError; context cancellation and deadlines pass through.
func (c *GeminiClient) GeneratePathway(ctx context.Context, input triage.TriageInput, summary CatalogSummary, history []Turn) (*triage.GeneratedPathway, error) {
	contents := make([]geminiContent, 0, maxHistoryTurns+1)
	for _, turn := range trimHistory(history) {
		role := "user"
		if turn.Role == "model" || turn.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: turn.Content}}})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: buildUserPrompt(input, summary)}},
	})

	reqBody := geminiRequest{
		Contents: contents,
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: buildSystemInstruction(input.AgeBand, input.CaregiverTag)}},
		},
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: 2048,
			Temperature:     0.4,
			TopP:            0.9,
			TopK:            40,
		},
		SafetySettings: defaultSafetySettings,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBytes))}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return nil, &UpstreamError{Message: "malformed response body: " + err.Error()}
	}
	if parsed.Error.Message != "" {
		return nil, &UpstreamError{Message: parsed.Error.Message}
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, &UpstreamError{Message: "empty response from Gemini"}
	}

	return parsePathwayJSON(parsed.Candidates[0].Content.Parts[0].Text)
}

// parsePathwayJSON decodes the generated text into a pathway. Models often
// wrap JSON in markdown fences, so those are stripped first. The merge is
// all-or-nothing: any parse failure discards the whole generated result.
func parsePathwayJSON(text string) (*triage.GeneratedPathway, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var pathway triage.GeneratedPathway
	if err := json.Unmarshal([]byte(cleaned), &pathway); err != nil {
		return nil, &UpstreamError{Message: "generated pathway is not valid JSON: " + err.Error()}
	}

	// Renumber steps so order is 1-based and gapless regardless of what the
	// model produced.
	for i := range pathway.ImmediateActions {
		pathway.ImmediateActions[i].Order = i + 1
	}
	return &pathway, nil
}
