// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	domainerror "github.com/invoice-hub/backend/internal/domain/error"
)

// GeminiService implements the adapter.AIService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Answer sends the assembled prompt to Gemini and returns the model's text
// reply. The session carries a fixed short preamble and blocks content at
// medium-and-above thresholds.
func (s *GeminiService) Answer(ctx context.Context, prompt string) (string, error) {
	if !s.IsAvailable() {
		return "", domainerror.ErrAIServiceUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	session := model.StartChat()
	session.History = []*genai.Content{
		{
			Role:  "user",
			Parts: []genai.Part{genai.Text("You answer questions about invoice records. Be concise and only use the data provided in each message.")},
		},
		{
			Role:  "model",
			Parts: []genai.Part{genai.Text("Understood. I will answer concisely using only the provided invoice data.")},
		},
	}

	resp, err := session.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractText(resp)
}

// extractText pulls the text content out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", domainerror.ErrEmptyAIResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return "", domainerror.ErrEmptyAIResponse
	}
	return answer, nil
}
