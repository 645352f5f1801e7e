// Package assistant adapts Google's Gemini API to domain.Assistant.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"startupambassadors/internal/domain"
)

const DefaultModel = "gemini-2.0-flash"

// generator is the part of genai.Models the assistant uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type gemini struct {
	models generator
	model  string
}

// NewGemini creates a Gemini-backed assistant. It returns an error when apiKey is empty.
func NewGemini(ctx context.Context, apiKey, model string) (domain.Assistant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGemini(client.Models, model), nil
}

func newGemini(models generator, model string) *gemini {
	if model == "" {
		model = DefaultModel
	}
	return &gemini{models: models, model: model}
}

func (g *gemini) Reply(ctx context.Context, systemInstruction, message string) (string, error) {
	config := &genai.GenerateContentConfig{}
	if systemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(message), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("generate content: empty reply")
	}
	return reply, nil
}
