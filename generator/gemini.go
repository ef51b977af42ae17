package generator

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// contentGenerator is the subset of genai.GenerativeModel used here
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator sends prompts to a Gemini model
type GeminiGenerator struct {
	client *genai.Client
	model  contentGenerator
}

// NewGeminiGenerator creates a Gemini generator with the fixed generation parameters
func NewGeminiGenerator(ctx context.Context, cfg GeneratorConfig) (*GeminiGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	modelName := cfg.GeminiModel
	if modelName == "" {
		modelName = defaultGeminiModel
	}

	model := client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(MaxTokenCount)
	model.SetTemperature(Temperature)
	model.SetTopP(TopP)

	log.Println("Gemini client initialized")
	return &GeminiGenerator{
		client: client,
		model:  model,
	}, nil
}

// Name returns the provider name
func (g *GeminiGenerator) Name() string {
	return "Gemini"
}

// Generate sends the prompt and concatenates the text parts of every candidate
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrUnexpectedResponse
	}

	var responseText strings.Builder
	for i, candidate := range resp.Candidates {
		if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
			log.Printf("Warning: Candidate %d finished with reason: %s", i, candidate.FinishReason)
		}
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				responseText.WriteString(string(text))
			}
		}
	}

	if responseText.Len() == 0 {
		return "", ErrUnexpectedResponse
	}

	return responseText.String(), nil
}

// Close releases the underlying Gemini client
func (g *GeminiGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
