package generator

import (
	"context"
	"errors"
	"fmt"
)

// Generation parameters sent with every prompt
const (
	MaxTokenCount = 1000
	Temperature   = 0.7
	TopP          = 0.9
)

// ErrUnexpectedResponse is returned when the model reply is well-formed
// but carries no generated text
var ErrUnexpectedResponse = errors.New("unexpected response format")

// Generator sends a prompt to a hosted text-generation model
type Generator interface {
	// Generate returns the model's generated text for the prompt
	Generate(ctx context.Context, prompt string) (string, error)

	// Name identifies the model provider in error messages
	Name() string
}

// GeneratorType represents the model provider
type GeneratorType string

const (
	GeneratorTypeBedrock GeneratorType = "bedrock"
	GeneratorTypeGemini  GeneratorType = "gemini"
)

// GeneratorConfig holds configuration for the model provider
type GeneratorConfig struct {
	Type           GeneratorType
	Region         string // For Bedrock
	BedrockModelID string // For Bedrock
	AWSAccessKey   string
	AWSSecretKey   string
	GeminiAPIKey   string // For Gemini
	GeminiModel    string // For Gemini
}

// NewGenerator creates a generator based on configuration
func NewGenerator(ctx context.Context, cfg GeneratorConfig) (Generator, error) {
	switch cfg.Type {
	case GeneratorTypeBedrock:
		return NewBedrockGenerator(ctx, cfg)
	case GeneratorTypeGemini:
		return NewGeminiGenerator(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Type)
	}
}
