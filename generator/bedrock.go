package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"legalsummary-backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

const defaultBedrockModelID = "amazon.titan-text-lite-v1"

// modelInvoker is the subset of the Bedrock Runtime client used here
type modelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockGenerator invokes an Amazon Titan text model through Bedrock Runtime
type BedrockGenerator struct {
	client  modelInvoker
	modelID string
}

type titanRequest struct {
	InputText            string                `json:"inputText"`
	TextGenerationConfig titanGenerationConfig `json:"textGenerationConfig"`
}

type titanGenerationConfig struct {
	MaxTokenCount int     `json:"maxTokenCount"`
	Temperature   float64 `json:"temperature"`
	TopP          float64 `json:"topP"`
}

type titanResponse struct {
	Results []struct {
		OutputText *string `json:"outputText"`
	} `json:"results"`
}

// NewBedrockGenerator creates a Bedrock generator
func NewBedrockGenerator(ctx context.Context, cfg GeneratorConfig) (*BedrockGenerator, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadAWSConfig(ctx, region, cfg.AWSAccessKey, cfg.AWSSecretKey)
	if err != nil {
		return nil, err
	}

	return newBedrockGenerator(bedrockruntime.NewFromConfig(awsCfg), cfg.BedrockModelID), nil
}

func newBedrockGenerator(client modelInvoker, modelID string) *BedrockGenerator {
	if modelID == "" {
		modelID = defaultBedrockModelID
	}
	return &BedrockGenerator{
		client:  client,
		modelID: modelID,
	}
}

// Name returns the provider name
func (g *BedrockGenerator) Name() string {
	return "Bedrock"
}

// Generate invokes the model once with the fixed generation parameters
func (g *BedrockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(titanRequest{
		InputText: prompt,
		TextGenerationConfig: titanGenerationConfig{
			MaxTokenCount: MaxTokenCount,
			Temperature:   Temperature,
			TopP:          TopP,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.modelID),
		Body:        payload,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return "", err
	}

	var body titanResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	log.Printf("Raw Bedrock response: %s", string(resp.Body))

	if len(body.Results) == 0 {
		return "", ErrUnexpectedResponse
	}

	if body.Results[0].OutputText == nil {
		return "", fmt.Errorf("response result has no outputText")
	}

	return *body.Results[0].OutputText, nil
}
