package config

import (
	"context"
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server configuration read at startup
type Config struct {
	Host  string `env:"HOST"  envDefault:"0.0.0.0"`
	Port  string `env:"PORT"  envDefault:"5000"`
	Debug bool   `env:"DEBUG" envDefault:"false"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	ModelProvider  string `env:"MODEL_PROVIDER"   envDefault:"bedrock"`
	AWSRegion      string `env:"AWS_REGION"       envDefault:"us-east-1"`
	BedrockModelID string `env:"BEDROCK_MODEL_ID" envDefault:"amazon.titan-text-lite-v1"`
	AWSAccessKey   string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretKey   string `env:"AWS_SECRET_ACCESS_KEY"`
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`
	GeminiModel    string `env:"GEMINI_MODEL"     envDefault:"gemini-1.5-flash"`

	StorageType      string `env:"STORAGE_TYPE"       envDefault:"none"`
	StorageLocalPath string `env:"STORAGE_LOCAL_PATH" envDefault:"./storage/documents"`
	S3Bucket         string `env:"AWS_S3_BUCKET"`
}

// Load reads an optional .env file and parses the environment into a Config
func Load() (Config, error) {
	// Try current directory first, then project root (relative to cmd/server/)
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	return Parse()
}

// Parse reads the Config from the process environment only
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.ModelProvider = strings.ToLower(strings.TrimSpace(cfg.ModelProvider))
	cfg.StorageType = strings.ToLower(strings.TrimSpace(cfg.StorageType))

	origins, err := parseOrigins(cfg.CORSAllowedOrigins)
	if err != nil {
		return Config{}, err
	}
	cfg.CORSAllowedOrigins = origins

	return cfg, nil
}

// parseOrigins trims and validates CORS origins, dropping empty entries
func parseOrigins(raw []string) ([]string, error) {
	origins := make([]string, 0, len(raw))
	for _, origin := range raw {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("invalid CORS origin %q: must be '*' or start with http:// or https://", origin)
		}
		origins = append(origins, origin)
	}
	return origins, nil
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// LoadAWSConfig loads AWS configuration for the given region.
// Static credentials are used when both keys are set, otherwise the default chain.
func LoadAWSConfig(ctx context.Context, region, accessKey, secretKey string) (aws.Config, error) {
	var awsCfg aws.Config
	var err error

	if accessKey != "" && secretKey != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				accessKey,
				secretKey,
				"",
			)),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(region),
		)
	}

	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return awsCfg, nil
}
