package config

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	for _, key := range []string{
		"HOST", "PORT", "DEBUG", "CORS_ALLOWED_ORIGINS", "MODEL_PROVIDER",
		"AWS_REGION", "BEDROCK_MODEL_ID", "GEMINI_MODEL", "STORAGE_TYPE",
		"STORAGE_LOCAL_PATH", "AWS_S3_BUCKET",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "bedrock", cfg.ModelProvider)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "amazon.titan-text-lite-v1", cfg.BedrockModelID)
	assert.Equal(t, "none", cfg.StorageType)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("DEBUG", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("MODEL_PROVIDER", " Gemini ")
	t.Setenv("STORAGE_TYPE", "S3")
	t.Setenv("AWS_S3_BUCKET", "judgments")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "gemini", cfg.ModelProvider)
	assert.Equal(t, "s3", cfg.StorageType)
	assert.Equal(t, "judgments", cfg.S3Bucket)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}

func TestParseRejectsBadBool(t *testing.T) {
	t.Setenv("DEBUG", "sometimes")

	_, err := Parse()
	require.Error(t, err)
}

func TestLoadAWSConfigRegion(t *testing.T) {
	awsCfg, err := LoadAWSConfig(context.Background(), "ap-south-1", "AKIDEXAMPLE", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ap-south-1", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
}

func TestParseTrimsCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, https://b.test ,, ")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.test", "https://b.test"}, cfg.CORSAllowedOrigins)
}

func TestParseRejectsBadCORSOrigin(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, b.test")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"b.test"`)
}
