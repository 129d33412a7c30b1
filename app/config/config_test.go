package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config

	applyDefaults(&cfg)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.NotEmpty(t, cfg.Business.Company)
	assert.NotEmpty(t, cfg.Business.License)
	assert.NotEmpty(t, cfg.Business.ServiceArea)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Server: Server{Addr: ":9911"},
		OpenAI: OpenAI{Model: "gpt-4.1"},
		Business: Business{
			Company: "Acme Builders",
		},
	}

	applyDefaults(&cfg)

	assert.Equal(t, ":9911", cfg.Server.Addr)
	assert.Equal(t, "gpt-4.1", cfg.OpenAI.Model)
	assert.Equal(t, "Acme Builders", cfg.Business.Company)
}

func TestTokenIsOptional(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Empty(t, cfg.OpenAI.Token)
}
