package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Log      Log      `yaml:"log"`
	OpenAI   OpenAI   `yaml:"openai"`
	Business Business `yaml:"business"`
}

type Server struct {
	// Address to listen on
	Addr string `yaml:"addr" example:":8080" validate:"required"`
}

type OpenAI struct {
	// OpenAI base url
	BaseURL string `yaml:"base_url" example:"https://api.openai.com/v1" validate:"required"`
	// OpenAI token. Optional: when empty the generation collaborator is
	// considered unreachable and every request gets the static fallback reply.
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX"`
	// OpenAI model
	Model string `yaml:"model" example:"gpt-4o-mini" validate:"required"`
}

type Business struct {
	// Company name used in the receptionist persona
	Company string `yaml:"company" example:"Lozano Construction" validate:"required"`
	// Contractor license number
	License string `yaml:"license" example:"FL GC: CGC1532629" validate:"required"`
	// Service area mentioned in replies
	ServiceArea string `yaml:"service_area" example:"North Port, FL" validate:"required"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err == nil {
		if err = yaml.Unmarshal(data, &result); err != nil {
			return nil, oops.Errorf("failed to parse YAML config: %w", err)
		}
	}

	applyDefaults(&result)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o-mini"
	}
	if cfg.Business.Company == "" {
		cfg.Business.Company = "Lozano Construction"
	}
	if cfg.Business.License == "" {
		cfg.Business.License = "FL GC: CGC1532629"
	}
	if cfg.Business.ServiceArea == "" {
		cfg.Business.ServiceArea = "North Port, FL"
	}
}
