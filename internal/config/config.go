package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Gemini SDK backends selectable through GEMINI_SDK.
const (
	SDKGenerativeAI = "generative-ai"
	SDKGenAI        = "genai"
)

// ServerConfig configures the completion gateway.
type ServerConfig struct {
	// Server
	Port         string        `envconfig:"PORT" default:"5000"`
	Env          string        `envconfig:"ENV" default:"development"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"90s"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"60s"`

	// Gemini AI
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" required:"true"`
	GeminiSDK    string `envconfig:"GEMINI_SDK" default:"generative-ai"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
}

// ChatConfig configures the terminal chat front-end.
type ChatConfig struct {
	GatewayURL     string        `envconfig:"GEMINO_GATEWAY_URL" default:"http://localhost:5000"`
	RequestTimeout time.Duration `envconfig:"GEMINO_REQUEST_TIMEOUT" default:"60s"`
	LogFile        string        `envconfig:"GEMINO_LOG_FILE" default:"gemino-chat.log"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadServer reads .env (when present) and the process environment.
func LoadServer() (*ServerConfig, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	var cfg ServerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("required environment variable GEMINI_API_KEY is not set")
	}
	if err := validateSDK(cfg.GeminiSDK); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadChat reads .env (when present) and the process environment.
func LoadChat() (*ChatConfig, error) {
	_ = godotenv.Load()

	var cfg ChatConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load chat config: %w", err)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("GEMINO_REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	return &cfg, nil
}

// Addr is the listen address for the gateway.
func (c *ServerConfig) Addr() string {
	return ":" + c.Port
}

func validateSDK(sdk string) error {
	switch sdk {
	case SDKGenerativeAI, SDKGenAI:
		return nil
	default:
		return fmt.Errorf("unsupported GEMINI_SDK %q (want %q or %q)", sdk, SDKGenerativeAI, SDKGenAI)
	}
}
