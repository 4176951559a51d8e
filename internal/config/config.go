package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/docker/go-units"
	pkgRetry "github.com/futig/docgen-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr     string   `env:"SERVER_ADDR" envDefault:":8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Generation and search services
	LLMCfg    LLMConfig             `envPrefix:"LLM_"`
	SearchCfg SearchConnectorConfig `envPrefix:"SEARCH_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Rendered artifacts
	OutputCfg OutputConfig `envPrefix:"OUTPUT_"`

	// File upload configuration
	FileUploadCfg FileUploadConfig `envPrefix:"FILE_UPLOAD_"`

	// Assistant knowledge base directory with *.txt and *.yaml topics
	KnowledgeBasePath string `env:"KNOWLEDGE_BASE_PATH" envDefault:"knowledge_base"`

	// OpenAPI description served under /docs
	SwaggerPath string `env:"SWAGGER_PATH" envDefault:"docs/swagger.yaml"`

	// Metered key for the office document renderer
	UnidocLicenseKey string `env:"UNIDOC_LICENSE_KEY"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// LLMConfig configures the generation client. An empty APIKey yields an
// unconfigured client, not a startup error.
type LLMConfig struct {
	Provider        string        `env:"PROVIDER" envDefault:"gemini"`
	APIKey          string        `env:"API_KEY"`
	Model           string        `env:"MODEL" envDefault:"gemini-1.5-flash"`
	VisionModel     string        `env:"VISION_MODEL"`
	BaseURL         string        `env:"BASE_URL"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"90s"`
	Temperature     float32       `env:"TEMPERATURE" envDefault:"0.7"`
	MaxOutputTokens int32         `env:"MAX_OUTPUT_TOKENS" envDefault:"8192"`
}

// ModelFor picks the vision model for image-bearing prompts when one is set.
func (c LLMConfig) ModelFor(hasImages bool) string {
	if hasImages && c.VisionModel != "" {
		return c.VisionModel
	}
	return c.Model
}

type SearchConnectorConfig struct {
	HTTPClientConfig
	Language string               `env:"LANGUAGE" envDefault:"en"`
	CacheTTL time.Duration        `env:"CACHE_TTL" envDefault:"15m"`
	Retry    pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"30s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"20s"`
	Token                 string        `env:"API_KEY"`
	Url                   string        `env:"SERVICE_URL" envDefault:"https://google.serper.dev"`
}

// OutputConfig controls where rendered artifacts are written.
type OutputConfig struct {
	Dir           string `env:"DIR" envDefault:"generated_docs"`
	KeepArtifacts bool   `env:"KEEP_ARTIFACTS" envDefault:"false"`
	// TempDir holds decoded logo images while a document renders. Empty means os.TempDir.
	TempDir string `env:"TEMP_DIR"`
}

// FileUploadConfig holds file upload limits as human readable sizes ("10MB").
type FileUploadConfig struct {
	MaxFileSize  string `env:"MAX_FILE_SIZE" envDefault:"10MB"`
	MaxTotalSize string `env:"MAX_TOTAL_SIZE" envDefault:"50MB"`
	MaxFileCount int    `env:"MAX_FILE_COUNT" envDefault:"10"`

	maxFileSizeVal  int64
	maxTotalSizeVal int64
}

// NewFileUploadConfig builds limits outside of environment parsing.
func NewFileUploadConfig(maxFileSize, maxTotalSize string, maxFileCount int) (FileUploadConfig, error) {
	c := FileUploadConfig{
		MaxFileSize:  maxFileSize,
		MaxTotalSize: maxTotalSize,
		MaxFileCount: maxFileCount,
	}
	if err := c.finalize(); err != nil {
		return FileUploadConfig{}, err
	}
	return c, nil
}

func (c *FileUploadConfig) MaxFileSizeBytes() int64 {
	return c.maxFileSizeVal
}

func (c *FileUploadConfig) MaxTotalSizeBytes() int64 {
	return c.maxTotalSizeVal
}

func (c *FileUploadConfig) finalize() error {
	size, err := units.FromHumanSize(c.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid FILE_UPLOAD_MAX_FILE_SIZE: %w", err)
	}
	c.maxFileSizeVal = size

	total, err := units.FromHumanSize(c.MaxTotalSize)
	if err != nil {
		return fmt.Errorf("invalid FILE_UPLOAD_MAX_TOTAL_SIZE: %w", err)
	}
	c.maxTotalSizeVal = total
	return nil
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	cfg.Environment = *envFlag

	return cfg, nil
}

// Parse reads the configuration from the process environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.FileUploadCfg.finalize(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	cfg.LLMCfg.Provider = strings.ToLower(strings.TrimSpace(cfg.LLMCfg.Provider))
	if cfg.LLMCfg.Provider != ProviderGemini && cfg.LLMCfg.Provider != ProviderOpenAI {
		errors = append(errors, fmt.Sprintf("LLM_PROVIDER must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, cfg.LLMCfg.Provider))
	}

	if cfg.LLMCfg.Timeout <= 0 {
		errors = append(errors, fmt.Sprintf("LLM_TIMEOUT must be positive, got %s", cfg.LLMCfg.Timeout))
	}

	if cfg.LLMCfg.Temperature < 0 || cfg.LLMCfg.Temperature > 2 {
		errors = append(errors, fmt.Sprintf("LLM_TEMPERATURE must be between 0 and 2, got %.2f", cfg.LLMCfg.Temperature))
	}

	if cfg.FileUploadCfg.MaxFileCount < 1 || cfg.FileUploadCfg.MaxFileCount > 64 {
		errors = append(errors, fmt.Sprintf("FILE_UPLOAD_MAX_FILE_COUNT must be between 1 and 64, got %d", cfg.FileUploadCfg.MaxFileCount))
	}

	if cfg.FileUploadCfg.maxFileSizeVal <= 0 || cfg.FileUploadCfg.maxTotalSizeVal < cfg.FileUploadCfg.maxFileSizeVal {
		errors = append(errors, fmt.Sprintf("FILE_UPLOAD_MAX_TOTAL_SIZE (%s) must be at least FILE_UPLOAD_MAX_FILE_SIZE (%s)",
			cfg.FileUploadCfg.MaxTotalSize, cfg.FileUploadCfg.MaxFileSize))
	}

	if strings.TrimSpace(cfg.OutputCfg.Dir) == "" {
		errors = append(errors, "OUTPUT_DIR must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
