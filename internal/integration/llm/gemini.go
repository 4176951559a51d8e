package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futig/docgen-backend/internal/config"
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const jsonMIMEType = "application/json"

// GeminiConnector sends prompts with optional image parts to Gemini.
// Built without an API key it reports itself unconfigured and never calls out.
type GeminiConnector struct {
	cfg    config.LLMConfig
	client *genai.Client
	logger *zap.Logger
}

func NewGeminiConnector(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger, opts ...option.ClientOption) (*GeminiConnector, error) {
	c := &GeminiConnector{cfg: cfg, logger: logger}
	if cfg.APIKey == "" {
		logger.Warn("LLM_API_KEY is empty, AI generation is disabled", zap.String("provider", config.ProviderGemini))
		return c, nil
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(cfg.BaseURL))
	}

	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GeminiConnector) Configured() bool {
	return c.client != nil
}

// Generate makes exactly one GenerateContent call bounded by LLM_TIMEOUT.
func (c *GeminiConnector) Generate(ctx context.Context, spec *entity.PromptSpec) entity.GenerationResult {
	if !c.Configured() {
		return entity.NotConfiguredResult()
	}

	modelName := c.cfg.ModelFor(spec.HasImages())
	logRequest(ctx, config.ProviderGemini, modelName, spec)
	start := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(c.cfg.Temperature)
	model.SetMaxOutputTokens(c.cfg.MaxOutputTokens)
	if spec.Shape != entity.ShapeText {
		model.ResponseMIMEType = jsonMIMEType
	}

	parts := []genai.Part{genai.Text(spec.Instruction)}
	for _, a := range spec.Attachments {
		parts = append(parts, genai.Blob{MIMEType: a.MIMEType, Data: a.Data})
	}

	resp, err := model.GenerateContent(callCtx, parts...)
	if err != nil {
		res := failure(callCtx, modelName, err)
		logResult(ctx, res, start)
		return res
	}

	res := success(modelName, responseText(resp))
	logResult(ctx, res, start)
	return res
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

func (c *GeminiConnector) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
