package llm

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/futig/docgen-backend/internal/config"
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/integration/common"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIConnector talks to any OpenAI compatible chat completions endpoint.
type OpenAIConnector struct {
	cfg    config.LLMConfig
	client *openai.Client
	logger *zap.Logger
}

func NewOpenAIConnector(cfg config.LLMConfig, logger *zap.Logger) *OpenAIConnector {
	c := &OpenAIConnector{cfg: cfg, logger: logger}
	if cfg.APIKey == "" {
		logger.Warn("LLM_API_KEY is empty, AI generation is disabled", zap.String("provider", config.ProviderOpenAI))
		return c
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = common.NewBaseConnector(common.LLMHTTPConfig(cfg), logger).Client()

	c.client = openai.NewClientWithConfig(clientCfg)
	return c
}

func (c *OpenAIConnector) Configured() bool {
	return c.client != nil
}

// Generate makes exactly one chat completion call bounded by LLM_TIMEOUT.
func (c *OpenAIConnector) Generate(ctx context.Context, spec *entity.PromptSpec) entity.GenerationResult {
	if !c.Configured() {
		return entity.NotConfiguredResult()
	}

	modelName := c.cfg.ModelFor(spec.HasImages())
	logRequest(ctx, config.ProviderOpenAI, modelName, spec)
	start := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       modelName,
		Messages:    []openai.ChatCompletionMessage{userMessage(spec)},
		Temperature: c.cfg.Temperature,
		MaxTokens:   int(c.cfg.MaxOutputTokens),
	}
	// JSON mode only accepts objects at the top level.
	if spec.Shape == entity.ShapeObject {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(callCtx, req)
	if err != nil {
		res := failure(callCtx, modelName, err)
		logResult(ctx, res, start)
		return res
	}

	text := ""
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	res := success(modelName, text)
	logResult(ctx, res, start)
	return res
}

func userMessage(spec *entity.PromptSpec) openai.ChatCompletionMessage {
	if !spec.HasImages() {
		return openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: spec.Instruction,
		}
	}

	parts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: spec.Instruction},
	}
	for _, a := range spec.Attachments {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL:    dataURI(a),
				Detail: openai.ImageURLDetailHigh,
			},
		})
	}

	return openai.ChatCompletionMessage{
		Role:         openai.ChatMessageRoleUser,
		MultiContent: parts,
	}
}

func dataURI(a entity.Attachment) string {
	return "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

func (c *OpenAIConnector) Close() error {
	return nil
}
