package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

// failure converts a provider error into a failed GenerationResult. ctx is
// the per-call context, so an expired deadline is reported as a timeout even
// when the SDK hides the context error.
func failure(ctx context.Context, model string, err error) entity.GenerationResult {
	res := entity.GenerationResult{
		Model:   model,
		Failure: entity.FailureTransport,
		Cause:   err,
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.Failure = entity.FailureTimeout
		return res
	}

	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		res.Failure = entity.FailureStatus
		res.StatusCode = gErr.Code
		return res
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		res.Failure = entity.FailureStatus
		res.StatusCode = apiErr.HTTPStatusCode
		return res
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		res.Failure = entity.FailureStatus
		res.StatusCode = reqErr.HTTPStatusCode
	}

	return res
}

// success builds the result for a returned text, treating blank output as empty.
func success(model, text string) entity.GenerationResult {
	if strings.TrimSpace(text) == "" {
		return entity.GenerationResult{
			Model:   model,
			Failure: entity.FailureEmpty,
			Cause:   entity.ErrEmptyResponse,
		}
	}
	return entity.GenerationResult{Model: model, Text: text}
}

func logResult(ctx context.Context, res entity.GenerationResult, start time.Time) {
	if res.OK() {
		ctxzap.Info(ctx, "content generated",
			zap.String("model", res.Model),
			zap.Int("text_length", len(res.Text)),
			zap.Duration("duration", time.Since(start)),
		)
		return
	}
	ctxzap.Warn(ctx, "content generation failed",
		zap.String("model", res.Model),
		zap.Stringer("failure", res.Failure),
		zap.Int("status_code", res.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Error(res.Cause),
	)
}

func logRequest(ctx context.Context, provider, model string, spec *entity.PromptSpec) {
	ctxzap.Info(ctx, "generating content via LLM",
		zap.String("provider", provider),
		zap.String("model", model),
		zap.String("kind", string(spec.Kind)),
		zap.Stringer("shape", spec.Shape),
		zap.Int("attachments", len(spec.Attachments)),
		zap.Int("prompt_length", len(spec.Instruction)),
	)
}
