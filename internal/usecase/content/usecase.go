package content

import (
	"context"
	"encoding/json"
	"time"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/normalizer"
	"github.com/futig/docgen-backend/internal/pkg/prompt"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Pipeline routes a content kind to its prompt template, makes one
// generation call and normalizes the answer by the template's shape.
type Pipeline struct {
	registry  *prompt.Registry
	generator Generator
}

func NewPipeline(registry *prompt.Registry, generator Generator) *Pipeline {
	return &Pipeline{
		registry:  registry,
		generator: generator,
	}
}

// Configured reports whether generation calls can be made.
func (p *Pipeline) Configured() bool {
	return p.generator.Configured()
}

// Registry exposes the templates the pipeline routes to.
func (p *Pipeline) Registry() *prompt.Registry {
	return p.registry
}

// Resolve maps a declared kind string to its template. It fails before any
// outbound call for unsupported kinds.
func (p *Pipeline) Resolve(name string) (*prompt.Template, error) {
	return p.registry.Lookup(name)
}

// Generate resolves name, decodes payload into the template's record and
// runs it.
func (p *Pipeline) Generate(ctx context.Context, name string, payload json.RawMessage, now time.Time) (*prompt.Template, *entity.GeneratedContent, error) {
	t, err := p.Resolve(name)
	if err != nil {
		return nil, nil, err
	}
	rec, err := t.Record(payload)
	if err != nil {
		return nil, nil, err
	}
	out, err := p.Run(ctx, t, &entity.ContentRequest{Kind: t.Kind, Record: rec, Now: now})
	if err != nil {
		return nil, nil, err
	}
	return t, out, nil
}

// Run makes exactly one generation call. Unparsable output is never an
// error: the template's fallback is substituted and Degraded is set.
func (p *Pipeline) Run(ctx context.Context, t *prompt.Template, req *entity.ContentRequest) (*entity.GeneratedContent, error) {
	if !p.generator.Configured() {
		return nil, entity.ErrAINotConfigured
	}

	spec := t.Build(req)
	ctxzap.Debug(ctx, "prompt built",
		zap.String("template", t.Name),
		zap.Stringer("shape", spec.Shape),
		zap.Int("attachments", len(spec.Attachments)),
		zap.Int("prompt_length", len(spec.Instruction)),
	)

	res := p.generator.Generate(ctx, spec)
	if !res.OK() {
		ctxzap.Error(ctx, "generation failed",
			zap.String("template", t.Name),
			zap.Stringer("failure", res.Failure),
			zap.Error(res.Cause),
		)
		return nil, res.Err()
	}

	out := &entity.GeneratedContent{Kind: t.Kind, Raw: res.Text}

	var attempt normalizer.Attempt
	switch t.Shape {
	case entity.ShapeList:
		r := normalizer.NormalizeList(res.Text, t.FallbackItems)
		out.Items, out.Confidence, out.Degraded, attempt = r.Items, r.Confidence, r.Degraded, r.Attempt
	case entity.ShapeText:
		out.Text = normalizer.NormalizeText(res.Text)
		out.Confidence = normalizer.ParsedConfidence
		return out, nil
	default:
		r := normalizer.NormalizeObject(res.Text, func() *entity.StructuredContent {
			return t.FallbackContent(req.Record)
		})
		out.Content, out.Confidence, out.Degraded, attempt = r.Content, r.Confidence, r.Degraded, r.Attempt
	}

	if out.Degraded {
		ctxzap.Warn(ctx, "model output could not be parsed, using fallback content",
			zap.String("template", t.Name),
			zap.String("step", attempt.Step),
			zap.Stringer("status", attempt.Status),
		)
	} else {
		ctxzap.Info(ctx, "content generated",
			zap.String("template", t.Name),
			zap.String("step", attempt.Step),
		)
	}
	return out, nil
}
