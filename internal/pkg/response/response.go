package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/futig/docgen-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Response headers describing generated content.
const (
	HeaderAIGenerated       = "X-AI-Generated"
	HeaderGenerationDate    = "X-Generation-Date"
	HeaderContentConfidence = "X-Content-Confidence"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Can't change response at this point, just log
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// Success writes a success response
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Error logs err and writes an ErrorResponse.
func Error(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// UsecaseError maps domain errors onto HTTP statuses. Deadline errors are
// checked before transport errors because they wrap them.
func UsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrDeadlineExceeded):
		Error(ctx, w, http.StatusGatewayTimeout, "AI service did not respond in time", err)
	case errors.Is(err, entity.ErrAINotConfigured):
		Error(ctx, w, http.StatusServiceUnavailable, "AI service not configured", err)
	case errors.Is(err, entity.ErrSearchNotConfigured):
		Error(ctx, w, http.StatusServiceUnavailable, "search service not configured", err)
	case errors.Is(err, entity.ErrTransport), errors.Is(err, entity.ErrEmptyResponse):
		Error(ctx, w, http.StatusBadGateway, "external service request failed", err)
	case errors.Is(err, entity.ErrUnsupportedContentType),
		errors.Is(err, entity.ErrUnsupportedFormat),
		errors.Is(err, entity.ErrInvalidLogo),
		errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidFormat):
		Error(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrInvalidFile),
		errors.Is(err, entity.ErrFileTooLarge),
		errors.Is(err, entity.ErrTooManyFiles),
		errors.Is(err, entity.ErrInvalidExtension),
		errors.Is(err, entity.ErrTotalSizeTooLarge):
		Error(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrRender):
		Error(ctx, w, http.StatusInternalServerError, "document rendering failed", err)
	default:
		Error(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}

// GenerationHeaders describe how an artifact was produced.
type GenerationHeaders struct {
	AIGenerated    bool
	GenerationDate string
	Confidence     float64
}

// File streams a rendered artifact as an attachment.
func File(ctx context.Context, w http.ResponseWriter, a *entity.RenderedArtifact, h GenerationHeaders) {
	f, err := os.Open(a.Path)
	if err != nil {
		Error(ctx, w, http.StatusInternalServerError, "document rendering failed", fmt.Errorf("%w: open artifact: %w", entity.ErrRender, err))
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", a.MediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.Filename))
	w.Header().Set("Content-Length", strconv.FormatInt(a.Size, 10))
	w.Header().Set(HeaderAIGenerated, strconv.FormatBool(h.AIGenerated))
	if h.GenerationDate != "" {
		w.Header().Set(HeaderGenerationDate, h.GenerationDate)
	}
	w.Header().Set(HeaderContentConfidence, strconv.FormatFloat(h.Confidence, 'f', 2, 64))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, f); err != nil {
		ctxzap.Warn(ctx, "failed to stream artifact", zap.String("path", a.Path), zap.Error(err))
	}
}

// DecodeJSON reads a request body into v.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: request body: %v", entity.ErrInvalidFormat, err)
	}
	return nil
}
