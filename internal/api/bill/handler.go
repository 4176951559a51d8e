package bill

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/futig/docgen-backend/internal/config"
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/futig/docgen-backend/internal/pkg/logger"
	"github.com/futig/docgen-backend/internal/pkg/response"
	"github.com/futig/docgen-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   BillUsecase
	cfg       config.FileUploadConfig
	validator *validator.Validator
}

func NewHandler(usecase BillUsecase, cfg config.FileUploadConfig, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		cfg:       cfg,
		validator: validator,
	}
}

// ParseFromImages handles POST /bill-parser/parse-from-images
func (h *Handler) ParseFromImages(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ParseBillImages")

	var req entity.BillParseRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if len(req.Images) == 0 {
		response.Error(ctx, w, http.StatusBadRequest, "at least one image is required", entity.ErrMissingField)
		return
	}

	if req.ExtractTextOnly {
		texts, err := h.usecase.ExtractText(ctx, req.Images)
		if err != nil {
			response.UsecaseError(ctx, w, err)
			return
		}
		response.Success(w, &entity.ExtractTextResponse{Texts: texts})
		return
	}

	res, err := h.usecase.ParseImages(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	h.respondBills(w, res)
}

// ParseFromFiles handles POST /bill-parser/parse-from-files (multipart "files").
func (h *Handler) ParseFromFiles(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ParseBillFiles")

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxTotalSizeBytes()+1<<20)
	if err := r.ParseMultipartForm(h.cfg.MaxTotalSizeBytes()); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if err := h.validator.ValidateUpload(headers); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	files := make([]entity.BillFile, 0, len(headers))
	for _, fh := range headers {
		f, err := readFile(fh)
		if err != nil {
			response.Error(ctx, w, http.StatusBadRequest, "failed to read uploaded file", err)
			return
		}
		files = append(files, f)
	}

	ctxzap.Info(ctx, "parsing uploaded bills", zap.Int("file_count", len(files)))

	res, err := h.usecase.ParseFiles(ctx, files, r.FormValue("bill_type"))
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	h.respondBills(w, res)
}

// ExtractText handles POST /bill-parser/extract-text
func (h *Handler) ExtractText(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExtractBillText")

	var req entity.BillParseRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	texts, err := h.usecase.ExtractText(ctx, req.Images)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	response.Success(w, &entity.ExtractTextResponse{Texts: texts})
}

// ValidateBill handles POST /bill-parser/validate-bill
func (h *Handler) ValidateBill(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ValidateBill")

	var b entity.BillRecord
	if err := response.DecodeJSON(r, &b); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	b.Normalize()

	report := h.usecase.Validate(&b)
	ctxzap.Debug(ctx, "bill validated",
		zap.Bool("is_valid", report.IsValid),
		zap.Int("errors", len(report.Errors)),
		zap.Int("warnings", len(report.Warnings)),
	)
	response.Success(w, &entity.BillValidationResponse{Bill: b, Validation: report})
}

// SupportedFormats handles GET /bill-parser/supported-formats
func (h *Handler) SupportedFormats(w http.ResponseWriter, r *http.Request) {
	response.Success(w, &entity.SupportedFormatsResponse{Formats: h.usecase.SupportedFormats()})
}

// Health handles GET /bill-parser/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.usecase.Status())
}

func (h *Handler) respondBills(w http.ResponseWriter, res *entity.BillParseResult) {
	w.Header().Set(response.HeaderAIGenerated, "true")
	w.Header().Set(response.HeaderContentConfidence, strconv.FormatFloat(res.Confidence, 'f', 2, 64))
	response.Success(w, res.Bills)
}

func readFile(fh *multipart.FileHeader) (entity.BillFile, error) {
	f, err := fh.Open()
	if err != nil {
		return entity.BillFile{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return entity.BillFile{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}

	name := validator.SanitizeFilename(fh.Filename)
	return entity.BillFile{
		Name:     name,
		MIMEType: validator.MIMEType(name, data),
		Data:     data,
	}, nil
}
