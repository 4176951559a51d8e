package validator

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/futig/docgen-backend/internal/config"
	"github.com/futig/docgen-backend/internal/entity"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

const pdfExtension = ".pdf"

// AllowedExtensions are the bill upload types.
var AllowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
	".tiff": "image/tiff",
	".pdf":  "application/pdf",
}

// SupportedFormats lists allowed extensions in sorted order.
func SupportedFormats() []string {
	out := make([]string, 0, len(AllowedExtensions))
	for ext := range AllowedExtensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Validator validates file uploads
type Validator struct {
	cfg config.FileUploadConfig
}

func NewFileValidator(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateUpload checks multipart headers against count, extension and
// size limits before any file is read.
func (v *Validator) ValidateUpload(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: files", entity.ErrMissingField)
	}

	if len(files) > v.cfg.MaxFileCount {
		return fmt.Errorf("%w: maximum %d files allowed, got %d", entity.ErrTooManyFiles, v.cfg.MaxFileCount, len(files))
	}

	var totalSize int64
	for _, fh := range files {
		if err := v.checkFile(fh.Filename, fh.Size); err != nil {
			return err
		}
		totalSize += fh.Size
	}

	return v.checkTotal(totalSize)
}

// ValidateBillFiles checks decoded files and their contents. PDFs must
// parse and contain at least one page.
func (v *Validator) ValidateBillFiles(files []entity.BillFile) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: files", entity.ErrMissingField)
	}
	if len(files) > v.cfg.MaxFileCount {
		return fmt.Errorf("%w: maximum %d files allowed, got %d", entity.ErrTooManyFiles, v.cfg.MaxFileCount, len(files))
	}

	var totalSize int64
	for _, f := range files {
		size := int64(len(f.Data))
		if err := v.checkFile(f.Name, size); err != nil {
			return err
		}
		if strings.ToLower(filepath.Ext(f.Name)) == pdfExtension {
			if err := ValidatePDF(f.Name, f.Data); err != nil {
				return err
			}
		}
		totalSize += size
	}

	return v.checkTotal(totalSize)
}

// ValidateImages checks decoded inline images against the same limits.
func (v *Validator) ValidateImages(images []entity.Attachment) error {
	if len(images) == 0 {
		return fmt.Errorf("%w: images", entity.ErrMissingField)
	}
	if len(images) > v.cfg.MaxFileCount {
		return fmt.Errorf("%w: maximum %d images allowed, got %d", entity.ErrTooManyFiles, v.cfg.MaxFileCount, len(images))
	}

	var totalSize int64
	for _, img := range images {
		size := int64(len(img.Data))
		if size > v.cfg.MaxFileSizeBytes() {
			return fmt.Errorf("%w: image '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, img.Name, size, v.cfg.MaxFileSizeBytes())
		}
		if !strings.HasPrefix(img.MIMEType, "image/") {
			return fmt.Errorf("%w: image '%s' is %s", entity.ErrInvalidFile, img.Name, img.MIMEType)
		}
		totalSize += size
	}
	return v.checkTotal(totalSize)
}

func (v *Validator) checkFile(name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := AllowedExtensions[ext]; !ok {
		return fmt.Errorf("%w: %q (allowed: %s)", entity.ErrInvalidExtension, ext, strings.Join(SupportedFormats(), ", "))
	}
	if size == 0 {
		return fmt.Errorf("%w: file '%s' is empty", entity.ErrInvalidFile, name)
	}
	if size > v.cfg.MaxFileSizeBytes() {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, name, size, v.cfg.MaxFileSizeBytes())
	}
	return nil
}

func (v *Validator) checkTotal(total int64) error {
	if total > v.cfg.MaxTotalSizeBytes() {
		return fmt.Errorf("%w: total size is %d bytes (max %d)", entity.ErrTotalSizeTooLarge, total, v.cfg.MaxTotalSizeBytes())
	}
	return nil
}

// ValidatePDF rejects documents pdfcpu cannot read.
func ValidatePDF(name string, data []byte) error {
	pages, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return fmt.Errorf("%w: '%s' is not a readable PDF: %v", entity.ErrInvalidFile, name, err)
	}
	if pages == 0 {
		return fmt.Errorf("%w: '%s' has no pages", entity.ErrInvalidFile, name)
	}
	return nil
}

// MIMEType resolves a file's media type from its extension, falling back
// to content sniffing.
func MIMEType(name string, data []byte) string {
	if mt, ok := AllowedExtensions[strings.ToLower(filepath.Ext(name))]; ok {
		return mt
	}
	return http.DetectContentType(data)
}

// SanitizeFilename sanitizes a filename for safe storage
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	replacer := strings.NewReplacer(
		" ", "_",
		"(", "",
		")", "",
		"[", "",
		"]", "",
		"{", "",
		"}", "",
	)
	return replacer.Replace(filename)
}
