package bill

import (
	"context"

	"github.com/futig/docgen-backend/internal/entity"
)

type BillUsecase interface {
	ParseImages(ctx context.Context, req *entity.BillParseRequest) (*entity.BillParseResult, error)
	ParseFiles(ctx context.Context, files []entity.BillFile, billType string) (*entity.BillParseResult, error)
	ExtractText(ctx context.Context, images []string) ([]string, error)
	Validate(b *entity.BillRecord) entity.ValidationReport
	SupportedFormats() []string
	Status() entity.HealthResponse
}
