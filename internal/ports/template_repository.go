package ports

import (
	"context"

	"github.com/renato0307/fieldscan/internal/domain"
)

// TemplateRepository stores export templates and spreadsheet templates
type TemplateRepository interface {
	ActivateExcelTemplate(ctx context.Context, tmpl domain.ExcelTemplate) error
	ActiveExcelTemplate(ctx context.Context) (*domain.ExcelTemplate, error)
	GetExportTemplate(ctx context.Context, name string) (*domain.ExportTemplate, error)
	ListExportTemplates(ctx context.Context) ([]domain.ExportTemplate, error)
	SaveExportTemplate(ctx context.Context, tmpl domain.ExportTemplate) error
}
