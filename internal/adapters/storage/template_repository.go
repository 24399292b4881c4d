package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/renato0307/fieldscan/internal/domain"
)

// SaveExportTemplate implements TemplateRepository.SaveExportTemplate.
// Saving under an existing name replaces that template's configuration.
func (r *SQLiteRepository) SaveExportTemplate(ctx context.Context, tmpl domain.ExportTemplate) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing ExportTemplateModel
			err := tx.Where("name = ?", tmpl.Name).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				model := ExportTemplateModel{
					Config:    tmpl.Config,
					CreatedAt: tmpl.CreatedAt,
					ID:        tmpl.ID,
					Name:      tmpl.Name,
				}
				if model.ID == "" {
					model.ID = uuid.New().String()
				}
				if model.CreatedAt.IsZero() {
					model.CreatedAt = r.now()
				}
				if err := tx.Create(&model).Error; err != nil {
					return fmt.Errorf("failed to create export template: %w", err)
				}
				return nil
			case err != nil:
				return err
			}

			existing.Config = tmpl.Config
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update export template: %w", err)
			}
			return nil
		})
	}, 3)
}

// GetExportTemplate implements TemplateRepository.GetExportTemplate
func (r *SQLiteRepository) GetExportTemplate(ctx context.Context, name string) (*domain.ExportTemplate, error) {
	var model ExportTemplateModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, name)
		}
		return nil, err
	}

	tmpl := exportTemplateModelToDomain(model)
	return &tmpl, nil
}

// ListExportTemplates implements TemplateRepository.ListExportTemplates
func (r *SQLiteRepository) ListExportTemplates(ctx context.Context) ([]domain.ExportTemplate, error) {
	var models []ExportTemplateModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	templates := make([]domain.ExportTemplate, len(models))
	for i, m := range models {
		templates[i] = exportTemplateModelToDomain(m)
	}
	return templates, nil
}

// ActivateExcelTemplate implements TemplateRepository.ActivateExcelTemplate.
// Every other template is deactivated in the same transaction.
func (r *SQLiteRepository) ActivateExcelTemplate(ctx context.Context, tmpl domain.ExcelTemplate) error {
	model := ExcelTemplateModel{
		ConfigMappings: tmpl.ConfigMappings,
		FilePath:       tmpl.FilePath,
		FileSize:       tmpl.FileSize,
		ID:             tmpl.ID,
		IsActive:       true,
		Name:           tmpl.Name,
		UploadDate:     tmpl.UploadDate,
	}
	if model.ID == "" {
		model.ID = uuid.New().String()
	}
	if model.UploadDate.IsZero() {
		model.UploadDate = r.now()
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&ExcelTemplateModel{}).
				Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return fmt.Errorf("failed to deactivate templates: %w", err)
			}

			var existing ExcelTemplateModel
			err := tx.Select("id", "created_at").Where("id = ?", model.ID).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return tx.Create(&model).Error
			case err != nil:
				return err
			}
			model.CreatedAt = existing.CreatedAt
			return tx.Save(&model).Error
		})
	}, 3)
}

// ActiveExcelTemplate implements TemplateRepository.ActiveExcelTemplate.
// Returns nil without error when no template is active.
func (r *SQLiteRepository) ActiveExcelTemplate(ctx context.Context) (*domain.ExcelTemplate, error) {
	var models []ExcelTemplateModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("is_active = ?", true).Limit(1).Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}

	tmpl := excelTemplateModelToDomain(models[0])
	return &tmpl, nil
}
