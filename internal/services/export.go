package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/export"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/logging"
)

// ExportService renders sessions and manages export templates
type ExportService struct {
	defaultConfig domain.ExportConfig
	now           func() time.Time
	sessions      *SessionService
	templateRepo  ports.TemplateRepository
}

// NewExportService creates a new ExportService. defaults is used when
// neither a config nor a template is given.
func NewExportService(sessions *SessionService, templateRepo ports.TemplateRepository, defaults domain.ExportConfig) *ExportService {
	return &ExportService{
		defaultConfig: defaults,
		now:           time.Now,
		sessions:      sessions,
		templateRepo:  templateRepo,
	}
}

func (s *ExportService) resolveConfig(ctx context.Context, params ExportParams) (domain.ExportConfig, error) {
	if params.Config != nil {
		return *params.Config, nil
	}
	if params.TemplateName != "" {
		tmpl, err := s.templateRepo.GetExportTemplate(ctx, params.TemplateName)
		if err != nil {
			return domain.ExportConfig{}, err
		}
		return tmpl.Config, nil
	}
	return s.defaultConfig, nil
}

// Export renders a session. With OutDir set the file is also written to
// disk as {site_code}_{date}.{ext}. With MarkExported the session moves to
// the exported status once the file is produced.
func (s *ExportService) Export(ctx context.Context, params ExportParams) (*ExportResult, error) {
	session, err := s.sessions.GetSession(ctx, params.SessionID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.resolveConfig(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(cfg.SelectedColumns()) == 0 {
		return nil, fmt.Errorf("export needs at least one column")
	}

	format := params.Format
	if format == "" {
		format = export.FormatCSV
	}

	data, err := s.render(ctx, *session, cfg, format, params.UseExcelTemplate)
	if err != nil {
		logging.Logger.Error("Failed to render export", "session", session.ID, "format", format, "error", err)
		return nil, err
	}

	result := &ExportResult{
		Data:     data,
		FileName: export.FileName(session.SiteCode, format, s.now()),
		Session:  session,
	}

	if params.OutDir != "" {
		if err := os.MkdirAll(params.OutDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create export directory: %w", err)
		}
		result.Path = filepath.Join(params.OutDir, result.FileName)
		if err := os.WriteFile(result.Path, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write export: %w", err)
		}
	}

	if params.MarkExported {
		updated, err := s.sessions.MarkAsExported(ctx, session.ID)
		if err != nil {
			return nil, err
		}
		result.Session = updated
	}

	logging.Logger.Info("Session exported",
		"session", session.ID,
		"format", format,
		"rows", len(session.ScanResults),
		"path", result.Path)
	return result, nil
}

func (s *ExportService) render(ctx context.Context, session domain.Session, cfg domain.ExportConfig, format export.Format, useTemplate bool) ([]byte, error) {
	if format != export.FormatXLSX || !useTemplate {
		return export.Render(session, cfg, format)
	}

	tmpl, err := s.templateRepo.ActiveExcelTemplate(ctx)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		logging.Logger.Warn("No active excel template, using default workbook")
		return export.RenderXLSX(session, cfg)
	}

	f, err := os.Open(tmpl.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel template %s: %w", tmpl.Name, err)
	}
	defer f.Close()

	return export.RenderXLSXFromTemplate(session, cfg, f, tmpl.ConfigMappings)
}

// EmailDraft builds the report message for a session
func (s *ExportService) EmailDraft(ctx context.Context, sessionID string) (*export.EmailDraft, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	draft := export.NewEmailDraft(*session, export.DefaultConfig(), s.now())
	return &draft, nil
}

// SaveTemplate stores a named export configuration, replacing one with the
// same name
func (s *ExportService) SaveTemplate(ctx context.Context, name string, cfg domain.ExportConfig) (*domain.ExportTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if len(cfg.SelectedColumns()) == 0 {
		return nil, fmt.Errorf("template needs at least one column")
	}

	tmpl := domain.ExportTemplate{
		Config:    cfg,
		CreatedAt: s.now().UTC(),
		ID:        uuid.New().String(),
		Name:      name,
	}
	if existing, err := s.templateRepo.GetExportTemplate(ctx, name); err == nil {
		tmpl.ID = existing.ID
		tmpl.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, domain.ErrTemplateNotFound) {
		return nil, err
	}

	if err := s.templateRepo.SaveExportTemplate(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}
	logging.Logger.Info("Export template saved", "name", name)
	return &tmpl, nil
}

// LoadTemplate returns a saved export template by name
func (s *ExportService) LoadTemplate(ctx context.Context, name string) (*domain.ExportTemplate, error) {
	return s.templateRepo.GetExportTemplate(ctx, name)
}

// ListTemplates returns all saved export templates
func (s *ExportService) ListTemplates(ctx context.Context) ([]domain.ExportTemplate, error) {
	return s.templateRepo.ListExportTemplates(ctx)
}

// UploadExcelTemplate registers a workbook as the active spreadsheet
// template. mappings maps column names to column letters.
func (s *ExportService) UploadExcelTemplate(ctx context.Context, path string, mappings map[string]string) (*domain.ExcelTemplate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read excel template: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("excel template %s is a directory", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return nil, fmt.Errorf("excel template must be an .xlsx file")
	}
	for col := range mappings {
		if !isExportColumn(col) {
			return nil, fmt.Errorf("unknown column %q in mappings", col)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	tmpl := domain.ExcelTemplate{
		ConfigMappings: mappings,
		FilePath:       abs,
		FileSize:       info.Size(),
		ID:             uuid.New().String(),
		IsActive:       true,
		Name:           filepath.Base(path),
		UploadDate:     s.now().UTC(),
	}
	if err := s.templateRepo.ActivateExcelTemplate(ctx, tmpl); err != nil {
		return nil, fmt.Errorf("failed to store excel template: %w", err)
	}
	logging.Logger.Info("Excel template activated", "name", tmpl.Name, "size", tmpl.FileSize)
	return &tmpl, nil
}

// ActiveExcelTemplate returns the active spreadsheet template, or nil
func (s *ExportService) ActiveExcelTemplate(ctx context.Context) (*domain.ExcelTemplate, error) {
	return s.templateRepo.ActiveExcelTemplate(ctx)
}

func isExportColumn(name string) bool {
	for _, c := range domain.Columns() {
		if string(c) == name {
			return true
		}
	}
	return false
}
