package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/export"
	"github.com/renato0307/fieldscan/internal/services"
)

// ExportCmd exports a session
type ExportCmd struct {
	Columns       []string `help:"Columns to include, e.g. position,serial_number (default: settings or all)"`
	DateFormat    string   `help:"Timestamp format, e.g. dd/MM/yyyy HH:mm"`
	Email         bool     `help:"Print an email draft instead of writing a file"`
	ExcelTemplate bool     `help:"Fill the active Excel template (xlsx only)"`
	Format        string   `help:"Output format" enum:"csv,json,xlsx" default:"csv" short:"f"`
	ID            string   `arg:"" help:"Session id"`
	MarkExported  bool     `help:"Mark the session exported after writing" default:"true" negatable:""`
	Out           string   `help:"Output directory (default: settings export_dir or $FIELDSCAN_HOME/exports)" short:"o"`
	Sort          string   `help:"Sort results by: position, model or time"`
	Template      string   `help:"Saved export template name" short:"t"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	ctx := context.Background()

	if e.Email {
		draft, err := cli.Container.ExportService.EmailDraft(ctx, e.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Subject: %s\n\n%s\n", draft.Subject, draft.Body)
		return nil
	}

	format, err := export.ParseFormat(e.Format)
	if err != nil {
		return err
	}
	if err := checkSortKey(e.Sort); err != nil {
		return err
	}
	if err := checkColumns(e.Columns); err != nil {
		return err
	}

	out := e.Out
	if out == "" {
		out = cli.settings.ExportPath()
	}

	params := services.ExportParams{
		Config:           e.config(cli),
		Format:           format,
		MarkExported:     e.MarkExported,
		OutDir:           out,
		SessionID:        e.ID,
		TemplateName:     e.Template,
		UseExcelTemplate: e.ExcelTemplate,
	}

	result, err := cli.Container.ExportService.Export(ctx, params)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d result(s) to %s\n", len(result.Session.ScanResults), result.Path)
	return nil
}

// config builds an ad hoc configuration from flags; nil defers to the
// template or the settings default
func (e *ExportCmd) config(cli *CLI) *domain.ExportConfig {
	if len(e.Columns) == 0 && e.Sort == "" && e.DateFormat == "" {
		return nil
	}
	cfg := cli.settings.ExportConfig()
	if len(e.Columns) > 0 {
		cfg.Columns = map[domain.Column]bool{}
		for _, c := range e.Columns {
			cfg.Columns[domain.Column(strings.TrimSpace(c))] = true
		}
	}
	if e.Sort != "" {
		cfg.SortBy = domain.SortKey(e.Sort)
	}
	if e.DateFormat != "" {
		cfg.DateFormat = e.DateFormat
	}
	return &cfg
}

func checkSortKey(key string) error {
	switch domain.SortKey(key) {
	case "", domain.SortByModel, domain.SortByPosition, domain.SortByTime:
		return nil
	}
	return fmt.Errorf("unknown sort %q (use position, model or time)", key)
}

func checkColumns(columns []string) error {
	for _, name := range columns {
		if !slices.Contains(domain.Columns(), domain.Column(strings.TrimSpace(name))) {
			return fmt.Errorf("unknown column %q", name)
		}
	}
	return nil
}
