package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/fieldscan/internal/domain"
)

// TemplatesCmd manages export templates
type TemplatesCmd struct {
	Excel TemplatesExcelCmd `cmd:"excel" help:"Upload and activate an Excel template"`
	List  TemplatesListCmd  `cmd:"list" help:"List saved export templates" default:"1"`
	Save  TemplatesSaveCmd  `cmd:"save" help:"Save an export template"`
}

// TemplatesListCmd lists saved templates and the active Excel template
type TemplatesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (t *TemplatesListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	templates, err := cli.Container.ExportService.ListTemplates(ctx)
	if err != nil {
		return err
	}
	active, err := cli.Container.ExportService.ActiveExcelTemplate(ctx)
	if err != nil {
		return err
	}

	if t.Format == "json" {
		return printJSON(map[string]any{"templates": templates, "excel_template": active})
	}

	w := newTable()
	fmt.Fprintln(w, "NAME\tCOLUMNS\tSORT\tDATE FORMAT\tCREATED")
	for _, tmpl := range templates {
		created := tmpl.CreatedAt
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			tmpl.Name, len(tmpl.Config.SelectedColumns()), tmpl.Config.SortBy, tmpl.Config.DateFormat, formatTime(&created))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if active != nil {
		fmt.Printf("\nActive Excel template: %s (%s)\n", active.Name, active.FilePath)
	}
	return nil
}

// TemplatesSaveCmd saves a named export configuration
type TemplatesSaveCmd struct {
	Columns    []string `help:"Columns to include, e.g. position,serial_number" required:""`
	DateFormat string   `help:"Timestamp format (default ISO 8601)"`
	Name       string   `arg:"" help:"Template name"`
	Sort       string   `help:"Sort results by: position, model or time" default:"position"`
}

// Run executes the save command
func (t *TemplatesSaveCmd) Run(cli *CLI) error {
	if err := checkSortKey(t.Sort); err != nil {
		return err
	}
	if err := checkColumns(t.Columns); err != nil {
		return err
	}
	dateFormat := t.DateFormat
	if dateFormat == "" {
		dateFormat = domain.DateFormatISO
	}
	cfg := domain.ExportConfig{
		Columns:    map[domain.Column]bool{},
		DateFormat: dateFormat,
		SortBy:     domain.SortKey(t.Sort),
	}
	for _, c := range t.Columns {
		cfg.Columns[domain.Column(c)] = true
	}

	tmpl, err := cli.Container.ExportService.SaveTemplate(context.Background(), t.Name, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Template '%s' saved\n", tmpl.Name)
	return nil
}

// TemplatesExcelCmd uploads an Excel template. Mappings pair a column with
// the sheet column it fills, e.g. serial_number=C.
type TemplatesExcelCmd struct {
	File     string            `arg:"" help:"Path to the .xlsx template" type:"existingfile"`
	Mappings map[string]string `help:"Column to sheet column mappings, e.g. serial_number=C" name:"map" short:"m"`
}

// Run executes the excel command
func (t *TemplatesExcelCmd) Run(cli *CLI) error {
	if err := cli.requireAdmin(); err != nil {
		return err
	}
	tmpl, err := cli.Container.ExportService.UploadExcelTemplate(context.Background(), t.File, t.Mappings)
	if err != nil {
		return err
	}
	fmt.Printf("Excel template '%s' is now active\n", tmpl.Name)
	return nil
}
