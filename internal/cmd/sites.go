package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/logging"
)

// SitesCmd manages sites
type SitesCmd struct {
	Add    SitesAddCmd    `cmd:"add" help:"Add or update a site"`
	Import SitesImportCmd `cmd:"import" help:"Import sites from a YAML file"`
	List   SitesListCmd   `cmd:"list" help:"List sites" default:"1"`
	Show   SitesShowCmd   `cmd:"show" help:"Show a site and its configurations"`
}

// SitesListCmd lists all sites
type SitesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SitesListCmd) Run(cli *CLI) error {
	sites, err := cli.Container.SiteService.ListSites(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}

	if s.Format == "json" {
		return printJSON(sites)
	}
	if len(sites) == 0 {
		fmt.Println("No sites. Add one with 'fieldscan sites add' or 'fieldscan sites import'.")
		return nil
	}

	w := newTable()
	fmt.Fprintln(w, "CODE\tNAME\tBRAND\tCONFIGURATIONS\tLAST VISITED")
	for _, site := range sites {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			site.Code, site.Name, site.Brand, len(site.Configurations), formatTime(site.LastVisited))
	}
	return w.Flush()
}

// SitesShowCmd shows one site
type SitesShowCmd struct {
	Site   string `arg:"" help:"Site id or code (e.g. L1234)"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SitesShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	site, err := cli.Container.SiteService.GetSite(ctx, s.Site)
	if err != nil {
		return err
	}
	configs, fallback, err := cli.Container.SessionService.Configurations(*site)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		return printJSON(map[string]any{"site": site, "configurations": configs, "fallback": fallback})
	}

	w := newTable()
	fmt.Fprintf(w, "Code:\t%s\n", site.Code)
	fmt.Fprintf(w, "Name:\t%s\n", site.Name)
	fmt.Fprintf(w, "Brand:\t%s\n", site.Brand)
	fmt.Fprintf(w, "Address:\t%s\n", site.Address)
	fmt.Fprintf(w, "Last visited:\t%s\n", formatTime(site.LastVisited))
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	if fallback {
		fmt.Println("No usable configuration stored, offering:")
	} else {
		fmt.Println("Configurations:")
	}
	w = newTable()
	for _, c := range configs {
		fmt.Fprintf(w, "  %s\t%s\t%d gantry + %d additional\t~%d min\n",
			c.ID, c.Name, c.GantryCount, c.AdditionalCount, c.EstimatedMinutes)
	}
	return w.Flush()
}

// SitesAddCmd adds or updates a site. Configurations are generated from
// their names.
type SitesAddCmd struct {
	Address        string   `help:"Street address" required:""`
	Brand          string   `help:"Brand" enum:"Coral,Ladbrokes,Betfred" required:""`
	Code           string   `arg:"" help:"Site code, letter followed by four digits"`
	Configurations []string `help:"Configuration names (e.g. '5 over 1')" name:"configuration" short:"c"`
	Name           string   `help:"Site name" required:""`
}

// Run executes the add command
func (s *SitesAddCmd) Run(cli *CLI) error {
	if err := cli.requireAdmin(); err != nil {
		return err
	}
	if err := s.validateForm(); err != nil {
		return err
	}

	site := domain.Site{
		Address: s.Address,
		Brand:   domain.Brand(s.Brand),
		Code:    s.Code,
		Name:    s.Name,
	}
	for _, name := range s.Configurations {
		site.Configurations = append(site.Configurations, domain.Configuration{Name: name})
	}

	saved, err := cli.Container.SiteService.SaveSite(context.Background(), site)
	if err != nil {
		return err
	}

	logging.Logger.Info("Site saved from CLI", "code", saved.Code)
	fmt.Printf("Site %s (%s) saved with %d configuration(s)\n", saved.Code, saved.Name, len(saved.Configurations))
	return nil
}

// validateForm checks the flags with the site form rules
func (s *SitesAddCmd) validateForm() error {
	result := domain.ValidateAllFields(map[string]string{
		"address": s.Address,
		"brand":   s.Brand,
		"code":    s.Code,
		"name":    s.Name,
	}, domain.SiteValidators)
	if result.IsValid {
		return nil
	}
	return domain.FieldErrors(result.Errors)
}

// SitesImportCmd imports sites from YAML
type SitesImportCmd struct {
	File string `arg:"" help:"YAML file with a top-level 'sites' list" type:"existingfile"`
}

// Run executes the import command
func (s *SitesImportCmd) Run(cli *CLI) error {
	if err := cli.requireAdmin(); err != nil {
		return err
	}

	f, err := os.Open(s.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.File, err)
	}
	defer f.Close()

	result, err := cli.Container.SiteService.ImportSites(context.Background(), f)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d site(s)\n", result.Imported)
	for key, reason := range result.Skipped {
		fmt.Printf("  skipped %s: %s\n", key, reason)
	}
	return nil
}
