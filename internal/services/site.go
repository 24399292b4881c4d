package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/logging"
)

// SiteService manages sites and the configurations offered at them
type SiteService struct {
	now      func() time.Time
	sessions *SessionService
	siteRepo ports.SiteRepository
	validate *validator.Validate
}

// NewSiteService creates a new SiteService. sessions supplies the fallback
// configuration policy.
func NewSiteService(siteRepo ports.SiteRepository, sessions *SessionService) *SiteService {
	return &SiteService{
		now:      func() time.Time { return time.Now().UTC() },
		sessions: sessions,
		siteRepo: siteRepo,
		validate: newSiteValidator(),
	}
}

func newSiteValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("sitecode", validateSiteCodeTag); err != nil {
		panic(fmt.Sprintf("failed to register sitecode validation: %v", err))
	}
	return v
}

func validateSiteCodeTag(fl validator.FieldLevel) bool {
	return domain.SiteCodePattern.MatchString(fl.Field().String())
}

// siteFieldMessages maps validator failures to form messages
var siteFieldMessages = map[string]string{
	"Address.required": "Address is required",
	"Brand.oneof":      "Brand must be one of Coral, Ladbrokes, Betfred",
	"Brand.required":   "Brand is required",
	"Code.required":    "Site code is required",
	"Code.sitecode":    "Invalid format (e.g., L1234)",
	"Email.email":      "Invalid email format",
	"Name.required":    "Site name is required",
}

// ValidateSite checks a site before it is stored
func (s *SiteService) ValidateSite(site domain.Site) error {
	err := s.validate.Struct(site)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidSite, err)
	}

	fields := domain.FieldErrors{}
	for _, fe := range ve {
		key := strings.TrimPrefix(fe.Namespace(), "Site.")
		msg, ok := siteFieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed %s check", fe.Tag())
		}
		fields[key] = msg
	}
	return fields
}

// ListSites returns every site
func (s *SiteService) ListSites(ctx context.Context) ([]domain.Site, error) {
	return s.siteRepo.ListSites(ctx)
}

// GetSite looks a site up by id, falling back to its code
func (s *SiteService) GetSite(ctx context.Context, idOrCode string) (*domain.Site, error) {
	site, err := s.siteRepo.GetSite(ctx, idOrCode)
	if err == nil || !errors.Is(err, domain.ErrSiteNotFound) {
		return site, err
	}
	if domain.ValidateSiteCode(idOrCode) != "" {
		return nil, err
	}
	return s.siteRepo.GetSiteByCode(ctx, idOrCode)
}

// SelectSite records a visit and returns the configurations to choose from
func (s *SiteService) SelectSite(ctx context.Context, idOrCode string) (*SiteSelection, error) {
	site, err := s.GetSite(ctx, idOrCode)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if err := s.siteRepo.TouchSite(ctx, site.ID, now); err != nil {
		logging.Logger.Warn("Failed to record site visit", "site", site.Code, "error", err)
	} else {
		site.LastVisited = &now
	}

	choices, fallback, err := s.sessions.Configurations(*site)
	if err != nil {
		return nil, err
	}
	return &SiteSelection{Configurations: choices, Fallback: fallback, Site: site}, nil
}

// SaveSite validates and stores a site. The code is normalised, a missing
// id is generated, and configurations given only by name are generated for
// the site's brand.
func (s *SiteService) SaveSite(ctx context.Context, site domain.Site) (*domain.Site, error) {
	site.Code = domain.FormatSiteCode(site.Code)
	site.Name = strings.TrimSpace(site.Name)
	site.Address = strings.TrimSpace(site.Address)
	if site.ID == "" {
		site.ID = uuid.New().String()
	}

	if err := s.ValidateSite(site); err != nil {
		return nil, err
	}

	for i, cfg := range site.Configurations {
		if cfg.Usable() || !domain.IsKnownConfiguration(cfg.Name) {
			continue
		}
		generated, err := domain.GenerateConfiguration(cfg.Name, site.Brand)
		if err != nil {
			return nil, err
		}
		site.Configurations[i] = generated
	}

	if err := s.siteRepo.SaveSite(ctx, site); err != nil {
		logging.Logger.Error("Failed to save site", "site", site.Code, "error", err)
		return nil, fmt.Errorf("failed to save site: %w", err)
	}
	logging.Logger.Info("Site saved", "site", site.Code, "configurations", len(site.Configurations))
	return &site, nil
}

// siteFile is the YAML document accepted by ImportSites
type siteFile struct {
	Sites []domain.Site `yaml:"sites"`
}

// ImportSites reads a YAML document with a top-level sites list. Sites
// that fail validation are skipped and reported by code; an existing site
// with the same code is updated in place.
func (s *SiteService) ImportSites(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var doc siteFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &ImportResult{Skipped: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("failed to parse sites file: %w", err)
	}

	result := &ImportResult{Skipped: map[string]string{}}
	for i, site := range doc.Sites {
		key := site.Code
		if key == "" {
			key = fmt.Sprintf("#%d", i+1)
		}

		if site.ID == "" && site.Code != "" {
			if existing, err := s.siteRepo.GetSiteByCode(ctx, site.Code); err == nil {
				site.ID = existing.ID
			}
		}

		if _, err := s.SaveSite(ctx, site); err != nil {
			if errors.Is(err, domain.ErrInvalidSite) || errors.Is(err, domain.ErrUnknownConfiguration) {
				result.Skipped[key] = err.Error()
				continue
			}
			return result, err
		}
		result.Imported++
	}

	logging.Logger.Info("Sites imported", "imported", result.Imported, "skipped", len(result.Skipped))
	return result, nil
}
