package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/renato0307/fieldscan/internal/domain"
)

// GetSite implements SiteReader.GetSite
func (r *SQLiteRepository) GetSite(ctx context.Context, id string) (*domain.Site, error) {
	return r.findSite(ctx, "id = ?", id)
}

// GetSiteByCode implements SiteReader.GetSiteByCode
func (r *SQLiteRepository) GetSiteByCode(ctx context.Context, code string) (*domain.Site, error) {
	return r.findSite(ctx, "code = ?", domain.FormatSiteCode(code))
}

func (r *SQLiteRepository) findSite(ctx context.Context, cond string, arg string) (*domain.Site, error) {
	var model SiteModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where(cond, arg).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSiteNotFound, arg)
		}
		return nil, err
	}

	site := siteModelToDomain(model)
	return &site, nil
}

// ListSites implements SiteReader.ListSites, ordered by name
func (r *SQLiteRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	var models []SiteModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("name ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	sites := make([]domain.Site, len(models))
	for i, m := range models {
		sites[i] = siteModelToDomain(m)
	}
	return sites, nil
}

// SaveSite implements SiteWriter.SaveSite, inserting or replacing by id
func (r *SQLiteRepository) SaveSite(ctx context.Context, site domain.Site) error {
	if site.ID == "" {
		return errors.New("site id is required")
	}
	model := domainToSiteModel(site)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing SiteModel
			err := tx.Select("id", "created_at").Where("id = ?", site.ID).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&model).Error; err != nil {
					return fmt.Errorf("failed to create site: %w", err)
				}
				return nil
			case err != nil:
				return err
			}

			model.CreatedAt = existing.CreatedAt
			if err := tx.Save(&model).Error; err != nil {
				return fmt.Errorf("failed to update site: %w", err)
			}
			return nil
		})
	}, 3)
}

// TouchSite implements SiteWriter.TouchSite
func (r *SQLiteRepository) TouchSite(ctx context.Context, id string, visitedAt time.Time) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&SiteModel{}).
			Where("id = ?", id).
			Update("last_visited", visitedAt.UTC())
		if result.Error != nil {
			return fmt.Errorf("failed to update last visit: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrSiteNotFound, id)
		}
		return nil
	}, 3)
}
