package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/renato0307/fieldscan/internal/domain"
)

func (s *Server) listSites(c *gin.Context) {
	sites, err := s.siteService.ListSites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sites": sites})
}

// getSite returns a site by id or code together with the configurations
// offered for it
func (s *Server) getSite(c *gin.Context) {
	site, err := s.siteService.GetSite(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	configs, fallback, err := s.sessionService.Configurations(*site)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"configurations": configs,
		"fallback":       fallback,
		"site":           site,
	})
}

// listConfigurations generates every known configuration for a brand
func (s *Server) listConfigurations(c *gin.Context) {
	brand := domain.Brand(c.Query("brand"))
	if brand != "" && !brand.Valid() {
		badRequest(c, fmt.Errorf("unknown brand %q", brand))
		return
	}

	names := domain.ConfigurationNames()
	configs := make([]domain.Configuration, 0, len(names))
	for _, name := range names {
		cfg, err := domain.GenerateConfiguration(name, brand)
		if err != nil {
			respondError(c, err)
			return
		}
		configs = append(configs, cfg)
	}
	c.JSON(http.StatusOK, gin.H{"configurations": configs})
}
