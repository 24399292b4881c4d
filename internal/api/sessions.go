package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/export"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/internal/services"
)

type createSessionRequest struct {
	Configuration string `json:"configuration"`
	Notes         string `json:"notes"`
	SiteID        string `json:"site_id" binding:"required"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

type scanUpdateResponse struct {
	Queued   bool            `json:"queued"`
	Replaced bool            `json:"replaced"`
	Session  *domain.Session `json:"session"`
}

func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := s.sessionService.CreateSession(c.Request.Context(), services.CreateSessionParams{
		Configuration: req.Configuration,
		Notes:         req.Notes,
		SiteID:        req.SiteID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (s *Server) listSessions(c *gin.Context) {
	filter := ports.SessionFilter{
		SiteID: c.Query("site_id"),
		Status: domain.SessionStatus(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		badRequest(c, fmt.Errorf("unknown status %q", filter.Status))
		return
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			badRequest(c, fmt.Errorf("invalid limit %q", v))
			return
		}
		filter.Limit = limit
	}

	sessions, err := s.sessionService.ListSessions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (s *Server) getSession(c *gin.Context) {
	session, err := s.sessionService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) getProgress(c *gin.Context) {
	progress, err := s.sessionService.GetProgress(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// saveScan upserts one scan result by position id
func (s *Server) saveScan(c *gin.Context) {
	var result domain.ScanResult
	if err := c.ShouldBindJSON(&result); err != nil {
		badRequest(c, err)
		return
	}
	if result.PositionID == "" {
		badRequest(c, errors.New("position_id is required"))
		return
	}

	update, err := s.sessionService.UpdateSessionWithScan(c.Request.Context(), c.Param("id"), result)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if update.Queued {
		status = http.StatusAccepted
	}
	c.JSON(status, scanUpdateResponse{
		Queued:   update.Queued,
		Replaced: update.Replaced,
		Session:  update.Session,
	})
}

func (s *Server) updateNotes(c *gin.Context) {
	var req notesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	session, err := s.sessionService.UpdateNotes(c.Request.Context(), c.Param("id"), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) completeSession(c *gin.Context) {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	session, err := s.sessionService.CompleteSession(c.Request.Context(), c.Param("id"), force)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (s *Server) markExported(c *gin.Context) {
	session, err := s.sessionService.MarkAsExported(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// exportSession renders a session as a download. Without columns the
// default export configuration applies.
func (s *Server) exportSession(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		badRequest(c, err)
		return
	}

	params := services.ExportParams{
		Format:       format,
		SessionID:    c.Param("id"),
		TemplateName: c.Query("template"),
	}
	if cfg, err := exportConfigFromQuery(c); err != nil {
		badRequest(c, err)
		return
	} else if cfg != nil {
		params.Config = cfg
	}

	result, err := s.exportService.Export(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, export.ContentType(format), result.Data)
}

func exportConfigFromQuery(c *gin.Context) (*domain.ExportConfig, error) {
	columns := c.Query("columns")
	sortBy := c.Query("sort")
	dateFormat := c.Query("date_format")
	if columns == "" && sortBy == "" && dateFormat == "" {
		return nil, nil
	}

	cfg := domain.DefaultExportConfig()
	if columns != "" {
		cfg.Columns = map[domain.Column]bool{}
		for _, name := range strings.Split(columns, ",") {
			col := domain.Column(strings.TrimSpace(name))
			if !knownColumn(col) {
				return nil, fmt.Errorf("unknown column %q", col)
			}
			cfg.Columns[col] = true
		}
	}
	if sortBy != "" {
		switch key := domain.SortKey(sortBy); key {
		case domain.SortByModel, domain.SortByPosition, domain.SortByTime:
			cfg.SortBy = key
		default:
			return nil, fmt.Errorf("unknown sort %q", sortBy)
		}
	}
	if dateFormat != "" {
		cfg.DateFormat = dateFormat
	}
	return &cfg, nil
}

func knownColumn(col domain.Column) bool {
	for _, c := range domain.Columns() {
		if c == col {
			return true
		}
	}
	return false
}

func (s *Server) emailDraft(c *gin.Context) {
	draft, err := s.exportService.EmailDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) syncStatus(c *gin.Context) {
	pending, err := s.syncService.PendingCount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending": pending})
}

func (s *Server) replay(c *gin.Context) {
	result, err := s.syncService.Replay(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": result.Applied, "pending": result.Pending})
}
