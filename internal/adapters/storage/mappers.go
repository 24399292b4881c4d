package storage

import (
	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
)

// siteModelToDomain converts a SiteModel (GORM) to domain.Site
func siteModelToDomain(m SiteModel) domain.Site {
	return domain.Site{
		Address:          m.Address,
		Brand:            domain.Brand(m.Brand),
		Code:             m.Code,
		Configurations:   m.Configurations,
		Documents:        m.Documents,
		ID:               m.ID,
		InstallationDate: m.InstallationDate,
		LastVisited:      m.LastVisited,
		Name:             m.Name,
		ReferencePhotos:  m.ReferencePhotos,
		SiteContacts:     m.SiteContacts,
		Status:           m.Status,
	}
}

// domainToSiteModel converts a domain.Site to SiteModel (GORM)
func domainToSiteModel(s domain.Site) SiteModel {
	return SiteModel{
		Address:          s.Address,
		Brand:            string(s.Brand),
		Code:             s.Code,
		Configurations:   s.Configurations,
		Documents:        s.Documents,
		ID:               s.ID,
		InstallationDate: s.InstallationDate,
		LastVisited:      s.LastVisited,
		Name:             s.Name,
		ReferencePhotos:  s.ReferencePhotos,
		SiteContacts:     s.SiteContacts,
		Status:           s.Status,
	}
}

// sessionModelToDomain converts a SessionModel (GORM) to a normalized
// domain.Session
func sessionModelToDomain(m SessionModel) domain.Session {
	s := domain.Session{
		Brand:        domain.Brand(m.Brand),
		ConfigID:     m.ConfigID,
		ConfigName:   m.ConfigName,
		EndTime:      m.EndTime,
		ExportedAt:   m.ExportedAt,
		ID:           m.ID,
		LastUpdated:  m.LastUpdated,
		Layout:       m.Layout,
		ScanResults:  m.ScanResults,
		SessionNotes: m.SessionNotes,
		SiteCode:     m.SiteCode,
		SiteID:       m.SiteID,
		SiteName:     m.SiteName,
		StartTime:    m.StartTime,
		Status:       domain.SessionStatus(m.Status),
	}
	s.Normalize()
	return s
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	return SessionModel{
		Brand:        string(s.Brand),
		ConfigID:     s.ConfigID,
		ConfigName:   s.ConfigName,
		EndTime:      s.EndTime,
		ExportedAt:   s.ExportedAt,
		ID:           s.ID,
		LastUpdated:  s.LastUpdated,
		Layout:       s.Layout,
		ScanResults:  s.ScanResults,
		SessionNotes: s.SessionNotes,
		SiteCode:     s.SiteCode,
		SiteID:       s.SiteID,
		SiteName:     s.SiteName,
		StartTime:    s.StartTime,
		Status:       string(s.Status),
	}
}

func outboxModelToPort(m OutboxModel) ports.OutboxEntry {
	return ports.OutboxEntry{
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		Payload:   m.Payload,
		Seq:       m.Seq,
		SessionID: m.SessionID,
	}
}

func exportTemplateModelToDomain(m ExportTemplateModel) domain.ExportTemplate {
	return domain.ExportTemplate{
		Config:    m.Config,
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		Name:      m.Name,
	}
}

func excelTemplateModelToDomain(m ExcelTemplateModel) domain.ExcelTemplate {
	return domain.ExcelTemplate{
		ConfigMappings: m.ConfigMappings,
		FilePath:       m.FilePath,
		FileSize:       m.FileSize,
		ID:             m.ID,
		IsActive:       m.IsActive,
		Name:           m.Name,
		UploadDate:     m.UploadDate,
	}
}
