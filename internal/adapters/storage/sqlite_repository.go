package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/fieldscan/internal/domain"
	"github.com/renato0307/fieldscan/internal/ports"
	"github.com/renato0307/fieldscan/logging"
)

// SQLiteRepository implements the storage ports using GORM
type SQLiteRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// Verify interface compliance at compile time
var (
	_ ports.Outbox             = (*SQLiteRepository)(nil)
	_ ports.SessionRepository  = (*SQLiteRepository)(nil)
	_ ports.SiteRepository     = (*SQLiteRepository)(nil)
	_ ports.TemplateRepository = (*SQLiteRepository)(nil)
)

// gormLogger wraps the fieldscan logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FIELDSCAN_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the API server and the CLI share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	models := []any{
		&SiteModel{},
		&SessionModel{},
		&OutboxModel{},
		&ExportTemplateModel{},
		&ExcelTemplateModel{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			if !strings.Contains(err.Error(), "already exists") {
				return nil, fmt.Errorf("failed to migrate schema: %w", err)
			}
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements SessionReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	var model SessionModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
		}
		return nil, err
	}

	session := sessionModelToDomain(model)
	return &session, nil
}

// List implements SessionReader.List. Newest sessions come first.
func (r *SQLiteRepository) List(ctx context.Context, filter ports.SessionFilter) ([]domain.Session, error) {
	var models []SessionModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("start_time DESC")
		if filter.SiteID != "" {
			query = query.Where("site_id = ?", filter.SiteID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", string(filter.Status))
		}
		if filter.Limit > 0 {
			query = query.Limit(filter.Limit)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Session, len(models))
	for i, m := range models {
		result[i] = sessionModelToDomain(m)
	}
	return result, nil
}

// Create implements SessionWriter.Create
func (r *SQLiteRepository) Create(ctx context.Context, session domain.Session) error {
	if session.ID == "" {
		return errors.New("session id is required")
	}
	model := domainToSessionModel(session)
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	}, 3)
}

// Update implements SessionWriter.Update by replacing the stored session
func (r *SQLiteRepository) Update(ctx context.Context, session domain.Session) error {
	model := domainToSessionModel(session)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing SessionModel
			if err := tx.Select("id", "created_at").Where("id = ?", session.ID).First(&existing).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, session.ID)
				}
				return err
			}
			model.CreatedAt = existing.CreatedAt
			if err := tx.Save(&model).Error; err != nil {
				return fmt.Errorf("failed to update session: %w", err)
			}
			return nil
		})
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff.
// Exhausting the retries yields domain.ErrTransient.
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		if isBusy(err) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("%w: operation failed after %d retries", domain.ErrTransient, maxRetries)
}

func isBusy(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) &&
		(sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked)
}
