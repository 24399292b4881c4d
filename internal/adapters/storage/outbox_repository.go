package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/renato0307/fieldscan/internal/ports"
)

// Enqueue implements Outbox.Enqueue. Sequence numbers grow per session.
func (r *SQLiteRepository) Enqueue(ctx context.Context, sessionID string, payload []byte) (*ports.OutboxEntry, error) {
	model := OutboxModel{
		CreatedAt: r.now(),
		ID:        uuid.New().String(),
		Payload:   payload,
		SessionID: sessionID,
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var maxSeq int64
			if err := tx.Model(&OutboxModel{}).
				Where("session_id = ?", sessionID).
				Select("COALESCE(MAX(seq), 0)").
				Scan(&maxSeq).Error; err != nil {
				return err
			}
			model.Seq = maxSeq + 1
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to enqueue session update: %w", err)
			}
			return nil
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	entry := outboxModelToPort(model)
	return &entry, nil
}

// Pending implements Outbox.Pending
func (r *SQLiteRepository) Pending(ctx context.Context) (map[string][]ports.OutboxEntry, error) {
	var models []OutboxModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("session_id ASC, seq ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	pending := make(map[string][]ports.OutboxEntry)
	for _, m := range models {
		pending[m.SessionID] = append(pending[m.SessionID], outboxModelToPort(m))
	}
	return pending, nil
}

// Latest implements Outbox.Latest
func (r *SQLiteRepository) Latest(ctx context.Context, sessionID string) (*ports.OutboxEntry, error) {
	var models []OutboxModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("session_id = ?", sessionID).
			Order("seq DESC").
			Limit(1).
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	entry := outboxModelToPort(models[0])
	return &entry, nil
}

// PendingCount implements Outbox.PendingCount
func (r *SQLiteRepository) PendingCount(ctx context.Context) (int64, error) {
	var count int64
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Model(&OutboxModel{}).Count(&count).Error
	}, 3)
	return count, err
}

// Remove implements Outbox.Remove. Removing a missing entry is not an error.
func (r *SQLiteRepository) Remove(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).Delete(&OutboxModel{}).Error
	}, 3)
}
