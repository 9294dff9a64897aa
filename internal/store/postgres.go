// internal/store/postgres.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry is one key-value blob row
type kvEntry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (kvEntry) TableName() string {
	return "kv_entries"
}

// Postgres is the durable store tier: one row per key, the value as a JSON
// blob. Database errors are logged and degrade to "absent" so the session
// keeps working on the remaining tiers.
type Postgres struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewPostgres creates a Postgres-backed store tier and migrates its table
func NewPostgres(db *gorm.DB, logger *logrus.Logger) (*Postgres, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &Postgres{
		db:     db,
		logger: logger,
	}, nil
}

// Get unmarshals the value stored under key
func (p *Postgres) Get(ctx context.Context, key string, dest interface{}) bool {
	var entry kvEntry
	err := p.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if err != nil {
		p.logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Postgres read failed, degrading")
		return false
	}

	if err := decode([]byte(entry.Value), dest); err != nil {
		p.logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Discarding corrupted value in postgres store")
		return false
	}
	return true
}

// Set upserts the marshaled value under key
func (p *Postgres) Set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		p.logger.WithFields(logrus.Fields{"key": key, "error": err}).Error("Failed to marshal value for postgres store")
		return
	}

	entry := kvEntry{Key: key, Value: string(raw), UpdatedAt: time.Now().UTC()}
	err = p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		p.logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Postgres write failed, degrading")
	}
}

// Delete removes the key
func (p *Postgres) Delete(ctx context.Context, key string) {
	if err := p.db.WithContext(ctx).Where("key = ?", key).Delete(&kvEntry{}).Error; err != nil {
		p.logger.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Postgres delete failed")
	}
}
