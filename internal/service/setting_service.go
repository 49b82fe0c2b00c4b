package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingService reads and updates the site-settings key/value store.
// Values are opaque JSON documents; callers decode what they need.
type SettingService struct {
	db *gorm.DB
}

// NewSettingService creates a SettingService instance.
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// All returns every stored setting keyed by name.
func (s *SettingService) All() (map[string]json.RawMessage, error) {
	var records []db.SiteSetting
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load site settings: %w", err)
	}

	settings := make(map[string]json.RawMessage, len(records))
	for _, record := range records {
		settings[record.Key] = json.RawMessage(record.Value)
	}
	return settings, nil
}

// Get returns one setting value; ok is false when the key was never set.
func (s *SettingService) Get(key string) (json.RawMessage, bool, error) {
	var record db.SiteSetting
	err := s.db.Where("key = ?", key).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load setting %s: %w", key, err)
	}
	return json.RawMessage(record.Value), true, nil
}

// GetString decodes a string-valued setting, returning "" when unset.
func (s *SettingService) GetString(key string) (string, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return "", err
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		// Some legacy rows store bare strings rather than JSON.
		return strings.TrimSpace(string(raw)), nil
	}
	return value, nil
}

// Set upserts a batch of settings in one transaction.
func (s *SettingService) Set(actor Actor, values map[string]json.RawMessage) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			trimmed := strings.TrimSpace(key)
			if trimmed == "" {
				return &ValidationError{Field: "key", Reason: "must not be empty"}
			}
			if err := upsertSetting(tx, trimmed, string(value)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// MaintenanceEnabled reports whether the stored maintenance flag is on.
func (s *SettingService) MaintenanceEnabled() bool {
	raw, ok, err := s.Get(db.SettingKeyMaintenanceMode)
	if err != nil || !ok {
		return false
	}
	var enabled bool
	if err := json.Unmarshal(raw, &enabled); err != nil {
		return strings.TrimSpace(string(raw)) == `"true"` || strings.TrimSpace(string(raw)) == "true"
	}
	return enabled
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.SiteSetting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}
