package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"wristweather.app/pkg/errors"
)

// SettingModel represents the database model for persisted settings
type SettingModel struct {
	Key       string `gorm:"column:setting_key;primaryKey;size:128"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (SettingModel) TableName() string {
	return "settings"
}

// SettingsRepositoryAdapter implements the StoreBackend port using GORM
type SettingsRepositoryAdapter struct {
	db *gorm.DB
}

// NewSettingsRepositoryAdapter creates a new settings repository adapter
func NewSettingsRepositoryAdapter(db *gorm.DB) *SettingsRepositoryAdapter {
	return &SettingsRepositoryAdapter{db: db}
}

// Get retrieves a setting value by key
func (r *SettingsRepositoryAdapter) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("store key cannot be empty")
	}

	var model SettingModel
	result := r.db.WithContext(ctx).Where("setting_key = ?", key).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", errors.NewNotFoundError("key not found: " + key)
		}
		return "", errors.NewDatabaseError("failed to find setting", result.Error)
	}

	return model.Value, nil
}

// Set inserts or replaces a setting value
func (r *SettingsRepositoryAdapter) Set(ctx context.Context, key string, value string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	model := SettingModel{Key: key, Value: value, UpdatedAt: time.Now()}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save setting", result.Error)
	}

	return nil
}

// Delete removes a setting. Deleting a missing key is not an error.
func (r *SettingsRepositoryAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("setting_key = ?", key).Delete(&SettingModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete setting", result.Error)
	}

	return nil
}

// Ping verifies database connectivity
func (r *SettingsRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get underlying database connection", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("database ping failed", err)
	}
	return nil
}

// Close closes the underlying connection pool
func (r *SettingsRepositoryAdapter) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get underlying database connection", err)
	}
	if err := sqlDB.Close(); err != nil {
		return errors.NewDatabaseError("failed to close database", err)
	}
	return nil
}
