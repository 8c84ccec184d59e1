package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ascent-cms/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const settingsCollection = "site_settings"

// SettingRepository stores keyed site settings
type SettingRepository interface {
	// Get returns the flags stored under key, or an empty set when the key is absent
	Get(ctx context.Context, key string) (models.Flags, error)
	Put(ctx context.Context, key string, value models.Flags) error
}

// GormSettingRepository handles database operations for site settings
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new settings repository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

func (r *GormSettingRepository) Get(ctx context.Context, key string) (models.Flags, error) {
	var setting models.SiteSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Flags{}, nil
	}
	if err != nil {
		return nil, fetchError(ctx, settingsCollection, "get", err)
	}
	if setting.Value == nil {
		setting.Value = models.Flags{}
	}
	return setting.Value, nil
}

// Put upserts the value under key
func (r *GormSettingRepository) Put(ctx context.Context, key string, value models.Flags) error {
	setting := models.SiteSetting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return writeError(ctx, settingsCollection, "put", err)
	}
	return nil
}

// MemorySettingRepository keeps site settings in process
type MemorySettingRepository struct {
	mu     sync.RWMutex
	values map[string]models.Flags
}

// NewMemorySettingRepository creates an empty settings store
func NewMemorySettingRepository() *MemorySettingRepository {
	return &MemorySettingRepository{values: make(map[string]models.Flags)}
}

func (r *MemorySettingRepository) Get(ctx context.Context, key string) (models.Flags, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchError(ctx, settingsCollection, "get", err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyFlags(r.values[key]), nil
}

func (r *MemorySettingRepository) Put(ctx context.Context, key string, value models.Flags) error {
	if err := ctx.Err(); err != nil {
		return writeError(ctx, settingsCollection, "put", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = copyFlags(value)
	return nil
}

func copyFlags(in models.Flags) models.Flags {
	out := make(models.Flags, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
