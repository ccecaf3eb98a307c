package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jordo960/VibePulse/models"
	"gorm.io/gorm"
)

// Gorm stores each key as one row of the settings table.
type Gorm struct {
	db *gorm.DB
}

// NewGorm migrates the settings table and wraps db.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		return nil, fmt.Errorf("migrate settings: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (s *Gorm) Get(ctx context.Context, key string) ([]byte, error) {
	var row models.Setting
	err := s.db.WithContext(ctx).Where("setting_key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.Value, nil
}

func (s *Gorm) Set(ctx context.Context, key string, value []byte) error {
	row := models.Setting{Key: key}
	return s.db.WithContext(ctx).
		Where("setting_key = ?", key).
		Assign(models.Setting{Value: value}).
		FirstOrCreate(&row).Error
}

func (s *Gorm) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("setting_key = ?", key).
		Delete(&models.Setting{}).Error
}

func (s *Gorm) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
