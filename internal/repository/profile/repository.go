package profile

import (
	"errors"
	"fmt"

	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"gorm.io/gorm"
)

type GormProfileRepo struct {
	db *gorm.DB
}

func NewGormProfileRepo(db *gorm.DB) *GormProfileRepo {
	return &GormProfileRepo{db: db}
}

// Create implements profile.ProfileRepository
func (g *GormProfileRepo) Create(p *profile.Profile) error {
	entity := NewProfileEntityFromDomain(p)
	if err := g.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	*p = *entity.ToDomain()
	return nil
}

// GetByID implements profile.ProfileRepository
func (g *GormProfileRepo) GetByID(id string) (*profile.Profile, error) {
	var entity ProfileEntity
	if err := g.db.Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by ID: %w", err)
	}
	return entity.ToDomain(), nil
}

// GetByPhone implements profile.ProfileRepository
func (g *GormProfileRepo) GetByPhone(phone string) (*profile.Profile, error) {
	var entity ProfileEntity
	if err := g.db.Where("phone = ?", phone).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by phone: %w", err)
	}
	return entity.ToDomain(), nil
}

// PhoneExists implements profile.ProfileRepository
func (g *GormProfileRepo) PhoneExists(phone string) (bool, error) {
	var count int64
	if err := g.db.Model(&ProfileEntity{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check phone: %w", err)
	}
	return count > 0, nil
}

// Update implements profile.ProfileRepository
func (g *GormProfileRepo) Update(id string, updates profile.UpdateProfileRequest) (*profile.Profile, error) {
	var entity ProfileEntity
	if err := g.db.Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile for update: %w", err)
	}

	updateMap := make(map[string]interface{})
	if updates.Name != nil {
		updateMap["name"] = *updates.Name
	}
	if updates.Location != nil {
		updateMap["location"] = *updates.Location
	}
	if updates.Language != nil {
		updateMap["language"] = *updates.Language
	}
	if updates.SoilType != nil {
		updateMap["soil_type"] = *updates.SoilType
	}
	if updates.Crops != nil {
		entity.Crops = *updates.Crops
		if err := g.db.Model(&entity).Select("crops").Updates(&entity).Error; err != nil {
			return nil, fmt.Errorf("failed to update crops: %w", err)
		}
	}

	if len(updateMap) > 0 {
		if err := g.db.Model(&entity).Updates(updateMap).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	if err := g.db.Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return entity.ToDomain(), nil
}

// Delete implements profile.ProfileRepository
func (g *GormProfileRepo) Delete(id string) error {
	result := g.db.Where("id = ?", id).Delete(&ProfileEntity{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return profile.ErrProfileNotFound
	}
	return nil
}
