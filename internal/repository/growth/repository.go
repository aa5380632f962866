package growth

import (
	"context"
	"fmt"

	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormGrowthRepo struct {
	db *gorm.DB
}

func NewGormGrowthRepo(db *gorm.DB) *GormGrowthRepo {
	return &GormGrowthRepo{db: db}
}

// Create implements growth.GrowthRepository
func (g *GormGrowthRepo) Create(ctx context.Context, r *types.GrowthRecord) error {
	entity := GrowthEntity{}
	entity.FromDomain(r)
	if err := g.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return fmt.Errorf("failed to create growth record: %w", err)
	}
	*r = *entity.ToDomain()
	return nil
}

// ListByProfile implements growth.GrowthRepository. Records come back most
// recent first.
func (g *GormGrowthRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]types.GrowthRecord, error) {
	var entities []GrowthEntity
	if err := g.db.WithContext(ctx).
		Where("profile_id = ?", profileID.String()).
		Order("date DESC").
		Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to list growth records: %w", err)
	}

	records := make([]types.GrowthRecord, 0, len(entities))
	for i := range entities {
		records = append(records, *entities[i].ToDomain())
	}
	return records, nil
}
