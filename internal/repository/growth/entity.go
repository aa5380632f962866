package growth

import (
	"time"

	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GrowthEntity represents one analyzed crop scan
type GrowthEntity struct {
	ID        string    `gorm:"primaryKey;type:char(36);not null"`
	ProfileID string    `gorm:"index;type:char(36);not null"`
	Date      time.Time `gorm:"index;not null"`
	Image     string    `gorm:"type:longtext"`
	CropType  string    `gorm:"column:crop_type;type:varchar(64)"`
	Stage     string    `gorm:"type:varchar(64)"`
	Analysis  string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime(3)"`
}

// TableName returns the table name for GORM
func (GrowthEntity) TableName() string {
	return "growth_records"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (e *GrowthEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// ToDomain converts GrowthEntity to a types.GrowthRecord
func (e *GrowthEntity) ToDomain() *types.GrowthRecord {
	id, _ := uuid.Parse(e.ID)
	profileID, _ := uuid.Parse(e.ProfileID)
	return &types.GrowthRecord{
		ID:        id,
		ProfileID: profileID,
		Date:      e.Date,
		Image:     e.Image,
		CropType:  e.CropType,
		Stage:     e.Stage,
		Analysis:  e.Analysis,
	}
}

// FromDomain converts a types.GrowthRecord to GrowthEntity
func (e *GrowthEntity) FromDomain(r *types.GrowthRecord) {
	e.ID = r.ID.String()
	e.ProfileID = r.ProfileID.String()
	e.Date = r.Date
	e.Image = r.Image
	e.CropType = r.CropType
	e.Stage = r.Stage
	e.Analysis = r.Analysis
}
