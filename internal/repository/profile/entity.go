package profile

import (
	"time"

	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileEntity represents the database entity for Profile with GORM tags
type ProfileEntity struct {
	ID        string         `gorm:"primaryKey;type:char(36);not null"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Phone     string         `gorm:"uniqueIndex;type:varchar(32);not null"`
	Password  string         `gorm:"column:password_hash;type:char(60);not null"`
	Location  string         `gorm:"type:varchar(255)"`
	Language  string         `gorm:"type:varchar(8);default:en"`
	SoilType  string         `gorm:"column:soil_type;type:varchar(64)"`
	Crops     []string       `gorm:"type:json;serializer:json"`
	CreatedAt time.Time      `gorm:"autoCreateTime(3)"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime(3)"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (ProfileEntity) TableName() string {
	return "farm_profiles"
}

// BeforeCreate is a GORM hook to ensure UUID is set
func (p *ProfileEntity) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// ToDomain converts ProfileEntity to domain Profile
func (p *ProfileEntity) ToDomain() *profile.Profile {
	return &profile.Profile{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Password:  p.Password,
		Location:  p.Location,
		Language:  p.Language,
		SoilType:  p.SoilType,
		Crops:     p.Crops,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromDomain converts domain Profile to ProfileEntity
func (p *ProfileEntity) FromDomain(d *profile.Profile) {
	p.ID = d.ID
	p.Name = d.Name
	p.Phone = d.Phone
	p.Password = d.Password
	p.Location = d.Location
	p.Language = d.Language
	p.SoilType = d.SoilType
	p.Crops = d.Crops
	p.CreatedAt = d.CreatedAt
	p.UpdatedAt = d.UpdatedAt
}

// NewProfileEntityFromDomain creates a new ProfileEntity from a domain Profile
func NewProfileEntityFromDomain(d *profile.Profile) *ProfileEntity {
	entity := &ProfileEntity{}
	entity.FromDomain(d)
	return entity
}
