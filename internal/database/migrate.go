package database

import (
	"github.com/agrovoice/kisanbhai/internal/repository/conversation"
	"github.com/agrovoice/kisanbhai/internal/repository/growth"
	"github.com/agrovoice/kisanbhai/internal/repository/profile"
	"gorm.io/gorm"
)

func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&profile.ProfileEntity{},
		&conversation.MessageEntity{},
		&growth.GrowthEntity{},
	)
}
