package conversation

import (
	"fmt"
	"time"

	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/google/uuid"
)

// MessageEntity represents one persisted chat message
type MessageEntity struct {
	ID        string    `gorm:"primaryKey;type:char(36);not null" json:"id"`
	ProfileID string    `gorm:"index;type:char(36);not null" json:"profileId"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	Content   string    `gorm:"type:text" json:"content"`
	Image     string    `gorm:"type:longtext" json:"image,omitempty"`
	Timestamp time.Time `gorm:"index;autoCreateTime(3)" json:"timestamp"`
}

// TableName returns the table name for GORM
func (MessageEntity) TableName() string {
	return "chat_messages"
}

// Key is the redis key under which the serialized message is cached.
func (m *MessageEntity) Key() string {
	return fmt.Sprintf("msg:%s", m.ID)
}

// ToDomain converts MessageEntity to a types.ChatMessage
func (m *MessageEntity) ToDomain() *types.ChatMessage {
	id, _ := uuid.Parse(m.ID)
	profileID, _ := uuid.Parse(m.ProfileID)
	return &types.ChatMessage{
		Id:        id,
		ProfileID: profileID,
		Role:      types.Role(m.Role),
		Content:   m.Content,
		Image:     m.Image,
		Timestamp: m.Timestamp,
	}
}

// FromDomain converts a types.ChatMessage to MessageEntity
func (m *MessageEntity) FromDomain(msg *types.ChatMessage) {
	m.ID = msg.Id.String()
	m.ProfileID = msg.ProfileID.String()
	m.Role = string(msg.Role)
	m.Content = msg.Content
	m.Image = msg.Image
	m.Timestamp = msg.Timestamp
}
