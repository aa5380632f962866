package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn in an advisory conversation. Messages are
// append-only for the life of a session and never mutated after creation.
type ChatMessage struct {
	Id        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"` // base64 JPEG payload, optional
	Timestamp time.Time `json:"timestamp"`
}

// HasImage reports whether an image payload rides along with the message.
func (m *ChatMessage) HasImage() bool {
	return strings.TrimSpace(m.Image) != ""
}

// CreateMessage is the inbound body for a chat submission.
// @Description Chat submission body
type CreateMessage struct {
	Text  string `json:"text" example:"What is the weather today?"`
	Image string `json:"image,omitempty"`
}

func (cm *CreateMessage) ToMessage(profileID uuid.UUID) ChatMessage {
	content := cm.Text
	if strings.TrimSpace(content) == "" && cm.Image != "" {
		content = "Analyze this."
	}
	return ChatMessage{
		Id:        uuid.New(),
		ProfileID: profileID,
		Role:      RoleUser,
		Content:   content,
		Image:     cm.Image,
		Timestamp: time.Now(),
	}
}

// IsEmpty reports whether the submission carries neither text nor image.
func (cm *CreateMessage) IsEmpty() bool {
	return strings.TrimSpace(cm.Text) == "" && strings.TrimSpace(cm.Image) == ""
}

// GrowthRecord documents one analyzed crop scan. Records are prepended to a
// profile's list and never updated or deleted afterwards.
type GrowthRecord struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Date      time.Time `json:"date"`
	Image     string    `json:"image"`
	CropType  string    `json:"cropType"`
	Stage     string    `json:"stage"`
	Analysis  string    `json:"analysis"`
}

