package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormConversationRepo persists chat messages in MySQL and keeps a
// per-profile recency index in redis so history reads skip the database
// on the hot path.
type GormConversationRepo struct {
	db     *gorm.DB
	rc     *redis.Client
	msgTTL time.Duration
}

func NewGormConversationRepo(db *gorm.DB, rc *redis.Client, msgTTL time.Duration) *GormConversationRepo {
	return &GormConversationRepo{db: db, rc: rc, msgTTL: msgTTL}
}

func ProfileMsgListKey(profileID uuid.UUID) string {
	return fmt.Sprintf("profile:%s:msgs", profileID.String())
}

// Append stores one message. The database write is authoritative; redis
// index failures degrade history reads but never lose the message.
func (g *GormConversationRepo) Append(ctx context.Context, msg types.ChatMessage) error {
	entity := MessageEntity{}
	entity.FromDomain(&msg)

	if err := g.db.WithContext(ctx).Create(&entity).Error; err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("can't marshal msg")
	}

	if err := g.rc.Set(entity.Key(), data, g.msgTTL).Err(); err != nil {
		return nil
	}
	g.rc.ZAdd(ProfileMsgListKey(msg.ProfileID), redis.Z{
		Member: entity.Key(),
		Score:  float64(entity.Timestamp.UnixMilli()),
	})
	return nil
}

// History returns up to limit messages for a profile, oldest first. A
// positive limit keeps the most recent messages, so a capped read is the
// tail of the conversation, not its beginning.
func (g *GormConversationRepo) History(ctx context.Context, profileID uuid.UUID, limit int) ([]types.ChatMessage, error) {
	if msgs, ok := g.historyFromRedis(profileID, limit); ok {
		return msgs, nil
	}

	var entities []MessageEntity
	q := g.db.WithContext(ctx).
		Where("profile_id = ?", profileID.String()).
		Order("timestamp ASC")
	if limit > 0 {
		// Newest n first, then flipped back to chronological order.
		q = g.db.WithContext(ctx).
			Where("profile_id = ?", profileID.String()).
			Order("timestamp DESC").
			Limit(limit)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	msgs := make([]types.ChatMessage, 0, len(entities))
	for i := range entities {
		msgs = append(msgs, *entities[i].ToDomain())
	}
	if limit > 0 {
		reverseMessages(msgs)
	}
	return msgs, nil
}

func reverseMessages(msgs []types.ChatMessage) {
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
}

// historyRank maps a history limit onto sorted-set ranks. Negative ranks
// address the newest members; ZRange still returns them in ascending
// score order, so no reversal is needed on this path.
func historyRank(limit int) int64 {
	if limit > 0 {
		return -int64(limit)
	}
	return 0
}

func (g *GormConversationRepo) historyFromRedis(profileID uuid.UUID, limit int) ([]types.ChatMessage, bool) {
	keys, err := g.rc.ZRange(ProfileMsgListKey(profileID), historyRank(limit), -1).Result()
	if err != nil || len(keys) == 0 {
		return nil, false
	}

	var msgs []types.ChatMessage
	for _, key := range keys {
		raw, err := g.rc.Get(key).Result()
		if err != nil {
			// expired member, index is stale; fall back to the database
			return nil, false
		}
		var entity MessageEntity
		if err := json.Unmarshal([]byte(raw), &entity); err != nil {
			return nil, false
		}
		msgs = append(msgs, *entity.ToDomain())
	}
	return msgs, true
}

// Clear removes all messages for a profile.
func (g *GormConversationRepo) Clear(ctx context.Context, profileID uuid.UUID) error {
	if err := g.db.WithContext(ctx).
		Where("profile_id = ?", profileID.String()).
		Delete(&MessageEntity{}).Error; err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	g.rc.Del(ProfileMsgListKey(profileID))
	return nil
}
