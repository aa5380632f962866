package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/agrovoice/kisanbhai/internal/constants/prompts"
	"github.com/agrovoice/kisanbhai/internal/domains/advisory"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/internal/domains/speech"
	"github.com/agrovoice/kisanbhai/internal/offline"
	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
)

var (
	ErrEmptyMessage = errors.New("message carries neither text nor image")
	ErrBusy         = errors.New("a message is already being processed")
)

const historyContextLimit = 50

// MessageRepository persists conversation turns.
type MessageRepository interface {
	Append(ctx context.Context, msg types.ChatMessage) error
	History(ctx context.Context, profileID uuid.UUID, limit int) ([]types.ChatMessage, error)
	Clear(ctx context.Context, profileID uuid.UUID) error
}

// Exchange is the outcome of one submitted message.
type Exchange struct {
	UserMessage      types.ChatMessage `json:"userMessage"`
	AssistantMessage types.ChatMessage `json:"assistantMessage"`
	Offline          bool              `json:"offline"`
	Speech           *speech.Utterance `json:"speech,omitempty"`
}

// ConversationService orchestrates a chat turn: offline rules answer first,
// the gateway handles the rest, and every assistant reply is voiced.
type ConversationService interface {
	Send(ctx context.Context, prof *profile.Profile, req types.CreateMessage) (*Exchange, error)
	History(ctx context.Context, prof *profile.Profile, limit int) ([]types.ChatMessage, error)
	Clear(ctx context.Context, profileID uuid.UUID) error
}

type conversationService struct {
	repo      MessageRepository
	responder *offline.Responder
	gateway   advisory.AdvisoryService
	speaker   speech.SpeechService
	logger    *Logger.Logger

	mu       sync.Mutex
	machines map[uuid.UUID]*fsm.FSM
}

func NewConversationService(
	repo MessageRepository,
	responder *offline.Responder,
	gateway advisory.AdvisoryService,
	speaker speech.SpeechService,
	logger *Logger.Logger,
) ConversationService {
	return &conversationService{
		repo:      repo,
		responder: responder,
		gateway:   gateway,
		speaker:   speaker,
		logger:    logger,
		machines:  make(map[uuid.UUID]*fsm.FSM),
	}
}

// machineFor returns the per-profile send state machine, creating it on
// first use.
func (s *conversationService) machineFor(profileID uuid.UUID) *fsm.FSM {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.machines[profileID]
	if !ok {
		m = fsm.NewFSM(
			"idle",
			fsm.Events{
				{Name: "send", Src: []string{"idle"}, Dst: "sending"},
				{Name: "done", Src: []string{"sending"}, Dst: "idle"},
			},
			fsm.Callbacks{},
		)
		s.machines[profileID] = m
	}
	return m
}

// Send implements ConversationService
func (s *conversationService) Send(ctx context.Context, prof *profile.Profile, req types.CreateMessage) (*Exchange, error) {
	if req.IsEmpty() {
		return nil, ErrEmptyMessage
	}

	profileID, err := uuid.Parse(prof.ID)
	if err != nil {
		return nil, errors.New("invalid profile id")
	}

	machine := s.machineFor(profileID)
	if err := machine.Event(ctx, "send"); err != nil {
		return nil, ErrBusy
	}
	defer machine.Event(context.Background(), "done")

	// history before the new turn is the model's context
	history, err := s.repo.History(ctx, profileID, historyContextLimit)
	if err != nil {
		s.logger.Errorf("failed to load history: %v", err)
		history = nil
	}

	userMsg := req.ToMessage(profileID)
	if err := s.repo.Append(ctx, userMsg); err != nil {
		return nil, err
	}

	lang := prof.Lang()
	reply, offlineHit := "", false
	// an attached image always needs the gateway's analysis
	if !userMsg.HasImage() {
		reply, offlineHit = s.responder.Resolve(userMsg.Content, lang)
	}
	if !offlineHit {
		reply, err = s.gateway.Chat(ctx, history, userMsg.Content, userMsg.Image, lang)
		if err != nil {
			s.logger.Warnf("gateway unavailable, serving fallback: %v", err)
			reply = prompts.FallbackApology(lang)
		}
	}

	assistantMsg := types.ChatMessage{
		Id:        uuid.New(),
		ProfileID: profileID,
		Role:      types.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	}
	if err := s.repo.Append(ctx, assistantMsg); err != nil {
		return nil, err
	}

	utt, err := s.speaker.Speak(ctx, reply, lang)
	if err != nil {
		// the text reply stands on its own
		s.logger.Warnf("speech synthesis failed: %v", err)
		utt = nil
	}

	return &Exchange{
		UserMessage:      userMsg,
		AssistantMessage: assistantMsg,
		Offline:          offlineHit,
		Speech:           utt,
	}, nil
}

// History implements ConversationService. An empty conversation is seeded
// with the welcome greeting in the profile's language.
func (s *conversationService) History(ctx context.Context, prof *profile.Profile, limit int) ([]types.ChatMessage, error) {
	profileID, err := uuid.Parse(prof.ID)
	if err != nil {
		return nil, errors.New("invalid profile id")
	}

	msgs, err := s.repo.History(ctx, profileID, limit)
	if err != nil {
		return nil, err
	}
	if len(msgs) > 0 {
		return msgs, nil
	}

	welcome := types.ChatMessage{
		Id:        uuid.New(),
		ProfileID: profileID,
		Role:      types.RoleAssistant,
		Content:   prompts.WelcomeMessage(prof.Lang()),
		Timestamp: time.Now(),
	}
	if err := s.repo.Append(ctx, welcome); err != nil {
		return nil, err
	}
	return []types.ChatMessage{welcome}, nil
}

// Clear implements ConversationService
func (s *conversationService) Clear(ctx context.Context, profileID uuid.UUID) error {
	return s.repo.Clear(ctx, profileID)
}
