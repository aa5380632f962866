package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/agrovoice/kisanbhai/internal/domains/advisory"
	"github.com/agrovoice/kisanbhai/internal/domains/profile"
	"github.com/agrovoice/kisanbhai/internal/domains/speech"
	"github.com/agrovoice/kisanbhai/internal/offline"
	"github.com/agrovoice/kisanbhai/internal/types"
	"github.com/agrovoice/kisanbhai/pkg/Logger"
	"github.com/google/uuid"
)

type memoryRepo struct {
	msgs []types.ChatMessage
}

func (r *memoryRepo) Append(ctx context.Context, msg types.ChatMessage) error {
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *memoryRepo) History(ctx context.Context, profileID uuid.UUID, limit int) ([]types.ChatMessage, error) {
	var out []types.ChatMessage
	for _, m := range r.msgs {
		if m.ProfileID == profileID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memoryRepo) Clear(ctx context.Context, profileID uuid.UUID) error {
	var kept []types.ChatMessage
	for _, m := range r.msgs {
		if m.ProfileID != profileID {
			kept = append(kept, m)
		}
	}
	r.msgs = kept
	return nil
}

type stubGateway struct {
	advisory.AdvisoryService
	reply     string
	err       error
	chatCalls int
	lastImage string
}

func (g *stubGateway) Chat(ctx context.Context, history []types.ChatMessage, message, image, lang string) (string, error) {
	g.chatCalls++
	g.lastImage = image
	return g.reply, g.err
}

type stubSpeaker struct {
	spoken []string
}

func (s *stubSpeaker) Speak(ctx context.Context, text, lang string) (*speech.Utterance, error) {
	s.spoken = append(s.spoken, text)
	return &speech.Utterance{Audio: "YXVkaW8=", Format: "pcm", SampleRate: 24000, Source: "remote"}, nil
}
func (s *stubSpeaker) Stop()            {}
func (s *stubSpeaker) IsSpeaking() bool { return false }

func newFixture(gateway *stubGateway) (ConversationService, *memoryRepo, *stubSpeaker) {
	repo := &memoryRepo{}
	speaker := &stubSpeaker{}
	svc := NewConversationService(repo, offline.New(), gateway, speaker, Logger.BuildLogger(false))
	return svc, repo, speaker
}

func testProfile(lang string) *profile.Profile {
	return &profile.Profile{ID: uuid.New().String(), Name: "Ramesh", Language: lang}
}

func TestSendRejectsEmptySubmission(t *testing.T) {
	svc, repo, _ := newFixture(&stubGateway{})

	_, err := svc.Send(context.Background(), testProfile("en"), types.CreateMessage{Text: "   "})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("want ErrEmptyMessage, got %v", err)
	}
	if len(repo.msgs) != 0 {
		t.Errorf("nothing should be persisted for an empty submission")
	}
}

func TestSendAnswersOfflineFirst(t *testing.T) {
	gateway := &stubGateway{reply: "remote reply"}
	svc, repo, speaker := newFixture(gateway)

	ex, err := svc.Send(context.Background(), testProfile("en"), types.CreateMessage{Text: "what is the weather?"})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !ex.Offline {
		t.Error("rule-matched query should be answered offline")
	}
	if gateway.chatCalls != 0 {
		t.Errorf("gateway must not be called on an offline hit, got %d calls", gateway.chatCalls)
	}
	if len(repo.msgs) != 2 {
		t.Fatalf("expected user+assistant persisted, got %d", len(repo.msgs))
	}
	if len(speaker.spoken) != 1 || speaker.spoken[0] != ex.AssistantMessage.Content {
		t.Errorf("assistant reply should be voiced: %v", speaker.spoken)
	}
	if ex.Speech == nil {
		t.Error("exchange should carry the utterance")
	}
}

func TestImageAlwaysGoesToGateway(t *testing.T) {
	gateway := &stubGateway{reply: "leaf analysis"}
	svc, _, _ := newFixture(gateway)

	// text alone would hit the offline weather rule
	ex, err := svc.Send(context.Background(), testProfile("en"), types.CreateMessage{
		Text:  "what is the weather?",
		Image: "aW1hZ2U=",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if ex.Offline {
		t.Error("image submissions must never resolve offline")
	}
	if gateway.chatCalls != 1 || gateway.lastImage != "aW1hZ2U=" {
		t.Errorf("gateway should receive the image, calls=%d image=%q", gateway.chatCalls, gateway.lastImage)
	}
}

func TestImageOnlySubmissionGetsDefaultText(t *testing.T) {
	gateway := &stubGateway{reply: "looks healthy"}
	svc, _, _ := newFixture(gateway)

	ex, err := svc.Send(context.Background(), testProfile("en"), types.CreateMessage{Image: "aW1hZ2U="})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if ex.UserMessage.Content != "Analyze this." {
		t.Errorf("want default analysis text, got %q", ex.UserMessage.Content)
	}
}

func TestGatewayFailureServesFallbackApology(t *testing.T) {
	gateway := &stubGateway{err: errors.New("quota exceeded")}

	for _, c := range []struct {
		lang     string
		fragment string
	}{
		{"hi", "ऑफ़लाइन"},
		{"en", "offline mode"},
		{"pa", "offline mode"}, // only Hindi has a localized apology
	} {
		svc, _, speaker := newFixture(gateway)
		ex, err := svc.Send(context.Background(), testProfile(c.lang), types.CreateMessage{Text: "explain drip irrigation economics"})
		if err != nil {
			t.Fatalf("send (%s): %v", c.lang, err)
		}
		if ex.Offline {
			t.Errorf("fallback is not an offline rule hit")
		}
		if !contains(ex.AssistantMessage.Content, c.fragment) {
			t.Errorf("lang %s: apology %q missing %q", c.lang, ex.AssistantMessage.Content, c.fragment)
		}
		if len(speaker.spoken) != 1 {
			t.Errorf("apology should be voiced too")
		}
	}
}

func TestHistorySeedsWelcomeMessage(t *testing.T) {
	svc, repo, _ := newFixture(&stubGateway{})
	prof := testProfile("pa")

	msgs, err := svc.History(context.Background(), prof, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Role != types.RoleAssistant {
		t.Fatalf("expected a single assistant greeting, got %+v", msgs)
	}
	if !contains(msgs[0].Content, "ਕਿਸਾਨ-ਭਾਈ") {
		t.Errorf("Punjabi profile should get the Punjabi greeting, got %q", msgs[0].Content)
	}
	if len(repo.msgs) != 1 {
		t.Errorf("welcome should be persisted")
	}

	// second read returns the stored greeting, not a new one
	again, err := svc.History(context.Background(), prof, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(again) != 1 || again[0].Id != msgs[0].Id {
		t.Errorf("welcome must be seeded once")
	}
}

func TestSendRejectsConcurrentTurn(t *testing.T) {
	svc, _, _ := newFixture(&stubGateway{reply: "ok"})
	prof := testProfile("en")

	impl := svc.(*conversationService)
	profileID, _ := uuid.Parse(prof.ID)
	if err := impl.machineFor(profileID).Event(context.Background(), "send"); err != nil {
		t.Fatalf("arming machine: %v", err)
	}

	_, err := svc.Send(context.Background(), prof, types.CreateMessage{Text: "hello"})
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("want ErrBusy while a turn is in flight, got %v", err)
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
