package conversation

import (
	"fmt"
	"testing"

	"github.com/agrovoice/kisanbhai/internal/types"
)

func TestHistoryRankSelectsNewestMessages(t *testing.T) {
	// -n..-1 is the newest n members of the index, in ascending score
	// order; unlimited reads start at the head.
	if got := historyRank(10); got != -10 {
		t.Errorf("limit 10: want rank -10, got %d", got)
	}
	if got := historyRank(1); got != -1 {
		t.Errorf("limit 1: want rank -1, got %d", got)
	}
	if got := historyRank(0); got != 0 {
		t.Errorf("unlimited: want rank 0, got %d", got)
	}
	if got := historyRank(-5); got != 0 {
		t.Errorf("negative limit: want rank 0, got %d", got)
	}
}

func TestReverseMessagesRestoresChronologicalOrder(t *testing.T) {
	// A capped database read comes back newest first.
	msgs := make([]types.ChatMessage, 5)
	for i := range msgs {
		msgs[i].Content = fmt.Sprintf("msg-%d", len(msgs)-1-i)
	}

	reverseMessages(msgs)
	for i, m := range msgs {
		if want := fmt.Sprintf("msg-%d", i); m.Content != want {
			t.Errorf("position %d: want %q, got %q", i, want, m.Content)
		}
	}

	reverseMessages(nil)
	single := []types.ChatMessage{{Content: "only"}}
	reverseMessages(single)
	if single[0].Content != "only" {
		t.Error("single-element reverse must be a no-op")
	}
}
