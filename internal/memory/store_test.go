package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/optivex/lumexa-go/internal/models"
)

func turn(role models.Role, content string) models.Turn {
	return models.Turn{Role: role, Content: content}
}

func TestAppendBoundsHistory(t *testing.T) {
	s := NewStore(100)

	for i := 0; i < 250; i++ {
		s.Append("a", turn(models.RoleUser, fmt.Sprintf("msg-%d", i)))
	}

	if got := s.Len("a"); got != 100 {
		t.Fatalf("Len = %d, want 100", got)
	}

	recent := s.Recent("a", 100)
	if len(recent) != 100 {
		t.Fatalf("Recent returned %d turns, want 100", len(recent))
	}
	// Only the most recent 100 survive: msg-150 .. msg-249, oldest first.
	if recent[0].Content != "msg-150" {
		t.Errorf("oldest retained turn = %q, want msg-150", recent[0].Content)
	}
	if recent[99].Content != "msg-249" {
		t.Errorf("newest retained turn = %q, want msg-249", recent[99].Content)
	}
}

func TestRecentOrderAndCopy(t *testing.T) {
	s := NewStore(10)
	s.Append("a", turn(models.RoleUser, "first"))
	s.Append("a", turn(models.RoleAssistant, "second"))
	s.Append("a", turn(models.RoleUser, "third"))

	got := s.Recent("a", 2)
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d turns", len(got))
	}
	if got[0].Content != "second" || got[1].Content != "third" {
		t.Errorf("Recent order wrong: %+v", got)
	}

	// Mutating the returned slice must not leak into the store.
	got[0].Content = "mutated"
	again := s.Recent("a", 2)
	if again[0].Content != "second" {
		t.Errorf("store mutated through Recent result: %+v", again)
	}
}

func TestRecentMoreThanStored(t *testing.T) {
	s := NewStore(10)
	s.Append("a", turn(models.RoleUser, "only"))

	got := s.Recent("a", 100)
	if len(got) != 1 || got[0].Content != "only" {
		t.Errorf("Recent = %+v, want single 'only' turn", got)
	}

	if got := s.Recent("empty", 5); len(got) != 0 {
		t.Errorf("Recent on unknown session = %+v, want empty", got)
	}
}

func TestSessionIsolation(t *testing.T) {
	s := NewStore(10)
	s.Append("alice", turn(models.RoleUser, "hi from alice"))
	s.Append("bob", turn(models.RoleUser, "hi from bob"))

	for _, sess := range []string{"alice", "bob"} {
		got := s.Recent(sess, 10)
		if len(got) != 1 {
			t.Fatalf("session %s has %d turns, want 1", sess, len(got))
		}
		if want := "hi from " + sess; got[0].Content != want {
			t.Errorf("session %s sees %q, want %q", sess, got[0].Content, want)
		}
	}
}

func TestEmptySessionMapsToDefault(t *testing.T) {
	s := NewStore(10)
	s.Append("", turn(models.RoleUser, "anonymous"))

	got := s.Recent(DefaultSession, 10)
	if len(got) != 1 || got[0].Content != "anonymous" {
		t.Errorf("default session = %+v", got)
	}
}

func TestConcurrentAppendAndRecent(t *testing.T) {
	s := NewStore(100)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sess := fmt.Sprintf("s%d", n%2)
			for j := 0; j < 200; j++ {
				s.Append(sess, turn(models.RoleUser, "x"))
				_ = s.Recent(sess, 50)
			}
		}(i)
	}
	wg.Wait()

	for _, sess := range []string{"s0", "s1"} {
		if got := s.Len(sess); got != 100 {
			t.Errorf("session %s length = %d, want 100", sess, got)
		}
	}
}
