package store_test

import (
	"testing"

	"socialcosmos/internal/domain"
	"socialcosmos/internal/store"
)

func TestMessages_AppendHistory_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	messages := store.NewMessageFileStore(dir)

	key := domain.ConversationKey("alice", "bob")
	lines := []domain.Message{
		{Sender: "alice", Content: "hey", SentUTC: 1},
		{Sender: "bob", Content: "hi there", SentUTC: 2},
		{Sender: "alice", Content: "how are you?", SentUTC: 3},
	}
	for _, m := range lines {
		if err := messages.AppendMessage(key, m); err != nil {
			t.Fatalf("append message: %v", err)
		}
	}

	got, err := store.NewMessageFileStore(dir).History(key)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != len(lines) {
		t.Fatalf("expected %d messages, got %d", len(lines), len(got))
	}
	for i := range lines {
		if got[i] != lines[i] {
			t.Fatalf("position %d: got %+v want %+v", i, got[i], lines[i])
		}
	}
}

func TestMessages_UnknownKey_IsEmpty(t *testing.T) {
	messages := store.NewMessageFileStore(t.TempDir())

	got, err := messages.History(domain.ConversationKey("alice", "bob"))
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %d messages", len(got))
	}
}

func TestMessages_ThreadsAreIndependent(t *testing.T) {
	messages := store.NewMessageFileStore(t.TempDir())

	ab := domain.ConversationKey("alice", "bob")
	ac := domain.ConversationKey("alice", "carol")
	if err := messages.AppendMessage(ab, domain.Message{Sender: "alice", Content: "to bob"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := messages.AppendMessage(ac, domain.Message{Sender: "alice", Content: "to carol"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := messages.History(ab)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 1 || got[0].Content != "to bob" {
		t.Fatalf("thread leaked across keys: %+v", got)
	}
}
