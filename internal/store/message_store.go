package store

import (
	"path/filepath"
	"sync"

	"socialcosmos/internal/domain"
)

const messagesFile = "messages.json"

// MessageFileStore persists chat threads to disk, keyed by conversation.
type MessageFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewMessageFileStore returns a MessageFileStore rooted at dir.
func NewMessageFileStore(dir string) *MessageFileStore {
	return &MessageFileStore{dir: dir}
}

// AppendMessage adds m to the end of the thread under id, creating the
// thread if absent.
func (s *MessageFileStore) AppendMessage(id domain.ConversationID, m domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, messagesFile)
	threads := make(map[domain.ConversationID][]domain.Message)
	if err := readJSON(path, &threads); err != nil {
		return err
	}
	threads[id] = append(threads[id], m)
	return writeJSON(path, threads, 0o600)
}

// History returns the thread under id in insertion order, or an empty
// sequence if none exists.
func (s *MessageFileStore) History(id domain.ConversationID) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, messagesFile)
	threads := make(map[domain.ConversationID][]domain.Message)
	if err := readJSON(path, &threads); err != nil {
		return nil, err
	}
	return threads[id], nil
}

// Compile-time assertion that MessageFileStore implements domain.MessageStore.
var _ domain.MessageStore = (*MessageFileStore)(nil)
