package store

import (
	"path/filepath"
	"sync"

	"socialcosmos/internal/domain"
)

const sessionsFile = "sessions.json"

// SessionFileStore persists remembered login sessions to disk.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// SaveSession writes a session record keyed by its token.
func (s *SessionFileStore) SaveSession(sess domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, sessionsFile)
	sessions := make(map[string]domain.Session)
	if err := readJSON(path, &sessions); err != nil {
		return err
	}
	sessions[sess.Token] = sess
	return writeJSON(path, sessions, 0o600)
}

// LoadSession retrieves the session stored under token.
func (s *SessionFileStore) LoadSession(token string) (domain.Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, sessionsFile)
	sessions := make(map[string]domain.Session)
	if err := readJSON(path, &sessions); err != nil {
		return domain.Session{}, false, err
	}
	sess, ok := sessions[token]
	return sess, ok, nil
}

// DeleteSession removes the session stored under token. Deleting an absent
// token is not an error.
func (s *SessionFileStore) DeleteSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, sessionsFile)
	sessions := make(map[string]domain.Session)
	if err := readJSON(path, &sessions); err != nil {
		return err
	}
	if _, ok := sessions[token]; !ok {
		return nil
	}
	delete(sessions, token)
	return writeJSON(path, sessions, 0o600)
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
