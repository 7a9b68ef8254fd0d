package store

import (
	"path/filepath"
	"slices"
	"sync"

	"socialcosmos/internal/domain"
)

const profilesFile = "profiles.json"

// ProfileFileStore persists user profiles to disk.
type ProfileFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewProfileFileStore returns a ProfileFileStore rooted at dir.
func NewProfileFileStore(dir string) *ProfileFileStore {
	return &ProfileFileStore{dir: dir}
}

// CreateProfile stores a new profile, failing with ErrDuplicateUsername if
// the username is taken. The duplicate check and the write happen under the
// same lock, so two concurrent registrations cannot both succeed.
func (s *ProfileFileStore) CreateProfile(p domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, profilesFile)
	profiles := make(map[domain.Username]domain.Profile)
	if err := readJSON(path, &profiles); err != nil {
		return err
	}
	if _, exists := profiles[p.Username]; exists {
		return domain.ErrDuplicateUsername
	}
	profiles[p.Username] = p
	return writeJSON(path, profiles, 0o600)
}

// SaveProfile stores or replaces the profile for its username.
func (s *ProfileFileStore) SaveProfile(p domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, profilesFile)
	profiles := make(map[domain.Username]domain.Profile)
	if err := readJSON(path, &profiles); err != nil {
		return err
	}
	profiles[p.Username] = p
	return writeJSON(path, profiles, 0o600)
}

// LoadProfile retrieves the profile for username.
func (s *ProfileFileStore) LoadProfile(username domain.Username) (domain.Profile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, profilesFile)
	profiles := make(map[domain.Username]domain.Profile)
	if err := readJSON(path, &profiles); err != nil {
		return domain.Profile{}, false, err
	}
	p, ok := profiles[username]
	return p, ok, nil
}

// ListProfiles returns all profiles sorted by username. The persisted
// document is a JSON map, so sorting is what makes the order stable across
// loads.
func (s *ProfileFileStore) ListProfiles() ([]domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, profilesFile)
	profiles := make(map[domain.Username]domain.Profile)
	if err := readJSON(path, &profiles); err != nil {
		return nil, err
	}
	names := make([]domain.Username, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]domain.Profile, 0, len(names))
	for _, name := range names {
		out = append(out, profiles[name])
	}
	return out, nil
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
