package credential

import (
	"golang.org/x/crypto/bcrypt"

	"socialcosmos/internal/domain"
)

// Service manages user registration, authentication and profile bios using a
// backing profile store.
type Service struct {
	profiles domain.ProfileStore
}

// New returns a credential service backed by the given store.
func New(profiles domain.ProfileStore) *Service { return &Service{profiles: profiles} }

// Register creates a new profile with an empty bio.
//
// It fails with ErrDuplicateUsername when the username is taken and with
// ErrPasswordMismatch when password and confirm differ. The duplicate check
// is repeated atomically inside the store's create, so a losing racer still
// gets ErrDuplicateUsername rather than overwriting the first registration.
func (s *Service) Register(username domain.Username, password, confirm string) error {
	_, exists, err := s.profiles.LoadProfile(username)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateUsername
	}
	if password != confirm {
		return domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.profiles.CreateProfile(domain.Profile{
		Username:     username,
		PasswordHash: string(hash),
		Bio:          "",
	})
}

// Authenticate reports whether password matches the stored hash for
// username. Unknown usernames report false without error.
func (s *Service) Authenticate(username domain.Username, password string) (bool, error) {
	p, ok, err := s.profiles.LoadProfile(username)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) == nil, nil
}

// UpdateBio overwrites the bio for username, materialising an empty profile
// if none exists yet. The most recent successful save always wins.
func (s *Service) UpdateBio(username domain.Username, bio string) error {
	p, ok, err := s.profiles.LoadProfile(username)
	if err != nil {
		return err
	}
	if !ok {
		p = domain.Profile{Username: username}
	}
	p.Bio = bio
	return s.profiles.SaveProfile(p)
}

// Profile returns the stored profile for username.
func (s *Service) Profile(username domain.Username) (domain.Profile, error) {
	p, ok, err := s.profiles.LoadProfile(username)
	if err != nil {
		return domain.Profile{}, err
	}
	if !ok {
		return domain.Profile{}, domain.ErrUnknownUser
	}
	return p, nil
}

// ListUsernames returns all registered usernames in stable order, for user
// pickers in the chat and call screens.
func (s *Service) ListUsernames() ([]domain.Username, error) {
	profiles, err := s.profiles.ListProfiles()
	if err != nil {
		return nil, err
	}
	names := make([]domain.Username, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Username)
	}
	return names, nil
}

// Compile-time assertion that Service implements domain.CredentialService.
var _ domain.CredentialService = (*Service)(nil)
