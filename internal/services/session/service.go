package session

import (
	"time"

	"github.com/google/uuid"

	"socialcosmos/internal/domain"
)

// Service performs logins and resolves the identity attached to posts,
// messages, and profile edits.
type Service struct {
	credentials domain.CredentialService
	sessions    domain.SessionStore

	jwtSecret           []byte
	accessTokenValidity time.Duration
	sessionValidity     time.Duration

	now func() time.Time
}

// New constructs a session service over the credential service and session
// store, with the given signing secret and validity windows.
func New(
	credentials domain.CredentialService,
	sessions domain.SessionStore,
	jwtSecret []byte,
	accessTokenValidity time.Duration,
	sessionValidity time.Duration,
) *Service {
	return &Service{
		credentials:         credentials,
		sessions:            sessions,
		jwtSecret:           jwtSecret,
		accessTokenValidity: accessTokenValidity,
		sessionValidity:     sessionValidity,
		now:                 time.Now,
	}
}

// Login authenticates username/password and returns the client's tokens.
//
// Bad credentials fail with ErrInvalidCredentials. Every successful login
// gets a short-lived access token; when remember is set a session record is
// also created and persisted, and its token returned for later Resume calls.
func (s *Service) Login(username domain.Username, password string, remember bool) (domain.LoginResult, error) {
	ok, err := s.credentials.Authenticate(username, password)
	if err != nil {
		return domain.LoginResult{}, err
	}
	if !ok {
		return domain.LoginResult{}, domain.ErrInvalidCredentials
	}

	access, err := generateAccessToken(username, s.jwtSecret, s.accessTokenValidity)
	if err != nil {
		return domain.LoginResult{}, err
	}
	result := domain.LoginResult{Username: username, AccessToken: access}

	if remember {
		now := s.now()
		sess := domain.Session{
			Token:      uuid.NewString(),
			Username:   username,
			CreatedUTC: now.Unix(),
			ExpiresUTC: now.Add(s.sessionValidity).Unix(),
		}
		if err := s.sessions.SaveSession(sess); err != nil {
			return domain.LoginResult{}, err
		}
		result.SessionToken = sess.Token
	}
	return result, nil
}

// Resume looks up a remembered session by token. Expired records are deleted
// and reported as ErrSessionExpired; unknown tokens as ErrSessionNotFound.
func (s *Service) Resume(token string) (domain.Session, error) {
	sess, ok, err := s.sessions.LoadSession(token)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.ErrSessionNotFound
	}
	if sess.Expired(s.now().Unix()) {
		if err := s.sessions.DeleteSession(token); err != nil {
			return domain.Session{}, err
		}
		return domain.Session{}, domain.ErrSessionExpired
	}
	return sess, nil
}

// Identity resolves the acting identity for a session token. Missing,
// unknown or expired tokens degrade to the anonymous identity rather than
// failing, matching how the app treats unauthenticated visitors.
func (s *Service) Identity(token string) domain.Username {
	if token == "" {
		return domain.Anonymous
	}
	sess, err := s.Resume(token)
	if err != nil {
		return domain.Anonymous
	}
	return sess.Username
}

// VerifyAccessToken returns the username carried by a valid signed access
// token.
func (s *Service) VerifyAccessToken(token string) (domain.Username, error) {
	return usernameFromAccessToken(token, s.jwtSecret)
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
