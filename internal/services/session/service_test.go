package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialcosmos/internal/domain"
	"socialcosmos/internal/services/credential"
	"socialcosmos/internal/store"
)

func newService(t *testing.T) (*Service, domain.SessionStore) {
	t.Helper()
	dir := t.TempDir()
	credentials := credential.New(store.NewProfileFileStore(dir))
	require.NoError(t, credentials.Register("alice", "pw1", "pw1"))

	sessions := store.NewSessionFileStore(dir)
	svc := New(credentials, sessions, []byte("test-secret"), 15*time.Minute, 30*24*time.Hour)
	return svc, sessions
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login("alice", "wrong", false)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login("nobody", "pw1", false)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_WithoutRemember_IssuesOnlyAccessToken(t *testing.T) {
	svc, sessions := newService(t)

	result, err := svc.Login("alice", "pw1", false)
	require.NoError(t, err)
	assert.Empty(t, result.SessionToken)
	require.NotEmpty(t, result.AccessToken)

	who, err := svc.VerifyAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, domain.Username("alice"), who)

	// Nothing was persisted for a transient login.
	_, ok, err := sessions.LoadSession(result.AccessToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_WithRemember_PersistsResumableSession(t *testing.T) {
	svc, _ := newService(t)

	result, err := svc.Login("alice", "pw1", true)
	require.NoError(t, err)
	require.NotEmpty(t, result.SessionToken)

	sess, err := svc.Resume(result.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, domain.Username("alice"), sess.Username)
	assert.Greater(t, sess.ExpiresUTC, sess.CreatedUTC)

	assert.Equal(t, domain.Username("alice"), svc.Identity(result.SessionToken))
}

func TestResume_ExpiredSession_IsPruned(t *testing.T) {
	svc, sessions := newService(t)

	start := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return start }

	result, err := svc.Login("alice", "pw1", true)
	require.NoError(t, err)

	svc.now = func() time.Time { return start.Add(31 * 24 * time.Hour) }

	_, err = svc.Resume(result.SessionToken)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	_, ok, err := sessions.LoadSession(result.SessionToken)
	require.NoError(t, err)
	assert.False(t, ok, "expired session record should be deleted")

	assert.Equal(t, domain.Anonymous, svc.Identity(result.SessionToken))
}

func TestResume_UnknownToken(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Resume("not-a-token")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestIdentity_MissingToken_IsAnonymous(t *testing.T) {
	svc, _ := newService(t)
	assert.Equal(t, domain.Anonymous, svc.Identity(""))
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.VerifyAccessToken("garbage.token.value")
	assert.Error(t, err)
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	svc, _ := newService(t)

	result, err := svc.Login("alice", "pw1", false)
	require.NoError(t, err)

	other := New(svc.credentials, svc.sessions, []byte("other-secret"), time.Minute, time.Hour)
	_, err = other.VerifyAccessToken(result.AccessToken)
	assert.Error(t, err)
}
