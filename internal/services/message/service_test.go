package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialcosmos/internal/domain"
	"socialcosmos/internal/services/message"
	"socialcosmos/internal/store"
)

func newService(t *testing.T) *message.Service {
	t.Helper()
	return message.New(store.NewMessageFileStore(t.TempDir()))
}

func TestSend_ThenHistory_EndsWithSentMessage(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.Send("alice", "bob", "hey bob"))
	require.NoError(t, svc.Send("bob", "alice", "hey alice"))

	history, err := svc.History("alice", "bob")
	require.NoError(t, err)
	require.Len(t, history, 2)

	last := history[len(history)-1]
	assert.Equal(t, domain.Username("bob"), last.Sender)
	assert.Equal(t, "hey alice", last.Content)
}

func TestHistory_SharedThread_BothViewersSeeTheSame(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.Send("alice", "bob", "one"))
	require.NoError(t, svc.Send("bob", "alice", "two"))

	fromAlice, err := svc.History("alice", "bob")
	require.NoError(t, err)
	fromBob, err := svc.History("bob", "alice")
	require.NoError(t, err)

	assert.Equal(t, fromAlice, fromBob, "the thread must not depend on who is viewing")
}

func TestSend_BlankContent_NeverMutatesStore(t *testing.T) {
	svc := newService(t)

	require.ErrorIs(t, svc.Send("alice", "bob", "   "), domain.ErrEmptyContent)

	history, err := svc.History("alice", "bob")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSend_EmptySender_StampedAnonymous(t *testing.T) {
	svc := newService(t)

	require.NoError(t, svc.Send("", "bob", "hello"))

	history, err := svc.History(domain.Anonymous, "bob")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.Anonymous, history[0].Sender)
}

func TestHistory_NoMessages_IsEmpty(t *testing.T) {
	svc := newService(t)

	history, err := svc.History("alice", "stranger")
	require.NoError(t, err)
	assert.Empty(t, history)
}
