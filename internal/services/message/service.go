package message

import (
	"strings"
	"time"

	"socialcosmos/internal/domain"
)

// Service sends and reads chat messages using a backing message store.
type Service struct {
	messages domain.MessageStore
	now      func() time.Time
}

// New returns a message service backed by the given store.
func New(messages domain.MessageStore) *Service {
	return &Service{messages: messages, now: time.Now}
}

// Send appends a message from sender to the thread shared with peer.
//
// Content that trims to empty is rejected with ErrEmptyContent and leaves the
// store untouched. An empty sender is stamped as the anonymous identity.
func (s *Service) Send(sender, peer domain.Username, content string) error {
	if strings.TrimSpace(content) == "" {
		return domain.ErrEmptyContent
	}
	if sender == "" {
		sender = domain.Anonymous
	}
	m := domain.Message{
		Sender:  sender,
		Content: content,
		SentUTC: s.now().Unix(),
	}
	return s.messages.AppendMessage(domain.ConversationKey(sender, peer), m)
}

// History returns the shared thread between viewer and peer in insertion
// order, or an empty sequence when the two have never exchanged messages.
// Both participants see the same thread.
func (s *Service) History(viewer, peer domain.Username) ([]domain.Message, error) {
	if viewer == "" {
		viewer = domain.Anonymous
	}
	return s.messages.History(domain.ConversationKey(viewer, peer))
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
