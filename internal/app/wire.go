package app

import (
	"crypto/rand"
	"os"
	"path/filepath"

	"socialcosmos/internal/domain"
	credentialsvc "socialcosmos/internal/services/credential"
	messagesvc "socialcosmos/internal/services/message"
	postsvc "socialcosmos/internal/services/post"
	sessionsvc "socialcosmos/internal/services/session"
	"socialcosmos/internal/store"
)

// Wire bundles all stores and services for the CLI and HTTP surfaces.
type Wire struct {
	Profiles     domain.ProfileStore
	Posts        domain.PostStore
	Messages     domain.MessageStore
	SessionStore domain.SessionStore

	Credentials domain.CredentialService
	Feed        domain.PostService
	Chat        domain.MessageService
	Sessions    domain.SessionService
}

// NewWire constructs the dependency graph from cfg, creating the data
// directory if needed.
func NewWire(cfg Config) (*Wire, error) {
	dir := cfg.DataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".socialcosmos")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	profileStore := store.NewProfileFileStore(dir)
	postStore := store.NewPostFileStore(dir)
	messageStore := store.NewMessageFileStore(dir)
	sessionStore := store.NewSessionFileStore(dir)

	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
	}

	credentials := credentialsvc.New(profileStore)
	feed := postsvc.New(postStore)
	chat := messagesvc.New(messageStore)
	sessions := sessionsvc.New(credentials, sessionStore, secret, cfg.AccessTokenTTL, cfg.SessionTTL)

	return &Wire{
		Profiles:     profileStore,
		Posts:        postStore,
		Messages:     messageStore,
		SessionStore: sessionStore,
		Credentials:  credentials,
		Feed:         feed,
		Chat:         chat,
		Sessions:     sessions,
	}, nil
}
