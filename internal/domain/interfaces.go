package domain

// ProfileStore persists user profiles keyed by username.
type ProfileStore interface {
	// CreateProfile stores a new profile. It fails with ErrDuplicateUsername
	// if the username is already taken; the existing profile is untouched.
	CreateProfile(p Profile) error

	// SaveProfile stores or replaces the profile for its username.
	SaveProfile(p Profile) error

	LoadProfile(username Username) (Profile, bool, error)

	// ListProfiles returns all profiles in stable (sorted-username) order.
	ListProfiles() ([]Profile, error)
}

// PostStore persists the append-only feed.
type PostStore interface {
	AppendPost(p Post) error
	ListPosts() ([]Post, error)
}

// MessageStore persists chat threads keyed by conversation.
type MessageStore interface {
	AppendMessage(id ConversationID, m Message) error
	History(id ConversationID) ([]Message, error)
}

// SessionStore persists remembered login sessions keyed by token.
type SessionStore interface {
	SaveSession(s Session) error
	LoadSession(token string) (Session, bool, error)
	DeleteSession(token string) error
}

// CredentialService manages registration, authentication and profile bios.
type CredentialService interface {
	Register(username Username, password, confirm string) error
	Authenticate(username Username, password string) (bool, error)
	UpdateBio(username Username, bio string) error
	Profile(username Username) (Profile, error)
	ListUsernames() ([]Username, error)
}

// PostService manages the feed.
type PostService interface {
	Create(author Username, content string, image []byte) error
	List() ([]Post, error)
	Feed(shuffle bool) ([]Post, error)
}

// MessageService manages pairwise chat threads.
type MessageService interface {
	Send(sender, peer Username, content string) error
	History(viewer, peer Username) ([]Message, error)
}

// SessionService authenticates logins and resolves acting identities.
type SessionService interface {
	Login(username Username, password string, remember bool) (LoginResult, error)
	Resume(token string) (Session, error)

	// Identity resolves the acting identity for a session token. Missing,
	// unknown or expired tokens degrade to Anonymous.
	Identity(token string) Username

	VerifyAccessToken(token string) (Username, error)
}
