package domain

// Username identifies a registered user.
type Username string

// Anonymous is the identity stamped on actions taken without a live session.
const Anonymous Username = "Anonymous"

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// IsAnonymous reports whether u is empty or the anonymous sentinel.
func (u Username) IsAnonymous() bool { return u == "" || u == Anonymous }

// ConversationID identifies a two-party chat thread.
type ConversationID string

// String returns the string form of the conversation identifier.
func (id ConversationID) String() string { return string(id) }

// ConversationKey builds the canonical key for the thread between two
// participants. The key is order-independent: both participants resolve the
// same shared thread regardless of who is viewing.
func ConversationKey(a, b Username) ConversationID {
	if b < a {
		a, b = b, a
	}
	return ConversationID(string(a) + "|" + string(b))
}

// Profile is the persisted record of a user's credential hash and bio.
// PasswordHash is a bcrypt string; plaintext passwords are never stored.
type Profile struct {
	Username     Username `json:"username"`
	PasswordHash string   `json:"password"`
	Bio          string   `json:"bio"`
}

// Post is a single feed entry. Image is optional and immutable after
// creation; encoding/json serialises it base64-encoded, which is also the
// persisted representation.
type Post struct {
	Author  Username `json:"author"`
	Content string   `json:"content"`
	Image   []byte   `json:"image,omitempty"`
}

// Message is one chat line within a conversation thread.
type Message struct {
	Sender  Username `json:"sender"`
	Content string   `json:"content"`
	SentUTC int64    `json:"sent_at"`
}

// Session is a persisted "remember me" login. It is created on a successful
// login, resumable until expiry, and pruned when a resume finds it expired.
// There is no logout operation; sessions end by expiry.
type Session struct {
	Token      string   `json:"token"`
	Username   Username `json:"username"`
	CreatedUTC int64    `json:"created_at"`
	ExpiresUTC int64    `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given Unix time.
func (s Session) Expired(nowUTC int64) bool { return nowUTC >= s.ExpiresUTC }

// LoginResult carries the credentials a successful login hands back.
// AccessToken is always present; SessionToken only when "remember" was
// requested.
type LoginResult struct {
	Username     Username
	AccessToken  string
	SessionToken string
}
