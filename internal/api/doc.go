// Package api exposes the HTTP interface a web front end calls.
//
// All requests and responses are JSON. A bearer token in the Authorization
// header resolves the acting identity: signed access tokens are tried first,
// then remembered session tokens. Absent or invalid credentials degrade to
// the anonymous identity rather than blocking the request; reads and
// anonymous posting are always allowed, only profile edits require a real
// identity.
//
// Routes
//
//	POST /register                Create a profile
//	POST /login                   Authenticate; returns tokens
//	GET  /users                   List usernames
//	GET  /profiles/{username}     Public profile (username + bio)
//	PUT  /profile/bio             Update the caller's bio
//	GET  /posts[?shuffle=1]       The feed, optionally shuffled
//	POST /posts                   Create a post (image base64-encoded)
//	GET  /messages/{peer}         Thread between the caller and {peer}
//	POST /messages/{peer}         Send a message to {peer}
//	POST /calls/{peer}            Allocate a placeholder video-call room
//	GET  /health                  Liveness probe
package api
