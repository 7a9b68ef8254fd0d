// Package commands defines the socialcosmos CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - register   Create a profile
//   - login      Authenticate; --remember keeps the session on disk
//   - whoami     Print the current identity
//   - post       Publish a post, optionally with an image
//   - feed       Print the feed, optionally shuffled
//   - bio        Update the current identity's bio
//   - profile    Show a profile's username and bio
//   - users      List registered usernames
//   - chat       Send a chat message to a peer
//   - history    Print the shared thread with a peer
//   - call       Allocate a placeholder video-call room for a peer
//
// # Implementation
//
// The root command builds a dependency graph (file stores and services
// rooted in the --home directory) before any subcommand runs, so handlers
// share one app context. A remembered login stores its session token in
// session.token under --home; commands resolve the acting identity from it
// and fall back to Anonymous.
package commands
