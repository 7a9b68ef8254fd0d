// Package store provides file-based persistence for SocialCosmos' core data.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising each store as a single JSON document on disk. Writes go through
// a temp file followed by an atomic rename, and every store holds its own
// lock across the whole read-modify-write cycle, so concurrent appends never
// observe a torn file or lose each other's writes. A missing document reads
// as an empty store and materialises on the first write.
//
// The package includes stores for:
//   - User profiles (ProfileFileStore, profiles.json)
//   - Feed posts (PostFileStore, posts.json)
//   - Chat threads (MessageFileStore, messages.json)
//   - Remembered sessions (SessionFileStore, sessions.json)
package store
