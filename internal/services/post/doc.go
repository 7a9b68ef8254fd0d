// Package post manages the append-only feed.
package post
