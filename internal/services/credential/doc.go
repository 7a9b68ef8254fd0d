// Package credential manages registration, authentication, and profile bios.
//
// Passwords are hashed with bcrypt before they reach the profile store;
// plaintext never touches disk. Authentication recomputes the hash comparison
// and reports false for unknown usernames.
package credential
