// Package session authenticates logins and tracks which identity a client
// acts as.
//
// A login without "remember" yields only a short-lived signed access token.
// A login with "remember" also persists a session record with an explicit
// creation and expiry time; the record is resumable until expiry and pruned
// when a resume finds it expired. There is no logout operation.
package session
