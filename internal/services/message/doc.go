// Package message manages pairwise chat threads.
//
// Threads are keyed by a canonical, order-independent pair of participants,
// so both sides of a two-party exchange read and write one shared history.
package message
