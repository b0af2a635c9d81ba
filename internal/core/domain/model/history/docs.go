// Package history keeps the append-only record of accepted intent batches for a
// session. Each entry pairs the batch with the order snapshot it produced, so the
// trail can both be displayed and replayed.
//
// Sequence numbers start at 1 and are never reused, even after Reset.
package history
