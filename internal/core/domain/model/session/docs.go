// Package session provides the Session aggregate: one customer conversation at the
// drive-through window.
//
// A session owns:
//   - the current order snapshot
//   - the history of accepted intent batches
//   - the transcript of customer and assistant turns
//
// The order only advances through Commit, which records the batch in history first.
// A session ends either by checkout or by expiring while idle; the Outcome names
// which one happened when the session is archived.
package session
