// Package services provides the domain services of the drive-through engine. They
// work across the menu, intent, order and history models without owning state.
//
// The package includes:
//   - OrderStateMachine: the only writer of orders; applies intent batches all-or-nothing
//   - Summarize: the display projection of an order, checked against its total
//   - Replay and RevertBatch: history re-application used for audit and undo
//
// Nothing here performs I/O. Recording a result in history is the caller's step.
package services
