// Package intent describes the structured order changes derived upstream from a
// customer's utterance.
//
// The package includes:
//   - Kind: the tag of the variant (add, remove, set_quantity, substitute, clear)
//   - Intent: one requested change, built by NewAdd, NewRemove, NewSetQuantity,
//     NewSubstitute, NewClear or Parse
//   - Batch: the ordered intents of one utterance, applied all-or-nothing
//   - InvalidQuantityError and ParseFailure
//
// Intents are untrusted data. Constructors only assemble values; Validate enforces
// the quantity and name rules and is run by the order state machine on every intent.
package intent
