// Package order provides the Order aggregate of a drive-through session: an ordered
// set of lines, each referring to a menu item, and the derived total.
//
// The package includes:
//   - Order: an immutable snapshot of the cart; every change produces a new Order
//   - Line: one (menu item, quantity) entry
//   - Draft: the working copy used to apply changes before committing them
//   - LineChange: the before/after quantity of one line touched by a change
//   - ItemNotInOrderError and InsufficientQuantityError
//
// Key business rules:
//   - Every line refers to a constructed menu item
//   - Stored quantities are always >= 1; a line reaching 0 is deleted
//   - Lines keep insertion order for display
//   - The total is recomputed from all lines on every Commit, never patched
//
// Orders are only changed through Draft, and the order state machine is the one
// component that drives drafts in production code.
package order
