// Package menu provides the read-only menu catalog of the drive-through.
//
// The package includes:
//   - Item: an immutable menu entry (name, price, category)
//   - Catalog: the immutable set of items, looked up by case-insensitive exact name
//   - UnknownItemError: returned when a name is not on the menu
//
// Key business rules:
//   - Item names are unique ignoring case and surrounding whitespace
//   - Prices are non-negative kernel.Money values
//   - Lookup never corrects spelling; fuzzy matching belongs to the intent producer
//
// A Catalog is loaded once per process and shared by every session. It exposes no
// mutation, so concurrent reads need no locking.
package menu
