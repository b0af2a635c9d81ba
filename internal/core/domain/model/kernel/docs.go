// Package kernel provides the shared value objects of the drive-through domain.
//
// The package includes:
//   - UUID: identifier of ordering sessions (one per customer at a terminal)
//   - Money: non-negative fixed-point amount used for menu prices and order totals
//
// Both types are immutable and safe for concurrent use. Money never goes through
// binary floating point, so totals are exact.
package kernel
