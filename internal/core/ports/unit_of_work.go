package ports

import (
	"context"
)

// ArchiveUnitOfWorkFactory creates a new ArchiveUnitOfWork for each command.
type ArchiveUnitOfWorkFactory interface {
	Create() ArchiveUnitOfWork
}

// ArchiveUnitOfWork is the transaction boundary around archive writes. Client code
// manages the transaction lifecycle explicitly.
type ArchiveUnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderArchive returns an OrderArchive bound to the current transaction.
	OrderArchive() OrderArchive
}
