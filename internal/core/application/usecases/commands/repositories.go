// Package commands contains the session-layer operations that change state: opening
// a session, applying a customer turn, undo, reset, checkout and idle expiry.
// Every command is built by a guarded constructor and run by its handler.
package commands

import (
	"context"
	"time"

	"drivethrough/internal/core/ports"
)

// Unit of Work interfaces for command handlers that write to the order archive.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ArchiveRepoFactory provides access to the order archive within a transaction.
	ArchiveRepoFactory interface {
		OrderArchive() ports.OrderArchive
	}

	// ArchiveUoW manages transactions for archive writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.OrderArchive().Archive(ctx, rec)
	//
	//   err = uow.Commit(ctx)
	ArchiveUoW interface {
		TxManager
		ArchiveRepoFactory
	}

	// ArchiveUoWFactory creates new archive unit of work instances. A nil factory
	// disables archiving.
	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}
)

// Clock returns the current time. Handlers take one so tests can pin time.
type Clock func() time.Time
