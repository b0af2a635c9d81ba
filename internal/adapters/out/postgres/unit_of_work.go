// Package postgres provides the GORM-based Unit of Work around the order archive.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderArchive().Archive(ctx, rec); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction at a time; goroutines
// should create their own instance through the factory.
package postgres

import (
	"context"
	"slices"

	"drivethrough/internal/adapters/out/postgres/archiverepo"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.ArchiveUnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one archive transaction and remembers which sessions
// were archived through it.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	archived []kernel.UUID
}

// Begin starts a transaction. Calling Begin twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction.
// Returns gorm.ErrInvalidTransaction if none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction.
// Returns gorm.ErrInvalidTransaction if none is active, so it is safe to defer after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.archived = nil
	return err
}

// OrderArchive returns an archive bound to the active transaction, or to the
// connection pool when no transaction is open.
func (uow *GormUnitOfWork) OrderArchive() ports.OrderArchive {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return archiverepo.NewGormOrderArchive(db, uow)
}

// TrackRecord is called by the archive for every record it writes.
func (uow *GormUnitOfWork) TrackRecord(id kernel.UUID, _ session.Record) {
	uow.archived = append(uow.archived, id)
}

// Archived lists the sessions archived through this unit of work since the last rollback.
func (uow *GormUnitOfWork) Archived() []kernel.UUID {
	return slices.Clone(uow.archived)
}
