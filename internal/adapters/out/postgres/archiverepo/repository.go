package archiverepo

import (
	"context"
	"errors"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderArchive implements ports.OrderArchive using GORM.
type GormOrderArchive struct {
	db      *gorm.DB
	tracker recordTracker
}

// recordTracker is notified of every record written through the archive.
type recordTracker interface {
	TrackRecord(id kernel.UUID, rec session.Record)
}

// NewGormOrderArchive creates a new GORM order archive.
func NewGormOrderArchive(db *gorm.DB, tracker recordTracker) *GormOrderArchive {
	return &GormOrderArchive{
		db:      db,
		tracker: tracker,
	}
}

// Archive stores rec together with its lines and history entries.
func (r *GormOrderArchive) Archive(ctx context.Context, rec session.Record) error {
	if err := validateRecord(rec); err != nil {
		return err
	}

	dto := fromDomain(rec)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackRecord(rec.SessionID, rec)
	}
	return nil
}

// Get retrieves an archived order by session ID.
func (r *GormOrderArchive) Get(ctx context.Context, id kernel.UUID) (session.Record, error) {
	if err := id.Validate(); err != nil {
		return session.Record{}, err
	}

	var dto ArchivedOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		First(&dto, "session_id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Record{}, errs.NewObjectNotFoundError("archived order", id.String())
		}
		return session.Record{}, err
	}

	return toDomain(dto)
}

func validateRecord(rec session.Record) error {
	var err error
	if vErr := rec.SessionID.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if vErr := rec.Outcome.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if rec.EndedAt.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("ended at"))
	}
	return err
}
