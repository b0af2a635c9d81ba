// Package archiverepo persists ended sessions as archived orders. An archived order keeps the
// final lines, the full intent history and the outcome so finished and abandoned orders can be
// audited after the in-memory session is gone.
package archiverepo

import (
	"time"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ArchivedOrderDTO is the archived_orders row. Lines and entries live in child tables.
type ArchivedOrderDTO struct {
	SessionID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Outcome   string          `gorm:"type:varchar(32);index"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Turns     int
	StartedAt time.Time
	EndedAt   time.Time `gorm:"index"`

	Lines   []ArchivedLineDTO  `gorm:"foreignKey:SessionID;references:SessionID;constraint:OnDelete:CASCADE"`
	Entries []ArchivedEntryDTO `gorm:"foreignKey:SessionID;references:SessionID;constraint:OnDelete:CASCADE"`
}

func (ArchivedOrderDTO) TableName() string {
	return "archived_orders"
}

// ArchivedLineDTO is one final order line. Position keeps insertion order.
type ArchivedLineDTO struct {
	ID        uint      `gorm:"primaryKey"`
	SessionID uuid.UUID `gorm:"type:uuid;index"`
	Position  int
	ItemName  string          `gorm:"type:varchar(128)"`
	Quantity  int             `gorm:"type:smallint"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2)"`
}

func (ArchivedLineDTO) TableName() string {
	return "archived_order_lines"
}

// ArchivedEntryDTO is one history entry of the archived session.
type ArchivedEntryDTO struct {
	ID         uint      `gorm:"primaryKey"`
	SessionID  uuid.UUID `gorm:"type:uuid;index"`
	Sequence   uint64
	Intents    string          `gorm:"type:text"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2)"`
	RecordedAt time.Time
}

func (ArchivedEntryDTO) TableName() string {
	return "archived_order_entries"
}

// Models lists every DTO the archive needs migrated.
func Models() []any {
	return []any{&ArchivedOrderDTO{}, &ArchivedLineDTO{}, &ArchivedEntryDTO{}}
}

func fromDomain(rec session.Record) ArchivedOrderDTO {
	dto := ArchivedOrderDTO{
		SessionID: rec.SessionID.Bytes(),
		Outcome:   string(rec.Outcome),
		Total:     rec.Total.Decimal(),
		Turns:     rec.Turns,
		StartedAt: rec.StartedAt.UTC(),
		EndedAt:   rec.EndedAt.UTC(),
	}
	for i, l := range rec.Lines {
		dto.Lines = append(dto.Lines, ArchivedLineDTO{
			Position:  i,
			ItemName:  l.ItemName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.Decimal(),
			LineTotal: l.LineTotal.Decimal(),
		})
	}
	for _, e := range rec.Entries {
		dto.Entries = append(dto.Entries, ArchivedEntryDTO{
			Sequence:   e.Sequence,
			Intents:    e.Intents,
			Total:      e.Total.Decimal(),
			RecordedAt: e.RecordedAt.UTC(),
		})
	}
	return dto
}

func toDomain(dto ArchivedOrderDTO) (session.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.SessionID[:])
	if err != nil {
		return session.Record{}, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return session.Record{}, err
	}

	rec := session.Record{
		SessionID: id,
		Outcome:   session.Outcome(dto.Outcome),
		Total:     total,
		Turns:     dto.Turns,
		StartedAt: dto.StartedAt.UTC(),
		EndedAt:   dto.EndedAt.UTC(),
	}
	for _, l := range dto.Lines {
		unit, err := kernel.NewMoney(l.UnitPrice)
		if err != nil {
			return session.Record{}, err
		}
		lineTotal, err := kernel.NewMoney(l.LineTotal)
		if err != nil {
			return session.Record{}, err
		}
		rec.Lines = append(rec.Lines, session.RecordLine{
			ItemName:  l.ItemName,
			Quantity:  l.Quantity,
			UnitPrice: unit,
			LineTotal: lineTotal,
		})
	}
	for _, e := range dto.Entries {
		entryTotal, err := kernel.NewMoney(e.Total)
		if err != nil {
			return session.Record{}, err
		}
		rec.Entries = append(rec.Entries, session.RecordEntry{
			Sequence:   e.Sequence,
			Intents:    e.Intents,
			Total:      entryTotal,
			RecordedAt: e.RecordedAt.UTC(),
		})
	}
	return rec, nil
}
