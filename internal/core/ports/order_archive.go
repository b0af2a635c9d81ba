package ports

import (
	"context"

	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
)

// OrderArchive keeps ended sessions after they leave the SessionRepository.
type OrderArchive interface {
	// Archive stores rec. Archiving the same session twice fails.
	Archive(ctx context.Context, rec session.Record) error

	// Get loads the archived record of a session.
	// Returns errs.ObjectNotFoundError when nothing was archived under id.
	Get(ctx context.Context, id kernel.UUID) (session.Record, error)
}
