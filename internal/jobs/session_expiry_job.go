package jobs

import (
	"context"
	"log/slog"
	"time"

	"drivethrough/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// sessionExpirySchedule runs the sweep every 30 seconds.
const sessionExpirySchedule = "*/30 * * * * *"

// SessionExpiryJob removes sessions that have been idle for longer than idleFor.
// Idle sessions with items are archived as abandoned by the command handler.
type SessionExpiryJob struct {
	handler commands.ExpireIdleSessionsCommandHandler
	idleFor time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionExpiryJob creates a new job for expiring idle sessions.
// Uses ExpireIdleSessionsCommandHandler to sweep the session store every 30 seconds.
func NewSessionExpiryJob(
	handler commands.ExpireIdleSessionsCommandHandler,
	idleFor time.Duration,
	logger *slog.Logger,
) *SessionExpiryJob {
	return &SessionExpiryJob{
		handler: handler,
		idleFor: idleFor,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "session_expiry_job"),
	}
}

// Start schedules the sweep. It fails when idleFor is not positive.
func (j *SessionExpiryJob) Start() error {
	cmd, err := commands.NewExpireIdleSessionsCommand(j.idleFor)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(sessionExpirySchedule, func() {
		j.run(context.Background(), cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started",
		"schedule", sessionExpirySchedule, "idle_for", j.idleFor)
	return nil
}

// RunOnce performs a single sweep outside the schedule.
func (j *SessionExpiryJob) RunOnce(ctx context.Context) (commands.ExpiryReport, error) {
	cmd, err := commands.NewExpireIdleSessionsCommand(j.idleFor)
	if err != nil {
		return commands.ExpiryReport{}, err
	}
	return j.run(ctx, cmd), nil
}

func (j *SessionExpiryJob) run(ctx context.Context, cmd commands.ExpireIdleSessionsCommand) commands.ExpiryReport {
	report, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		// Failed sessions stay in the store and are retried on the next run.
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
	}
	if report.Expired > 0 {
		j.logger.InfoContext(ctx, "Expired idle sessions",
			"expired", report.Expired, "abandoned", report.Abandoned)
	}
	return report
}

// Stop stops the session expiry job and waits for a running sweep to finish.
func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}
