package cmd

import (
	"context"
	"log/slog"
	"time"

	httpin "drivethrough/internal/adapters/in/http"
	"drivethrough/internal/adapters/out/memory/sessionrepo"
	"drivethrough/internal/adapters/out/postgres"
	"drivethrough/internal/adapters/out/postgres/archiverepo"
	"drivethrough/internal/core/application/usecases/commands"
	"drivethrough/internal/core/application/usecases/queries"
	"drivethrough/internal/core/domain/model/intent"
	"drivethrough/internal/core/domain/model/menu"
	"drivethrough/internal/core/domain/services"
	"drivethrough/internal/core/ports"
	"drivethrough/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	sessions   *sessionrepo.Repository
	catalog    *menu.Catalog
	proposer   ports.IntentProposer
	engine     commands.OrderEngine
}

// NewCompositionRoot wires the application. gormDB and publisher may be nil, which
// disables the order archive and order events respectively.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	catalog *menu.Catalog,
	proposer ports.IntentProposer,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	machine, err := services.NewOrderStateMachine(catalog)
	if err != nil {
		return CompositionRoot{}, err
	}
	if proposer == nil {
		proposer = UnavailableProposer{}
	}

	root := CompositionRoot{
		configs:  configs,
		logger:   logger,
		gormDB:   gormDB,
		sessions: sessionrepo.NewRepository(),
		catalog:  catalog,
		proposer: proposer,
		engine:   commands.NewOrderEngine(machine, publisher, logger),
	}
	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}
	return root, nil
}

// archiveUoWFactory returns nil without a database so handlers skip archiving.
func (c *CompositionRoot) archiveUoWFactory() commands.ArchiveUoWFactory {
	if c.uowFactory == nil {
		return nil
	}
	return FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderArchive() ports.OrderArchive {
	if c.gormDB == nil {
		return nil
	}
	return archiverepo.NewGormOrderArchive(c.gormDB, nil)
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	return commands.NewStartSessionCommandHandler(c.sessions, time.Now)
}

func (c *CompositionRoot) CreateApplyUtteranceCommandHandler() commands.ApplyUtteranceCommandHandler {
	return commands.NewApplyUtteranceCommandHandler(c.sessions, c.proposer, c.engine, time.Now)
}

func (c *CompositionRoot) CreateApplyIntentsCommandHandler() commands.ApplyIntentsCommandHandler {
	return commands.NewApplyIntentsCommandHandler(c.sessions, c.engine, time.Now)
}

func (c *CompositionRoot) CreateUndoLastTurnCommandHandler() commands.UndoLastTurnCommandHandler {
	return commands.NewUndoLastTurnCommandHandler(c.sessions, c.engine, time.Now)
}

func (c *CompositionRoot) CreateResetSessionCommandHandler() commands.ResetSessionCommandHandler {
	return commands.NewResetSessionCommandHandler(c.sessions, c.engine, time.Now)
}

func (c *CompositionRoot) CreateCheckoutSessionCommandHandler() commands.CheckoutSessionCommandHandler {
	return commands.NewCheckoutSessionCommandHandler(c.sessions, c.archiveUoWFactory(), c.engine)
}

func (c *CompositionRoot) CreateExpireIdleSessionsCommandHandler() commands.ExpireIdleSessionsCommandHandler {
	return commands.NewExpireIdleSessionsCommandHandler(c.sessions, c.archiveUoWFactory(), c.engine, time.Now)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetTranscriptQueryHandler() queries.GetTranscriptQueryHandler {
	return queries.NewGetTranscriptQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetArchivedOrderQueryHandler() queries.GetArchivedOrderQueryHandler {
	return queries.NewGetArchivedOrderQueryHandler(c.orderArchive())
}

func (c *CompositionRoot) CreateListArchivedOrdersQueryHandler() queries.ListArchivedOrdersQueryHandler {
	return queries.NewListArchivedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		StartSession:       c.CreateStartSessionCommandHandler(),
		ApplyUtterance:     c.CreateApplyUtteranceCommandHandler(),
		ApplyIntents:       c.CreateApplyIntentsCommandHandler(),
		UndoLastTurn:       c.CreateUndoLastTurnCommandHandler(),
		ResetSession:       c.CreateResetSessionCommandHandler(),
		Checkout:           c.CreateCheckoutSessionCommandHandler(),
		GetMenu:            c.CreateGetMenuQueryHandler(),
		GetOrderSummary:    c.CreateGetOrderSummaryQueryHandler(),
		GetOrderHistory:    c.CreateGetOrderHistoryQueryHandler(),
		GetTranscript:      c.CreateGetTranscriptQueryHandler(),
		GetArchivedOrder:   c.CreateGetArchivedOrderQueryHandler(),
		ListArchivedOrders: c.CreateListArchivedOrdersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireIdleSessionsCommandHandler(), c.configs.SessionIdleTTL, c.logger)
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}

// UnavailableProposer stands in when no LLM is configured. Structured intents
// still work; utterances answer 502.
type UnavailableProposer struct{}

func (UnavailableProposer) Propose(context.Context, ports.ProposalRequest) (intent.Batch, error) {
	return nil, ports.ErrProposerUnavailable
}
