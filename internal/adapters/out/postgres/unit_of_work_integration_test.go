package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "drivethrough/internal/adapters/out/postgres"
	"drivethrough/internal/adapters/out/postgres/archiverepo"
	"drivethrough/internal/core/domain/model/kernel"
	"drivethrough/internal/core/domain/model/session"
	"drivethrough/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the archive unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(archiverepo.Models()...))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE archived_order_entries, archived_order_lines, archived_orders").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderArchive())
	suite.NotNil(uow2.OrderArchive())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsArchive() {
	ctx := context.Background()
	uow := suite.factory.Create()
	rec := newRecord()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderArchive().Archive(ctx, rec))

	inTx, err := uow.OrderArchive().Get(ctx, rec.SessionID)
	suite.Require().NoError(err)
	suite.Equal(rec.SessionID, inTx.SessionID)

	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.factory.Create().OrderArchive().Get(ctx, rec.SessionID)
	suite.Require().NoError(err)
	suite.Equal(session.CheckedOut, got.Outcome)

	tracked := uow.(*postgres_adapter.GormUnitOfWork).Archived()
	suite.Equal([]kernel.UUID{rec.SessionID}, tracked)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsArchive() {
	ctx := context.Background()
	uow := suite.factory.Create()
	rec := newRecord()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderArchive().Archive(ctx, rec))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderArchive().Get(ctx, rec.SessionID)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Empty(uow.(*postgres_adapter.GormUnitOfWork).Archived())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentTransactionsAreIsolated() {
	ctx := context.Background()
	first := suite.factory.Create()
	second := suite.factory.Create()
	rec := newRecord()

	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(second.Begin(ctx))

	suite.Require().NoError(first.OrderArchive().Archive(ctx, rec))

	_, err := second.OrderArchive().Get(ctx, rec.SessionID)
	suite.ErrorIs(err, errs.ErrObjectNotFound, "uncommitted archive must not be visible")

	suite.Require().NoError(first.Commit(ctx))
	suite.Require().NoError(second.Rollback(ctx))
}

func newRecord() session.Record {
	ended := time.Date(2025, 3, 14, 12, 5, 0, 0, time.UTC)
	return session.Record{
		SessionID: kernel.NewUUID(),
		Outcome:   session.CheckedOut,
		Lines: []session.RecordLine{{
			ItemName:  "Large Fry",
			Quantity:  1,
			UnitPrice: kernel.MustMoney("3.00"),
			LineTotal: kernel.MustMoney("3.00"),
		}},
		Entries: []session.RecordEntry{{
			Sequence:   1,
			Intents:    "[add(Large Fry, 1)]",
			Total:      kernel.MustMoney("3.00"),
			RecordedAt: ended.Add(-time.Minute),
		}},
		Total:     kernel.MustMoney("3.00"),
		Turns:     2,
		StartedAt: ended.Add(-2 * time.Minute),
		EndedAt:   ended,
	}
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
