package postgres_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the transaction boundary: writes
// inside an uncommitted unit of work stay invisible, commits make every row
// of the aggregate durable at once, rollbacks discard all of them.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, customers, pizza_items, pizzas").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsWholeAggregate() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	// Not visible outside the transaction yet.
	suite.assertRowCount("orders", 0)

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertRowCount("orders", 1)
	suite.assertRowCount("customers", 1)
	suite.assertRowCount("pizza_items", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWholeAggregate() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertRowCount("orders", 0)
	suite.assertRowCount("customers", 0)
	suite.assertRowCount("pizza_items", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_BeforeBegin_UsePlainConnection() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testPizza, err := pizza.NewPizza(kernel.NewUUID(), "Margherita")
	suite.Require().NoError(err)

	// No Begin: the write lands immediately.
	suite.Require().NoError(uow.PizzaRepository().Add(ctx, testPizza))
	suite.assertRowCount("pizzas", 1)

	loaded, err := uow.PizzaRepository().Get(ctx, testPizza.ID())
	suite.Require().NoError(err)
	suite.Equal("Margherita", loaded.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_IsHarmless() {
	ctx := context.Background()
	uow := suite.factory.Create()
	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Commit(ctx))

	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.assertRowCount("orders", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	cust, err := customer.NewCustomer(
		kernel.NewUUID(), "Ada", "Lovelace", "ada@example.com", "555-0100", customer.Address{})
	suite.Require().NoError(err)

	item, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, order.Small)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), cust, []order.LineItem{item}, false)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) assertRowCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
