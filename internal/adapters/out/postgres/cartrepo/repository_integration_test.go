package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"vastrakala/internal/adapters/out/postgres/cartrepo"
	"vastrakala/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CartRepositoryIntegrationTestSuite provides integration tests for the cart
// repository using PostgreSQL containers.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&cartrepo.CartItemDTO{}))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cart_items").Error)

	suite.repository = cartrepo.NewGormCartRepository(suite.db)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestClearByUser_RemovesOnlyThatUsersItems() {
	ctx := context.Background()

	suite.addCartItem("user-1", "prod-1")
	suite.addCartItem("user-1", "prod-2")
	suite.addCartItem("user-2", "prod-3")

	err := suite.repository.ClearByUser(ctx, "user-1")
	suite.Require().NoError(err)

	count, err := suite.repository.CountByUser(ctx, "user-1")
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)

	// The other user's cart is untouched
	count, err = suite.repository.CountByUser(ctx, "user-2")
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *CartRepositoryIntegrationTestSuite) TestClearByUser_EmptyCart_Succeeds() {
	ctx := context.Background()

	err := suite.repository.ClearByUser(ctx, "user-without-cart")
	suite.Require().NoError(err)
}

func (suite *CartRepositoryIntegrationTestSuite) TestClearByUser_EmptyUserID_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.ClearByUser(ctx, "")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *CartRepositoryIntegrationTestSuite) TestCountByUser_ReturnsItemCount() {
	ctx := context.Background()

	suite.addCartItem("user-1", "prod-1")
	suite.addCartItem("user-1", "prod-2")

	count, err := suite.repository.CountByUser(ctx, "user-1")
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *CartRepositoryIntegrationTestSuite) TestCountByUser_EmptyUserID_ReturnsError() {
	ctx := context.Background()

	_, err := suite.repository.CountByUser(ctx, "")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

// addCartItem inserts a cart row directly, the way the storefront would.
func (suite *CartRepositoryIntegrationTestSuite) addCartItem(userID, productID string) {
	item := cartrepo.CartItemDTO{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Name:      "Banarasi Silk Saree",
		Price:     2000,
		Size:      "M",
		Color:     "Red",
		Quantity:  1,
		AddedAt:   time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&item).Error)
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
