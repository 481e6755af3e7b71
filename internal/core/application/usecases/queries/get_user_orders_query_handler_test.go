package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandlerTestSuite exercises the customer listing against a
// real PostgreSQL schema.
type GetUserOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUserOrdersQueryHandler
}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderItemIngredientDTO{},
		&userrepo.UserDTO{},
		&userrepo.AddressDTO{},
		&restaurantrepo.RestaurantDTO{},
	))

	suite.handler = queries.NewGetUserOrdersQueryHandler(db)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, users, restaurants CASCADE").Error)
}

type seededOrder struct {
	id        kernel.UUID
	status    order.Status
	createdAt time.Time
}

// seedCustomerWithOrders inserts a user, their address, a restaurant, and one
// order per requested status.
func (suite *GetUserOrdersQueryHandlerTestSuite) seedCustomerWithOrders(
	email string,
	statuses ...order.Status,
) []seededOrder {
	userID := kernel.NewUUID()
	addressID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	suite.Require().NoError(suite.db.Create(&userrepo.UserDTO{
		ID:       userID.Bytes(),
		Email:    email,
		FullName: "Alice Smith",
		Addresses: []userrepo.AddressDTO{{
			ID:       addressID.Bytes(),
			UserID:   userID.Bytes(),
			Street:   "12 High St",
			City:     "London",
			Postcode: "N1 9GU",
		}},
	}).Error)

	suite.Require().NoError(suite.db.Create(&restaurantrepo.RestaurantDTO{
		ID:         restaurantID.Bytes(),
		Name:       "Crust & Crumb",
		OwnerEmail: "owner+" + email,
		Open:       true,
	}).Error)

	seeded := make([]seededOrder, 0, len(statuses))
	base := time.Now().UTC().Truncate(time.Second)
	for i, status := range statuses {
		orderID := kernel.NewUUID()
		itemID := kernel.NewUUID()
		createdAt := base.Add(time.Duration(i) * time.Minute)

		suite.Require().NoError(suite.db.Create(&orderrepo.OrderDTO{
			ID:           orderID.Bytes(),
			CustomerID:   userID.Bytes(),
			RestaurantID: restaurantID.Bytes(),
			AddressID:    addressID.Bytes(),
			TotalItem:    1,
			TotalPrice:   2400,
			Status:       status.Rank(),
			CreatedAt:    createdAt,
			Items: []orderrepo.OrderItemDTO{{
				ID:         itemID.Bytes(),
				OrderID:    orderID.Bytes(),
				FoodID:     kernel.NewUUID().Bytes(),
				FoodName:   "Margherita",
				Quantity:   2,
				TotalPrice: 2400,
				Ingredients: []orderrepo.OrderItemIngredientDTO{{
					OrderItemID:  itemID.Bytes(),
					IngredientID: kernel.NewUUID().Bytes(),
					Name:         "basil",
				}},
			}},
		}).Error)

		seeded = append(seeded, seededOrder{id: orderID, status: status, createdAt: createdAt})
	}
	return seeded
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_FiltersByStatus() {
	seeded := suite.seedCustomerWithOrders("alice@example.com",
		order.Pending, order.Confirmed, order.Pending)

	query, err := queries.NewGetUserOrdersQuery("alice@example.com", order.Pending.Rank())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	for _, view := range result {
		suite.Equal("PENDING", view.Status)
		suite.Equal(order.Pending.Rank(), view.StatusRank)
		suite.Equal("Crust & Crumb", view.Restaurant)
		suite.Equal("12 High St", view.Address.Street)
		suite.Require().Len(view.Items, 1)
		suite.Equal("Margherita", view.Items[0].FoodName)
		suite.Equal([]string{"basil"}, view.Items[0].Ingredients)
	}

	// Newest first: the third seeded pending order precedes the first.
	suite.True(result[0].ID.IsEqual(seeded[2].id))
	suite.True(result[1].ID.IsEqual(seeded[0].id))
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmptySlice() {
	suite.seedCustomerWithOrders("alice@example.com", order.Delivered)

	query, err := queries.NewGetUserOrdersQuery("alice@example.com", order.Pending.Rank())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_OtherCustomersOrdersInvisible() {
	suite.seedCustomerWithOrders("alice@example.com", order.Pending)
	suite.seedCustomerWithOrders("bob@example.com", order.Pending)

	query, err := queries.NewGetUserOrdersQuery("bob@example.com", order.Pending.Rank())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 1)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_UnknownEmail() {
	query, err := queries.NewGetUserOrdersQuery("nobody@example.com", order.Pending.Rank())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrUserNotFound)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_InvalidRank() {
	query, err := queries.NewGetUserOrdersQuery("alice@example.com", 42)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrOrderStatusInvalid)
}

func TestGetUserOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUserOrdersQueryHandlerTestSuite))
}
