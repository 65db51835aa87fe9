package store_test

import (
	"context"
	"testing"
	"time"

	"delivery_orders/internal/db"
	"delivery_orders/internal/domain"
	"delivery_orders/internal/store"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormStoreIntegrationTestSuite runs the gateway against a real PostgreSQL
// container so the unique and foreign-key constraints are the database's own.
type GormStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *store.GormStore
}

func TestGormStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(GormStoreIntegrationTestSuite))
}

func (s *GormStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	gdb, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	s.Require().NoError(err)
	s.db = gdb

	s.Require().NoError(db.AutoMigrate(gdb))
	s.store = store.NewGormStore(gdb)
}

func (s *GormStoreIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE orders, users RESTART IDENTITY CASCADE").Error)
}

func (s *GormStoreIntegrationTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *GormStoreIntegrationTestSuite) session() store.Gateway {
	return s.store.Session(context.Background())
}

func (s *GormStoreIntegrationTestSuite) createUser(name, email string) *domain.User {
	u := &domain.User{Name: name, Email: email}
	_, err := u.GenerateAPIToken(32)
	s.Require().NoError(err)
	s.Require().NoError(s.session().CreateUser(u))
	return u
}

func (s *GormStoreIntegrationTestSuite) order(orderID int64, userID uint) *domain.Order {
	return &domain.Order{
		OrderID:              orderID,
		UserID:               userID,
		DistanceKm:           5.2,
		Weather:              "Clear",
		TrafficLevel:         "Low",
		TimeOfDay:            "Morning",
		VehicleType:          "Bike",
		PreparationTimeMin:   12,
		CourierExperienceYrs: 2.5,
		DeliveryTimeMin:      30,
	}
}

func (s *GormStoreIntegrationTestSuite) TestCreateUser_AssignsID() {
	u := s.createUser("Alice", "a@x.com")
	s.NotZero(u.ID)

	found, err := s.session().FindUserByToken(u.APIToken)
	s.Require().NoError(err)
	s.Equal(u.ID, found.ID)
	s.Equal("a@x.com", found.Email)
}

func (s *GormStoreIntegrationTestSuite) TestCreateUser_DuplicateEmail() {
	s.createUser("Alice", "a@x.com")

	dup := &domain.User{Name: "Other", Email: "a@x.com"}
	_, err := dup.GenerateAPIToken(32)
	s.Require().NoError(err)

	s.ErrorIs(s.session().CreateUser(dup), store.ErrConflict)

	var count int64
	s.Require().NoError(s.db.Model(&domain.User{}).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *GormStoreIntegrationTestSuite) TestFindUser_NotFound() {
	_, err := s.session().FindUserByID(999)
	s.ErrorIs(err, store.ErrNotFound)

	_, err = s.session().FindUserByToken("nope")
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *GormStoreIntegrationTestSuite) TestCreateOrder_DuplicateOrderID() {
	u := s.createUser("Alice", "a@x.com")
	s.Require().NoError(s.session().CreateOrder(s.order(1001, u.ID)))

	changed := s.order(1001, u.ID)
	changed.DistanceKm = 99
	s.ErrorIs(s.session().CreateOrder(changed), store.ErrConflict)

	found, err := s.session().FindOrderByOrderID(1001)
	s.Require().NoError(err)
	s.Equal(5.2, found.DistanceKm)
}

func (s *GormStoreIntegrationTestSuite) TestCreateOrder_UnknownUser() {
	s.ErrorIs(s.session().CreateOrder(s.order(1001, 42)), store.ErrForeignKey)
}

func (s *GormStoreIntegrationTestSuite) TestFindOrdersByUserID_InsertionOrder() {
	u := s.createUser("Alice", "a@x.com")
	other := s.createUser("Bob", "b@x.com")
	for _, id := range []int64{3003, 1001, 2002} {
		s.Require().NoError(s.session().CreateOrder(s.order(id, u.ID)))
	}
	s.Require().NoError(s.session().CreateOrder(s.order(4004, other.ID)))

	orders, err := s.session().FindOrdersByUserID(u.ID)
	s.Require().NoError(err)
	s.Require().Len(orders, 3)
	s.Equal([]int64{3003, 1001, 2002}, []int64{orders[0].OrderID, orders[1].OrderID, orders[2].OrderID})

	none, err := s.session().FindOrdersByUserID(999)
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *GormStoreIntegrationTestSuite) TestDeleteUser_CascadesOrders() {
	u := s.createUser("Alice", "a@x.com")
	s.Require().NoError(s.session().CreateOrder(s.order(1001, u.ID)))

	s.Require().NoError(s.db.Delete(&domain.User{}, u.ID).Error)

	_, err := s.session().FindOrderByOrderID(1001)
	s.ErrorIs(err, store.ErrNotFound)
}
