package repositories

import (
	"context"
	"testing"
	"time"

	"customer-lookup/internal/database"
	"customer-lookup/internal/models"

	"github.com/stretchr/testify/suite"
)

func TestCustomerRepository(t *testing.T) {
	suite.Run(t, new(CustomerRepositorySuite))
}

type CustomerRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CustomerRepositoryInterface
}

func (s *CustomerRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCustomerRepository(s.db.DB)
}

func (s *CustomerRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_FindByID() {
	created := database.CreateTestCustomer(s.T(), s.db, "C1", "Ada Lovelace",
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))

	found, err := s.repo.FindByID(context.Background(), "C1")
	s.NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal(created.Name, found.Name)
	s.WithinDuration(created.CreatedAt, found.CreatedAt, time.Second)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_FindByID_NotFound() {
	_, err := s.repo.FindByID(context.Background(), "missing")
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_FindByIDCreatedBetween() {
	database.CreateTestCustomer(s.T(), s.db, "C1", "Ada Lovelace",
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	found, err := s.repo.FindByIDCreatedBetween(context.Background(), "C1", start, end)
	s.NoError(err)
	s.Equal("C1", found.ID)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_FindByIDCreatedBetween_OutsideRange() {
	database.CreateTestCustomer(s.T(), s.db, "C1", "Ada Lovelace",
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	_, err := s.repo.FindByIDCreatedBetween(context.Background(), "C1", start, end)
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_FindByIDCreatedBetween_InclusiveBounds() {
	createdAt := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	database.CreateTestCustomer(s.T(), s.db, "C1", "Ada Lovelace", createdAt)

	// Both bounds equal to created_at must still match
	found, err := s.repo.FindByIDCreatedBetween(context.Background(), "C1", createdAt, createdAt)
	s.NoError(err)
	s.Equal("C1", found.ID)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_FindByIDCreatedBetween_WrongID() {
	database.CreateTestCustomer(s.T(), s.db, "C1", "Ada Lovelace",
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	_, err := s.repo.FindByIDCreatedBetween(context.Background(), "C2", start, end)
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_FindByID_CancelledContext() {
	database.CreateTestCustomer(s.T(), s.db, "C1", "Ada Lovelace",
		time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.repo.FindByID(ctx, "C1")
	s.Error(err)
	s.NotErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_ReadsDoNotMutate() {
	createdAt := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	database.CreateTestCustomer(s.T(), s.db, "C1", "Ada Lovelace", createdAt)

	for i := 0; i < 3; i++ {
		_, err := s.repo.FindByID(context.Background(), "C1")
		s.NoError(err)
	}

	var count int64
	s.NoError(s.db.Model(&models.Customer{}).Count(&count).Error)
	s.Equal(int64(1), count)

	var stored models.Customer
	s.NoError(s.db.First(&stored, "id = ?", "C1").Error)
	s.Equal("Ada Lovelace", stored.Name)
	s.WithinDuration(createdAt, stored.CreatedAt, time.Second)
}
