package services_test

import (
	"fmt"
	"testing"

	"garage/internal/models"
	"garage/internal/repositories"
	"garage/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVehicleRepository is a mock implementation of repositories.VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(vehicle *models.Vehicle) error {
	args := m.Called(vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(vehicle *models.Vehicle) error {
	args := m.Called(vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(page *int, name, brand string) ([]models.Vehicle, error) {
	args := m.Called(page, name, brand)
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func TestVehicleService_Create(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	// nil RabbitMQ client: eventing disabled, mutations must still succeed
	service := services.NewVehicleService(mockRepo, nil)

	vehicle := &models.Vehicle{Name: "Uno", Brand: "Fiat", Year: 1995}

	mockRepo.On("Create", vehicle).Return(nil).Once()
	err := service.Create(vehicle)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test creation failure
	mockRepo.On("Create", vehicle).Return(fmt.Errorf("database error")).Once()
	err = service.Create(vehicle)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestVehicleService_GetByID(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	service := services.NewVehicleService(mockRepo, nil)

	expected := &models.Vehicle{ID: 1, Name: "Uno", Brand: "Fiat", Year: 1995}

	mockRepo.On("GetByID", uint(1)).Return(expected, nil).Once()
	vehicle, err := service.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, vehicle)
	mockRepo.AssertExpectations(t)

	// Test vehicle not found
	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("vehicle with ID 99: %w", repositories.ErrNotFound)).Once()
	vehicle, err = service.GetByID(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, vehicle)
	mockRepo.AssertExpectations(t)
}

func TestVehicleService_Update(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	service := services.NewVehicleService(mockRepo, nil)

	vehicle := &models.Vehicle{ID: 1, Name: "Uno Mille", Brand: "Fiat", Year: 1998}

	mockRepo.On("Update", vehicle).Return(nil).Once()
	err := service.Update(vehicle)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test update of a missing vehicle
	missing := &models.Vehicle{ID: 99, Name: "Ghost", Brand: "None", Year: 2000}
	mockRepo.On("Update", missing).Return(fmt.Errorf("vehicle with ID 99: %w", repositories.ErrNotFound)).Once()
	err = service.Update(missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestVehicleService_Delete(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	service := services.NewVehicleService(mockRepo, nil)

	vehicle := &models.Vehicle{ID: 1, Name: "Uno", Brand: "Fiat", Year: 1995}

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	err := service.Delete(vehicle)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion of a missing vehicle
	missing := &models.Vehicle{ID: 99}
	mockRepo.On("Delete", uint(99)).Return(fmt.Errorf("vehicle with ID 99: %w", repositories.ErrNotFound)).Once()
	err = service.Delete(missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestVehicleService_List(t *testing.T) {
	mockRepo := new(MockVehicleRepository)
	service := services.NewVehicleService(mockRepo, nil)

	expected := []models.Vehicle{
		{ID: 1, Name: "Uno", Brand: "Fiat", Year: 1995},
		{ID: 2, Name: "Gol", Brand: "Volkswagen", Year: 2001},
	}

	page := 1
	mockRepo.On("List", &page, "", "").Return(expected, nil).Once()
	vehicles, err := service.List(&page, "", "")
	assert.NoError(t, err)
	assert.Equal(t, expected, vehicles)
	mockRepo.AssertExpectations(t)

	// Filters are passed through untouched
	mockRepo.On("List", (*int)(nil), "uno", "fiat").Return(expected[:1], nil).Once()
	vehicles, err = service.List(nil, "uno", "fiat")
	assert.NoError(t, err)
	assert.Len(t, vehicles, 1)
	mockRepo.AssertExpectations(t)
}
