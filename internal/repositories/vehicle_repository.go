package repositories

import "garage/internal/models"

// VehicleRepository defines the interface for vehicle data access.
type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	Update(vehicle *models.Vehicle) error
	Delete(id uint) error
	GetByID(id uint) (*models.Vehicle, error)
	List(page *int, name, brand string) ([]models.Vehicle, error)
}
