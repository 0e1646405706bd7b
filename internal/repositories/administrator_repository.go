package repositories

import "garage/internal/models"

// AdministratorRepository defines the interface for administrator data access.
type AdministratorRepository interface {
	Create(administrator *models.Administrator) error
	GetByID(id uint) (*models.Administrator, error)
	GetByEmail(email string) (*models.Administrator, error)
	List(page *int) ([]models.Administrator, error)
}
