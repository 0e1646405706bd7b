package services

import (
	"fmt"

	"garage/internal/models"
	"garage/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AdministratorService handles business logic related to administrators.
type AdministratorService struct {
	repo repositories.AdministratorRepository
}

// NewAdministratorService creates a new AdministratorService.
func NewAdministratorService(repo repositories.AdministratorRepository) *AdministratorService {
	return &AdministratorService{
		repo: repo,
	}
}

// Include registers a new administrator. The plaintext password on the passed
// struct is replaced by its bcrypt hash before it is persisted.
func (s *AdministratorService) Include(administrator *models.Administrator) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(administrator.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	administrator.Password = string(hashedPassword)

	if err := s.repo.Create(administrator); err != nil {
		return fmt.Errorf("failed to include administrator: %w", err)
	}
	return nil
}

// GetByID retrieves a single administrator by id.
func (s *AdministratorService) GetByID(id uint) (*models.Administrator, error) {
	return s.repo.GetByID(id)
}

// List retrieves administrators, paginated when page is non-nil.
func (s *AdministratorService) List(page *int) ([]models.Administrator, error) {
	return s.repo.List(page)
}
