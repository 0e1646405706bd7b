package repositories

import (
	"errors"
	"fmt"

	"garage/internal/models"

	"gorm.io/gorm"
)

// GORMAdministratorRepository is a GORM implementation of AdministratorRepository.
type GORMAdministratorRepository struct {
	db *gorm.DB
}

// NewGORMAdministratorRepository creates a new instance of GORMAdministratorRepository.
func NewGORMAdministratorRepository(db *gorm.DB) *GORMAdministratorRepository {
	return &GORMAdministratorRepository{
		db: db,
	}
}

// Create inserts a new administrator. The assigned id is written back to the
// passed struct.
func (r *GORMAdministratorRepository) Create(administrator *models.Administrator) error {
	if err := r.db.Create(administrator).Error; err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}
	return nil
}

// GetByID retrieves an administrator by id.
func (r *GORMAdministratorRepository) GetByID(id uint) (*models.Administrator, error) {
	var administrator models.Administrator
	if err := r.db.First(&administrator, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("administrator with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get administrator by ID %d: %w", id, err)
	}
	return &administrator, nil
}

// GetByEmail retrieves an administrator by email.
func (r *GORMAdministratorRepository) GetByEmail(email string) (*models.Administrator, error) {
	var administrator models.Administrator
	if err := r.db.First(&administrator, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("administrator with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get administrator by email %s: %w", email, err)
	}
	return &administrator, nil
}

// List returns administrators ordered by id. A nil page returns every row;
// otherwise rows are offset by (page-1)*PageSize and limited to PageSize.
func (r *GORMAdministratorRepository) List(page *int) ([]models.Administrator, error) {
	query := r.db.Model(&models.Administrator{}).Order("id")
	if page != nil {
		query = query.Offset((*page - 1) * PageSize).Limit(PageSize)
	}

	var administrators []models.Administrator
	if err := query.Find(&administrators).Error; err != nil {
		return nil, fmt.Errorf("failed to list administrators: %w", err)
	}
	return administrators, nil
}
