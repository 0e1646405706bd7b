package repositories

import (
	"errors"
	"fmt"
	"strings"

	"garage/internal/models"

	"gorm.io/gorm"
)

// GORMVehicleRepository is a GORM implementation of VehicleRepository.
type GORMVehicleRepository struct {
	db *gorm.DB
}

// NewGORMVehicleRepository creates a new instance of GORMVehicleRepository.
func NewGORMVehicleRepository(db *gorm.DB) *GORMVehicleRepository {
	return &GORMVehicleRepository{
		db: db,
	}
}

// Create inserts a new vehicle. The assigned id is written back to the passed
// struct.
func (r *GORMVehicleRepository) Create(vehicle *models.Vehicle) error {
	if err := r.db.Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// Update replaces all fields of an existing vehicle.
func (r *GORMVehicleRepository) Update(vehicle *models.Vehicle) error {
	res := r.db.Save(vehicle) // Save updates every field, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update vehicle: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vehicle with ID %d: %w", vehicle.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a vehicle by id.
func (r *GORMVehicleRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("vehicle with ID %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetByID retrieves a single vehicle by id.
func (r *GORMVehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle by ID %d: %w", id, err)
	}
	return &vehicle, nil
}

// List returns vehicles ordered by id, optionally filtered by name and brand
// (case-insensitive substring match). A nil page returns every matching row;
// otherwise rows are offset by (page-1)*PageSize and limited to PageSize.
func (r *GORMVehicleRepository) List(page *int, name, brand string) ([]models.Vehicle, error) {
	query := r.db.Model(&models.Vehicle{}).Order("id")
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if brand != "" {
		query = query.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(brand)+"%")
	}
	if page != nil {
		query = query.Offset((*page - 1) * PageSize).Limit(PageSize)
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}
