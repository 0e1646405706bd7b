package services

import (
	"log"

	"garage/internal/models"
	"garage/internal/repositories"
	"garage/pkg/rabbitmq"
)

// VehicleService handles business logic related to vehicles.
type VehicleService struct {
	repo     repositories.VehicleRepository
	mqClient *rabbitmq.Client // nil when eventing is disabled
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(repo repositories.VehicleRepository, mqClient *rabbitmq.Client) *VehicleService {
	return &VehicleService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// Create persists a new vehicle and publishes a created event.
func (s *VehicleService) Create(vehicle *models.Vehicle) error {
	if err := s.repo.Create(vehicle); err != nil {
		return err
	}
	s.publishEvent("vehicle.created", vehicle)
	return nil
}

// Update replaces all fields of an existing vehicle and publishes an updated
// event.
func (s *VehicleService) Update(vehicle *models.Vehicle) error {
	if err := s.repo.Update(vehicle); err != nil {
		return err
	}
	s.publishEvent("vehicle.updated", vehicle)
	return nil
}

// Delete removes a vehicle by id and publishes a deleted event.
func (s *VehicleService) Delete(vehicle *models.Vehicle) error {
	if err := s.repo.Delete(vehicle.ID); err != nil {
		return err
	}
	s.publishEvent("vehicle.deleted", vehicle)
	return nil
}

// GetByID retrieves a single vehicle by id.
func (s *VehicleService) GetByID(id uint) (*models.Vehicle, error) {
	return s.repo.GetByID(id)
}

// List retrieves vehicles, optionally filtered by name and brand and
// paginated when page is non-nil.
func (s *VehicleService) List(page *int, name, brand string) ([]models.Vehicle, error) {
	return s.repo.List(page, name, brand)
}

// publishEvent sends a vehicle change event to RabbitMQ. The write has already
// been committed, so a publish failure is logged and never fails the request.
func (s *VehicleService) publishEvent(action string, vehicle *models.Vehicle) {
	if s.mqClient == nil {
		return
	}
	event := map[string]interface{}{
		"action": action,
		"id":     vehicle.ID,
		"name":   vehicle.Name,
		"brand":  vehicle.Brand,
		"year":   vehicle.Year,
	}
	if err := s.mqClient.PublishVehicleEvent(event); err != nil {
		log.Printf("Failed to publish %s event for vehicle %d: %v", action, vehicle.ID, err)
	}
}
