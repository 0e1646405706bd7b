package handlers

import (
	"errors"
	"fmt"
	"log"

	"garage/internal/middleware"
	"garage/internal/models"
	"garage/internal/repositories"
	"garage/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// VehicleHandler handles HTTP requests for vehicles.
type VehicleHandler struct {
	service     *services.VehicleService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(service *services.VehicleService, authService *services.AuthService) *VehicleHandler {
	return &VehicleHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the vehicle routes with the Fiber app. Every route
// requires authentication; mutations are restricted by role, reads are open
// to Admin and Editor, and the listing to any authenticated administrator.
func (h *VehicleHandler) RegisterRoutes(router fiber.Router) {
	vehicleRoutes := router.Group("/vehicles", middleware.AuthRequired(h.authService))
	vehicleRoutes.Get("/", h.HandleList)
	vehicleRoutes.Post("/", middleware.RoleRequired(models.RoleAdmin, models.RoleEditor), h.HandleCreate)
	vehicleRoutes.Get("/:id", middleware.RoleRequired(models.RoleAdmin, models.RoleEditor), h.HandleGetByID)
	vehicleRoutes.Put("/:id", middleware.RoleRequired(models.RoleAdmin), h.HandleUpdate)
	vehicleRoutes.Delete("/:id", middleware.RoleRequired(models.RoleAdmin), h.HandleDelete)
}

// HandleList retrieves vehicles, optionally filtered by name and brand and
// paginated when the page query parameter is present.
func (h *VehicleHandler) HandleList(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrors{
			Messages: []string{err.Error()},
		})
	}

	vehicles, err := h.service.List(page, c.Query("name"), c.Query("brand"))
	if err != nil {
		log.Printf("Error listing vehicles: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve vehicles",
		})
	}
	return c.JSON(vehicles)
}

// HandleGetByID retrieves a single vehicle by id.
func (h *VehicleHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid vehicle id",
		})
	}

	vehicle, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting vehicle %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve vehicle",
		})
	}
	return c.JSON(vehicle)
}

// HandleCreate registers a new vehicle.
func (h *VehicleHandler) HandleCreate(c *fiber.Ctx) error {
	var req VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrors{
			Messages: validationMessages(err),
		})
	}

	vehicle := models.Vehicle{
		Name:  req.Name,
		Brand: req.Brand,
		Year:  req.Year,
	}
	if err := h.service.Create(&vehicle); err != nil {
		log.Printf("Error creating vehicle: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create vehicle",
		})
	}

	c.Location(fmt.Sprintf("/vehicles/%d", vehicle.ID))
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// HandleUpdate replaces the name, brand and year of an existing vehicle.
func (h *VehicleHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid vehicle id",
		})
	}

	vehicle, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting vehicle %d for update: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve vehicle",
		})
	}

	var req VehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrors{
			Messages: validationMessages(err),
		})
	}

	vehicle.Name = req.Name
	vehicle.Brand = req.Brand
	vehicle.Year = req.Year
	if err := h.service.Update(vehicle); err != nil {
		log.Printf("Error updating vehicle %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update vehicle",
		})
	}
	return c.JSON(vehicle)
}

// HandleDelete removes a vehicle by id.
func (h *VehicleHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid vehicle id",
		})
	}

	vehicle, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting vehicle %d for deletion: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve vehicle",
		})
	}

	if err := h.service.Delete(vehicle); err != nil {
		log.Printf("Error deleting vehicle %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete vehicle",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
