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

// AdministratorHandler handles HTTP requests for administrators.
type AdministratorHandler struct {
	service     *services.AdministratorService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAdministratorHandler creates a new AdministratorHandler.
func NewAdministratorHandler(service *services.AdministratorService, authService *services.AuthService) *AdministratorHandler {
	return &AdministratorHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the administrator routes with the Fiber app.
// Login stays anonymous; everything else requires the Admin role.
func (h *AdministratorHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/administrators/login", h.HandleLogin)

	adminRoutes := router.Group("/administrators",
		middleware.AuthRequired(h.authService),
		middleware.RoleRequired(models.RoleAdmin),
	)
	adminRoutes.Get("/", h.HandleList)
	adminRoutes.Get("/:id", h.HandleGetByID)
	adminRoutes.Post("/", h.HandleCreate)
}

// HandleLogin verifies credentials and issues a JWT token.
func (h *AdministratorHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	administrator, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not process login",
		})
	}

	return c.JSON(LoginResponse{
		Email: administrator.Email,
		Role:  administrator.Role,
		Token: token,
	})
}

// HandleList retrieves administrators, paginated when the page query
// parameter is present.
func (h *AdministratorHandler) HandleList(c *fiber.Ctx) error {
	page, err := parsePage(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrors{
			Messages: []string{err.Error()},
		})
	}

	administrators, err := h.service.List(page)
	if err != nil {
		log.Printf("Error listing administrators: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve administrators",
		})
	}

	views := make([]AdministratorView, 0, len(administrators))
	for _, administrator := range administrators {
		views = append(views, AdministratorView{
			ID:    administrator.ID,
			Email: administrator.Email,
			Role:  administrator.Role,
		})
	}
	return c.JSON(views)
}

// HandleGetByID retrieves a single administrator by id.
func (h *AdministratorHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid administrator id",
		})
	}

	administrator, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting administrator %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve administrator",
		})
	}

	return c.JSON(AdministratorView{
		ID:    administrator.ID,
		Email: administrator.Email,
		Role:  administrator.Role,
	})
}

// HandleCreate registers a new administrator.
func (h *AdministratorHandler) HandleCreate(c *fiber.Ctx) error {
	var req AdministratorRequest
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

	administrator := models.Administrator{
		Email:    req.Email,
		Password: req.Password,
		Role:     models.Role(req.Role),
	}
	if err := h.service.Include(&administrator); err != nil {
		log.Printf("Error including administrator: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create administrator",
		})
	}

	c.Location(fmt.Sprintf("/administrators/%d", administrator.ID))
	return c.Status(fiber.StatusCreated).JSON(AdministratorView{
		ID:    administrator.ID,
		Email: administrator.Email,
		Role:  administrator.Role,
	})
}
