package handlers

import (
	"fmt"
	"strconv"

	"garage/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	Token string      `json:"token"`
}

// AdministratorRequest represents the request body for creating an
// administrator.
type AdministratorRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Admin Editor"`
}

// AdministratorView is the administrator shape exposed over the wire.
// The password never leaves the server.
type AdministratorView struct {
	ID    uint        `json:"id"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// VehicleRequest represents the request body for creating or updating a
// vehicle.
type VehicleRequest struct {
	Name  string `json:"name" validate:"required"`
	Brand string `json:"brand" validate:"required"`
	Year  int    `json:"year" validate:"gte=1950"`
}

// ValidationErrors is the uniform 400 response body: every violated rule is
// collected, never just the first.
type ValidationErrors struct {
	Messages []string `json:"messages"`
}

// validationMessages translates validator errors into human-readable
// messages, one per violated rule.
func validationMessages(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Field() + "." + e.Tag() {
		case "Email.required":
			messages = append(messages, "email cannot be empty")
		case "Email.email":
			messages = append(messages, "email must be a valid email address")
		case "Password.required":
			messages = append(messages, "password cannot be empty")
		case "Role.required":
			messages = append(messages, "role cannot be empty")
		case "Role.oneof":
			messages = append(messages, "role must be Admin or Editor")
		case "Name.required":
			messages = append(messages, "name cannot be empty")
		case "Brand.required":
			messages = append(messages, "brand cannot be empty")
		case "Year.gte":
			messages = append(messages, "vehicle too old, only years from 1950 are accepted")
		default:
			messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
		}
	}
	return messages
}

// parsePage reads the optional 1-based page query parameter. A missing
// parameter yields nil, which disables pagination.
func parsePage(c *fiber.Ctx) (*int, error) {
	raw := c.Query("page")
	if raw == "" {
		return nil, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return nil, fmt.Errorf("page must be a positive integer")
	}
	return &page, nil
}
