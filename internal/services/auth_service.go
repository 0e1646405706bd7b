package services

import (
	"errors"
	"fmt"
	"time"

	"garage/internal/models"
	"garage/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for an unknown email or a wrong
// password. Both cases map to the same error so the response never reveals
// which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles credential verification and JWT issuing/validation.
type AuthService struct {
	adminRepo  repositories.AdministratorRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repositories.AdministratorRepository, jwtSecret string) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 1 day
	}
}

// Login verifies the email/password pair and returns the administrator along
// with a signed token.
func (s *AuthService) Login(email, password string) (*models.Administrator, string, error) {
	administrator, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(administrator.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(administrator)
	if err != nil {
		return nil, "", err
	}
	return administrator, token, nil
}

// GenerateToken issues a signed JWT asserting the administrator's identity
// and role. Fails closed when no signing key is configured.
func (s *AuthService) GenerateToken(administrator *models.Administrator) (string, error) {
	if len(s.jwtSecret) == 0 {
		return "", fmt.Errorf("signing key is not configured")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": administrator.Email,
		"role":  string(administrator.Role),
		"exp":   time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":   time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT, returning the claims if the
// signature and expiration check out. Issuer and audience are not validated.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
