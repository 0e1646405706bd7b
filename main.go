package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"garage/internal/handlers"
	"garage/internal/middleware"
	"garage/internal/models"
	"garage/internal/repositories"
	"garage/internal/services"
	"garage/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("SQLITE_PATH", "garage.db")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	databaseURL := viper.GetString("DATABASE_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	if jwtSecret == "" {
		// Token issuing fails closed on an empty key, so refuse to start.
		log.Fatal("JWT_SECRET must be set")
	}

	// --- Database ---
	// PostgreSQL when DATABASE_URL is set, local SQLite file otherwise.
	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(viper.GetString("SQLITE_PATH"))
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Administrator{}, &models.Vehicle{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
	} else {
		log.Println("RABBITMQ_URL not set, vehicle events disabled")
	}

	// --- Initialize Repositories ---
	administratorRepo := repositories.NewGORMAdministratorRepository(db)
	vehicleRepo := repositories.NewGORMVehicleRepository(db)

	// Seed the initial administrator account
	seedAdministrator(administratorRepo)

	// --- Initialize Services ---
	administratorService := services.NewAdministratorService(administratorRepo)
	vehicleService := services.NewVehicleService(vehicleRepo, mqClient)
	authService := services.NewAuthService(administratorRepo, jwtSecret)

	// --- Initialize Handlers ---
	administratorHandler := handlers.NewAdministratorHandler(administratorService, authService)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, authService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(middleware.RequestID())
	app.Use(logger.New()) // Request logger

	// --- Routes ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the vehicle administration API",
			"docs":    "/administrators/login",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	administratorHandler.RegisterRoutes(app)
	vehicleHandler.RegisterRoutes(app)

	// --- Start RabbitMQ Consumer ---
	// Log-only consumer for vehicle change events. Downstream systems would
	// hook in here (inventory sync, notifications).
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for vehicle events...")
		if consumerErr := mqClient.ConsumeVehicleEvents(func(msg amqp.Delivery) error {
			log.Printf("Received vehicle event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil // Return nil to acknowledge
		}); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// seedAdministrator inserts the initial Admin account when the table is empty.
func seedAdministrator(repo repositories.AdministratorRepository) {
	if _, err := repo.GetByEmail("admin@garage.local"); err == nil {
		return
	}

	administrator := models.Administrator{
		Email:    "admin@garage.local",
		Password: "123456",
		Role:     models.RoleAdmin,
	}
	// Include hashes the password before persisting.
	service := services.NewAdministratorService(repo)
	if err := service.Include(&administrator); err != nil {
		log.Printf("Error seeding administrator: %v", err)
	} else {
		log.Printf("Seeded administrator: %s (ID: %d)", administrator.Email, administrator.ID)
	}
}
