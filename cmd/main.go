package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lisamuiruri/restaurant-pizza-api/docs" // Import generated docs
	"github.com/lisamuiruri/restaurant-pizza-api/internal/config"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/controllers"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/database"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/middleware"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/services"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                        *gorm.DB
	restaurantService         services.RestaurantService
	pizzaService              services.PizzaService
	restaurantPizzaService    services.RestaurantPizzaService
	restaurantController      controllers.RestaurantController
	pizzaController           controllers.PizzaController
	restaurantPizzaController controllers.RestaurantPizzaController
	configuration             *config.Config
)

// @title Restaurant-Pizza API
// @version 1.0
// @description A relational service exposing restaurants, pizzas and their priced offerings
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection, schema and seed data
	setupDatabase(configuration)

	// Initialize services and controllers
	restaurantService = services.NewRestaurantService(db)
	pizzaService = services.NewPizzaService(db)
	restaurantPizzaService = services.NewRestaurantPizzaService(db)
	restaurantController = controllers.NewRestaurantController(restaurantService)
	pizzaController = controllers.NewPizzaController(pizzaService)
	restaurantPizzaController = controllers.NewRestaurantPizzaController(restaurantPizzaService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured database, migrates the schema and seeds
// the fixtures when enabled
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)

	checkPanicErr(database.MigrateSchema(db))

	if conf.SeedDB {
		checkPanicErr(database.SeedDatabase(db))
	}
	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Root banner and health check
	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler)

	// Restaurant routes
	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	// Pizza routes
	router.GET("/pizzas", pizzaController.GetAllPizzas)

	// Offering routes
	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// indexHandler serves the HTML banner on the root path
// @Summary API banner
// @Description Root banner for basic reachability checks
// @Tags health
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Restaurant-Pizza API</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "restaurant-pizza-api",
	})
}
