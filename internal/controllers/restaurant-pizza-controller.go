package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/models"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/services"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantPizzaController handles HTTP requests related to offerings
type RestaurantPizzaController interface {
	// CreateRestaurantPizza creates a new priced offering
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) *restaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// createRestaurantPizzaRequest uses pointers so absent fields are
// distinguishable from zero values
type createRestaurantPizzaRequest struct {
	Price        *float64 `json:"price"`
	RestaurantID *uint    `json:"restaurant_id"`
	PizzaID      *uint    `json:"pizza_id"`
}

// CreateRestaurantPizza godoc
// @Summary Create an offering
// @Description Create a priced association between an existing restaurant and an existing pizza
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body createRestaurantPizzaRequest true "Offering to create"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} map[string][]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req createRestaurantPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}
	if req.Price == nil || req.PizzaID == nil || req.RestaurantID == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Missing required fields: price, pizza_id, restaurant_id"}})
		return
	}

	offering, err := c.service.CreateRestaurantPizza(*req.Price, *req.RestaurantID, *req.PizzaID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRestaurantNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		case errors.Is(err, models.ErrPizzaNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Pizza not found"})
		default:
			if ve, ok := models.AsValidationError(err); ok {
				ctx.JSON(http.StatusBadRequest, gin.H{"errors": ve.Violations})
				return
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				ctx.JSON(http.StatusBadRequest, gin.H{"errors": []string{"A database integrity error occurred"}})
				return
			}
			log.WithError(err).Error("Failed to create offering")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected server error occurred: internal error"})
		}
		return
	}
	ctx.JSON(http.StatusCreated, models.NewRestaurantPizzaDetail(offering))
}
