package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/models"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/services"
	log "github.com/sirupsen/logrus"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant by its ID
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its offerings by its ID
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) *restaurantController {
	return &restaurantController{service: service}
}

// restaurantIDParam parses the id path parameter. A non-numeric id cannot
// reference any restaurant, so it reads as not found rather than bad request.
func restaurantIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their offerings
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		log.WithError(err).Error("Failed to list restaurants")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve restaurants"})
		return
	}

	summaries := make([]models.RestaurantSummary, 0, len(restaurants))
	for _, restaurant := range restaurants {
		summaries = append(summaries, models.NewRestaurantSummary(restaurant))
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with its offerings and their pizzas
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} map[string]string
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := restaurantIDParam(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to fetch restaurant")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve restaurant"})
		return
	}
	ctx.JSON(http.StatusOK, models.NewRestaurantDetail(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and all its offerings
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := restaurantIDParam(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if err := c.service.DeleteRestaurant(id); err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		// The transaction is already rolled back. The underlying detail goes
		// to the log, not to the client.
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant: internal error"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
