package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/models"
	"github.com/lisamuiruri/restaurant-pizza-api/internal/services"
	log "github.com/sirupsen/logrus"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) *pizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas without their offerings
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		log.WithError(err).Error("Failed to list pizzas")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pizzas"})
		return
	}

	summaries := make([]models.PizzaSummary, 0, len(pizzas))
	for _, pizza := range pizzas {
		summaries = append(summaries, models.NewPizzaSummary(pizza))
	}
	ctx.JSON(http.StatusOK, summaries)
}
