package services

import (
	"errors"

	"github.com/lisamuiruri/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantPizzaService provides methods to create priced offerings linking
// restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and creates a new offering. Both the
	// restaurant and the pizza must already exist; the returned offering has
	// both relations loaded for serialization.
	CreateRestaurantPizza(price float64, restaurantID, pizzaID uint) (models.RestaurantPizza, error)
}

// restaurantPizzaService is the implementation of the RestaurantPizzaService interface
type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(price float64, restaurantID, pizzaID uint) (models.RestaurantPizza, error) {
	offering := models.RestaurantPizza{
		Price:        price,
		RestaurantID: restaurantID,
		PizzaID:      pizzaID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Existence checks come before any write so an offering never
		// references a missing row.
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, restaurantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRestaurantNotFound
			}
			return err
		}
		var pizza models.Pizza
		if err := tx.First(&pizza, pizzaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPizzaNotFound
			}
			return err
		}

		if violations := offering.Validate(); len(violations) > 0 {
			return models.NewValidationError(violations)
		}

		if err := tx.Omit("Restaurant", "Pizza").Create(&offering).Error; err != nil {
			return err
		}
		offering.Restaurant = restaurant
		offering.Pizza = pizza
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return offering, nil
}
