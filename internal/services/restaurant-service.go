package services

import (
	"errors"

	"github.com/lisamuiruri/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants from the database
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant by its ID with its offering
	// collection and each offering's pizza loaded
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// CreateRestaurant validates and creates a new restaurant in the database
	CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and all its offerings atomically
	DeleteRestaurant(id uint) error
}

// restaurantService is the implementation of the RestaurantService interface
type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.Preload("RestaurantPizzas.Pizza").First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, models.ErrRestaurantNotFound
		}
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(restaurant models.Restaurant) (models.Restaurant, error) {
	if violations := restaurant.Validate(); len(violations) > 0 {
		return models.Restaurant{}, models.NewValidationError(violations)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Restaurant{}).Where("name = ?", restaurant.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.ErrDuplicateRestaurant
		}
		return tx.Create(&restaurant).Error
	})
	if err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRestaurantNotFound
			}
			return err
		}

		// Delete the offering rows explicitly so the cascade does not depend
		// on foreign key enforcement being enabled in the driver.
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{}).Error; err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
}
