package services

import (
	"errors"

	"github.com/lisamuiruri/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(id uint) (models.Pizza, error)
	// CreatePizza validates and creates a new pizza in the database
	CreatePizza(pizza models.Pizza) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, models.ErrPizzaNotFound
		}
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(pizza models.Pizza) (models.Pizza, error) {
	if violations := pizza.Validate(); len(violations) > 0 {
		return models.Pizza{}, models.NewValidationError(violations)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&pizza).Error
	})
	if err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}
