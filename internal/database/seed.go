package database

import (
	"gorm.io/gorm"

	"github.com/lisamuiruri/restaurant-pizza-api/internal/models"
)

// SeedDatabase loads the canonical fixtures into an empty database: three
// restaurants, three pizzas and five priced offerings between them. It is a
// no-op when any restaurant already exists.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	return db.Transaction(func(tx *gorm.DB) error {
		restaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "123 Pizza Lane"},
			{Name: "Sanjay's Pizza Bistro", Address: "456 Doughnut Drive"},
			{Name: "Kiki's Pizza Palace", Address: "789 Cheese Street"},
		}
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}

		pizzas := []models.Pizza{
			{Name: "Margherita", Ingredients: "Dough, Tomato Sauce, Cheese, Basil"},
			{Name: "Pepperoni Supreme", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "California Veggie", Ingredients: "Dough, Pesto, Ricotta, Red peppers, Spinach"},
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}

		offerings := []models.RestaurantPizza{
			{RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID, Price: 12.50},
			{RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID, Price: 14.00},
			{RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID, Price: 15.50},
			{RestaurantID: restaurants[0].ID, PizzaID: pizzas[1].ID, Price: 13.00},
			{RestaurantID: restaurants[1].ID, PizzaID: pizzas[0].ID, Price: 12.75},
		}
		if err := tx.Omit("Restaurant", "Pizza").Create(&offerings).Error; err != nil {
			return err
		}

		log.WithField("restaurants", len(restaurants)).Info("Database seeded successfully")
		return nil
	})
}
