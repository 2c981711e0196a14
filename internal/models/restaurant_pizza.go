package models

import "fmt"

// RestaurantPizza is the join entity between restaurants and pizzas: one
// pizza, sold at one restaurant, at one price. It cannot exist without both
// sides, which the service layer checks before any insert.
type RestaurantPizza struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Price        float64 `json:"price" gorm:"not null"`
	RestaurantID uint    `json:"restaurant_id" gorm:"not null;index"`
	PizzaID      uint    `json:"pizza_id" gorm:"not null;index"`

	Restaurant Restaurant `json:"-"`
	Pizza      Pizza      `json:"-"`
}

// TableName keeps the table name aligned with the /restaurant_pizzas resource
func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// Validate checks the field rules for an offering and returns the list of
// violations. Referential checks against live restaurants and pizzas are the
// service layer's job; only field rules live here.
func (rp *RestaurantPizza) Validate() []string {
	var violations []string
	if rp.Price < 1 || rp.Price > 30 {
		violations = append(violations, "Price must be between 1 and 30")
	}
	return violations
}

func (rp *RestaurantPizza) String() string {
	return fmt.Sprintf("RestaurantPizza{ID: %d, Price: %.2f}", rp.ID, rp.Price)
}
