package models

import "fmt"

// Restaurant represents a restaurant that sells pizzas through
// RestaurantPizza associations
type Restaurant struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Address string `json:"address" gorm:"size:100;not null"`

	// Offerings owned by this restaurant. Deleting the restaurant deletes them.
	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Validate checks the field rules for a restaurant and returns the list of
// violations. An empty list means the restaurant is valid.
func (r *Restaurant) Validate() []string {
	var violations []string
	if r.Name == "" {
		violations = append(violations, "Restaurant must have a name")
	} else if len(r.Name) > 50 {
		violations = append(violations, "Restaurant name must be between 1 and 50 characters")
	}
	if r.Address == "" {
		violations = append(violations, "Restaurant must have an address")
	} else if len(r.Address) > 100 {
		violations = append(violations, "Restaurant address must be between 1 and 100 characters")
	}
	return violations
}

func (r *Restaurant) String() string {
	return fmt.Sprintf("Restaurant{ID: %d, Name: %s}", r.ID, r.Name)
}
