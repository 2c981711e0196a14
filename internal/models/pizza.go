package models

import "fmt"

// Pizza represents a pizza that restaurants can offer at a price
type Pizza struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:50;not null"`
	Ingredients string `json:"ingredients" gorm:"size:255;not null"`

	// Offerings that reference this pizza. Deleting the pizza deletes them.
	RestaurantPizzas []RestaurantPizza `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// Validate checks the field rules for a pizza and returns the list of
// violations. An empty list means the pizza is valid.
func (p *Pizza) Validate() []string {
	var violations []string
	if p.Name == "" {
		violations = append(violations, "Pizza must have a name")
	}
	if p.Ingredients == "" {
		violations = append(violations, "Pizza must have ingredients")
	} else if len(p.Ingredients) > 255 {
		violations = append(violations, "Pizza ingredients must be at most 255 characters")
	}
	return violations
}

func (p *Pizza) String() string {
	return fmt.Sprintf("Pizza{ID: %d, Name: %s}", p.ID, p.Name)
}
