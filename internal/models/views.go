package models

// Serialization views. The entity graph is cyclic (Restaurant <->
// RestaurantPizza <-> Pizza), so instead of a generic recursive serializer
// each response context gets its own flat view type built by a pure function
// from already-loaded entities. Nesting depth is fixed at one level beyond
// the root entity: an offering embedded in a restaurant never re-embeds that
// restaurant, and its nested pizza never carries its own offering list.

// RestaurantSummary is the list view of a restaurant: scalar fields only
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaSummary is the list view of a pizza: scalar fields only
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// RestaurantPizzaNested is an offering as it appears inside a restaurant
// detail payload. The restaurant back-reference is omitted (the caller
// already has it) and the nested pizza is a summary.
type RestaurantPizzaNested struct {
	ID           uint         `json:"id"`
	Price        float64      `json:"price"`
	RestaurantID uint         `json:"restaurant_id"`
	PizzaID      uint         `json:"pizza_id"`
	Pizza        PizzaSummary `json:"pizza"`
}

// RestaurantDetail is the single-restaurant view: scalar fields plus the
// full offering collection
type RestaurantDetail struct {
	ID               uint                    `json:"id"`
	Name             string                  `json:"name"`
	Address          string                  `json:"address"`
	RestaurantPizzas []RestaurantPizzaNested `json:"restaurant_pizzas"`
}

// RestaurantPizzaDetail is the creation-response view of an offering:
// scalar fields plus both sides as summaries
type RestaurantPizzaDetail struct {
	ID           uint              `json:"id"`
	Price        float64           `json:"price"`
	RestaurantID uint              `json:"restaurant_id"`
	PizzaID      uint              `json:"pizza_id"`
	Restaurant   RestaurantSummary `json:"restaurant"`
	Pizza        PizzaSummary      `json:"pizza"`
}

// NewRestaurantSummary builds the list view of a restaurant
func NewRestaurantSummary(r Restaurant) RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

// NewPizzaSummary builds the list view of a pizza
func NewPizzaSummary(p Pizza) PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewRestaurantDetail builds the detail view of a restaurant. The offering
// collection and each offering's pizza must already be loaded.
func NewRestaurantDetail(r Restaurant) RestaurantDetail {
	offerings := make([]RestaurantPizzaNested, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		offerings = append(offerings, RestaurantPizzaNested{
			ID:           rp.ID,
			Price:        rp.Price,
			RestaurantID: rp.RestaurantID,
			PizzaID:      rp.PizzaID,
			Pizza:        NewPizzaSummary(rp.Pizza),
		})
	}
	return RestaurantDetail{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: offerings,
	}
}

// NewRestaurantPizzaDetail builds the creation-response view of an offering.
// Both the restaurant and the pizza must already be loaded.
func NewRestaurantPizzaDetail(rp RestaurantPizza) RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		ID:           rp.ID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
		PizzaID:      rp.PizzaID,
		Restaurant:   NewRestaurantSummary(rp.Restaurant),
		Pizza:        NewPizzaSummary(rp.Pizza),
	}
}
