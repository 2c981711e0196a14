package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lisamuiruri/restaurant-pizza-api/internal/models"
)

// testDB opens a fresh in-memory SQLite database with the schema migrated
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}))
	return db
}

// seedFixtures inserts one restaurant and one pizza and returns them
func seedFixtures(t *testing.T, db *gorm.DB) (models.Restaurant, models.Pizza) {
	t.Helper()
	restaurant := models.Restaurant{Name: "Karen's Pizza Shack", Address: "123 Pizza Lane"}
	require.NoError(t, db.Create(&restaurant).Error)
	pizza := models.Pizza{Name: "Margherita", Ingredients: "Dough, Tomato Sauce, Cheese, Basil"}
	require.NoError(t, db.Create(&pizza).Error)
	return restaurant, pizza
}

func TestRestaurantServiceGetAll(t *testing.T) {
	db := testDB(t)
	svc := NewRestaurantService(db)

	restaurants, err := svc.GetAllRestaurants()
	require.NoError(t, err)
	assert.Empty(t, restaurants)

	seedFixtures(t, db)
	restaurants, err = svc.GetAllRestaurants()
	require.NoError(t, err)
	assert.Len(t, restaurants, 1)
}

func TestRestaurantServiceGetByIDPreloadsOfferings(t *testing.T) {
	db := testDB(t)
	restaurant, pizza := seedFixtures(t, db)
	require.NoError(t, db.Create(&models.RestaurantPizza{
		Price: 12.5, RestaurantID: restaurant.ID, PizzaID: pizza.ID,
	}).Error)

	svc := NewRestaurantService(db)
	got, err := svc.GetRestaurantByID(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, got.RestaurantPizzas, 1)
	assert.Equal(t, pizza.Name, got.RestaurantPizzas[0].Pizza.Name)
}

func TestRestaurantServiceGetByIDNotFound(t *testing.T) {
	svc := NewRestaurantService(testDB(t))
	_, err := svc.GetRestaurantByID(999)
	assert.ErrorIs(t, err, models.ErrRestaurantNotFound)
}

func TestRestaurantServiceCreateValidation(t *testing.T) {
	svc := NewRestaurantService(testDB(t))
	_, err := svc.CreateRestaurant(models.Restaurant{Name: "", Address: ""})
	ve, ok := models.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Violations, 2)
}

func TestRestaurantServiceCreateDuplicateName(t *testing.T) {
	db := testDB(t)
	svc := NewRestaurantService(db)

	_, err := svc.CreateRestaurant(models.Restaurant{Name: "Karen's Pizza Shack", Address: "123 Pizza Lane"})
	require.NoError(t, err)

	_, err = svc.CreateRestaurant(models.Restaurant{Name: "Karen's Pizza Shack", Address: "456 Doughnut Drive"})
	assert.ErrorIs(t, err, models.ErrDuplicateRestaurant)

	// The rejected write left nothing behind.
	var count int64
	require.NoError(t, db.Model(&models.Restaurant{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRestaurantServiceDeleteCascades(t *testing.T) {
	db := testDB(t)
	restaurant, pizza := seedFixtures(t, db)

	offerings := []models.RestaurantPizza{
		{Price: 12.5, RestaurantID: restaurant.ID, PizzaID: pizza.ID},
		{Price: 13, RestaurantID: restaurant.ID, PizzaID: pizza.ID},
		{Price: 14, RestaurantID: restaurant.ID, PizzaID: pizza.ID},
	}
	for i := range offerings {
		require.NoError(t, db.Create(&offerings[i]).Error)
	}

	svc := NewRestaurantService(db)
	require.NoError(t, svc.DeleteRestaurant(restaurant.ID))

	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurant.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	err := db.First(&models.Restaurant{}, restaurant.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The pizza itself survives the cascade.
	require.NoError(t, db.First(&models.Pizza{}, pizza.ID).Error)
}

func TestRestaurantServiceDeleteNotFoundTwice(t *testing.T) {
	svc := NewRestaurantService(testDB(t))
	assert.ErrorIs(t, svc.DeleteRestaurant(999), models.ErrRestaurantNotFound)
	assert.ErrorIs(t, svc.DeleteRestaurant(999), models.ErrRestaurantNotFound)
}

func TestPizzaServiceGetAll(t *testing.T) {
	db := testDB(t)
	seedFixtures(t, db)

	svc := NewPizzaService(db)
	pizzas, err := svc.GetAllPizzas()
	require.NoError(t, err)
	assert.Len(t, pizzas, 1)
}

func TestPizzaServiceGetByIDNotFound(t *testing.T) {
	svc := NewPizzaService(testDB(t))
	_, err := svc.GetPizzaByID(999)
	assert.ErrorIs(t, err, models.ErrPizzaNotFound)
}

func TestPizzaServiceCreateValidation(t *testing.T) {
	svc := NewPizzaService(testDB(t))
	_, err := svc.CreatePizza(models.Pizza{})
	ve, ok := models.AsValidationError(err)
	require.True(t, ok)
	assert.NotEmpty(t, ve.Violations)
}

func TestRestaurantPizzaServiceCreate(t *testing.T) {
	db := testDB(t)
	restaurant, pizza := seedFixtures(t, db)

	svc := NewRestaurantPizzaService(db)
	offering, err := svc.CreateRestaurantPizza(12.5, restaurant.ID, pizza.ID)
	require.NoError(t, err)

	assert.NotZero(t, offering.ID)
	assert.Equal(t, 12.5, offering.Price)
	assert.Equal(t, restaurant.Name, offering.Restaurant.Name)
	assert.Equal(t, pizza.Ingredients, offering.Pizza.Ingredients)
}

func TestRestaurantPizzaServicePriceRange(t *testing.T) {
	db := testDB(t)
	restaurant, pizza := seedFixtures(t, db)
	svc := NewRestaurantPizzaService(db)

	for _, price := range []float64{0, 31, -5} {
		_, err := svc.CreateRestaurantPizza(price, restaurant.ID, pizza.ID)
		ve, ok := models.AsValidationError(err)
		require.True(t, ok, "price %v should be rejected", price)
		assert.NotEmpty(t, ve.Violations)
	}

	// No row was persisted for any rejected price.
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRestaurantPizzaServiceMissingReferences(t *testing.T) {
	db := testDB(t)
	restaurant, pizza := seedFixtures(t, db)
	svc := NewRestaurantPizzaService(db)

	_, err := svc.CreateRestaurantPizza(12.5, 999, pizza.ID)
	assert.ErrorIs(t, err, models.ErrRestaurantNotFound)

	_, err = svc.CreateRestaurantPizza(12.5, restaurant.ID, 999)
	assert.ErrorIs(t, err, models.ErrPizzaNotFound)

	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
