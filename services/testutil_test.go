package services

import (
	"testing"

	"github.com/vesta-pos/vesta-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fixtures holds the seed records shared by the service tests
type fixtures struct {
	Waiter   models.User
	Area     models.SalesArea
	Spot     models.ServiceSpot
	Category models.ProductCategory
	Product  models.Product
	Menu     models.Menu
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Establishment{},
		&models.SalesArea{},
		&models.ServiceSpot{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Menu{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// seedFixtures creates the reference records every order needs: a waiter, a
// sales area with one spot, a product with its category, and a menu.
func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	f := fixtures{
		Waiter:   models.User{Username: "maria", FullName: "María López", Role: "dependiente", IsActive: true},
		Area:     models.SalesArea{Name: "Terraza", IsActive: true},
		Category: models.ProductCategory{Name: "Bebidas", IsActive: true},
		Menu:     models.Menu{Name: "Carta de verano", IsActive: true},
	}
	if err := db.Create(&f.Waiter).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	if err := db.Create(&f.Area).Error; err != nil {
		t.Fatalf("Failed to seed sales area: %v", err)
	}
	if err := db.Create(&f.Category).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	if err := db.Create(&f.Menu).Error; err != nil {
		t.Fatalf("Failed to seed menu: %v", err)
	}

	f.Spot = models.ServiceSpot{Name: "Mesa 5", Capacity: 4, Status: models.SpotStatusFree, IsActive: true, SalesAreaID: f.Area.ID}
	if err := db.Create(&f.Spot).Error; err != nil {
		t.Fatalf("Failed to seed service spot: %v", err)
	}

	f.Product = models.Product{Name: "Caña", Price: 2.50, CategoryID: f.Category.ID, IsActive: true}
	if err := db.Create(&f.Product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	return f
}

// seedEstablishment creates the single configuration record with the given
// tax rate
func seedEstablishment(t *testing.T, db *gorm.DB, taxRate float64) {
	t.Helper()

	est := models.Establishment{Name: "Vesta", TaxRate: taxRate, Currency: "EUR", IsConfigured: true}
	if err := db.Create(&est).Error; err != nil {
		t.Fatalf("Failed to seed establishment: %v", err)
	}
}

func spotStatus(t *testing.T, db *gorm.DB, spotID uint) string {
	t.Helper()

	var spot models.ServiceSpot
	if err := db.First(&spot, spotID).Error; err != nil {
		t.Fatalf("Failed to reload spot %d: %v", spotID, err)
	}
	return spot.Status
}
