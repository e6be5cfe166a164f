package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/vesta-pos/vesta-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testFixtures holds the seed records shared by the controller tests
type testFixtures struct {
	Waiter  models.User
	Area    models.SalesArea
	Spot    models.ServiceSpot
	Product models.Product
	Menu    models.Menu
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

func seedTestFixtures(t *testing.T, db *gorm.DB) testFixtures {
	t.Helper()

	f := testFixtures{
		Waiter: models.User{Username: "maria", FullName: "María López", Role: "dependiente", IsActive: true},
		Area:   models.SalesArea{Name: "Terraza", IsActive: true},
		Menu:   models.Menu{Name: "Carta de verano", IsActive: true},
	}
	category := models.ProductCategory{Name: "Bebidas", IsActive: true}

	for _, record := range []interface{}{&f.Waiter, &f.Area, &f.Menu, &category} {
		if err := db.Create(record).Error; err != nil {
			t.Fatalf("Failed to seed fixture: %v", err)
		}
	}

	f.Spot = models.ServiceSpot{Name: "Mesa 5", Capacity: 4, Status: models.SpotStatusFree, IsActive: true, SalesAreaID: f.Area.ID}
	if err := db.Create(&f.Spot).Error; err != nil {
		t.Fatalf("Failed to seed service spot: %v", err)
	}

	f.Product = models.Product{Name: "Caña", Price: 2.50, CategoryID: category.ID, IsActive: true}
	if err := db.Create(&f.Product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	est := models.Establishment{Name: "Vesta", TaxRate: 10, Currency: "EUR", IsConfigured: true}
	if err := db.Create(&est).Error; err != nil {
		t.Fatalf("Failed to seed establishment: %v", err)
	}

	return f
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// mockPrincipalMiddleware injects an authenticated user id the way the
// principal middleware would after validating the gateway header
func mockPrincipalMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response body %q: %v", w.Body.String(), err)
	}
	return response
}
