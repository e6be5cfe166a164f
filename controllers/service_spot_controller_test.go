package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vesta-pos/vesta-api/config"
	"github.com/vesta-pos/vesta-api/models"
)

func TestListServiceSpotsByArea(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	f := seedTestFixtures(t, db)

	inactive := models.ServiceSpot{Name: "Mesa 9", Status: models.SpotStatusFree, IsActive: false, SalesAreaID: f.Area.ID}
	assert.NoError(t, db.Create(&inactive).Error)

	router := setupTestRouter()
	router.GET("/service-spots", mockPrincipalMiddleware(f.Waiter.ID), ListServiceSpots)

	w := performRequest(t, router, http.MethodGet,
		fmt.Sprintf("/service-spots?sales_area_id=%d", f.Area.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)

	w = performRequest(t, router, http.MethodGet,
		fmt.Sprintf("/service-spots?sales_area_id=%d&include_inactive=true", f.Area.ID), nil)
	response = parseResponse(t, w)
	assert.Len(t, response["data"].([]interface{}), 2)

	// Neither filter supplied
	w = performRequest(t, router, http.MethodGet, "/service-spots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListServiceSpotsByStatus(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	f := seedTestFixtures(t, db)

	occupied := models.ServiceSpot{Name: "Mesa 6", Status: models.SpotStatusOccupied, IsActive: true, SalesAreaID: f.Area.ID}
	assert.NoError(t, db.Create(&occupied).Error)

	router := setupTestRouter()
	router.GET("/service-spots", mockPrincipalMiddleware(f.Waiter.ID), ListServiceSpots)

	w := performRequest(t, router, http.MethodGet, "/service-spots?status=ocupado", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 1)
	spot := data[0].(map[string]interface{})
	assert.Equal(t, "Mesa 6", spot["name"])

	w = performRequest(t, router, http.MethodGet, "/service-spots?status=flotando", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateServiceSpotStatus(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	f := seedTestFixtures(t, db)

	router := setupTestRouter()
	router.PATCH("/service-spots/:id/status", mockPrincipalMiddleware(f.Waiter.ID), UpdateServiceSpotStatus)

	w := performRequest(t, router, http.MethodPatch,
		fmt.Sprintf("/service-spots/%d/status", f.Spot.ID),
		map[string]interface{}{"status": "reservado"})
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "reservado", data["status"])

	w = performRequest(t, router, http.MethodPatch, "/service-spots/9999/status",
		map[string]interface{}{"status": "libre"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, router, http.MethodPatch,
		fmt.Sprintf("/service-spots/%d/status", f.Spot.ID),
		map[string]interface{}{"status": "volando"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetServiceSpots(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	f := seedTestFixtures(t, db)

	assert.NoError(t, db.Model(&models.ServiceSpot{}).Where("id = ?", f.Spot.ID).
		Update("status", models.SpotStatusPaid).Error)

	router := setupTestRouter()
	router.POST("/service-spots/reset", mockPrincipalMiddleware(f.Waiter.ID), ResetServiceSpots)

	w := performRequest(t, router, http.MethodPost, "/service-spots/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["reset_count"])

	var spot models.ServiceSpot
	assert.NoError(t, db.First(&spot, f.Spot.ID).Error)
	assert.Equal(t, models.SpotStatusFree, spot.Status)

	// Running the reset again leaves the same final state
	w = performRequest(t, router, http.MethodPost, "/service-spots/reset", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, db.First(&spot, f.Spot.ID).Error)
	assert.Equal(t, models.SpotStatusFree, spot.Status)
}
