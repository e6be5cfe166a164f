package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vesta-pos/vesta-api/config"
	"github.com/vesta-pos/vesta-api/models"
	"github.com/vesta-pos/vesta-api/services"
)

// SpotStatusRequest represents the request body for a spot status change
type SpotStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListServiceSpots handles GET /api/v1/service-spots - spots by sales area
// or by status. One of sales_area_id/status is required.
func ListServiceSpots(c *gin.Context) {
	spots := services.NewSpotService(config.GetDB())

	status := c.Query("status")
	areaRaw := c.Query("sales_area_id")

	if status != "" {
		if !models.IsValidSpotStatus(status) {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status filter")
			return
		}
		var salesAreaID *uint
		if areaRaw != "" {
			areaID, ok := queryID(c, "sales_area_id", areaRaw)
			if !ok {
				return
			}
			salesAreaID = &areaID
		}

		result, err := spots.FindByStatus(status, salesAreaID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load service spots")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
		return
	}

	if areaRaw == "" {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "sales_area_id or status is required")
		return
	}
	areaID, ok := queryID(c, "sales_area_id", areaRaw)
	if !ok {
		return
	}

	includeInactive := c.Query("include_inactive") == "true"
	result, err := spots.FindByArea(areaID, includeInactive)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load service spots")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// UpdateServiceSpotStatus handles PATCH /api/v1/service-spots/:id/status.
// The spot is a passive status register; no transition check happens here.
func UpdateServiceSpotStatus(c *gin.Context) {
	spotID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SpotStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}
	if !models.IsValidSpotStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid status. Must be one of: libre, ocupado, reservado, pedido_abierto, cobrado")
		return
	}

	spots := services.NewSpotService(config.GetDB())
	if err := spots.UpdateStatus(spotID, req.Status); err != nil {
		respondServiceError(c, err, "Service spot not found")
		return
	}

	spot, err := spots.FindByID(spotID)
	if err != nil {
		respondServiceError(c, err, "Service spot not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": spot})
}

// ResetServiceSpots handles POST /api/v1/service-spots/reset - end-of-day
// reset of every active spot back to libre
func ResetServiceSpots(c *gin.Context) {
	count, err := services.NewSpotService(config.GetDB()).ResetAllActive()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to reset service spots")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"reset_count": count},
	})
}
