package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vesta-pos/vesta-api/config"
	"github.com/vesta-pos/vesta-api/models"
	"github.com/vesta-pos/vesta-api/services"
)

// OrderItemRequest represents one item line in a request body
type OrderItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
	Notes     *string `json:"notes"`
}

// ItemQuantityRequest represents the request body for a quantity change
type ItemQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ItemStatusRequest represents the request body for an item status change
type ItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AddOrderItem handles POST /api/v1/orders/:id/items - appends a line to a
// non-terminal order and recomputes its totals
func AddOrderItem(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	if _, err := services.NewOrderService(db).RequireOpen(orderID); err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	_, err := services.NewOrderItemService(db).AddItem(orderID, services.NewItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Notes:     req.Notes,
	})
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	detail, err := services.NewOrderQueryService(db).GetWithItems(orderID)
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    detail,
	})
}

// UpdateOrderItemQuantity handles PATCH /api/v1/orders/:id/items/:itemId -
// changes a line's quantity; total_price is recomputed from the frozen
// unit price
func UpdateOrderItemQuantity(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req ItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	if _, err := services.NewOrderService(db).RequireOpen(orderID); err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	items := services.NewOrderItemService(db)
	if _, err := items.FindForOrder(orderID, itemID); err != nil {
		respondServiceError(c, err, "Order item not found")
		return
	}

	if _, err := items.UpdateQuantity(itemID, req.Quantity); err != nil {
		respondServiceError(c, err, "Order item not found")
		return
	}

	detail, err := services.NewOrderQueryService(db).GetWithItems(orderID)
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}

// UpdateOrderItemStatus handles PATCH /api/v1/orders/:id/items/:itemId/status -
// moves a line through the kitchen workflow
func UpdateOrderItemStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req ItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}
	if !models.IsValidItemStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid status. Must be one of: pendiente, en_preparación, listo, servido, cancelado")
		return
	}

	db := config.GetDB()
	if _, err := services.NewOrderService(db).RequireOpen(orderID); err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	items := services.NewOrderItemService(db)
	if _, err := items.FindForOrder(orderID, itemID); err != nil {
		respondServiceError(c, err, "Order item not found")
		return
	}

	item, err := items.UpdateStatus(itemID, req.Status)
	if err != nil {
		respondServiceError(c, err, "Order item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// DeleteOrderItem handles DELETE /api/v1/orders/:id/items/:itemId - removes
// a single line and recomputes the order's totals
func DeleteOrderItem(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	db := config.GetDB()
	if _, err := services.NewOrderService(db).RequireOpen(orderID); err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	items := services.NewOrderItemService(db)
	if _, err := items.FindForOrder(orderID, itemID); err != nil {
		respondServiceError(c, err, "Order item not found")
		return
	}

	if err := items.Delete(itemID); err != nil {
		respondServiceError(c, err, "Order item not found")
		return
	}

	detail, err := services.NewOrderQueryService(db).GetWithItems(orderID)
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}

// ListPendingItems handles GET /api/v1/kitchen/pending-items - the kitchen
// feed: every pendiente line of a live order, oldest first, optionally
// filtered by sales area
func ListPendingItems(c *gin.Context) {
	var salesAreaID *uint
	if raw := c.Query("sales_area_id"); raw != "" {
		areaID, ok := queryID(c, "sales_area_id", raw)
		if !ok {
			return
		}
		salesAreaID = &areaID
	}

	items, err := services.NewOrderItemService(config.GetDB()).ListPending(salesAreaID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load pending items")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
	})
}
