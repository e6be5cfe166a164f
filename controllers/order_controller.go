package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vesta-pos/vesta-api/config"
	"github.com/vesta-pos/vesta-api/middleware"
	"github.com/vesta-pos/vesta-api/models"
	"github.com/vesta-pos/vesta-api/services"
)

// CreateOrderRequest represents the request body for opening an order
type CreateOrderRequest struct {
	ServiceSpotID uint `json:"service_spot_id" binding:"required"`
	SalesAreaID   uint `json:"sales_area_id" binding:"required"`
	MenuID        uint `json:"menu_id" binding:"required"`
}

// UpdateOrderRequest represents the request body for updating an order.
// When Items is present the whole item list is replaced.
type UpdateOrderRequest struct {
	SalesAreaID *uint              `json:"sales_area_id"`
	MenuID      *uint              `json:"menu_id"`
	Items       []OrderItemRequest `json:"items"`
}

// OrderStatusRequest represents the request body for a status transition
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOrders handles GET /api/v1/orders - paged listing with optional
// status, service spot, sales area and date-range filters
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	var filters services.OrderFilters
	if status := c.Query("status"); status != "" {
		if !models.IsValidOrderStatus(status) {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status filter")
			return
		}
		filters.Status = &status
	}
	if raw := c.Query("service_spot_id"); raw != "" {
		spotID, ok := queryID(c, "service_spot_id", raw)
		if !ok {
			return
		}
		filters.ServiceSpotID = &spotID
	}
	if raw := c.Query("sales_area_id"); raw != "" {
		areaID, ok := queryID(c, "sales_area_id", raw)
		if !ok {
			return
		}
		filters.SalesAreaID = &areaID
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date_from must be YYYY-MM-DD")
			return
		}
		filters.DateFrom = &from
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "date_to must be YYYY-MM-DD")
			return
		}
		// Include the whole end day
		to = to.Add(24*time.Hour - time.Nanosecond)
		filters.DateTo = &to
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)
	if page < 1 || limit < 1 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "page and limit must be positive")
		return
	}

	queries := services.NewOrderQueryService(db)
	orders, total, err := queries.List(filters, page, limit)
	if err != nil {
		respondServiceError(c, err, "Orders not found")
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
		"pagination": gin.H{
			"page":        page,
			"limit":       limit,
			"total_items": total,
			"total_pages": totalPages,
		},
	})
}

// CreateOrder handles POST /api/v1/orders - opens a new order against a
// service spot and marks the spot pedido_abierto
func CreateOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	orders := services.NewOrderService(db)

	order, _, err := orders.Open(req.ServiceSpotID, req.SalesAreaID, req.MenuID, userID)
	if err != nil {
		respondServiceError(c, err, "Service spot not found")
		return
	}

	detail, err := services.NewOrderQueryService(db).GetWithItems(order.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Order created but failed to load details")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    detail,
	})
}

// GetOrder handles GET /api/v1/orders/:id - composed order detail with items
func GetOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := services.NewOrderQueryService(config.GetDB()).GetWithItems(orderID)
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}

// UpdateOrder handles PUT /api/v1/orders/:id - updates order fields and,
// when an item list is supplied, replaces the order's items wholesale
func UpdateOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	orders := services.NewOrderService(db)

	order, err := orders.RequireOpen(orderID)
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	updates := map[string]interface{}{}
	if req.SalesAreaID != nil {
		updates["sales_area_id"] = *req.SalesAreaID
	}
	if req.MenuID != nil {
		updates["menu_id"] = *req.MenuID
	}
	if len(updates) > 0 {
		if err := db.Model(order).Updates(updates).Error; err != nil {
			respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update order")
			return
		}
	}

	if req.Items != nil {
		inputs := make([]services.NewItemInput, 0, len(req.Items))
		for _, item := range req.Items {
			inputs = append(inputs, services.NewItemInput{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Notes:     item.Notes,
			})
		}
		if err := services.NewOrderItemService(db).ReplaceItems(orderID, inputs); err != nil {
			respondServiceError(c, err, "Order not found")
			return
		}
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

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - transitions
// the order; cobrada/cancelada stamp closed_at/closed_by and sync the spot
func UpdateOrderStatus(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}
	if !models.IsValidOrderStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid status. Must be one of: abierta, en_preparación, servida, cobrada, cancelada")
		return
	}

	var closedBy *uint
	if req.Status == models.OrderStatusPaid || req.Status == models.OrderStatusCanceled {
		if userID, err := middleware.GetUserID(c); err == nil {
			closedBy = &userID
		}
	}

	db := config.GetDB()
	if _, _, err := services.NewOrderService(db).Transition(orderID, req.Status, closedBy); err != nil {
		respondServiceError(c, err, "Order not found")
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

// DeleteOrder handles DELETE /api/v1/orders/:id - removes the order and its
// items, then re-derives the spot status from remaining orders
func DeleteOrder(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()

	// Capture the detail before deletion so it can be returned
	detail, err := services.NewOrderQueryService(db).GetWithItems(orderID)
	if err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	if _, err := services.NewOrderService(db).Delete(orderID); err != nil {
		respondServiceError(c, err, "Order not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    detail,
	})
}
