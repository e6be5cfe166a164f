package services

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/vesta-pos/vesta-api/models"
	"gorm.io/gorm"
)

// SpotSyncResult records the outcome of a best-effort service spot status
// sync performed as a secondary effect of an order operation. A failed sync
// never fails the primary operation; it is logged and carried here so
// callers can inspect it if they care.
type SpotSyncResult struct {
	SpotID uint
	Target string
	Err    error
}

// Failed reports whether the spot sync did not go through
func (r SpotSyncResult) Failed() bool {
	return r.Err != nil
}

// OrderService owns the order lifecycle: opening, status transitions,
// total/tax recomputation and deletion, plus the service spot status
// changes those operations imply.
type OrderService struct {
	db    *gorm.DB
	spots *SpotService
}

// NewOrderService creates an OrderService backed by the given database
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, spots: NewSpotService(db)}
}

// FindByID returns the order with the given id, or ErrNotFound
func (s *OrderService) FindByID(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// RequireOpen returns the order with the given id if it is still mutable.
// Returns ErrNotFound for unknown ids and ErrOrderClosed for terminal
// orders (cobrada or cancelada).
func (s *OrderService) RequireOpen(orderID uint) (*models.Order, error) {
	order, err := s.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.IsTerminal() {
		return nil, ErrOrderClosed
	}
	return order, nil
}

// ActiveBySpot returns the most recent non-terminal order open against the
// given spot, or nil if the spot has none.
func (s *OrderService) ActiveBySpot(spotID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Where("service_spot_id = ? AND status IN ?", spotID, models.ActiveOrderStatuses()).
		Order("created_at DESC").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Open creates a new order in abierta against the given spot and then marks
// the spot pedido_abierto. The spot must exist; if order creation fails the
// spot is never touched. The spot sync itself is best-effort.
func (s *OrderService) Open(spotID, salesAreaID, menuID, createdBy uint) (*models.Order, SpotSyncResult, error) {
	if _, err := s.spots.FindByID(spotID); err != nil {
		return nil, SpotSyncResult{}, err
	}

	order := models.Order{
		ServiceSpotID: spotID,
		SalesAreaID:   salesAreaID,
		MenuID:        menuID,
		Status:        models.OrderStatusOpen,
		CreatedBy:     createdBy,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, SpotSyncResult{}, err
	}

	sync := s.syncSpot(spotID, models.SpotStatusOrderOpen)
	return &order, sync, nil
}

// Transition sets the order status. newStatus must be one of the five
// recognized values and the order must not already be terminal. Moving to
// cobrada or cancelada stamps closed_at (and closed_by when supplied) and
// syncs the spot to cobrado or libre respectively; that sync is best-effort
// and never fails the transition.
func (s *OrderService) Transition(orderID uint, newStatus string, closedBy *uint) (*models.Order, SpotSyncResult, error) {
	if !models.IsValidOrderStatus(newStatus) {
		return nil, SpotSyncResult{}, ErrInvalidStatus
	}

	order, err := s.RequireOpen(orderID)
	if err != nil {
		return nil, SpotSyncResult{}, err
	}

	updates := map[string]interface{}{"status": newStatus}
	closing := newStatus == models.OrderStatusPaid || newStatus == models.OrderStatusCanceled
	if closing {
		now := time.Now()
		updates["closed_at"] = &now
		if closedBy != nil {
			updates["closed_by"] = closedBy
		}
		order.ClosedAt = &now
		order.ClosedBy = closedBy
	}
	order.Status = newStatus

	if err := s.db.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return nil, SpotSyncResult{}, err
	}

	var sync SpotSyncResult
	if closing {
		target := models.SpotStatusPaid
		if newStatus == models.OrderStatusCanceled {
			target = models.SpotStatusFree
		}
		sync = s.syncSpot(order.ServiceSpotID, target)
	}
	return order, sync, nil
}

// RecomputeTotal recalculates the order's tax and total from scratch: the
// subtotal is the sum of total_price across all its items (canceled items
// included, matching the billing behavior clients rely on), tax is
// subtotal * tax_rate/100 using the establishment rate in effect right now.
// Both amounts are persisted rounded to cents.
func (s *OrderService) RecomputeTotal(orderID uint) error {
	return recomputeOrderTotals(s.db, orderID)
}

func recomputeOrderTotals(db *gorm.DB, orderID uint) error {
	taxRate, err := currentTaxRate(db)
	if err != nil {
		return err
	}

	var subtotal float64
	err = db.Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&subtotal).Error
	if err != nil {
		return err
	}

	taxAmount := roundCents(subtotal * (taxRate / 100))
	totalAmount := roundCents(subtotal + taxAmount)

	return db.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"tax_amount":   taxAmount,
		"total_amount": totalAmount,
	}).Error
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Delete removes an order and all its items (items first, in one
// transaction, so no orphaned items are ever observable), then re-derives
// the spot status from whatever orders remain open against it: the most
// recent active order keeps the spot pedido_abierto, otherwise it falls
// back to libre. The re-derivation is best-effort.
func (s *OrderService) Delete(orderID uint) (SpotSyncResult, error) {
	order, err := s.FindByID(orderID)
	if err != nil {
		return SpotSyncResult{}, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, orderID).Error
	})
	if err != nil {
		return SpotSyncResult{}, err
	}

	sync := s.resyncSpotFromOrders(order.ServiceSpotID)
	return sync, nil
}

// resyncSpotFromOrders recalculates a spot's status from its remaining
// orders, defaulting to libre when none are active.
func (s *OrderService) resyncSpotFromOrders(spotID uint) SpotSyncResult {
	active, err := s.ActiveBySpot(spotID)
	if err != nil {
		sync := SpotSyncResult{SpotID: spotID, Err: err}
		log.Printf("WARN: failed to look up active orders for spot %d: %v", spotID, err)
		return sync
	}

	target := models.SpotStatusFree
	if active != nil {
		target = models.SpotStatusOrderOpen
	}
	return s.syncSpot(spotID, target)
}

// syncSpot performs the best-effort spot status update. Failures are logged
// and returned in the result, never propagated as operation failure.
func (s *OrderService) syncSpot(spotID uint, target string) SpotSyncResult {
	sync := SpotSyncResult{SpotID: spotID, Target: target}
	if err := s.spots.UpdateStatus(spotID, target); err != nil {
		sync.Err = err
		log.Printf("WARN: failed to sync spot %d to %q: %v", spotID, target, err)
	}
	return sync
}
