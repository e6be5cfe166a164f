package services

import (
	"errors"

	"github.com/vesta-pos/vesta-api/models"
	"gorm.io/gorm"
)

// ItemWithProduct is an order item enriched with catalog display names,
// assembled application-side for detail and kitchen views.
type ItemWithProduct struct {
	models.OrderItem
	ProductName     string `json:"product_name"`
	CategoryName    string `json:"category_name,omitempty"`
	ServiceSpotName string `json:"service_spot_name,omitempty"`
	SalesAreaName   string `json:"sales_area_name,omitempty"`
}

// NewItemInput describes one line to add to an order. UnitPrice is frozen
// into the item at add-time; later catalog price changes never affect it.
type NewItemInput struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
	Notes     *string
}

// OrderItemService is the ledger of product lines within orders. It owns
// quantity/price/subtotal arithmetic and per-item preparation status;
// checking that the parent order is still mutable is the caller's job
// (see OrderService.RequireOpen).
type OrderItemService struct {
	db *gorm.DB
}

// NewOrderItemService creates an OrderItemService backed by the given database
func NewOrderItemService(db *gorm.DB) *OrderItemService {
	return &OrderItemService{db: db}
}

// FindByID returns the item with the given id, or ErrNotFound
func (s *OrderItemService) FindByID(itemID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindForOrder returns the item with the given id if it belongs to the
// given order, or ErrNotFound.
func (s *OrderItemService) FindForOrder(orderID, itemID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := s.db.Where("id = ? AND order_id = ?", itemID, orderID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// AddItem appends a line to an order in pendiente status with
// total_price = quantity * unit_price, then recomputes the parent order's
// aggregate totals.
func (s *OrderItemService) AddItem(orderID uint, input NewItemInput) (*models.OrderItem, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if input.UnitPrice < 0 {
		return nil, ErrInvalidPrice
	}

	item := models.OrderItem{
		OrderID:    orderID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		UnitPrice:  input.UnitPrice,
		TotalPrice: roundCents(float64(input.Quantity) * input.UnitPrice),
		Notes:      input.Notes,
		Status:     models.ItemStatusPending,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}

	if err := recomputeOrderTotals(s.db, orderID); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity changes an item's quantity and recomputes its total from
// the stored unit price, then recomputes the parent order's totals.
func (s *OrderItemService) UpdateQuantity(itemID uint, newQuantity int) (*models.OrderItem, error) {
	if newQuantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.FindByID(itemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = newQuantity
	item.TotalPrice = roundCents(float64(newQuantity) * item.UnitPrice)
	updates := map[string]interface{}{
		"quantity":    item.Quantity,
		"total_price": item.TotalPrice,
	}
	if err := s.db.Model(&models.OrderItem{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := recomputeOrderTotals(s.db, item.OrderID); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateStatus sets an item's preparation status. Any recognized value is
// accepted; there is no transition-legality check between item states.
func (s *OrderItemService) UpdateStatus(itemID uint, newStatus string) (*models.OrderItem, error) {
	if !models.IsValidItemStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	item, err := s.FindByID(itemID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.OrderItem{}).Where("id = ?", item.ID).Update("status", newStatus).Error; err != nil {
		return nil, err
	}
	item.Status = newStatus
	return item, nil
}

// Delete removes a single item and recomputes the parent order's totals
func (s *OrderItemService) Delete(itemID uint) error {
	item, err := s.FindByID(itemID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&models.OrderItem{}, itemID).Error; err != nil {
		return err
	}
	return recomputeOrderTotals(s.db, item.OrderID)
}

// DeleteByOrder removes every item of an order. Used for bulk replacement
// and as the first step of order deletion.
func (s *OrderItemService) DeleteByOrder(orderID uint) error {
	return s.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error
}

// ReplaceItems swaps an order's entire item list for the given lines and
// recomputes the order's totals once at the end.
func (s *OrderItemService) ReplaceItems(orderID uint, inputs []NewItemInput) error {
	for _, input := range inputs {
		if input.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if input.UnitPrice < 0 {
			return ErrInvalidPrice
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for _, input := range inputs {
			item := models.OrderItem{
				OrderID:    orderID,
				ProductID:  input.ProductID,
				Quantity:   input.Quantity,
				UnitPrice:  input.UnitPrice,
				TotalPrice: roundCents(float64(input.Quantity) * input.UnitPrice),
				Notes:      input.Notes,
				Status:     models.ItemStatusPending,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return recomputeOrderTotals(s.db, orderID)
}

// ListByOrder returns an order's items oldest-first, each enriched with
// product and category names for display.
func (s *OrderItemService) ListByOrder(orderID uint) ([]ItemWithProduct, error) {
	var items []models.OrderItem
	err := s.db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}

	enriched := make([]ItemWithProduct, 0, len(items))
	for _, item := range items {
		row := ItemWithProduct{OrderItem: item}

		var product models.Product
		if err := s.db.First(&product, item.ProductID).Error; err == nil {
			row.ProductName = product.Name

			var category models.ProductCategory
			if err := s.db.First(&category, product.CategoryID).Error; err == nil {
				row.CategoryName = category.Name
			}
		}
		enriched = append(enriched, row)
	}
	return enriched, nil
}

// ListPending returns every pendiente item belonging to an order that is
// still abierta or en_preparación, oldest-first, optionally restricted to
// one sales area. Items of settled or canceled orders never appear even if
// their own status is stale; this feeds the kitchen/bar display.
func (s *OrderItemService) ListPending(salesAreaID *uint) ([]ItemWithProduct, error) {
	query := s.db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.deleted_at IS NULL").
		Where("order_items.status = ?", models.ItemStatusPending).
		Where("orders.status IN ?", []string{models.OrderStatusOpen, models.OrderStatusInPreparation})
	if salesAreaID != nil {
		query = query.Where("orders.sales_area_id = ?", *salesAreaID)
	}

	var items []models.OrderItem
	if err := query.Order("order_items.created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}

	enriched := make([]ItemWithProduct, 0, len(items))
	for _, item := range items {
		row := ItemWithProduct{OrderItem: item}

		var product models.Product
		if err := s.db.First(&product, item.ProductID).Error; err == nil {
			row.ProductName = product.Name
		}

		var order models.Order
		if err := s.db.First(&order, item.OrderID).Error; err == nil {
			var spot models.ServiceSpot
			if err := s.db.First(&spot, order.ServiceSpotID).Error; err == nil {
				row.ServiceSpotName = spot.Name
			}
			var area models.SalesArea
			if err := s.db.First(&area, order.SalesAreaID).Error; err == nil {
				row.SalesAreaName = area.Name
			}
		}
		enriched = append(enriched, row)
	}
	return enriched, nil
}
