package services

import (
	"errors"
	"time"

	"github.com/vesta-pos/vesta-api/models"
	"gorm.io/gorm"
)

// OrderDetail is the composed read view of one order: the order itself,
// display names resolved from its references, and its enriched items.
// Items is always a slice (empty for an itemless order, never nil) and the
// closer fields stay nil until the order is settled or canceled.
type OrderDetail struct {
	models.Order
	CreatedByUsername string            `json:"created_by_username"`
	ClosedByUsername  *string           `json:"closed_by_username"`
	ServiceSpotName   string            `json:"service_spot_name"`
	SalesAreaName     string            `json:"sales_area_name"`
	MenuName          string            `json:"menu_name"`
	Items             []ItemWithProduct `json:"items"`
}

// OrderSummary is one row of the paged order listing
type OrderSummary struct {
	models.Order
	CreatedByUsername string `json:"created_by_username"`
	ServiceSpotName   string `json:"service_spot_name"`
	SalesAreaName     string `json:"sales_area_name"`
}

// OrderFilters are the optional listing filters; nil fields are ignored
type OrderFilters struct {
	Status        *string
	ServiceSpotID *uint
	SalesAreaID   *uint
	DateFrom      *time.Time
	DateTo        *time.Time
}

// OrderQueryService builds composed read-only views over orders. All
// joins are assembled application-side into typed structures.
type OrderQueryService struct {
	db    *gorm.DB
	items *OrderItemService
}

// NewOrderQueryService creates an OrderQueryService backed by the given database
func NewOrderQueryService(db *gorm.DB) *OrderQueryService {
	return &OrderQueryService{db: db, items: NewOrderItemService(db)}
}

// GetWithItems returns the composed view of one order, or ErrNotFound
func (s *OrderQueryService) GetWithItems(orderID uint) (*OrderDetail, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := &OrderDetail{Order: order, Items: []ItemWithProduct{}}
	s.resolveNames(&order, &detail.CreatedByUsername, &detail.ServiceSpotName, &detail.SalesAreaName)

	var menu models.Menu
	if err := s.db.First(&menu, order.MenuID).Error; err == nil {
		detail.MenuName = menu.Name
	}

	if order.ClosedBy != nil {
		var closer models.User
		if err := s.db.First(&closer, *order.ClosedBy).Error; err == nil {
			detail.ClosedByUsername = &closer.Username
		}
	}

	items, err := s.items.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	if items != nil {
		detail.Items = items
	}
	return detail, nil
}

// List returns one page of orders matching the filters, newest first,
// together with the total match count computed under the same filters.
func (s *OrderQueryService) List(filters OrderFilters, page, pageSize int) ([]OrderSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var total int64
	if err := s.applyFilters(s.db.Model(&models.Order{}), filters).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := s.applyFilters(s.db.Model(&models.Order{}), filters).
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		summary := OrderSummary{Order: order}
		s.resolveNames(&order, &summary.CreatedByUsername, &summary.ServiceSpotName, &summary.SalesAreaName)
		summaries = append(summaries, summary)
	}
	return summaries, total, nil
}

func (s *OrderQueryService) applyFilters(query *gorm.DB, filters OrderFilters) *gorm.DB {
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.ServiceSpotID != nil {
		query = query.Where("service_spot_id = ?", *filters.ServiceSpotID)
	}
	if filters.SalesAreaID != nil {
		query = query.Where("sales_area_id = ?", *filters.SalesAreaID)
	}
	if filters.DateFrom != nil {
		query = query.Where("created_at >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("created_at <= ?", *filters.DateTo)
	}
	return query
}

// resolveNames fills the display names shared by detail and summary views.
// A missing reference leaves the name empty rather than failing the read.
func (s *OrderQueryService) resolveNames(order *models.Order, creator, spotName, areaName *string) {
	var user models.User
	if err := s.db.First(&user, order.CreatedBy).Error; err == nil {
		*creator = user.Username
	}

	var spot models.ServiceSpot
	if err := s.db.First(&spot, order.ServiceSpotID).Error; err == nil {
		*spotName = spot.Name
	}

	var area models.SalesArea
	if err := s.db.First(&area, order.SalesAreaID).Error; err == nil {
		*areaName = area.Name
	}
}
