package services

import (
	"errors"

	"github.com/vesta-pos/vesta-api/models"
	"gorm.io/gorm"
)

// SpotService manages service spot status and lookups. It is a passive
// status register: transition legality is the caller's responsibility
// (the order state machine drives pedido_abierto/cobrado/libre).
type SpotService struct {
	db *gorm.DB
}

// NewSpotService creates a SpotService backed by the given database
func NewSpotService(db *gorm.DB) *SpotService {
	return &SpotService{db: db}
}

// FindByID returns the spot with the given id, or ErrNotFound
func (s *SpotService) FindByID(spotID uint) (*models.ServiceSpot, error) {
	var spot models.ServiceSpot
	if err := s.db.First(&spot, spotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &spot, nil
}

// FindByArea returns all spots in a sales area ordered by name. Inactive
// spots are excluded unless includeInactive is set.
func (s *SpotService) FindByArea(salesAreaID uint, includeInactive bool) ([]models.ServiceSpot, error) {
	query := s.db.Where("sales_area_id = ?", salesAreaID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var spots []models.ServiceSpot
	if err := query.Order("name ASC").Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// FindByStatus returns all active spots with the given status, optionally
// restricted to one sales area, ordered by name.
func (s *SpotService) FindByStatus(status string, salesAreaID *uint) ([]models.ServiceSpot, error) {
	query := s.db.Where("status = ? AND is_active = ?", status, true)
	if salesAreaID != nil {
		query = query.Where("sales_area_id = ?", *salesAreaID)
	}

	var spots []models.ServiceSpot
	if err := query.Order("name ASC").Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// UpdateStatus sets the status of a spot. Returns ErrNotFound if the spot
// does not exist.
func (s *SpotService) UpdateStatus(spotID uint, newStatus string) error {
	result := s.db.Model(&models.ServiceSpot{}).Where("id = ?", spotID).Update("status", newStatus)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ResetAllActive sets every active spot back to libre and returns how many
// spots were touched. Used for the end-of-day reset; calling it twice in a
// row is harmless (the second call reports 0 only if nothing changed status
// in between, otherwise it simply rewrites libre).
func (s *SpotService) ResetAllActive() (int64, error) {
	result := s.db.Model(&models.ServiceSpot{}).
		Where("is_active = ?", true).
		Update("status", models.SpotStatusFree)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
