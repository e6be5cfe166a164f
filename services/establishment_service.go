package services

import (
	"errors"

	"github.com/vesta-pos/vesta-api/models"
	"gorm.io/gorm"
)

// CurrentEstablishment returns the single establishment configuration record,
// or nil if the establishment has not been configured yet.
func CurrentEstablishment(db *gorm.DB) (*models.Establishment, error) {
	var est models.Establishment
	if err := db.Order("id ASC").First(&est).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &est, nil
}

// currentTaxRate returns the configured tax rate percentage, defaulting to 0
// when the establishment record is missing.
func currentTaxRate(db *gorm.DB) (float64, error) {
	est, err := CurrentEstablishment(db)
	if err != nil {
		return 0, err
	}
	if est == nil {
		return 0, nil
	}
	return est.TaxRate, nil
}
