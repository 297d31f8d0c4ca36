package repository

import (
	"gorm.io/gorm"

	"github.com/hurairaz/sqlite-crud-api/models"
)

// ListItems returns items in creation order, bounded by skip/limit.
func ListItems(db *gorm.DB, skip, limit int) ([]models.Item, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if skip < 0 {
		skip = 0
	}

	var items []models.Item
	err := db.Order("id").Offset(skip).Limit(limit).Find(&items).Error
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list items")
		return nil, err
	}
	return items, nil
}

// CreateItemForUser inserts a new item owned by ownerID. Owner existence
// is the caller's concern; the foreign-key constraint is the backstop.
func CreateItemForUser(db *gorm.DB, title string, description *string, ownerID uint) (*models.Item, error) {
	item := models.Item{Title: title, Description: description, OwnerID: ownerID}
	if err := db.Create(&item).Error; err != nil {
		logger.Error().Err(err).Uint("owner_id", ownerID).Msg("Failed to create item")
		return nil, err
	}
	return &item, nil
}
