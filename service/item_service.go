package service

import (
	"context"
	"fmt"
	"todolist/models"

	"gorm.io/gorm"
)

// ItemService handles to-do item persistence
type ItemService struct {
	db *gorm.DB
}

// NewItemService constructs an item service
func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// List returns every item in insertion order
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// Create stores req.Text as a new item. Any text is accepted, including the empty string.
func (s *ItemService) Create(ctx context.Context, req models.ItemCreate) (*models.Item, error) {
	item := models.Item{Text: req.Text}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

// Count returns the number of stored items
func (s *ItemService) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Item{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return total, nil
}
