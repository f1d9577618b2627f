package service

import (
	"gorm.io/gorm"
)

// Services is the global service container
type Services struct {
	Items *ItemService
}

// GlobalServices is the global service instance
var GlobalServices *Services

// InitServices initializes all services
func InitServices(db *gorm.DB) {
	GlobalServices = &Services{
		Items: NewItemService(db),
	}
}
