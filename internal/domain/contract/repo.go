package contract

import "github.com/diegoclair/daily-commit-bot/internal/domain/entity"

// DataManager holds all repositories
type DataManager interface {
	Delivery() DeliveryRepo
}

// DeliveryRepo defines the contract for the delivery history repository
type DeliveryRepo interface {
	Create(delivery *entity.Delivery) error
	ListRecent(limit int) ([]*entity.Delivery, error)
}
