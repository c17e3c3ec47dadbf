package database

import (
	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	deliveryRepo contract.DeliveryRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:           db,
		deliveryRepo: newDeliveryRepo(db.conn),
	}
}

// Delivery returns the delivery history repository
func (i *instance) Delivery() contract.DeliveryRepo {
	return i.deliveryRepo
}
