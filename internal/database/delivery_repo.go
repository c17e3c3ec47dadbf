package database

import (
	"fmt"

	"github.com/diegoclair/daily-commit-bot/internal/domain/contract"
	"github.com/diegoclair/daily-commit-bot/internal/domain/entity"
)

type deliveryRepo struct {
	db dbConn
}

func newDeliveryRepo(db dbConn) contract.DeliveryRepo {
	return &deliveryRepo{db: db}
}

func (r *deliveryRepo) Create(delivery *entity.Delivery) error {
	query := `
		INSERT INTO deliveries (cycle_id, mode, recipient, target_date, contributed, delivered, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		delivery.CycleID,
		string(delivery.Mode),
		delivery.Recipient,
		delivery.TargetDate,
		delivery.Contributed,
		delivery.Delivered,
		delivery.Error,
		delivery.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	delivery.ID = id
	return nil
}

// ListRecent returns up to limit deliveries, newest first.
func (r *deliveryRepo) ListRecent(limit int) ([]*entity.Delivery, error) {
	query := `
		SELECT id, cycle_id, mode, recipient, target_date, contributed, delivered, error, created_at
		FROM deliveries
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []*entity.Delivery
	for rows.Next() {
		delivery := &entity.Delivery{}
		var mode string
		err := rows.Scan(
			&delivery.ID,
			&delivery.CycleID,
			&mode,
			&delivery.Recipient,
			&delivery.TargetDate,
			&delivery.Contributed,
			&delivery.Delivered,
			&delivery.Error,
			&delivery.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		delivery.Mode = entity.DeliveryMode(mode)
		deliveries = append(deliveries, delivery)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}

	return deliveries, nil
}
