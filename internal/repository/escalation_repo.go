package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prodpilot/prodpilot/internal/domain"
)

// EscalationRepository handles escalation persistence
type EscalationRepository struct {
	db *DB
}

// NewEscalationRepository creates a new escalation repository
func NewEscalationRepository(db *DB) *EscalationRepository {
	return &EscalationRepository{db: db}
}

// Create creates a new escalation
func (r *EscalationRepository) Create(escalation *domain.Escalation) error {
	if escalation.ID == "" {
		escalation.ID = uuid.New().String()
	}
	if escalation.Status == "" {
		escalation.Status = domain.EscalationStatusPending
	}
	now := time.Now()
	escalation.CreatedAt = now
	escalation.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO escalations (id, product_id, reason, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, escalation.ID, escalation.ProductID, escalation.Reason, escalation.Status,
		escalation.CreatedAt, escalation.UpdatedAt)

	return err
}

// OpenForProduct returns the pending escalation for a product, or nil if none
func (r *EscalationRepository) OpenForProduct(productID string) (*domain.Escalation, error) {
	escalation := &domain.Escalation{}

	err := r.db.QueryRow(`
		SELECT id, product_id, reason, status, created_at, updated_at
		FROM escalations WHERE product_id = ? AND status = ?
		ORDER BY created_at DESC LIMIT 1
	`, productID, domain.EscalationStatusPending).Scan(&escalation.ID,
		&escalation.ProductID, &escalation.Reason, &escalation.Status,
		&escalation.CreatedAt, &escalation.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return escalation, nil
}

// List retrieves all escalations, newest first
func (r *EscalationRepository) List() ([]*domain.Escalation, error) {
	rows, err := r.db.Query(`
		SELECT id, product_id, reason, status, created_at, updated_at
		FROM escalations ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var escalations []*domain.Escalation
	for rows.Next() {
		escalation := &domain.Escalation{}
		if err := rows.Scan(&escalation.ID, &escalation.ProductID, &escalation.Reason,
			&escalation.Status, &escalation.CreatedAt, &escalation.UpdatedAt); err != nil {
			return nil, err
		}
		escalations = append(escalations, escalation)
	}

	return escalations, rows.Err()
}

// UpdateStatus changes an escalation's status
func (r *EscalationRepository) UpdateStatus(id, status string) error {
	result, err := r.db.Exec(`
		UPDATE escalations SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now(), id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("escalation not found: %s", id)
	}

	return nil
}

// CountOpen returns the number of pending escalations
func (r *EscalationRepository) CountOpen() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM escalations WHERE status = ?`,
		domain.EscalationStatusPending).Scan(&count)
	return count, err
}
