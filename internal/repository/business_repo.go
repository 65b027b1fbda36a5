package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prodpilot/prodpilot/internal/domain"
)

// BusinessRepository handles business persistence
type BusinessRepository struct {
	db *DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create creates a new business
func (r *BusinessRepository) Create(business *domain.Business) error {
	if business.ID == "" {
		business.ID = uuid.New().String()
	}
	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO businesses (id, name, support_email, support_phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, business.ID, business.Name, business.SupportEmail, business.SupportPhone,
		business.CreatedAt, business.UpdatedAt)

	return err
}

// Get retrieves a business by ID
func (r *BusinessRepository) Get(id string) (*domain.Business, error) {
	business := &domain.Business{}
	var phone sql.NullString

	err := r.db.QueryRow(`
		SELECT id, name, support_email, support_phone, created_at, updated_at
		FROM businesses WHERE id = ?
	`, id).Scan(&business.ID, &business.Name, &business.SupportEmail, &phone,
		&business.CreatedAt, &business.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if phone.Valid {
		business.SupportPhone = phone.String
	}

	return business, nil
}

// List retrieves all businesses
func (r *BusinessRepository) List() ([]*domain.Business, error) {
	rows, err := r.db.Query(`
		SELECT id, name, support_email, support_phone, created_at, updated_at
		FROM businesses ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var businesses []*domain.Business
	for rows.Next() {
		business := &domain.Business{}
		var phone sql.NullString

		if err := rows.Scan(&business.ID, &business.Name, &business.SupportEmail,
			&phone, &business.CreatedAt, &business.UpdatedAt); err != nil {
			return nil, err
		}

		if phone.Valid {
			business.SupportPhone = phone.String
		}
		businesses = append(businesses, business)
	}

	return businesses, rows.Err()
}

// Update updates a business
func (r *BusinessRepository) Update(business *domain.Business) error {
	business.UpdatedAt = time.Now()

	result, err := r.db.Exec(`
		UPDATE businesses SET name = ?, support_email = ?, support_phone = ?, updated_at = ?
		WHERE id = ?
	`, business.Name, business.SupportEmail, business.SupportPhone,
		business.UpdatedAt, business.ID)

	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("business not found: %s", business.ID)
	}

	return nil
}
