package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prodpilot/prodpilot/internal/domain"
)

// ProductRepository handles product persistence
type ProductRepository struct {
	db *DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(product *domain.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.db.Exec(`
		INSERT INTO products (id, business_id, name, description, price, manual_url, model, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, product.ID, product.BusinessID, product.Name, product.Description,
		product.Price, product.ManualURL, product.Model, product.CreatedAt, product.UpdatedAt)

	return err
}

// Get retrieves a product by ID
func (r *ProductRepository) Get(id string) (*domain.Product, error) {
	product := &domain.Product{}
	var manualURL, model sql.NullString

	err := r.db.QueryRow(`
		SELECT id, business_id, name, description, price, manual_url, model, created_at, updated_at
		FROM products WHERE id = ?
	`, id).Scan(&product.ID, &product.BusinessID, &product.Name, &product.Description,
		&product.Price, &manualURL, &model, &product.CreatedAt, &product.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if manualURL.Valid {
		product.ManualURL = manualURL.String
	}
	if model.Valid {
		product.Model = model.String
	}

	return product, nil
}

// List retrieves products, optionally filtered by business
func (r *ProductRepository) List(businessID string) ([]*domain.Product, error) {
	query := `
		SELECT id, business_id, name, description, price, manual_url, model, created_at, updated_at
		FROM products`
	args := []any{}
	if businessID != "" {
		query += ` WHERE business_id = ?`
		args = append(args, businessID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product := &domain.Product{}
		var manualURL, model sql.NullString

		if err := rows.Scan(&product.ID, &product.BusinessID, &product.Name,
			&product.Description, &product.Price, &manualURL, &model,
			&product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}

		if manualURL.Valid {
			product.ManualURL = manualURL.String
		}
		if model.Valid {
			product.Model = model.String
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// Update updates a product
func (r *ProductRepository) Update(product *domain.Product) error {
	product.UpdatedAt = time.Now()

	result, err := r.db.Exec(`
		UPDATE products SET name = ?, description = ?, price = ?, manual_url = ?, model = ?, updated_at = ?
		WHERE id = ?
	`, product.Name, product.Description, product.Price, product.ManualURL,
		product.Model, product.UpdatedAt, product.ID)

	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("product not found: %s", product.ID)
	}

	return nil
}

// Delete deletes a product
func (r *ProductRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("product not found: %s", id)
	}

	return nil
}

// Count returns the total number of products
func (r *ProductRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}
