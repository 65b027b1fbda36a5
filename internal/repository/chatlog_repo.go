package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prodpilot/prodpilot/internal/domain"
)

// ChatLogRepository handles chat exchange persistence
type ChatLogRepository struct {
	db *DB
}

// NewChatLogRepository creates a new chat log repository
func NewChatLogRepository(db *DB) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

// Create creates a new chat log. The caller may pre-assign the ID so the
// displayed message and the persisted exchange share one identifier.
func (r *ChatLogRepository) Create(log *domain.ChatLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO chat_logs (id, product_id, session_id, question, response, feedback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, log.ID, log.ProductID, log.SessionID, log.Question, log.Response,
		string(log.Feedback), log.CreatedAt)

	return err
}

// UpdateFeedback sets the helpfulness flag on an exchange. Last write wins.
func (r *ChatLogRepository) UpdateFeedback(id string, feedback domain.Feedback) error {
	result, err := r.db.Exec(`UPDATE chat_logs SET feedback = ? WHERE id = ?`,
		string(feedback), id)
	if err != nil {
		return err
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("chat log not found: %s", id)
	}

	return nil
}

// CountUnhelpful returns the number of exchanges for a product marked unhelpful
func (r *ChatLogRepository) CountUnhelpful(productID string) (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM chat_logs WHERE product_id = ? AND feedback = ?
	`, productID, string(domain.FeedbackUnhelpful)).Scan(&count)
	return count, err
}

// ListRecent retrieves the most recent exchanges for a product, newest first
func (r *ChatLogRepository) ListRecent(productID string, limit int) ([]*domain.ChatLog, error) {
	rows, err := r.db.Query(`
		SELECT id, product_id, session_id, question, response, feedback, created_at
		FROM chat_logs WHERE product_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, productID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.ChatLog
	for rows.Next() {
		log := &domain.ChatLog{}
		var feedback string

		if err := rows.Scan(&log.ID, &log.ProductID, &log.SessionID,
			&log.Question, &log.Response, &feedback, &log.CreatedAt); err != nil {
			return nil, err
		}

		log.Feedback = domain.Feedback(feedback)
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

// Count returns the total number of exchanges
func (r *ChatLogRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM chat_logs`).Scan(&count)
	return count, err
}

// CountAllUnhelpful returns the total number of unhelpful exchanges
func (r *ChatLogRepository) CountAllUnhelpful() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM chat_logs WHERE feedback = ?`,
		string(domain.FeedbackUnhelpful)).Scan(&count)
	return count, err
}
