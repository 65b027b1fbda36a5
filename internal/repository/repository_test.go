package repository

import (
	"path/filepath"
	"testing"

	"github.com/prodpilot/prodpilot/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func seedProduct(t *testing.T, db *DB) *domain.Product {
	t.Helper()

	business := &domain.Business{Name: "Kettle Co", SupportEmail: "support@kettle.example"}
	require.NoError(t, NewBusinessRepository(db).Create(business))

	product := &domain.Product{
		BusinessID:  business.ID,
		Name:        "SmartKettle X",
		Description: "Boils water in 90 seconds",
		Model:       "gpt-4o-mini",
	}
	require.NoError(t, NewProductRepository(db).Create(product))

	return product
}

func TestProductRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)
	repo := NewProductRepository(db)

	got, err := repo.Get(product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "SmartKettle X", got.Name)
	require.Equal(t, product.BusinessID, got.BusinessID)

	got.Description = "Boils water in 60 seconds"
	require.NoError(t, repo.Update(got))

	got, err = repo.Get(product.ID)
	require.NoError(t, err)
	require.Equal(t, "Boils water in 60 seconds", got.Description)

	missing, err := repo.Get("missing")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestChatLogFeedbackAndCounts(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)
	repo := NewChatLogRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		log := &domain.ChatLog{
			ProductID: product.ID,
			SessionID: "sess-1",
			Question:  "How long to boil?",
			Response:  "About 90 seconds.",
		}
		require.NoError(t, repo.Create(log))
		ids = append(ids, log.ID)
	}

	count, err := repo.CountUnhelpful(product.ID)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	require.NoError(t, repo.UpdateFeedback(ids[0], domain.FeedbackUnhelpful))
	require.NoError(t, repo.UpdateFeedback(ids[1], domain.FeedbackHelpful))

	count, err = repo.CountUnhelpful(product.ID)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// Last write wins.
	require.NoError(t, repo.UpdateFeedback(ids[1], domain.FeedbackUnhelpful))
	count, err = repo.CountUnhelpful(product.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.Error(t, repo.UpdateFeedback("missing", domain.FeedbackHelpful))
}

func TestChatLogListRecent(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)
	repo := NewChatLogRepository(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(&domain.ChatLog{
			ProductID: product.ID,
			SessionID: "sess-1",
			Question:  "Q",
			Response:  "A",
		}))
	}

	logs, err := repo.ListRecent(product.ID, 3)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	for i := 1; i < len(logs); i++ {
		require.False(t, logs[i].CreatedAt.After(logs[i-1].CreatedAt), "expected newest first")
	}
}

func TestEscalationOpenGuard(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db)
	repo := NewEscalationRepository(db)

	open, err := repo.OpenForProduct(product.ID)
	require.NoError(t, err)
	require.Nil(t, open)

	escalation := &domain.Escalation{
		ProductID: product.ID,
		Reason:    domain.EscalationReasonUnhelpful,
	}
	require.NoError(t, repo.Create(escalation))
	require.Equal(t, domain.EscalationStatusPending, escalation.Status)

	open, err = repo.OpenForProduct(product.ID)
	require.NoError(t, err)
	require.NotNil(t, open)
	require.Equal(t, escalation.ID, open.ID)

	require.NoError(t, repo.UpdateStatus(escalation.ID, domain.EscalationStatusResolved))

	open, err = repo.OpenForProduct(product.ID)
	require.NoError(t, err)
	require.Nil(t, open, "resolved escalations must not block new ones")

	count, err := repo.CountOpen()
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
