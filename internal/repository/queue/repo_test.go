package queue

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

var columns = []string{
	"id", "seq", "message_id", "sender_id", "recipient_id", "payload", "retry_count", "max_retries",
	"processed", "status", "last_error", "next_attempt_at", "created_at", "updated_at",
}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestEnqueueItem(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	id := uuid.New()
	msgID := int64(42)
	q := model.QueuedMessage{ID: id, MessageID: &msgID, SenderID: 1, RecipientID: 2, Payload: []byte(`{}`), MaxRetries: 5}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO queued_messages`)).
		WithArgs(id, sql.NullInt64{Int64: 42, Valid: true}, int64(1), int64(2), []byte(`{}`), 5, model.QueueStatusPending, sql.NullTime{}).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), 1, 42, 1, 2, []byte(`{}`), 0, 5, false, "pending", "", now, now, now))

	item, err := repo.EnqueueItem(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.Seq)
	require.NotNil(t, item.MessageID)
	assert.Equal(t, msgID, *item.MessageID)
	assert.Equal(t, model.QueueStatusPending, item.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDuePairs(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT ON (sender_id, recipient_id)`)).
		WithArgs(now, 10).
		WillReturnRows(sqlmock.NewRows([]string{"sender_id", "recipient_id"}).AddRow(1, 2).AddRow(3, 2))

	pairs, err := repo.DuePairs(context.Background(), now, 10)
	require.NoError(t, err)
	assert.Equal(t, []model.Pair{{SenderID: 1, RecipientID: 2}, {SenderID: 3, RecipientID: 2}}, pairs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingForPair(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY seq`)).
		WithArgs(int64(1), int64(2), sql.NullInt64{}).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(first.String(), 1, nil, 1, 2, []byte(`a`), 0, 5, false, "pending", "", now, now, now).
			AddRow(second.String(), 2, nil, 1, 2, []byte(`b`), 0, 5, false, "pending", "", now, now, now))

	items, err := repo.PendingForPair(context.Background(), model.Pair{SenderID: 1, RecipientID: 2}, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first, items[0].ID)
	assert.Nil(t, items[0].MessageID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkProcessed(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`SET processed = TRUE`)).
		WithArgs(id, model.QueueStatusDelivered, 0, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkProcessed(context.Background(), id, model.QueueStatusDelivered, 0, ""))

	mock.ExpectExec(regexp.QuoteMeta(`SET processed = TRUE`)).
		WithArgs(id, model.QueueStatusAbandoned, 5, "unreachable").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT processed FROM queued_messages`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"processed"}).AddRow(true))

	err := repo.MarkProcessed(context.Background(), id, model.QueueStatusAbandoned, 5, "unreachable")
	assert.ErrorIs(t, err, model.ErrAlreadyProcessed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordAttempt_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	next := time.Now().Add(time.Minute)

	mock.ExpectExec(regexp.QuoteMeta(`SET retry_count = $2`)).
		WithArgs(id, 1, next, "unreachable").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT processed FROM queued_messages`)).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	err := repo.RecordAttempt(context.Background(), id, 1, next, "unreachable")
	assert.ErrorIs(t, err, model.ErrQueuedNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
