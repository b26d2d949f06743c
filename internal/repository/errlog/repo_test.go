package errlog

import (
	"context"
	"errors"
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

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestRecordError(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	user := int64(4)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO messaging_errors`)).
		WithArgs(id, model.CategoryConnectionError, "retries exhausted", []byte(`{"queued_id":"q1"}`), model.SeverityError, user).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordError(context.Background(), model.MessagingError{
		ID:       id,
		Category: model.CategoryConnectionError,
		Message:  "retries exhausted",
		Context:  map[string]any{"queued_id": "q1"},
		Severity: model.SeverityError,
		UserID:   &user,
	})
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO messaging_errors`)).
		WillReturnError(errors.New("db down"))

	assert.Error(t, repo.RecordError(context.Background(), model.MessagingError{Category: model.CategoryRoutingError}))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListErrors(t *testing.T) {
	repo, mock := setupMockDB(t)
	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM messaging_errors`)).
		WithArgs(model.CategorySerializationError, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "message", "context", "severity", "user_id", "created_at"}).
			AddRow(id.String(), "serialization-error", "bad payload", []byte(`{"field":"meta"}`), "warning", nil, now))

	list, err := repo.ListErrors(context.Background(), model.CategorySerializationError, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "meta", list[0].Context["field"])
	assert.Nil(t, list[0].UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
