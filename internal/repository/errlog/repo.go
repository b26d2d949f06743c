package errlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// Repository provides methods to interact with messaging_errors table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new messaging error repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// RecordError appends a MessagingError.
func (r *Repository) RecordError(ctx context.Context, e model.MessagingError) error {
	query := `
		INSERT INTO messaging_errors (id, category, message, context, severity, user_id)
		VALUES ($1, $2, $3, $4, $5, $6);
    `

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	payload, err := json.Marshal(e.Context)
	if err != nil {
		payload = []byte(`{}`)
	}

	var userID sql.NullInt64
	if e.UserID != nil {
		userID = sql.NullInt64{Int64: *e.UserID, Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, query, e.ID, e.Category, e.Message, payload, e.Severity, userID); err != nil {
		return fmt.Errorf("failed to record messaging error: %w", err)
	}

	return nil
}

// ListErrors returns the latest errors of a category ("" for all).
func (r *Repository) ListErrors(ctx context.Context, category model.ErrorCategory, limit int) ([]model.MessagingError, error) {
	query := `
		SELECT id, category, message, context, severity, user_id, created_at
		FROM messaging_errors
		WHERE $1 = '' OR category = $1
		ORDER BY created_at DESC
		LIMIT $2;
    `

	rows, err := r.db.QueryContext(ctx, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messaging errors: %w", err)
	}
	defer rows.Close()

	var out []model.MessagingError
	for rows.Next() {
		var (
			e       model.MessagingError
			payload []byte
			userID  sql.NullInt64
		)

		if err := rows.Scan(&e.ID, &e.Category, &e.Message, &payload, &e.Severity, &userID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan messaging error: %w", err)
		}

		if len(payload) > 0 {
			_ = json.Unmarshal(payload, &e.Context)
		}
		if userID.Valid {
			e.UserID = &userID.Int64
		}

		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}
