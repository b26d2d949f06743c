package message

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

const messageColumns = `id, sender_id, recipient_id, content, idempotency_key, created_at, delivered_at, read_at, updated_at`

// Repository provides methods to interact with messages table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new message repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(row scanner) (model.Message, error) {
	var (
		m         model.Message
		delivered sql.NullTime
		read      sql.NullTime
	)

	err := row.Scan(
		&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.IdempotencyKey,
		&m.CreatedAt, &delivered, &read, &m.UpdatedAt,
	)
	if err != nil {
		return model.Message{}, err
	}

	if delivered.Valid {
		m.DeliveredAt = &delivered.Time
	}
	if read.Valid {
		m.ReadAt = &read.Time
	}

	return m, nil
}

// CreateMessage inserts a message. When the idempotency key is already used
// for the sender and recipient, the stored message is returned with created
// set to false.
func (r *Repository) CreateMessage(ctx context.Context, m model.Message) (model.Message, bool, error) {
	query := `
		INSERT INTO messages (sender_id, recipient_id, content, idempotency_key)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (sender_id, recipient_id, idempotency_key) DO NOTHING
		RETURNING ` + messageColumns + `;
    `

	created, err := scanMessage(r.db.Master.QueryRowContext(ctx, query, m.SenderID, m.RecipientID, m.Content, m.IdempotencyKey))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Message{}, false, fmt.Errorf("failed to create message: %w", err)
	}

	existing, err := scanMessage(r.db.Master.QueryRowContext(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE sender_id = $1 AND recipient_id = $2 AND idempotency_key = $3;
    `, m.SenderID, m.RecipientID, m.IdempotencyKey))
	if err != nil {
		return model.Message{}, false, fmt.Errorf("failed to load message by idempotency key: %w", err)
	}

	return existing, false, nil
}

// GetMessage retrieves a message by its ID.
func (r *Repository) GetMessage(ctx context.Context, id int64) (model.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE id = $1;
    `

	m, err := scanMessage(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Message{}, model.ErrMessageNotFound
		}
		return model.Message{}, fmt.Errorf("failed to get message: %w", err)
	}

	return m, nil
}

// MarkMessageDelivered sets delivered_at unless it is already set.
func (r *Repository) MarkMessageDelivered(ctx context.Context, id int64) (model.Message, error) {
	query := `
		UPDATE messages
		SET delivered_at = COALESCE(delivered_at, NOW()),
		    updated_at = CASE WHEN delivered_at IS NULL THEN NOW() ELSE updated_at END
		WHERE id = $1
		RETURNING ` + messageColumns + `;
    `

	return r.transition(ctx, query, id, "mark delivered")
}

// MarkMessageRead sets read_at (and delivered_at when missing) unless the
// message is already read.
func (r *Repository) MarkMessageRead(ctx context.Context, id int64) (model.Message, error) {
	query := `
		UPDATE messages
		SET delivered_at = COALESCE(delivered_at, NOW()),
		    read_at = COALESCE(read_at, NOW()),
		    updated_at = CASE WHEN read_at IS NULL THEN NOW() ELSE updated_at END
		WHERE id = $1
		RETURNING ` + messageColumns + `;
    `

	return r.transition(ctx, query, id, "mark read")
}

func (r *Repository) transition(ctx context.Context, query string, id int64, op string) (model.Message, error) {
	m, err := scanMessage(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Message{}, model.ErrMessageNotFound
		}
		return model.Message{}, fmt.Errorf("failed to %s: %w", op, err)
	}

	return m, nil
}

// ListConversation returns messages exchanged between two users with an ID
// below beforeID (all when beforeID is 0), newest first.
func (r *Repository) ListConversation(ctx context.Context, userA, userB, beforeID int64, limit int) ([]model.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE ((sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1))
		  AND ($3 = 0 OR id < $3)
		ORDER BY id DESC
		LIMIT $4;
    `

	rows, err := r.db.QueryContext(ctx, query, userA, userB, beforeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return messages, nil
}

// CountUnreadMessages counts unread messages addressed to the user.
func (r *Repository) CountUnreadMessages(ctx context.Context, recipientID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM messages
		WHERE recipient_id = $1 AND read_at IS NULL;
    `

	var n int
	if err := r.db.QueryRowContext(ctx, query, recipientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}

	return n, nil
}
