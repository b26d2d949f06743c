package presence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// Repository provides methods to interact with presence table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new presence repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// UpsertPresence stores the online flag of a user. last_seen moves forward
// only on an online to offline transition.
func (r *Repository) UpsertPresence(ctx context.Context, userID int64, online bool) (model.PresenceRecord, error) {
	query := `
		INSERT INTO presence (user_id, online, last_seen, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET online = EXCLUDED.online,
		    last_seen = CASE WHEN presence.online AND NOT EXCLUDED.online THEN NOW() ELSE presence.last_seen END,
		    updated_at = NOW()
		RETURNING user_id, online, last_seen, updated_at;
    `

	var rec model.PresenceRecord
	err := r.db.Master.QueryRowContext(ctx, query, userID, online).
		Scan(&rec.UserID, &rec.Online, &rec.LastSeen, &rec.UpdatedAt)
	if err != nil {
		return model.PresenceRecord{}, fmt.Errorf("failed to upsert presence: %w", err)
	}

	return rec, nil
}

// GetPresence retrieves the presence record of a user.
func (r *Repository) GetPresence(ctx context.Context, userID int64) (model.PresenceRecord, error) {
	query := `
		SELECT user_id, online, last_seen, updated_at
		FROM presence
		WHERE user_id = $1;
    `

	var rec model.PresenceRecord
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&rec.UserID, &rec.Online, &rec.LastSeen, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PresenceRecord{}, model.ErrPresenceNotFound
		}
		return model.PresenceRecord{}, fmt.Errorf("failed to get presence: %w", err)
	}

	return rec, nil
}
