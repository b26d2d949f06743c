package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

const notificationColumns = `id, recipient_id, type, priority, group_key, related_key, group_count,
		       related_type, related_id, is_read, is_delivered, window_ends_at, created_at, updated_at`

// Repository provides methods to interact with notifications and
// notification_preferences tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(row scanner) (model.Notification, error) {
	var (
		n           model.Notification
		relatedType sql.NullString
		relatedID   sql.NullString
	)

	err := row.Scan(
		&n.ID, &n.RecipientID, &n.Type, &n.Priority, &n.GroupKey, &n.RelatedKey, &n.GroupCount,
		&relatedType, &relatedID, &n.IsRead, &n.IsDelivered, &n.WindowEndsAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return model.Notification{}, err
	}

	if relatedType.Valid || relatedID.Valid {
		n.Related = &model.EntityRef{Type: relatedType.String, ID: relatedID.String}
	}

	return n, nil
}

func notFound(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotificationNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// LatestGroup retrieves the newest group of a recipient for a related key.
func (r *Repository) LatestGroup(ctx context.Context, recipientID int64, relatedKey string) (model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1 AND related_key = $2
		ORDER BY created_at DESC
		LIMIT 1;
    `

	n, err := scanNotification(r.db.Master.QueryRowContext(ctx, query, recipientID, relatedKey))
	if err != nil {
		return model.Notification{}, notFound(err, "get latest group")
	}

	return n, nil
}

// CreateNotification inserts a new notification group.
func (r *Repository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	query := `
		INSERT INTO notifications (
		    id, recipient_id, type, priority, group_key, related_key, group_count,
		    related_type, related_id, window_ends_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + notificationColumns + `;
    `

	var relatedType, relatedID sql.NullString
	if n.Related != nil {
		relatedType = sql.NullString{String: n.Related.Type, Valid: true}
		relatedID = sql.NullString{String: n.Related.ID, Valid: true}
	}

	created, err := scanNotification(r.db.Master.QueryRowContext(
		ctx, query, n.ID, n.RecipientID, n.Type, n.Priority, n.GroupKey, n.RelatedKey, n.GroupCount,
		relatedType, relatedID, n.WindowEndsAt,
	))
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}

	return created, nil
}

// IncrementGroup adds one event to a group, keeping the highest priority.
func (r *Repository) IncrementGroup(ctx context.Context, id uuid.UUID, priority model.Priority) (model.Notification, error) {
	query := `
		UPDATE notifications
		SET group_count = group_count + 1,
		    priority = CASE WHEN $2 > priority_rank(priority) THEN $3 ELSE priority END,
		    is_read = FALSE,
		    is_delivered = FALSE,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + notificationColumns + `;
    `

	n, err := scanNotification(r.db.Master.QueryRowContext(ctx, query, id, priority.Rank(), priority))
	if err != nil {
		return model.Notification{}, notFound(err, "increment group")
	}

	return n, nil
}

// GetNotification retrieves a notification by its ID.
func (r *Repository) GetNotification(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.Notification{}, notFound(err, "get notification")
	}

	return n, nil
}

// MarkNotificationRead marks a notification of the recipient read and
// reports whether it changed.
func (r *Repository) MarkNotificationRead(ctx context.Context, id uuid.UUID, recipientID int64) (bool, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, updated_at = NOW()
		WHERE id = $1 AND recipient_id = $2 AND is_read = FALSE;
    `

	res, err := r.db.ExecContext(ctx, query, id, recipientID)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification read: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows > 0 {
		return true, nil
	}

	var exists bool
	err = r.db.Master.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM notifications WHERE id = $1 AND recipient_id = $2);
    `, id, recipientID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check notification: %w", err)
	}
	if !exists {
		return false, model.ErrNotificationNotFound
	}

	return false, nil
}

// MarkAllNotificationsRead marks every unread notification of the recipient
// read. A non-empty types slice restricts the update to those types.
func (r *Repository) MarkAllNotificationsRead(ctx context.Context, recipientID int64, types []model.NotificationType) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, updated_at = NOW()
		WHERE recipient_id = $1 AND is_read = FALSE
		  AND (cardinality($2::text[]) = 0 OR type = ANY($2::text[]));
    `

	res, err := r.db.ExecContext(ctx, query, recipientID, pq.Array(typeFilter(types)))
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}

// MarkNotificationDelivered sets the delivered flag.
func (r *Repository) MarkNotificationDelivered(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_delivered = TRUE
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification delivered: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return model.ErrNotificationNotFound
	}

	return nil
}

// CountUnreadNotifications counts unread groups of the recipient.
func (r *Repository) CountUnreadNotifications(ctx context.Context, recipientID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE recipient_id = $1 AND is_read = FALSE;
    `

	var n int
	if err := r.db.QueryRowContext(ctx, query, recipientID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return n, nil
}

// ListUnreadNotifications returns unread groups of the recipient, oldest first.
func (r *Repository) ListUnreadNotifications(ctx context.Context, recipientID int64, limit int) ([]model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1 AND is_read = FALSE
		ORDER BY created_at
		LIMIT $2;
    `

	return r.list(ctx, query, recipientID, limit)
}

// ListUndeliveredNotifications returns unread groups not pushed yet, oldest
// first. A non-empty types slice restricts the result to those types.
func (r *Repository) ListUndeliveredNotifications(
	ctx context.Context,
	recipientID int64,
	types []model.NotificationType,
	limit int,
) ([]model.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1 AND is_delivered = FALSE AND is_read = FALSE
		  AND (cardinality($2::text[]) = 0 OR type = ANY($2::text[]))
		ORDER BY created_at
		LIMIT $3;
    `

	return r.list(ctx, query, recipientID, pq.Array(typeFilter(types)), limit)
}

func typeFilter(types []model.NotificationType) []string {
	filter := make([]string, 0, len(types))
	for _, t := range types {
		filter = append(filter, string(t))
	}
	return filter
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]model.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return notifications, nil
}

// GetPreference retrieves the preference of a recipient for a type.
func (r *Repository) GetPreference(ctx context.Context, recipientID int64, t model.NotificationType) (model.NotificationPreference, error) {
	query := `
		SELECT recipient_id, type, delivery_method, quiet_start_minute, quiet_end_minute, updated_at
		FROM notification_preferences
		WHERE recipient_id = $1 AND type = $2;
    `

	var (
		p          model.NotificationPreference
		start, end sql.NullInt32
	)

	err := r.db.QueryRowContext(ctx, query, recipientID, t).
		Scan(&p.RecipientID, &p.Type, &p.Method, &start, &end, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotificationPreference{}, model.ErrPreferenceNotFound
		}
		return model.NotificationPreference{}, fmt.Errorf("failed to get preference: %w", err)
	}

	if start.Valid && end.Valid {
		s, e := int(start.Int32), int(end.Int32)
		p.QuietHoursStart, p.QuietHoursEnd = &s, &e
	}

	return p, nil
}

// UpsertPreference inserts or replaces the preference of a recipient for a type.
func (r *Repository) UpsertPreference(ctx context.Context, p model.NotificationPreference) error {
	query := `
		INSERT INTO notification_preferences (
		    recipient_id, type, delivery_method, quiet_start_minute, quiet_end_minute
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (recipient_id, type) DO UPDATE
		SET delivery_method = EXCLUDED.delivery_method,
		    quiet_start_minute = EXCLUDED.quiet_start_minute,
		    quiet_end_minute = EXCLUDED.quiet_end_minute,
		    updated_at = NOW();
    `

	var start, end sql.NullInt32
	if p.QuietHoursStart != nil && p.QuietHoursEnd != nil {
		start = sql.NullInt32{Int32: int32(*p.QuietHoursStart), Valid: true}
		end = sql.NullInt32{Int32: int32(*p.QuietHoursEnd), Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, query, p.RecipientID, p.Type, p.Method, start, end); err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}

	return nil
}
