package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NotificationType is the closed set of events the grouping engine accepts.
type NotificationType string

const (
	NotificationConnectionRequest NotificationType = "connection_request"
	NotificationMessage           NotificationType = "message"
	NotificationPostLike          NotificationType = "post_like"
	NotificationPostComment       NotificationType = "post_comment"
	NotificationMention           NotificationType = "mention"
	NotificationJobUpdate         NotificationType = "job_update"
	NotificationSystem            NotificationType = "system"
)

// NotificationTypes lists every accepted NotificationType.
var NotificationTypes = []NotificationType{
	NotificationConnectionRequest,
	NotificationMessage,
	NotificationPostLike,
	NotificationPostComment,
	NotificationMention,
	NotificationJobUpdate,
	NotificationSystem,
}

// Valid reports whether t belongs to the closed set.
func (t NotificationType) Valid() bool {
	for _, known := range NotificationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Priority of a notification.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Rank orders priorities from low (0) to urgent (3).
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityHigh:
		return 2
	case PriorityUrgent:
		return 3
	default:
		return 1
	}
}

// Max returns the higher of two priorities.
func (p Priority) Max(other Priority) Priority {
	if other.Rank() > p.Rank() {
		return other
	}
	return p
}

// EntityRef points at an object owned by another subsystem (a post, a user,
// a job offer). It crosses the wire as its primitive identifier.
type EntityRef struct {
	Type string `json:"type"` // e.g. "user", "post", "job"
	ID   string `json:"id"`
}

// IsZero reports whether the reference is empty.
func (r EntityRef) IsZero() bool {
	return r.Type == "" && r.ID == ""
}

// RefID returns the flattened wire identifier, "<type>:<id>".
func (r EntityRef) RefID() string {
	if r.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s:%s", r.Type, r.ID)
}

// Notification is a grouped or singular event record for a recipient.
type Notification struct {
	ID           uuid.UUID        `json:"id"`
	RecipientID  int64            `json:"recipient_id"`
	Type         NotificationType `json:"notification_type"`
	Priority     Priority         `json:"priority"`
	GroupKey     string           `json:"group_key"`   // type + related entity + window start
	RelatedKey   string           `json:"-"`           // type + related entity, window independent
	GroupCount   int              `json:"group_count"` // events merged into this record
	Related      *EntityRef       `json:"related,omitempty"`
	IsRead       bool             `json:"is_read"`
	IsDelivered  bool             `json:"is_delivered"`
	WindowEndsAt time.Time        `json:"window_ends_at"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// DeliveryMethod is how a recipient wants a notification type delivered.
type DeliveryMethod string

const (
	DeliveryRealtime DeliveryMethod = "realtime"
	DeliveryDigest   DeliveryMethod = "digest"
	DeliveryDisabled DeliveryMethod = "disabled"
)

// Valid reports whether m is a known delivery method.
func (m DeliveryMethod) Valid() bool {
	switch m {
	case DeliveryRealtime, DeliveryDigest, DeliveryDisabled:
		return true
	}
	return false
}

// NotificationPreference configures delivery of one notification type for
// one recipient. Quiet hours are minutes after midnight UTC; nil means none.
type NotificationPreference struct {
	RecipientID     int64            `json:"recipient_id"`
	Type            NotificationType `json:"notification_type"`
	Method          DeliveryMethod   `json:"delivery_method"`
	QuietHoursStart *int             `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd   *int             `json:"quiet_hours_end,omitempty"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// DefaultPreference is applied when a recipient has no stored preference.
func DefaultPreference(recipientID int64, t NotificationType) NotificationPreference {
	return NotificationPreference{RecipientID: recipientID, Type: t, Method: DeliveryRealtime}
}

// InQuietHours reports whether now falls inside the preference's quiet hours.
// A window whose start is after its end wraps midnight.
func (p NotificationPreference) InQuietHours(now time.Time) bool {
	if p.QuietHoursStart == nil || p.QuietHoursEnd == nil {
		return false
	}

	start, end := *p.QuietHoursStart, *p.QuietHoursEnd
	if start == end {
		return false
	}

	now = now.UTC()
	minute := now.Hour()*60 + now.Minute()

	if start < end {
		return minute >= start && minute < end
	}
	return minute >= start || minute < end
}

// ParseClock converts "HH:MM" into minutes after midnight.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, &ValidationError{Field: "quiet_hours", Reason: "must be HH:MM"}
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, &ValidationError{Field: "quiet_hours", Reason: "hour must be 00-23"}
	}

	m, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || m < 0 || m > 59 {
		return 0, &ValidationError{Field: "quiet_hours", Reason: "minute must be 00-59"}
	}

	return h*60 + m, nil
}

// FormatClock renders minutes after midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
