package dto

import (
	"time"

	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// EventRequest is an event raised by another subsystem for one recipient.
type EventRequest struct {
	RecipientID int64          `json:"recipient_id" validate:"required,gt=0"`
	Type        string         `json:"notification_type" validate:"required"`
	Priority    string         `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
	Related     *EntityRequest `json:"related" validate:"omitempty"`
}

// EntityRequest references the object an event is about.
type EntityRequest struct {
	Type string `json:"type" validate:"required,max=64"`
	ID   string `json:"id" validate:"required,max=128"`
}

// EventResponse reports the group an event landed in.
type EventResponse struct {
	Notification model.Notification `json:"notification"`
	Merged       bool               `json:"merged"`
	Decision     string             `json:"decision"`
}

// UnreadResponse is the unread feed of a user.
type UnreadResponse struct {
	Notifications []model.Notification `json:"notifications"`
	Badge         BadgeResponse        `json:"badge"`
}

// BadgeResponse mirrors the badge-update event.
type BadgeResponse struct {
	Unread        int `json:"unread"`
	Notifications int `json:"notifications"`
	Messages      int `json:"messages"`
}

// PreferenceRequest replaces the delivery preference of one type. Quiet
// hours are "HH:MM" in UTC and must be given together.
type PreferenceRequest struct {
	Method          string `json:"delivery_method" validate:"required,oneof=realtime digest disabled"`
	QuietHoursStart string `json:"quiet_hours_start" validate:"required_with=QuietHoursEnd"`
	QuietHoursEnd   string `json:"quiet_hours_end" validate:"required_with=QuietHoursStart"`
}

// PreferenceResponse renders a stored preference.
type PreferenceResponse struct {
	RecipientID     int64     `json:"recipient_id"`
	Type            string    `json:"notification_type"`
	Method          string    `json:"delivery_method"`
	QuietHoursStart string    `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd   string    `json:"quiet_hours_end,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}

// NewPreferenceResponse converts p.
func NewPreferenceResponse(p model.NotificationPreference) PreferenceResponse {
	resp := PreferenceResponse{
		RecipientID: p.RecipientID,
		Type:        string(p.Type),
		Method:      string(p.Method),
		UpdatedAt:   p.UpdatedAt,
	}
	if p.QuietHoursStart != nil && p.QuietHoursEnd != nil {
		resp.QuietHoursStart = model.FormatClock(*p.QuietHoursStart)
		resp.QuietHoursEnd = model.FormatClock(*p.QuietHoursEnd)
	}

	return resp
}
