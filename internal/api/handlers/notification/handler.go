package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/api/dto"
	"github.com/Techhackontime999/LinkUp-sub000/internal/api/respond"
	"github.com/Techhackontime999/LinkUp-sub000/internal/grouping"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/wire"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks

// notifier is the grouping engine as seen by the handler.
type notifier interface {
	Notify(ctx context.Context, recipientID int64, t model.NotificationType, related *model.EntityRef, priority model.Priority) (grouping.Result, error)
	Unread(ctx context.Context, recipientID int64, limit int) ([]model.Notification, error)
	Badge(ctx context.Context, recipientID int64) (wire.Badge, error)
}

type preferenceStore interface {
	GetPreference(ctx context.Context, recipientID int64, t model.NotificationType) (model.NotificationPreference, error)
	SetPreference(ctx context.Context, p model.NotificationPreference) error
}

// Handler serves the internal notification API used by other subsystems:
// event ingestion, the unread feed and delivery preferences.
type Handler struct {
	engine    notifier
	prefs     preferenceStore
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(engine notifier, prefs preferenceStore, v *validator.Validate) *Handler {
	return &Handler{engine: engine, prefs: prefs, validator: v}
}

// Create handles POST requests carrying one notification event.
//
// The event joins an open group or starts a new one; the response carries
// the group and what happened to its real time push.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.EventRequest

	// Decode JSON request body into EventRequest struct.
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	var related *model.EntityRef
	if req.Related != nil {
		related = &model.EntityRef{Type: req.Related.Type, ID: req.Related.ID}
	}

	res, err := h.engine.Notify(
		c.Request.Context(),
		req.RecipientID,
		model.NotificationType(req.Type),
		related,
		model.Priority(req.Priority),
	)
	if err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			zlog.Logger.Warn().Err(err).Int64("recipient_id", req.RecipientID).Msg("rejected notification event")
			respond.Fail(c.Writer, http.StatusBadRequest, ve)
			return
		}

		zlog.Logger.Error().Err(err).Int64("recipient_id", req.RecipientID).Msg("failed to record notification event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, dto.EventResponse{
		Notification: res.Notification,
		Merged:       res.Merged,
		Decision:     string(res.Decision),
	})
}

// Unread handles GET requests for the unread notifications of a user.
func (h *Handler) Unread(c *ginext.Context) {
	userID, ok := userParam(c)
	if !ok {
		return
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
		return
	}

	ctx := c.Request.Context()

	unread, err := h.engine.Unread(ctx, userID, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list unread notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	badge, err := h.engine.Badge(ctx, userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to count unread")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if unread == nil {
		unread = []model.Notification{}
	}

	respond.OK(c.Writer, dto.UnreadResponse{
		Notifications: unread,
		Badge: dto.BadgeResponse{
			Unread:        badge.Total(),
			Notifications: badge.Notifications,
			Messages:      badge.Messages,
		},
	})
}

// GetPreference handles GET requests for the preference of one type. Users
// without a stored preference get the default.
func (h *Handler) GetPreference(c *ginext.Context) {
	userID, t, ok := preferenceParams(c)
	if !ok {
		return
	}

	p, err := h.prefs.GetPreference(c.Request.Context(), userID, t)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Str("type", string(t)).Msg("failed to get preference")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.NewPreferenceResponse(p))
}

// SetPreference handles PUT requests replacing the preference of one type.
func (h *Handler) SetPreference(c *ginext.Context) {
	userID, t, ok := preferenceParams(c)
	if !ok {
		return
	}

	var req dto.PreferenceRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	p := model.NotificationPreference{RecipientID: userID, Type: t, Method: model.DeliveryMethod(req.Method)}

	if req.QuietHoursStart != "" {
		start, err := model.ParseClock(req.QuietHoursStart)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}
		end, err := model.ParseClock(req.QuietHoursEnd)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}
		p.QuietHoursStart, p.QuietHoursEnd = &start, &end
	}

	if err := h.prefs.SetPreference(c.Request.Context(), p); err != nil {
		if model.IsValidation(err) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Int64("user_id", userID).Str("type", string(t)).Msg("failed to set preference")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.NewPreferenceResponse(p))
}

func userParam(c *ginext.Context) (int64, bool) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		zlog.Logger.Warn().Str("user_id", c.Param("user_id")).Msg("invalid user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return 0, false
	}

	return userID, true
}

func preferenceParams(c *ginext.Context) (int64, model.NotificationType, bool) {
	userID, ok := userParam(c)
	if !ok {
		return 0, "", false
	}

	t := model.NotificationType(c.Param("type"))
	if !t.Valid() {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown notification type"))
		return 0, "", false
	}

	return userID, t, true
}

func queryInt(c *ginext.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}

	return n, nil
}
