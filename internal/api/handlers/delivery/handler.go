package delivery

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/api/respond"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/delivery/mock.go -package=mocks

type auditStore interface {
	ListFailedDeliveries(ctx context.Context, senderID int64, limit int) ([]model.QueuedMessage, error)
	ListErrors(ctx context.Context, category model.ErrorCategory, limit int) ([]model.MessagingError, error)
}

// Handler exposes abandoned deliveries and recorded messaging errors to
// operators.
type Handler struct {
	store auditStore
}

// NewHandler creates a new Handler instance.
func NewHandler(store auditStore) *Handler {
	return &Handler{store: store}
}

// Failed handles GET requests listing the abandoned items of a sender,
// newest first.
func (h *Handler) Failed(c *ginext.Context) {
	senderID, err := strconv.ParseInt(c.Query("sender_id"), 10, 64)
	if err != nil || senderID <= 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid sender_id"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
		return
	}

	items, err := h.store.ListFailedDeliveries(c.Request.Context(), senderID, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("sender_id", senderID).Msg("failed to list failed deliveries")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if items == nil {
		items = []model.QueuedMessage{}
	}

	respond.OK(c.Writer, items)
}

// Errors handles GET requests listing recorded errors, newest first,
// optionally of one category.
func (h *Handler) Errors(c *ginext.Context) {
	category := model.ErrorCategory(c.Query("category"))
	if category != "" && !category.Valid() {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown category"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
		return
	}

	errs, err := h.store.ListErrors(c.Request.Context(), category, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("category", string(category)).Msg("failed to list errors")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if errs == nil {
		errs = []model.MessagingError{}
	}

	respond.OK(c.Writer, errs)
}
