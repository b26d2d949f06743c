// Package ws hosts the chat and notification connection gateways.
package ws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/api/respond"
	"github.com/Techhackontime999/LinkUp-sub000/internal/config"
	"github.com/Techhackontime999/LinkUp-sub000/internal/delivery"
	"github.com/Techhackontime999/LinkUp-sub000/internal/errlog"
	"github.com/Techhackontime999/LinkUp-sub000/internal/grouping"
	"github.com/Techhackontime999/LinkUp-sub000/internal/hub"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/validate"
	"github.com/Techhackontime999/LinkUp-sub000/internal/wire"
)

//go:generate mockgen -source=gateway.go -destination=../../mocks/api/ws/mock.go -package=mocks

type messageStore interface {
	CreateMessage(ctx context.Context, senderID, recipientID int64, content, key string) (model.Message, bool, error)
	GetMessage(ctx context.Context, id int64) (model.Message, error)
	MarkRead(ctx context.Context, id int64) (model.Message, error)
	GetConversationMessages(ctx context.Context, userA, userB, beforeID int64, limit int) ([]model.Message, error)
}

type dispatcher interface {
	Dispatch(ctx context.Context, msg model.Message, payload []byte) (delivery.Outcome, error)
	RequestFlush(ctx context.Context, req delivery.FlushRequest)
}

type presenceTracker interface {
	MarkOnline(ctx context.Context, userID int64) (model.PresenceRecord, error)
	MarkOffline(ctx context.Context, userID int64) (model.PresenceRecord, error)
	GetStatus(ctx context.Context, userID int64) (model.PresenceRecord, error)
}

type notifier interface {
	Notify(ctx context.Context, recipientID int64, t model.NotificationType, related *model.EntityRef, priority model.Priority) (grouping.Result, error)
	Unread(ctx context.Context, recipientID int64, limit int) ([]model.Notification, error)
	MarkDelivered(ctx context.Context, n model.Notification)
	MarkRead(ctx context.Context, recipientID int64, id uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context, recipientID int64, types []model.NotificationType) (int64, error)
	Badge(ctx context.Context, recipientID int64) (wire.Badge, error)
	PushBadge(ctx context.Context, recipientID int64)
}

type registry interface {
	Register(userID int64, kind hub.Kind, peerID int64, conn hub.Conn) *hub.Client
	Unregister(c *hub.Client) int
	SendToChat(userID, peerID int64, payload []byte) int
}

type serializer interface {
	SafeSerialize(ctx context.Context, payload any) []byte
}

type recorder interface {
	Record(ctx context.Context, e errlog.Entry)
}

var errForbidden = errors.New("forbidden")

const closeTimeout = 5 * time.Second

// Deps are the components the gateways orchestrate.
type Deps struct {
	Messages      messageStore
	Delivery      dispatcher
	Presence      presenceTracker
	Notifications notifier
	Hub           registry
	Guard         serializer
	Recorder      recorder
	Validator     *validate.Validator
}

// Gateway serves the chat and notification websocket endpoints.
type Gateway struct {
	deps     Deps
	cfg      config.Gateway
	upgrader websocket.Upgrader
	allowed  map[string]struct{}
}

// New creates the gateways.
func New(deps Deps, cfg config.Gateway) *Gateway {
	if cfg.IdentityHeader == "" {
		cfg.IdentityHeader = "X-User-ID"
	}
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = 60 * time.Second
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = 10 * time.Second
	}
	if cfg.BacklogSize <= 0 {
		cfg.BacklogSize = 50
	}
	if cfg.MaxMessageBytes <= 0 {
		cfg.MaxMessageBytes = 64 << 10
	}

	g := &Gateway{
		deps:    deps,
		cfg:     cfg,
		allowed: normalizeOrigins(cfg.AllowedOrigins),
	}
	g.upgrader = websocket.Upgrader{
		HandshakeTimeout: cfg.HandshakeTimeout,
		CheckOrigin:      g.checkOrigin,
	}

	return g
}

func normalizeOrigins(origins []string) map[string]struct{} {
	res := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		o := strings.TrimRight(strings.TrimSpace(strings.ToLower(origin)), "/")
		if o != "" {
			res[o] = struct{}{}
		}
	}
	return res
}

// checkOrigin allows every origin when no allowlist is configured.
func (g *Gateway) checkOrigin(r *http.Request) bool {
	if len(g.allowed) == 0 {
		return true
	}

	origin := strings.TrimSpace(strings.ToLower(r.Header.Get("Origin")))
	if origin == "" {
		return false
	}
	if _, ok := g.allowed[origin]; ok {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	_, ok := g.allowed[u.Scheme+"://"+u.Host]
	return ok
}

// session is one open connection.
type session struct {
	client *hub.Client
	conn   *websocket.Conn
	userID int64
	peerID int64
	kind   hub.Kind
}

// identify resolves the verified user id of a request. It answers the
// request itself when the identity is missing or invalid.
func (g *Gateway) identify(c *ginext.Context) (int64, bool) {
	if !g.checkOrigin(c.Request) {
		g.reject(c, http.StatusForbidden, errors.New("origin not allowed"), 0)
		return 0, false
	}

	headers, err := validate.ValidateConnectionHeaders(c.Request.Header)
	if err == nil {
		var userID int64
		if userID, err = validate.UserID(headers, g.cfg.IdentityHeader); err == nil {
			return userID, true
		}
	}

	g.reject(c, http.StatusUnauthorized, err, 0)
	return 0, false
}

func (g *Gateway) reject(c *ginext.Context, status int, err error, userID int64) {
	g.record(c.Request.Context(), errlog.Entry{
		Category: model.CategoryConnectionError,
		Severity: model.SeverityWarning,
		Message:  "connection rejected",
		Err:      err,
		UserID:   userID,
		Context:  map[string]any{"path": c.FullPath(), "status": status},
	})
	respond.Fail(c.Writer, status, err)
}

func (g *Gateway) record(ctx context.Context, e errlog.Entry) {
	if g.deps.Recorder != nil {
		g.deps.Recorder.Record(ctx, e)
	}
}

// open upgrades the request, registers the connection and marks the user
// online.
func (g *Gateway) open(c *ginext.Context, userID, peerID int64, kind hub.Kind) (*session, error) {
	conn, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already wrote the HTTP error
		return nil, fmt.Errorf("upgrade: %w", err)
	}

	s := &session{
		client: g.deps.Hub.Register(userID, kind, peerID, conn),
		conn:   conn,
		userID: userID,
		peerID: peerID,
		kind:   kind,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), g.cfg.HandshakeTimeout)
	defer cancel()

	if _, err := g.deps.Presence.MarkOnline(ctx, userID); err != nil {
		g.deps.Hub.Unregister(s.client)
		_ = s.client.Close()
		return nil, fmt.Errorf("mark online: %w", err)
	}

	zlog.Logger.Info().
		Int64("user_id", userID).
		Int64("peer_id", peerID).
		Str("kind", string(kind)).
		Str("conn_id", s.client.ID.String()).
		Msg("connection opened")

	return s, nil
}

// close unregisters the connection; the user goes offline with their last
// connection.
func (g *Gateway) close(ctx context.Context, s *session) {
	remaining := g.deps.Hub.Unregister(s.client)
	_ = s.client.Close()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()

	if _, err := g.deps.Presence.MarkOffline(ctx, s.userID); err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", s.userID).Msg("failed to mark user offline")
	}

	zlog.Logger.Info().
		Int64("user_id", s.userID).
		Str("kind", string(s.kind)).
		Str("conn_id", s.client.ID.String()).
		Int("remaining", remaining).
		Msg("connection closed")
}

// serve runs the read loop until the connection closes or misses its
// heartbeat. handle is called for every inbound frame, one at a time.
func (g *Gateway) serve(ctx context.Context, s *session, handle func(context.Context, *session, validate.Command) error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wait := g.cfg.HeartbeatInterval
	s.conn.SetReadLimit(g.cfg.MaxMessageBytes)
	_ = s.conn.SetReadDeadline(time.Now().Add(wait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(wait))
	})

	go g.ping(ctx, s, wait*9/10)

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zlog.Logger.Debug().Err(err).Int64("user_id", s.userID).Msg("connection dropped")
			}
			return
		}
		_ = s.conn.SetReadDeadline(time.Now().Add(wait))

		payload, err := validate.Decode(raw)
		if err != nil {
			g.fail(ctx, s, "", err)
			continue
		}

		cmd, err := g.deps.Validator.Parse(payload)
		if err != nil {
			g.fail(ctx, s, validate.SafeGet(payload, "type", ""), err)
			continue
		}

		if err := handle(ctx, s, cmd); err != nil {
			g.fail(ctx, s, cmd.Type(), err)
		}
	}
}

func (g *Gateway) ping(ctx context.Context, s *session, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.client.WriteControl(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// send serializes an event for this connection only.
func (g *Gateway) send(ctx context.Context, s *session, e wire.Event) {
	if err := s.client.Send(g.deps.Guard.SafeSerialize(ctx, e)); err != nil && !errors.Is(err, hub.ErrClientClosed) {
		zlog.Logger.Debug().Err(err).Int64("user_id", s.userID).Msg("failed to write event")
	}
}

// fail turns a command failure into an error event. The connection stays
// open.
func (g *Gateway) fail(ctx context.Context, s *session, msgType string, err error) {
	fields := map[string]any{"type": msgType, "kind": string(s.kind), "conn_id": s.client.ID.String()}

	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		fields["field"] = ve.Field
		g.record(ctx, errlog.Entry{
			Category: model.CategoryConnectionError,
			Severity: model.SeverityWarning,
			Message:  "invalid payload",
			Err:      err,
			UserID:   s.userID,
			Context:  fields,
		})
		g.send(ctx, s, wire.Error(model.CategoryConnectionError, wire.CodeInvalidPayload, ve.Error(), ve.Field))

	case errors.Is(err, validate.ErrUnsupportedType):
		g.record(ctx, errlog.Entry{
			Category: model.CategoryConnectionError,
			Severity: model.SeverityInfo,
			Message:  "unsupported payload type",
			Err:      err,
			UserID:   s.userID,
			Context:  fields,
		})
		g.send(ctx, s, wire.Error(model.CategoryConnectionError, wire.CodeUnsupportedType,
			fmt.Sprintf("unsupported type %q", msgType), "type"))

	case errors.Is(err, model.ErrMessageNotFound), errors.Is(err, model.ErrNotificationNotFound):
		g.send(ctx, s, wire.Error(model.CategoryConnectionError, wire.CodeNotFound, "not found", ""))

	case errors.Is(err, errForbidden):
		g.send(ctx, s, wire.Error(model.CategoryConnectionError, wire.CodeForbidden, "not allowed", ""))

	default:
		g.record(ctx, errlog.Entry{
			Category: model.CategoryConnectionError,
			Severity: model.SeverityError,
			Message:  "command failed",
			Err:      err,
			UserID:   s.userID,
			Context:  fields,
		})
		g.send(ctx, s, wire.Error(model.CategoryConnectionError, wire.CodeInternal, "internal error", ""))
	}
}
