package ws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/delivery"
	"github.com/Techhackontime999/LinkUp-sub000/internal/errlog"
	"github.com/Techhackontime999/LinkUp-sub000/internal/hub"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/validate"
	"github.com/Techhackontime999/LinkUp-sub000/internal/wire"
)

// PeerParam is the route parameter naming the chat peer.
const PeerParam = "peer_id"

// Chat serves a conversation between the identified user and the peer named
// in the route.
//
// On open the recent history is replayed oldest first, the peer's presence is
// sent and messages queued by the peer for this user are flushed.
func (g *Gateway) Chat(c *ginext.Context) {
	userID, ok := g.identify(c)
	if !ok {
		return
	}

	peerID, err := strconv.ParseInt(c.Param(PeerParam), 10, 64)
	if err != nil || peerID <= 0 || peerID == userID {
		g.reject(c, http.StatusBadRequest, errors.New("invalid peer id"), userID)
		return
	}

	s, err := g.open(c, userID, peerID, hub.KindChat)
	if err != nil {
		zlog.Logger.Warn().Err(err).Int64("user_id", userID).Msg("failed to open chat connection")
		return
	}

	ctx := c.Request.Context()
	defer g.close(ctx, s)

	g.replayHistory(ctx, s, 0, g.cfg.BacklogSize)

	if status, err := g.deps.Presence.GetStatus(ctx, peerID); err == nil {
		g.send(ctx, s, wire.UserStatus(status))
	}

	g.deps.Delivery.RequestFlush(ctx, delivery.FlushRequest{SenderID: peerID, RecipientID: userID, Force: true})

	g.serve(ctx, s, g.handleChat)
}

func (g *Gateway) handleChat(ctx context.Context, s *session, cmd validate.Command) error {
	switch c := cmd.(type) {
	case validate.SendMessage:
		return g.sendMessage(ctx, s, c)
	case validate.Typing:
		g.deps.Hub.SendToChat(s.peerID, s.userID, g.deps.Guard.SafeSerialize(ctx, wire.Typing(s.userID, c.IsTyping)))
		return nil
	case validate.ReadReceipt:
		return g.readReceipt(ctx, s, c)
	case validate.GetStatus:
		return g.getStatus(ctx, s, c)
	case validate.SyncRequest:
		limit := c.Limit
		if limit == 0 {
			limit = g.cfg.BacklogSize
		}
		return g.replayHistory(ctx, s, c.BeforeID, limit)
	default:
		return fmt.Errorf("%w: %q on chat connection", validate.ErrUnsupportedType, cmd.Type())
	}
}

// sendMessage persists the message and hands it to the delivery manager. The
// sender's connections to this conversation receive the stored record with
// its delivery status as acknowledgement.
func (g *Gateway) sendMessage(ctx context.Context, s *session, c validate.SendMessage) error {
	m, created, err := g.deps.Messages.CreateMessage(ctx, s.userID, s.peerID, c.Content, c.IdempotencyKey)
	if err != nil {
		return err
	}

	if !created {
		status := wire.StatusQueued
		if m.IsDelivered() {
			status = wire.StatusDelivered
		}
		g.send(ctx, s, wire.Message(m).With("status", status).With("duplicate", true))
		return nil
	}

	outcome, err := g.deps.Delivery.Dispatch(ctx, m, g.deps.Guard.SafeSerialize(ctx, wire.Message(m)))
	if err != nil {
		return err
	}

	ack := g.deps.Guard.SafeSerialize(ctx, wire.Message(m).With("status", outcome.String()))
	g.deps.Hub.SendToChat(s.userID, s.peerID, ack)

	g.notifyRecipient(ctx, m, outcome)

	return nil
}

// notifyRecipient raises a message notification when the recipient could not
// be reached in the conversation and refreshes their badge either way. The
// message is already stored, so failures are only recorded.
func (g *Gateway) notifyRecipient(ctx context.Context, m model.Message, outcome delivery.Outcome) {
	if g.deps.Notifications == nil {
		return
	}

	if outcome != delivery.Queued {
		g.deps.Notifications.PushBadge(ctx, m.RecipientID)
		return
	}

	sender := &model.EntityRef{Type: "user", ID: strconv.FormatInt(m.SenderID, 10)}
	_, err := g.deps.Notifications.Notify(ctx, m.RecipientID, model.NotificationMessage, sender, model.PriorityNormal)
	if err != nil {
		g.record(ctx, errlog.Entry{
			Category: model.CategoryConnectionError,
			Severity: model.SeverityError,
			Message:  "failed to notify recipient",
			Err:      err,
			UserID:   m.RecipientID,
			Context:  map[string]any{"message_id": m.ID, "sender_id": m.SenderID},
		})
	}
}

// readReceipt marks a message the peer sent to this user read and tells the
// peer.
func (g *Gateway) readReceipt(ctx context.Context, s *session, c validate.ReadReceipt) error {
	m, err := g.deps.Messages.GetMessage(ctx, c.MessageID)
	if err != nil {
		return err
	}
	if m.RecipientID != s.userID || m.SenderID != s.peerID {
		return errForbidden
	}

	m, err = g.deps.Messages.MarkRead(ctx, m.ID)
	if err != nil {
		return err
	}

	g.deps.Hub.SendToChat(m.SenderID, s.userID, g.deps.Guard.SafeSerialize(ctx, wire.ReadReceipt(m)))
	if g.deps.Notifications != nil {
		g.deps.Notifications.PushBadge(ctx, s.userID)
	}

	return nil
}

func (g *Gateway) getStatus(ctx context.Context, s *session, c validate.GetStatus) error {
	target := c.UserID
	if target == 0 {
		target = s.peerID
	}
	if target == 0 {
		return &model.ValidationError{Field: "user-id", Reason: "is required"}
	}

	rec, err := g.deps.Presence.GetStatus(ctx, target)
	if err != nil {
		return err
	}

	g.send(ctx, s, wire.UserStatus(rec))

	return nil
}

// replayHistory sends a page of the conversation, oldest first.
func (g *Gateway) replayHistory(ctx context.Context, s *session, beforeID int64, limit int) error {
	page, err := g.deps.Messages.GetConversationMessages(ctx, s.userID, s.peerID, beforeID, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", s.userID).Int64("peer_id", s.peerID).Msg("failed to load history")
		return err
	}

	for i := len(page) - 1; i >= 0; i-- {
		g.send(ctx, s, wire.Message(page[i]).With("replay", true))
	}

	return nil
}
