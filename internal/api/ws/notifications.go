package ws

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/Techhackontime999/LinkUp-sub000/internal/hub"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
	"github.com/Techhackontime999/LinkUp-sub000/internal/validate"
	"github.com/Techhackontime999/LinkUp-sub000/internal/wire"
)

// Notifications serves the notification feed of the identified user. On open
// the unread groups are sent oldest first, followed by the badge.
func (g *Gateway) Notifications(c *ginext.Context) {
	userID, ok := g.identify(c)
	if !ok {
		return
	}

	s, err := g.open(c, userID, 0, hub.KindNotifications)
	if err != nil {
		zlog.Logger.Warn().Err(err).Int64("user_id", userID).Msg("failed to open notification connection")
		return
	}

	ctx := c.Request.Context()
	defer g.close(ctx, s)

	if err := g.replayUnread(ctx, s); err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to replay notifications")
	}

	g.serve(ctx, s, g.handleNotifications)
}

func (g *Gateway) handleNotifications(ctx context.Context, s *session, cmd validate.Command) error {
	switch c := cmd.(type) {
	case validate.MarkRead:
		_, err := g.deps.Notifications.MarkRead(ctx, s.userID, c.NotificationID)
		return err
	case validate.MarkAllRead:
		_, err := g.deps.Notifications.MarkAllRead(ctx, s.userID, c.Types)
		return err
	case validate.GetStatus:
		if c.UserID == 0 {
			return &model.ValidationError{Field: "user-id", Reason: "is required"}
		}
		return g.getStatus(ctx, s, c)
	case validate.SyncRequest:
		return g.replayUnread(ctx, s)
	default:
		return fmt.Errorf("%w: %q on notification connection", validate.ErrUnsupportedType, cmd.Type())
	}
}

func (g *Gateway) replayUnread(ctx context.Context, s *session) error {
	unread, err := g.deps.Notifications.Unread(ctx, s.userID, g.cfg.BacklogSize)
	if err != nil {
		return err
	}

	for _, n := range unread {
		g.send(ctx, s, wire.Notification(n).With("replay", true))
		g.deps.Notifications.MarkDelivered(ctx, n)
	}

	badge, err := g.deps.Notifications.Badge(ctx, s.userID)
	if err != nil {
		return err
	}
	g.send(ctx, s, wire.BadgeUpdate(badge))

	return nil
}
