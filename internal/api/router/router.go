package router

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/Techhackontime999/LinkUp-sub000/internal/api/handlers/delivery"
	"github.com/Techhackontime999/LinkUp-sub000/internal/api/handlers/notification"
	"github.com/Techhackontime999/LinkUp-sub000/internal/api/routes"
	"github.com/Techhackontime999/LinkUp-sub000/internal/api/ws"
	"github.com/Techhackontime999/LinkUp-sub000/internal/config"
	"github.com/Techhackontime999/LinkUp-sub000/internal/middlewares"
)

// Route names of the connection routing table.
const (
	RouteChat          = "chat"
	RouteNotifications = "notifications"
	RouteHealth        = "health"
	RouteMetrics       = "metrics"
)

// Handlers served by the router.
type Handlers struct {
	Gateway       *ws.Gateway
	Notifications *notification.Handler
	Deliveries    *delivery.Handler
}

// Table returns the connection routing table described by cfg.
func Table(cfg config.Gateway) []routes.Route {
	return []routes.Route{
		{Name: RouteChat, Pattern: cfg.ChatRoute},
		{Name: RouteNotifications, Pattern: cfg.NotificationRoute},
		{Name: RouteHealth, Pattern: "/health"},
		{Name: RouteMetrics, Pattern: "/metrics"},
	}
}

// New validates the routing table and builds the engine. A table that fails
// validation is returned as a *routes.RouteError and nothing is mounted.
func New(cfg config.Gateway, h Handlers) (*ginext.Engine, error) {
	table := Table(cfg)
	if err := routes.Validate(table); err != nil {
		return nil, err
	}

	chat, _ := routes.Compile(cfg.ChatRoute)
	if !slices.Contains(chat.Params(), ws.PeerParam) {
		return nil, &routes.RouteError{Route: table[0], Reason: "missing :" + ws.PeerParam + " parameter"}
	}

	e := ginext.New()
	e.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins, cfg.IdentityHeader))
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET(cfg.ChatRoute, h.Gateway.Chat)
	e.GET(cfg.NotificationRoute, h.Gateway.Notifications)
	e.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := e.Group("/api")
	{
		api.POST("/events", h.Notifications.Create)
		api.GET("/users/:user_id/notifications", h.Notifications.Unread)
		api.GET("/users/:user_id/preferences/:type", h.Notifications.GetPreference)
		api.PUT("/users/:user_id/preferences/:type", h.Notifications.SetPreference)
		api.GET("/deliveries/failed", h.Deliveries.Failed)
		api.GET("/errors", h.Deliveries.Errors)
	}

	return e, nil
}
