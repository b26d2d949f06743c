// Package server wraps the router into the process HTTP server.
package server

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

// readHeaderTimeout bounds the handshake of every request. Bodies and
// websocket streams are not limited here; the gateways keep their own
// deadlines.
const readHeaderTimeout = 10 * time.Second

// New creates the HTTP server listening on addr and serving router.
func New(addr string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
