package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

const defaultIdentityHeader = "X-User-ID"

// CORSMiddleware answers cross origin requests from the allowed origins. An
// empty list allows every origin. identityHeader is the header the upstream
// authenticator sets and is accepted on preflight.
func CORSMiddleware(allowed []string, identityHeader string) gin.HandlerFunc {
	if identityHeader == "" {
		identityHeader = defaultIdentityHeader
	}

	origins := make([]string, 0, len(allowed))
	for _, o := range allowed {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}

	handler := cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", identityHeader},
		MaxAge:         300,
	})

	return func(c *gin.Context) {
		passed := false
		handler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})).ServeHTTP(c.Writer, c.Request)

		// preflight requests are answered by the cors handler
		if !passed {
			c.Abort()
		}
	}
}
