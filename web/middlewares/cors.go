package middlewares

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

// CORS allows the listed origins, plus any localhost origin for development.
// Every OPTIONS request ends here with 204.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	orig := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			orig[o] = struct{}{}
		}
	}

	policy := cors.New(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			if _, ok := orig[origin]; ok {
				return true
			}
			return isLocalhost(origin)
		},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:     []string{"Content-Disposition"},
		AllowCredentials:   true,
		MaxAge:             600,
		OptionsPassthrough: true,
	})

	headers := policy.Handler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	return func(c *gin.Context) {
		headers.ServeHTTP(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func isLocalhost(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1"
}
