package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS answers preflight requests and decorates responses for the given
// origins. Content-Disposition is exposed so browsers can read report names.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", RequestIDHeader},
	})
	return c.Handler
}
