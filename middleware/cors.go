package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows POST with any header from allowedOrigins. "*" admits every origin,
// which is only suitable for development.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodPost},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler
}
