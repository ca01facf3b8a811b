package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
)

// CORS returns middleware that applies the configured allowed origin policy.
// Credentials stay enabled because the admin session rides in a cookie.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Cart-Token", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Cart-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
