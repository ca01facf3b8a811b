package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/api/responses"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/config"
	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/logger"
)

type rateLimiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
	RateLimitKey(string) string
}

// RateLimit applies the general per-IP fixed window to every API request.
// When Redis is unavailable the request is allowed through; browse traffic
// should not go down with the counter store.
func RateLimit(cfg config.RateLimitConfig, store rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store == nil || cfg.APILimit <= 0 || cfg.APIWindow <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			key := store.RateLimitKey(fmt.Sprintf("api:ip:%s", ip))
			count, err := store.IncrWithTTL(ctx, key, cfg.APIWindow)
			if err != nil {
				if logg != nil {
					logCtx := logg.WithField(ctx, "ip", ip)
					logg.Warn(logCtx, "rate limit store unavailable, allowing request")
				}
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(cfg.APILimit) {
				if logg != nil {
					logCtx := logg.WithFields(ctx, map[string]any{
						"ip":       ip,
						"attempts": count,
						"limit":    cfg.APILimit,
					})
					logg.Warn(logCtx, "api.rate_limit.blocked")
				}
				responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
