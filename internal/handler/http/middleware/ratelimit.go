package middleware

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/campuslab/attendance-backend-go/internal/handler/http/response"
	"github.com/campuslab/attendance-backend-go/internal/pkg/ratelimit"
	"github.com/go-chi/jwtauth/v5"
)

// RateLimit throttles an endpoint per caller. The key is the user_id
// claim when present, the remote IP otherwise. A limiter failure lets
// the request through: losing rate limiting beats losing check-ins.
func RateLimit(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := limiter.Allow(r.Context(), callerKey(r))
			if err != nil {
				slog.Warn("Rate limiter unavailable, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				response.TooManyRequests(w, "Too many attempts, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if userID, ok := claims["user_id"].(string); ok && userID != "" {
			return userID
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
