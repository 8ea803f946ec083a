package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"movo-ads/internal/auth"
)

type claimsKey struct{}

// requireRole rejects requests without a valid bearer token with 401 and
// tokens lacking role with 403. Accepted claims are stored in the request
// context.
func (h *Handler) requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			claims, err := h.verifier.ValidateToken(strings.TrimSpace(raw))
			if err != nil {
				h.logger.Debug("token rejected", slog.Any("error", err))
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if claims.Role != role {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

// userID returns the token subject of an authenticated request.
func userID(ctx context.Context) string {
	if c, ok := ctx.Value(claimsKey{}).(*auth.Claims); ok {
		return c.Subject
	}
	return ""
}
