package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/game-admin-api/internal/pkg/principal"
)

// RequireRole lets a request through only when the authenticated principal
// holds one of allowedRoles. It must run after Auth.
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := principal.FromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if !slices.Contains(allowedRoles, p.Role) {
				slog.DebugContext(r.Context(), "role denied", "player_id", p.PlayerID, "role", p.Role, "path", r.URL.Path)
				writeJSONError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
