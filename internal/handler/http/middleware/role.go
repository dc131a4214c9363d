package middleware

import (
	"log/slog"
	"net/http"

	"github.com/kelola-hr/leave-ledger-go/internal/domain/user"
	"github.com/kelola-hr/leave-ledger-go/internal/handler/http/response"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/jwt"
)

// RequireManager rejects requests whose role claim cannot decide leave
// requests. The per-request organizational authority check stays in
// the service layer.
func RequireManager(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, err := jwt.RoleFromContext(r.Context())
			if err != nil {
				response.Error(r.Context(), w, logger, user.ErrManagerAccessRequired)
				return
			}
			if !user.CanDecideLeave(role) {
				response.Error(r.Context(), w, logger, user.ErrManagerAccessRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
