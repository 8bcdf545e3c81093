package api

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin admits requests whose Admin-Key header matches the configured
// bcrypt hash. Admin routes are unavailable while auditing is off or no hash
// is set.
func (s *Server) EnsureAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Recorder == nil || s.Config.AdminKeyHash == "" {
			sendError(w, http.StatusServiceUnavailable, "Audit log not enabled")
			return
		}

		key := r.Header.Get("Admin-Key")
		if key == "" {
			sendError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(s.Config.AdminKeyHash), []byte(key)); err != nil {
			sendError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
