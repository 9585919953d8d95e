package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"bizcore/appctx"
)

// APIKeyAuthMiddleware rejects callers that do not present the admin API
// key. Authorization happens here, before the command core ever runs.
type APIKeyAuthMiddleware struct {
	adminAPIKey string
}

// NewAPIKeyAuthMiddleware creates a new authentication middleware instance
func NewAPIKeyAuthMiddleware(adminAPIKey string) *APIKeyAuthMiddleware {
	return &APIKeyAuthMiddleware{adminAPIKey: adminAPIKey}
}

// WithAuth wraps an HTTP handler with admin API key authentication
func (m *APIKeyAuthMiddleware) WithAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("🔐 Authentication middleware processing request from %s", r.RemoteAddr)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Printf("❌ Missing Authorization header")
			m.writeErrorResponse(w, "missing authorization header", http.StatusUnauthorized)
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Printf("❌ Invalid Authorization header format")
			m.writeErrorResponse(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			log.Printf("❌ Empty bearer token")
			m.writeErrorResponse(w, "empty bearer token", http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(m.adminAPIKey)) != 1 {
			log.Printf("❌ Invalid admin API key")
			m.writeErrorResponse(w, "invalid api key", http.StatusUnauthorized)
			return
		}

		log.Printf("✅ Caller authorized as admin")
		ctx := appctx.SetCaller(r.Context(), &appctx.Caller{Name: "admin"})
		next(w, r.WithContext(ctx))
	}
}

func (m *APIKeyAuthMiddleware) writeErrorResponse(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("❌ Failed to write error response: %v", err)
	}
}
