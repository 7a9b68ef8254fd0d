package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"socialcosmos/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// withIdentity resolves the acting identity for every request. The bearer
// token is tried as a signed access token first, then as a remembered
// session token; anything else is anonymous.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		who := domain.Anonymous
		if token := bearerToken(r); token != "" {
			if username, err := h.sessions.VerifyAccessToken(token); err == nil {
				who = username
			} else {
				who = h.sessions.Identity(token)
			}
		}
		ctx := context.WithValue(r.Context(), identityKey, who)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// logRequests records method, path, identity and duration for each request.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.log.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"identity", identityFrom(r).String(),
			"duration", time.Since(start),
		)
	})
}

// identityFrom returns the identity the middleware attached to the request.
func identityFrom(r *http.Request) domain.Username {
	if who, ok := r.Context().Value(identityKey).(domain.Username); ok {
		return who
	}
	return domain.Anonymous
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
