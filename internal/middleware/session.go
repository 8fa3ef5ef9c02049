package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/kiwari-pos/pedidos-web/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// Session resolves the browser's session from its signed cookie, starting a
// new one when the cookie is missing, invalid or points at a swept session.
// The cookie is re-issued on every request so an active browser keeps it.
func Session(store *session.Store, secret string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session
			if id, err := session.IDFromRequest(r, secret); err == nil {
				sess, _ = store.Get(id)
			}
			if sess == nil {
				sess = store.Create()
			}

			if err := session.SetCookie(w, r, secret, sess.ID, ttl); err != nil {
				log.Printf("ERROR: %v", err)
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to start session"})
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession only lets requests through that carry a live session; it
// never creates one.
func RequireSession(store *session.Store, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := session.IDFromRequest(r, secret)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing or invalid session"})
				return
			}
			sess, ok := store.Get(id)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "session expired"})
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey).(*session.Session)
	return sess
}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
