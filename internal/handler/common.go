package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	mw "github.com/kiwari-pos/pedidos-web/internal/middleware"
	"github.com/kiwari-pos/pedidos-web/internal/session"
	"github.com/kiwari-pos/pedidos-web/internal/ui"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}

// requireSession returns the request's session or answers 500; routes are
// mounted behind the session middleware so a miss is a wiring bug.
func requireSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess := mw.SessionFromContext(r.Context())
	if sess == nil {
		log.Printf("ERROR: %s %s reached without a session", r.Method, r.URL.Path)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "session not available"})
		return nil, false
	}
	return sess, true
}

// act applies fn to the session's shell and redirects back to the console.
func act(w http.ResponseWriter, r *http.Request, fn func(sh *ui.Shell)) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	sess.Do(fn)
	redirectHome(w, r)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

// pathParam returns URL param name decoded exactly once. chi matches on
// RawPath when the request has one (the path held an escaped "/"), and on the
// already decoded Path otherwise.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form body"})
		return false
	}
	return true
}
