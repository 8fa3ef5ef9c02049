package handler

import (
	"bytes"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kiwari-pos/pedidos-web/internal/enum"
	"github.com/kiwari-pos/pedidos-web/internal/ui"
)

// ShellHandler renders the console and switches tabs.
type ShellHandler struct {
	renderer *Renderer
}

func NewShellHandler(renderer *Renderer) *ShellHandler {
	return &ShellHandler{renderer: renderer}
}

func (h *ShellHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Show)
	r.Post("/tabs/{tab}", h.Switch)
}

// Show renders the active tab, mounting the default one on first visit.
func (h *ShellHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}

	var (
		buf bytes.Buffer
		err error
	)
	sess.Do(func(sh *ui.Shell) {
		sh.Mount(r.Context())
		err = h.renderer.Page(&buf, sh)
	})
	if err != nil {
		log.Printf("ERROR: render console: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to render page"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *ShellHandler) Switch(w http.ResponseWriter, r *http.Request) {
	tab := enum.Tab(chi.URLParam(r, "tab"))
	if !tab.Valid() {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown tab"})
		return
	}
	act(w, r, func(sh *ui.Shell) {
		sh.Switch(r.Context(), tab)
	})
}
