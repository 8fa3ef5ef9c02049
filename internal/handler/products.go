package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kiwari-pos/pedidos-web/internal/form"
	"github.com/kiwari-pos/pedidos-web/internal/ui"
)

// ProductHandler handles the product manager actions. Products are
// addressed by code.
type ProductHandler struct {
	deleter *Deleter
}

func NewProductHandler(deleter *Deleter) *ProductHandler {
	return &ProductHandler{deleter: deleter}
}

// RegisterRoutes registers the product actions. Mounted at /products.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Post("/new", h.New)
	r.Post("/form", h.Form)
	r.Post("/refresh", h.Refresh)
	r.Post("/delete/confirm", h.ConfirmDelete)
	r.Post("/delete/cancel", h.CancelDelete)
	r.Route("/{codigo}", func(r chi.Router) {
		r.Post("/edit", h.Edit)
		r.Post("/delete", h.RequestDelete)
	})
}

func withProducts(w http.ResponseWriter, r *http.Request, fn func(m *ui.ProductManager)) {
	act(w, r, func(sh *ui.Shell) {
		if m, ok := ui.ScreenAs[*ui.ProductManager](sh); ok {
			fn(m)
		}
	})
}

func (h *ProductHandler) New(w http.ResponseWriter, r *http.Request) {
	withProducts(w, r, func(m *ui.ProductManager) { m.New() })
}

func (h *ProductHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	withProducts(w, r, func(m *ui.ProductManager) { m.Load(r.Context()) })
}

func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	codigo := pathParam(r, "codigo")
	withProducts(w, r, func(m *ui.ProductManager) { m.Edit(codigo) })
}

func (h *ProductHandler) Form(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	action := r.PostForm.Get("action")
	if action != "submit" && action != "cancel" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown form action"})
		return
	}
	withProducts(w, r, func(m *ui.ProductManager) {
		if action == "cancel" {
			m.Cancel()
			return
		}
		m.Update(form.ParseProductDraft(r.PostForm))
		m.Submit(r.Context())
	})
}

func (h *ProductHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	codigo := pathParam(r, "codigo")
	withProducts(w, r, func(m *ui.ProductManager) { m.RequestDelete(codigo) })
}

func (h *ProductHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	withProducts(w, r, func(m *ui.ProductManager) { m.CancelDelete() })
}

func (h *ProductHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	sess.Do(func(sh *ui.Shell) {
		m, ok := ui.ScreenAs[*ui.ProductManager](sh)
		if !ok {
			return
		}
		if del, ok := m.ConfirmDelete(); ok {
			h.deleter.Start(r.Context(), sess, del, "product")
		}
	})
	redirectHome(w, r)
}
