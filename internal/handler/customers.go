package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kiwari-pos/pedidos-web/internal/form"
	"github.com/kiwari-pos/pedidos-web/internal/ui"
)

// CustomerHandler handles the customer manager actions.
type CustomerHandler struct {
	deleter *Deleter
}

func NewCustomerHandler(deleter *Deleter) *CustomerHandler {
	return &CustomerHandler{deleter: deleter}
}

// RegisterRoutes registers the customer actions. Mounted at /customers.
func (h *CustomerHandler) RegisterRoutes(r chi.Router) {
	r.Post("/new", h.New)
	r.Post("/form", h.Form)
	r.Post("/refresh", h.Refresh)
	r.Post("/delete/confirm", h.ConfirmDelete)
	r.Post("/delete/cancel", h.CancelDelete)
	r.Route("/{id}", func(r chi.Router) {
		r.Post("/edit", h.Edit)
		r.Post("/delete", h.RequestDelete)
	})
}

func withCustomers(w http.ResponseWriter, r *http.Request, fn func(m *ui.CustomerManager)) {
	act(w, r, func(sh *ui.Shell) {
		if m, ok := ui.ScreenAs[*ui.CustomerManager](sh); ok {
			fn(m)
		}
	})
}

func (h *CustomerHandler) New(w http.ResponseWriter, r *http.Request) {
	withCustomers(w, r, func(m *ui.CustomerManager) { m.New() })
}

func (h *CustomerHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	withCustomers(w, r, func(m *ui.CustomerManager) { m.Load(r.Context()) })
}

func (h *CustomerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid customer ID"})
		return
	}
	withCustomers(w, r, func(m *ui.CustomerManager) { m.Edit(id) })
}

func (h *CustomerHandler) Form(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	action := r.PostForm.Get("action")
	if action != "submit" && action != "cancel" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown form action"})
		return
	}
	withCustomers(w, r, func(m *ui.CustomerManager) {
		if action == "cancel" {
			m.Cancel()
			return
		}
		m.Update(form.ParseCustomerDraft(r.PostForm))
		m.Submit(r.Context())
	})
}

func (h *CustomerHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid customer ID"})
		return
	}
	withCustomers(w, r, func(m *ui.CustomerManager) { m.RequestDelete(id) })
}

func (h *CustomerHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	withCustomers(w, r, func(m *ui.CustomerManager) { m.CancelDelete() })
}

func (h *CustomerHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	sess.Do(func(sh *ui.Shell) {
		m, ok := ui.ScreenAs[*ui.CustomerManager](sh)
		if !ok {
			return
		}
		if del, ok := m.ConfirmDelete(); ok {
			h.deleter.Start(r.Context(), sess, del, "customer")
		}
	})
	redirectHome(w, r)
}
