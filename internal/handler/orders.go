package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kiwari-pos/pedidos-web/internal/form"
	"github.com/kiwari-pos/pedidos-web/internal/ui"
)

// OrderHandler handles the order list, the order forms and the lookup.
// Actions aimed at a screen that is no longer showing are ignored.
type OrderHandler struct {
	deleter *Deleter
}

func NewOrderHandler(deleter *Deleter) *OrderHandler {
	return &OrderHandler{deleter: deleter}
}

// RegisterRoutes registers the order actions. Mounted at /orders.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/refresh", h.Refresh)
	r.Post("/lookup", h.Lookup)
	r.Post("/form", h.Form)
	r.Post("/delete/confirm", h.ConfirmDelete)
	r.Post("/delete/cancel", h.CancelDelete)
	r.Route("/{id}", func(r chi.Router) {
		r.Post("/toggle", h.Toggle)
		r.Post("/edit", h.Edit)
		r.Post("/delete", h.RequestDelete)
	})
}

func (h *OrderHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	act(w, r, func(sh *ui.Shell) {
		if l, ok := ui.ScreenAs[*ui.OrderList](sh); ok {
			l.Load(r.Context())
		}
	})
}

func (h *OrderHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}
	act(w, r, func(sh *ui.Shell) {
		if l, ok := ui.ScreenAs[*ui.OrderList](sh); ok {
			l.Toggle(id)
		}
	})
}

func (h *OrderHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}
	act(w, r, func(sh *ui.Shell) {
		if l, ok := ui.ScreenAs[*ui.OrderList](sh); ok && l.Editing == nil {
			l.Edit(r.Context(), id)
		}
	})
}

func (h *OrderHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}
	act(w, r, func(sh *ui.Shell) {
		if l, ok := ui.ScreenAs[*ui.OrderList](sh); ok {
			l.RequestDelete(id)
		}
	})
}

func (h *OrderHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	act(w, r, func(sh *ui.Shell) {
		if l, ok := ui.ScreenAs[*ui.OrderList](sh); ok {
			l.CancelDelete()
		}
	})
}

func (h *OrderHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	sess.Do(func(sh *ui.Shell) {
		l, ok := ui.ScreenAs[*ui.OrderList](sh)
		if !ok {
			return
		}
		if del, ok := l.ConfirmDelete(); ok {
			h.deleter.Start(r.Context(), sess, del, "order")
		}
	})
	redirectHome(w, r)
}

// Form applies an action to whichever order form is showing. Every action
// posts the whole form so the draft survives append and remove.
func (h *OrderHandler) Form(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	action := r.PostForm.Get("action")

	var removeAt int
	switch {
	case action == "append", action == "submit", action == "cancel", action == "reload":
	case strings.HasPrefix(action, "remove:"):
		i, err := strconv.Atoi(strings.TrimPrefix(action, "remove:"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid item index"})
			return
		}
		removeAt = i
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown form action"})
		return
	}

	act(w, r, func(sh *ui.Shell) {
		f, ok := sh.OrderForm()
		if !ok {
			return
		}
		switch action {
		case "cancel":
			if l, ok := ui.ScreenAs[*ui.OrderList](sh); ok {
				l.CancelEdit()
			}
			return
		case "reload":
			f.Load(r.Context())
			return
		}

		if f.Selectable() {
			f.Update(form.ParseOrderDraft(r.PostForm))
		}
		switch action {
		case "append":
			f.AppendItem()
		case "submit":
			f.Submit(r.Context())
		default:
			f.RemoveItem(removeAt)
		}
	})
}

func (h *OrderHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}
	query := r.PostForm.Get("id")
	act(w, r, func(sh *ui.Shell) {
		if l, ok := ui.ScreenAs[*ui.OrderLookup](sh); ok {
			l.Search(r.Context(), query)
		}
	})
}
