package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/kiwari-pos/pedidos-web/internal/backend"
	"github.com/kiwari-pos/pedidos-web/internal/model"
)

const (
	msgOrdersLoadFailed  = "Error al cargar los pedidos"
	msgOrderDeleteFailed = "Error al eliminar el pedido. Por favor intenta nuevamente."
)

// OrderList is the "listar" tab: every order with its summary, one of them
// optionally expanded, and the edit form when an order is being edited.
type OrderList struct {
	api OrderFormAPI

	Orders  []model.Order
	Loaded  bool
	Error   string
	Prompt  Prompt
	Editing *OrderForm

	expanded int
	inFlight int
	pending  int
}

func NewOrderList(api OrderFormAPI) *OrderList {
	return &OrderList{api: api}
}

// Load fetches all orders. On failure the previous rows stay visible.
func (l *OrderList) Load(ctx context.Context) {
	l.Error = ""
	orders, err := l.api.ListOrders(ctx)
	l.Loaded = true
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		l.Error = msgOrdersLoadFailed
		return
	}
	l.Orders = orders
	if l.expanded != 0 && l.find(l.expanded) < 0 {
		l.expanded = 0
	}
}

// Toggle expands order id, collapsing any other; toggling the expanded order
// collapses it.
func (l *OrderList) Toggle(id int) {
	if l.expanded == id {
		l.expanded = 0
		return
	}
	if l.find(id) >= 0 {
		l.expanded = id
	}
}

func (l *OrderList) IsExpanded(id int) bool {
	return l.expanded != 0 && l.expanded == id
}

// Pending reports whether a delete is waiting for the backend.
func (l *OrderList) Pending() bool {
	return l.inFlight != 0
}

func (l *OrderList) IsDeleting(id int) bool {
	return l.inFlight != 0 && l.inFlight == id
}

// RequestDelete opens the confirmation prompt for order id.
func (l *OrderList) RequestDelete(id int) bool {
	i := l.find(id)
	if i < 0 || l.inFlight != 0 {
		return false
	}
	o := l.Orders[i]
	l.pending = id
	l.Prompt = deletePrompt(
		"¿Eliminar Pedido?",
		fmt.Sprintf("¿Estás seguro de eliminar el Pedido #%d del cliente \"%s\"? Esta acción no se puede deshacer.", o.ID, o.Cliente.Nombre),
		"/orders/delete/confirm",
		"/orders/delete/cancel",
	)
	return true
}

func (l *OrderList) CancelDelete() {
	l.Prompt = Prompt{}
	l.pending = 0
}

// ConfirmDelete closes the prompt and marks the order in flight. The returned
// Deletion removes the row only once the backend confirms.
func (l *OrderList) ConfirmDelete() (Deletion, bool) {
	if !l.Prompt.Open || l.pending == 0 {
		return Deletion{}, false
	}
	id := l.pending
	l.Prompt = Prompt{}
	l.pending = 0
	l.inFlight = id
	l.Error = ""

	api := l.api
	return Deletion{
		Run: func(ctx context.Context) error {
			return api.DeleteOrder(ctx, id)
		},
		Finish: func(err error) {
			l.finishDelete(id, err)
		},
	}, true
}

func (l *OrderList) finishDelete(id int, err error) {
	if l.inFlight == id {
		l.inFlight = 0
	}
	if err != nil {
		if backend.IsNotFound(err) {
			l.Error = orderNotFound(id)
		} else {
			l.Error = msgOrderDeleteFailed
		}
		return
	}
	if i := l.find(id); i >= 0 {
		l.Orders = append(l.Orders[:i:i], l.Orders[i+1:]...)
	}
	if l.expanded == id {
		l.expanded = 0
	}
}

// Edit replaces the list with the edit form for order id.
func (l *OrderList) Edit(ctx context.Context, id int) {
	l.Editing = NewEditOrderForm(l.api, id, func(ctx context.Context) {
		l.Editing = nil
		l.Load(ctx)
	})
	l.Editing.Load(ctx)
}

// CancelEdit returns to the list without refetching.
func (l *OrderList) CancelEdit() {
	l.Editing = nil
}

func (l *OrderList) find(id int) int {
	for i, o := range l.Orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
