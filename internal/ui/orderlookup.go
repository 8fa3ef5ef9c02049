package ui

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/kiwari-pos/pedidos-web/internal/backend"
	"github.com/kiwari-pos/pedidos-web/internal/model"
)

type OrderGetter interface {
	GetOrder(ctx context.Context, id int) (model.Order, error)
}

// OrderLookup is the "consultar" tab.
type OrderLookup struct {
	api OrderGetter

	Query string
	Order *model.Order
	Error string
}

func NewOrderLookup(api OrderGetter) *OrderLookup {
	return &OrderLookup{api: api}
}

// Load is a no-op; the lookup starts empty.
func (l *OrderLookup) Load(context.Context) {}

// Search fetches the order whose id is raw. Input that is not an integer is
// rejected before any backend call.
func (l *OrderLookup) Search(ctx context.Context, raw string) {
	l.Query = raw
	l.Order = nil
	l.Error = ""

	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		l.Error = msgInvalidID
		return
	}

	o, err := l.api.GetOrder(ctx, id)
	if err != nil {
		if backend.IsNotFound(err) {
			l.Error = orderNotFound(id)
			return
		}
		log.Printf("ERROR: get order %d: %v", id, err)
		l.Error = msgLookupFailed
		return
	}
	l.Order = &o
}
