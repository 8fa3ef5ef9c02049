package ui

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/kiwari-pos/pedidos-web/internal/backend"
	"github.com/kiwari-pos/pedidos-web/internal/enum"
	"github.com/kiwari-pos/pedidos-web/internal/form"
	"github.com/kiwari-pos/pedidos-web/internal/model"
)

const (
	msgReferenceLoadFailed = "Error al cargar los clientes y productos"
	msgOrderLoadFailed     = "Error al cargar el pedido"
)

// OrderForm is the create order screen and, with an order id, the edit order
// screen shown in place of the order list.
type OrderForm struct {
	api       OrderFormAPI
	orderID   int
	onUpdated func(ctx context.Context)

	Phase     enum.FormPhase
	Draft     form.OrderDraft
	Errors    form.Errors
	Customers []model.Customer
	Products  []model.Product
	Error     string
	Success   bool

	refsLoaded bool
}

func NewOrderForm(api OrderFormAPI) *OrderForm {
	return &OrderForm{api: api, Draft: form.NewOrderDraft()}
}

// NewEditOrderForm edits order id. onUpdated runs after a successful update.
func NewEditOrderForm(api OrderFormAPI, id int, onUpdated func(ctx context.Context)) *OrderForm {
	return &OrderForm{api: api, orderID: id, onUpdated: onUpdated, Draft: form.NewOrderDraft()}
}

func (f *OrderForm) IsEdit() bool {
	return f.orderID != 0
}

func (f *OrderForm) OrderID() int {
	return f.orderID
}

// Selectable reports whether the customer and product selectors can be used.
func (f *OrderForm) Selectable() bool {
	return f.refsLoaded
}

// Load fetches customers and products (and the order when editing) together.
// The form only becomes ready once every fetch has returned.
func (f *OrderForm) Load(ctx context.Context) {
	f.Phase = enum.PhaseLoading
	f.Error = ""
	f.refsLoaded = false

	var (
		customers []model.Customer
		products  []model.Product
		order     model.Order
		orderErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = f.api.ListCustomers(gctx)
		if err != nil {
			return fmt.Errorf("list customers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		products, err = f.api.ListProducts(gctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		return nil
	})
	if f.IsEdit() {
		g.Go(func() error {
			order, orderErr = f.api.GetOrder(gctx, f.orderID)
			if orderErr != nil {
				return fmt.Errorf("get order %d: %w", f.orderID, orderErr)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("ERROR: load order form: %v", err)
		f.Phase = enum.PhaseFailed
		if orderErr != nil {
			f.Error = msgOrderLoadFailed
		} else {
			f.Error = msgReferenceLoadFailed
		}
		return
	}

	f.Customers = customers
	f.Products = products
	f.refsLoaded = true
	if f.IsEdit() {
		f.Draft = form.OrderDraftFrom(order)
	}
	f.Phase = enum.PhaseReady
}

// Update replaces the draft with the values posted by the browser.
func (f *OrderForm) Update(d form.OrderDraft) {
	if len(d.Items) == 0 {
		d.Items = []form.ItemDraft{form.BlankItem()}
	}
	f.Draft = d
}

func (f *OrderForm) AppendItem() {
	f.Draft.AppendItem()
}

func (f *OrderForm) RemoveItem(i int) bool {
	if !f.Draft.RemoveItem(i) {
		return false
	}
	f.Errors = nil
	return true
}

// Submit validates and sends the draft. It returns true on success. A
// submission while another one is in progress is ignored.
func (f *OrderForm) Submit(ctx context.Context) bool {
	if f.Phase == enum.PhaseSubmitting || !f.refsLoaded {
		return false
	}
	f.Success = false

	if f.IsEdit() {
		cmd, errs := f.Draft.UpdateCommand(f.orderID)
		if !errs.Empty() {
			f.Errors = errs
			return false
		}
		f.begin()
		if err := f.api.UpdateOrder(ctx, f.orderID, cmd); err != nil {
			f.fail(err, "Error al actualizar el pedido")
			return false
		}
		f.Phase = enum.PhaseSucceeded
		if f.onUpdated != nil {
			f.onUpdated(ctx)
		}
		return true
	}

	cmd, errs := f.Draft.CreateCommand()
	if !errs.Empty() {
		f.Errors = errs
		return false
	}
	f.begin()
	if err := f.api.CreateOrder(ctx, cmd); err != nil {
		f.fail(err, "Error al crear el pedido")
		return false
	}
	f.Phase = enum.PhaseSucceeded
	f.Success = true
	f.Draft = form.NewOrderDraft()
	return true
}

func (f *OrderForm) begin() {
	f.Errors = nil
	f.Error = ""
	f.Phase = enum.PhaseSubmitting
}

func (f *OrderForm) fail(err error, fallback string) {
	log.Printf("ERROR: submit order: %v", err)
	f.Phase = enum.PhaseFailed
	if f.IsEdit() && backend.IsNotFound(err) {
		f.Error = orderNotFound(f.orderID)
		return
	}
	f.Error = or(backend.BodyMessage(err), fallback)
}

// CustomerLabel is the selector text for a customer.
func CustomerLabel(c model.Customer) string {
	return c.Nombre + " - DNI: " + c.DNI
}
