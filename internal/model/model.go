package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Order is the backend's order detail response. Totals and subtotals are
// computed server-side and trusted as given.
type Order struct {
	ID         int             `json:"id"`
	FechaOrden Timestamp       `json:"fechaOrden"`
	Cliente    OrderCustomer   `json:"cliente"`
	Detalles   []LineItem      `json:"detalles"`
	Total      decimal.Decimal `json:"total"`
}

// OrderCustomer is the customer snapshot embedded in an order.
type OrderCustomer struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	DNI    string `json:"dni"`
}

type LineItem struct {
	ProductoCodigo      string          `json:"productoCodigo"`
	ProductoDescripcion string          `json:"productoDescripcion"`
	Cantidad            int             `json:"cantidad"`
	PrecioUnitario      decimal.Decimal `json:"precioUnitario"`
	Subtotal            decimal.Decimal `json:"subtotal"`
}

// OrderItem is a line as submitted: the price is resolved by the backend.
type OrderItem struct {
	ProductoCodigo string `json:"productoCodigo"`
	Cantidad       int    `json:"cantidad"`
}

type CreateOrderCommand struct {
	ClienteCodigo string      `json:"clienteCodigo"`
	Items         []OrderItem `json:"items"`
}

type UpdateOrderCommand struct {
	PedidoID      int         `json:"pedidoId"`
	ClienteCodigo string      `json:"clienteCodigo"`
	Items         []OrderItem `json:"items"`
}

type Customer struct {
	ID     int    `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	DNI    string `json:"dni"`
}

type CreateCustomerCommand struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	DNI    string `json:"dni"`
}

type UpdateCustomerCommand struct {
	ID     int    `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	DNI    string `json:"dni"`
}

// Product is the selector view of a product; the order forms never see prices.
type Product struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"descripcion"`
}

// ProductDetail is the management view of a product.
type ProductDetail struct {
	Codigo         string          `json:"codigo"`
	Descripcion    string          `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// ProductCommand is the create and update payload for products.
type ProductCommand struct {
	Codigo         string          `json:"codigo"`
	Descripcion    string          `json:"descripcion"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// ItemCount returns the number of line items on the order.
func (o Order) ItemCount() int {
	return len(o.Detalles)
}

// Items returns the order's lines as submittable items, dropping prices.
func (o Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.Detalles))
	for i, d := range o.Detalles {
		items[i] = OrderItem{ProductoCodigo: d.ProductoCodigo, Cantidad: d.Cantidad}
	}
	return items
}

// MarshalJSON writes the price as a bare JSON number; the backend rejects
// quoted numerics.
func (c ProductCommand) MarshalJSON() ([]byte, error) {
	type wire struct {
		Codigo         string      `json:"codigo"`
		Descripcion    string      `json:"descripcion"`
		PrecioUnitario json.Number `json:"precioUnitario"`
	}
	return json.Marshal(wire{
		Codigo:         c.Codigo,
		Descripcion:    c.Descripcion,
		PrecioUnitario: json.Number(c.PrecioUnitario.String()),
	})
}
