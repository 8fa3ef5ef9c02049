package form

import (
	"strconv"
	"strings"

	"github.com/kiwari-pos/pedidos-web/internal/model"
)

// ItemDraft is one editable order line. Cantidad keeps the raw input so an
// invalid entry can be shown back to the user next to its error.
type ItemDraft struct {
	ProductoCodigo string `form:"productoCodigo" validate:"required"`
	Cantidad       string `form:"cantidad" validate:"required,quantity"`
}

// OrderDraft backs both the create and the edit order forms.
type OrderDraft struct {
	ClienteCodigo string      `form:"clienteCodigo" validate:"required"`
	Items         []ItemDraft `form:"items" validate:"min=1,dive"`
}

var orderMessages = map[string]string{
	"clienteCodigo.required":  "El código del cliente es requerido",
	"items.min":               "Debe agregar al menos un producto",
	"productoCodigo.required": "El código del producto es requerido",
	"cantidad.required":       "La cantidad es requerida",
	"cantidad.quantity":       "La cantidad debe ser mayor a 0",
}

// BlankItem is the line appended by "Agregar Producto".
func BlankItem() ItemDraft {
	return ItemDraft{ProductoCodigo: "", Cantidad: "1"}
}

func NewOrderDraft() OrderDraft {
	return OrderDraft{Items: []ItemDraft{BlankItem()}}
}

// OrderDraftFrom pre-fills a draft from an existing order: customer code plus
// product code and quantity per line. Prices are dropped.
func OrderDraftFrom(o model.Order) OrderDraft {
	d := OrderDraft{ClienteCodigo: o.Cliente.Codigo}
	for _, it := range o.Items() {
		d.Items = append(d.Items, ItemDraft{
			ProductoCodigo: it.ProductoCodigo,
			Cantidad:       strconv.Itoa(it.Cantidad),
		})
	}
	if len(d.Items) == 0 {
		d.Items = []ItemDraft{BlankItem()}
	}
	return d
}

func (d *OrderDraft) AppendItem() {
	d.Items = append(d.Items, BlankItem())
}

// CanRemove reports whether a line may be removed; at least one is mandatory.
func (d OrderDraft) CanRemove() bool {
	return len(d.Items) > 1
}

// RemoveItem drops line i. It is a no-op returning false when i is out of
// range or when it is the last remaining line.
func (d *OrderDraft) RemoveItem(i int) bool {
	if !d.CanRemove() || i < 0 || i >= len(d.Items) {
		return false
	}
	d.Items = append(d.Items[:i:i], d.Items[i+1:]...)
	return true
}

func (d OrderDraft) Validate() Errors {
	return check(d, orderMessages)
}

// OrderItems converts validated lines into the submitted shape. Call only after
// Validate returned no errors.
func (d OrderDraft) OrderItems() []model.OrderItem {
	items := make([]model.OrderItem, len(d.Items))
	for i, it := range d.Items {
		n, _ := strconv.Atoi(strings.TrimSpace(it.Cantidad))
		items[i] = model.OrderItem{ProductoCodigo: it.ProductoCodigo, Cantidad: n}
	}
	return items
}

// CreateCommand validates the draft and builds the create payload.
func (d OrderDraft) CreateCommand() (model.CreateOrderCommand, Errors) {
	if errs := d.Validate(); !errs.Empty() {
		return model.CreateOrderCommand{}, errs
	}
	return model.CreateOrderCommand{ClienteCodigo: d.ClienteCodigo, Items: d.OrderItems()}, nil
}

// UpdateCommand validates the draft and builds the update payload for id.
func (d OrderDraft) UpdateCommand(id int) (model.UpdateOrderCommand, Errors) {
	if errs := d.Validate(); !errs.Empty() {
		return model.UpdateOrderCommand{}, errs
	}
	return model.UpdateOrderCommand{PedidoID: id, ClienteCodigo: d.ClienteCodigo, Items: d.OrderItems()}, nil
}

// ItemError returns the message for field of line i, if any.
func (e Errors) ItemError(i int, field string) string {
	return e["items["+strconv.Itoa(i)+"]."+field]
}
