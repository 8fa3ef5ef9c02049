package form

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kiwari-pos/pedidos-web/internal/model"
)

type ProductDraft struct {
	Codigo         string `form:"codigo" validate:"required"`
	Descripcion    string `form:"descripcion" validate:"required"`
	PrecioUnitario string `form:"precioUnitario" validate:"required,price"`
}

var productMessages = map[string]string{
	"codigo.required":         "El código es requerido",
	"descripcion.required":    "La descripción es requerida",
	"precioUnitario.required": "El precio es requerido",
	"precioUnitario.price":    "El precio debe ser mayor a 0",
}

func ProductDraftFrom(p model.ProductDetail) ProductDraft {
	return ProductDraft{
		Codigo:         p.Codigo,
		Descripcion:    p.Descripcion,
		PrecioUnitario: p.PrecioUnitario.StringFixed(2),
	}
}

func (d ProductDraft) Validate() Errors {
	return check(d, productMessages)
}

// Command validates the draft and builds the create/update payload.
func (d ProductDraft) Command() (model.ProductCommand, Errors) {
	if errs := d.Validate(); !errs.Empty() {
		return model.ProductCommand{}, errs
	}
	price, _ := decimal.NewFromString(strings.TrimSpace(d.PrecioUnitario))
	return model.ProductCommand{
		Codigo:         d.Codigo,
		Descripcion:    d.Descripcion,
		PrecioUnitario: price,
	}, nil
}
