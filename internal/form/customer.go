package form

import (
	"strings"
	"unicode"

	"github.com/kiwari-pos/pedidos-web/internal/model"
)

// DNILength is the exact number of digits of a national ID.
const DNILength = 8

type CustomerDraft struct {
	Codigo string `form:"codigo" validate:"required"`
	Nombre string `form:"nombre" validate:"required"`
	DNI    string `form:"dni" validate:"required,dni"`
}

var customerMessages = map[string]string{
	"codigo.required": "El código es requerido",
	"nombre.required": "El nombre es requerido",
	"dni.required":    "El DNI es requerido",
	"dni.dni":         "El DNI debe tener 8 dígitos",
}

// SanitizeDNI strips every non-digit and truncates to DNILength, the same
// filter applied in the browser while typing.
func SanitizeDNI(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == DNILength {
			break
		}
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SetDNI stores raw input through SanitizeDNI.
func (d *CustomerDraft) SetDNI(raw string) {
	d.DNI = SanitizeDNI(raw)
}

func CustomerDraftFrom(c model.Customer) CustomerDraft {
	return CustomerDraft{Codigo: c.Codigo, Nombre: c.Nombre, DNI: c.DNI}
}

func (d CustomerDraft) Validate() Errors {
	return check(d, customerMessages)
}

func (d CustomerDraft) CreateCommand() (model.CreateCustomerCommand, Errors) {
	if errs := d.Validate(); !errs.Empty() {
		return model.CreateCustomerCommand{}, errs
	}
	return model.CreateCustomerCommand{Codigo: d.Codigo, Nombre: d.Nombre, DNI: d.DNI}, nil
}

func (d CustomerDraft) UpdateCommand(id int) (model.UpdateCustomerCommand, Errors) {
	if errs := d.Validate(); !errs.Empty() {
		return model.UpdateCustomerCommand{}, errs
	}
	return model.UpdateCustomerCommand{ID: id, Codigo: d.Codigo, Nombre: d.Nombre, DNI: d.DNI}, nil
}
