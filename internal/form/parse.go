package form

import (
	"net/url"
	"strconv"
	"strings"
)

// ParseOrderDraft reads an order form post: clienteCodigo plus
// items[i].productoCodigo / items[i].cantidad for consecutive i from 0.
func ParseOrderDraft(v url.Values) OrderDraft {
	d := OrderDraft{ClienteCodigo: strings.TrimSpace(v.Get("clienteCodigo"))}
	for i := 0; ; i++ {
		prefix := "items[" + strconv.Itoa(i) + "]."
		code, hasCode := v[prefix+"productoCodigo"]
		qty, hasQty := v[prefix+"cantidad"]
		if !hasCode && !hasQty {
			break
		}
		d.Items = append(d.Items, ItemDraft{
			ProductoCodigo: strings.TrimSpace(first(code)),
			Cantidad:       strings.TrimSpace(first(qty)),
		})
	}
	return d
}

// ParseCustomerDraft reads a customer form post. The DNI is sanitized.
func ParseCustomerDraft(v url.Values) CustomerDraft {
	d := CustomerDraft{
		Codigo: strings.TrimSpace(v.Get("codigo")),
		Nombre: strings.TrimSpace(v.Get("nombre")),
	}
	d.SetDNI(v.Get("dni"))
	return d
}

func ParseProductDraft(v url.Values) ProductDraft {
	return ProductDraft{
		Codigo:         strings.TrimSpace(v.Get("codigo")),
		Descripcion:    strings.TrimSpace(v.Get("descripcion")),
		PrecioUnitario: strings.TrimSpace(v.Get("precioUnitario")),
	}
}

func first(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}
