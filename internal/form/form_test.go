package form

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwari-pos/pedidos-web/internal/model"
)

func TestNewOrderDraftHasOneBlankItem(t *testing.T) {
	d := NewOrderDraft()

	require.Len(t, d.Items, 1)
	assert.Equal(t, ItemDraft{ProductoCodigo: "", Cantidad: "1"}, d.Items[0])
	assert.False(t, d.CanRemove())
}

func TestAppendAndRemoveItems(t *testing.T) {
	d := NewOrderDraft()

	assert.False(t, d.RemoveItem(0), "the only line cannot be removed")
	assert.Len(t, d.Items, 1)

	d.Items[0].ProductoCodigo = "P1"
	d.AppendItem()
	d.AppendItem()
	require.Len(t, d.Items, 3)
	assert.Equal(t, BlankItem(), d.Items[2])

	assert.False(t, d.RemoveItem(5))
	assert.False(t, d.RemoveItem(-1))

	assert.True(t, d.RemoveItem(0))
	require.Len(t, d.Items, 2)
	assert.Equal(t, "", d.Items[0].ProductoCodigo)

	assert.True(t, d.RemoveItem(1))
	assert.False(t, d.RemoveItem(0))
	assert.Len(t, d.Items, 1)
}

func TestOrderDraftValidation(t *testing.T) {
	testCases := map[string]struct {
		draft OrderDraft
		want  Errors
	}{
		"valid": {
			draft: OrderDraft{ClienteCodigo: "C1", Items: []ItemDraft{{ProductoCodigo: "P1", Cantidad: "2"}}},
			want:  nil,
		},
		"missing customer and product": {
			draft: OrderDraft{Items: []ItemDraft{{Cantidad: "1"}}},
			want: Errors{
				"clienteCodigo":           "El código del cliente es requerido",
				"items[0].productoCodigo": "El código del producto es requerido",
			},
		},
		"bad quantities": {
			draft: OrderDraft{ClienteCodigo: "C1", Items: []ItemDraft{
				{ProductoCodigo: "P1", Cantidad: "0"},
				{ProductoCodigo: "P2", Cantidad: "1.5"},
				{ProductoCodigo: "P3", Cantidad: ""},
				{ProductoCodigo: "P4", Cantidad: "3"},
			}},
			want: Errors{
				"items[0].cantidad": "La cantidad debe ser mayor a 0",
				"items[1].cantidad": "La cantidad debe ser mayor a 0",
				"items[2].cantidad": "La cantidad es requerida",
			},
		},
		"no items": {
			draft: OrderDraft{ClienteCodigo: "C1"},
			want:  Errors{"items": "Debe agregar al menos un producto"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := tc.draft.Validate()
			if tc.want == nil {
				assert.True(t, got.Empty(), "unexpected errors: %v", got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCreateCommandCarriesExactlyTheEnteredValues(t *testing.T) {
	d := OrderDraft{ClienteCodigo: "C7", Items: []ItemDraft{
		{ProductoCodigo: "P1", Cantidad: "2"},
		{ProductoCodigo: "P9", Cantidad: " 11 "},
	}}

	cmd, errs := d.CreateCommand()

	require.True(t, errs.Empty())
	assert.Equal(t, model.CreateOrderCommand{
		ClienteCodigo: "C7",
		Items: []model.OrderItem{
			{ProductoCodigo: "P1", Cantidad: 2},
			{ProductoCodigo: "P9", Cantidad: 11},
		},
	}, cmd)
}

func TestUpdateCommandBlocksOnErrors(t *testing.T) {
	d := OrderDraft{ClienteCodigo: "", Items: []ItemDraft{{ProductoCodigo: "P1", Cantidad: "1"}}}

	_, errs := d.UpdateCommand(4)

	assert.True(t, errs.Has("clienteCodigo"))
}

func TestOrderDraftFromDropsPrices(t *testing.T) {
	o := model.Order{
		ID:      3,
		Cliente: model.OrderCustomer{Codigo: "C2", Nombre: "Rosa"},
		Detalles: []model.LineItem{
			{ProductoCodigo: "P1", Cantidad: 4, PrecioUnitario: decimal.NewFromInt(3), Subtotal: decimal.NewFromInt(12)},
			{ProductoCodigo: "P5", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(9), Subtotal: decimal.NewFromInt(9)},
		},
	}

	d := OrderDraftFrom(o)

	assert.Equal(t, "C2", d.ClienteCodigo)
	require.Len(t, d.Items, len(o.Detalles))
	for i, det := range o.Detalles {
		assert.Equal(t, det.ProductoCodigo, d.Items[i].ProductoCodigo)
	}
	assert.Equal(t, "4", d.Items[0].Cantidad)
	assert.Equal(t, "1", d.Items[1].Cantidad)

	cmd, errs := d.UpdateCommand(3)
	require.True(t, errs.Empty())
	assert.Equal(t, 3, cmd.PedidoID)
	assert.Equal(t, []model.OrderItem{{ProductoCodigo: "P1", Cantidad: 4}, {ProductoCodigo: "P5", Cantidad: 1}}, cmd.Items)
}

func TestSanitizeDNI(t *testing.T) {
	testCases := map[string]string{
		"12a3456b78": "12345678",
		"123":        "123",
		"1234567890": "12345678",
		"abc":        "",
	}

	for input, want := range testCases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, SanitizeDNI(input))
		})
	}
}

func TestCustomerDraftValidation(t *testing.T) {
	testCases := map[string]struct {
		draft CustomerDraft
		want  Errors
	}{
		"valid": {
			draft: CustomerDraft{Codigo: "C1", Nombre: "Ana", DNI: "12345678"},
		},
		"all missing": {
			draft: CustomerDraft{},
			want: Errors{
				"codigo": "El código es requerido",
				"nombre": "El nombre es requerido",
				"dni":    "El DNI es requerido",
			},
		},
		"short dni": {
			draft: CustomerDraft{Codigo: "C1", Nombre: "Ana", DNI: "1234567"},
			want:  Errors{"dni": "El DNI debe tener 8 dígitos"},
		},
		"dni with letters": {
			draft: CustomerDraft{Codigo: "C1", Nombre: "Ana", DNI: "1234567a"},
			want:  Errors{"dni": "El DNI debe tener 8 dígitos"},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := tc.draft.Validate()
			if tc.want == nil {
				assert.True(t, got.Empty(), "unexpected errors: %v", got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCustomerSetDNI(t *testing.T) {
	var d CustomerDraft
	d.SetDNI("12a3456b78")
	assert.Equal(t, "12345678", d.DNI)

	cmd, errs := CustomerDraft{Codigo: "C1", Nombre: "Ana", DNI: d.DNI}.UpdateCommand(12)
	require.True(t, errs.Empty())
	assert.Equal(t, model.UpdateCustomerCommand{ID: 12, Codigo: "C1", Nombre: "Ana", DNI: "12345678"}, cmd)
}

func TestProductDraftValidation(t *testing.T) {
	testCases := map[string]struct {
		price   string
		wantErr string
	}{
		"minimum":     {price: "0.01"},
		"normal":      {price: " 12.50 "},
		"zero":        {price: "0", wantErr: "El precio debe ser mayor a 0"},
		"below min":   {price: "0.009", wantErr: "El precio debe ser mayor a 0"},
		"negative":    {price: "-3", wantErr: "El precio debe ser mayor a 0"},
		"not numeric": {price: "diez", wantErr: "El precio debe ser mayor a 0"},
		"empty":       {price: "", wantErr: "El precio es requerido"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			d := ProductDraft{Codigo: "P1", Descripcion: "Arroz", PrecioUnitario: tc.price}
			errs := d.Validate()
			assert.Equal(t, tc.wantErr, errs.Get("precioUnitario"))
		})
	}
}

func TestProductCommand(t *testing.T) {
	cmd, errs := ProductDraft{Codigo: "P1", Descripcion: "Arroz", PrecioUnitario: "3.50"}.Command()

	require.True(t, errs.Empty())
	assert.Equal(t, "P1", cmd.Codigo)
	assert.True(t, cmd.PrecioUnitario.Equal(decimal.RequireFromString("3.5")))

	_, errs = ProductDraft{PrecioUnitario: "1"}.Command()
	assert.Equal(t, "El código es requerido", errs.Get("codigo"))
	assert.Equal(t, "La descripción es requerida", errs.Get("descripcion"))
}

func TestProductDraftFrom(t *testing.T) {
	d := ProductDraftFrom(model.ProductDetail{Codigo: "P1", Descripcion: "Arroz", PrecioUnitario: decimal.RequireFromString("3.5")})
	assert.Equal(t, ProductDraft{Codigo: "P1", Descripcion: "Arroz", PrecioUnitario: "3.50"}, d)
}
