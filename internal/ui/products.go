package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/kiwari-pos/pedidos-web/internal/backend"
	"github.com/kiwari-pos/pedidos-web/internal/form"
	"github.com/kiwari-pos/pedidos-web/internal/model"
)

// ProductManager is the "productos" tab. Products are keyed by code, and the
// edit form remembers the original code so a renamed product is still updated
// at its old address.
type ProductManager struct {
	api ProductAPI

	Products []model.ProductDetail
	Loaded   bool
	Error    string
	Notice   string
	Prompt   Prompt

	ShowForm bool
	Draft    form.ProductDraft
	Errors   form.Errors
	Saving   bool

	editing      bool
	originalCode string
	inFlight     string
	pending      string
}

func NewProductManager(api ProductAPI) *ProductManager {
	return &ProductManager{api: api}
}

func (m *ProductManager) Load(ctx context.Context) {
	m.Error = ""
	products, err := m.api.ListProductDetails(ctx)
	m.Loaded = true
	if err != nil {
		log.Printf("ERROR: list products: %v", err)
		m.Error = "Error al cargar los productos"
		return
	}
	m.Products = products
}

func (m *ProductManager) IsEditing() bool {
	return m.editing
}

// OriginalCode is the code the product had when editing started.
func (m *ProductManager) OriginalCode() string {
	return m.originalCode
}

func (m *ProductManager) Pending() bool {
	return m.inFlight != ""
}

func (m *ProductManager) IsDeleting(codigo string) bool {
	return m.inFlight != "" && m.inFlight == codigo
}

func (m *ProductManager) New() {
	m.open(false, "", form.ProductDraft{})
}

func (m *ProductManager) Edit(codigo string) bool {
	i := m.find(codigo)
	if i < 0 {
		return false
	}
	m.open(true, codigo, form.ProductDraftFrom(m.Products[i]))
	return true
}

func (m *ProductManager) open(editing bool, code string, d form.ProductDraft) {
	m.ShowForm = true
	m.editing = editing
	m.originalCode = code
	m.Draft = d
	m.Errors = nil
	m.Error = ""
	m.Notice = ""
}

func (m *ProductManager) Cancel() {
	m.ShowForm = false
	m.editing = false
	m.originalCode = ""
	m.Draft = form.ProductDraft{}
	m.Errors = nil
}

func (m *ProductManager) Update(d form.ProductDraft) {
	m.Draft = d
}

// Submit validates and saves the draft, then refetches the table.
func (m *ProductManager) Submit(ctx context.Context) bool {
	if m.Saving || !m.ShowForm {
		return false
	}
	m.Notice = ""
	m.Error = ""

	cmd, errs := m.Draft.Command()
	m.Errors = errs
	if !errs.Empty() {
		return false
	}

	m.Saving = true
	var err error
	if m.editing {
		err = m.api.UpdateProduct(ctx, m.originalCode, cmd)
	} else {
		_, err = m.api.CreateProduct(ctx, cmd)
	}
	m.Saving = false
	if err != nil {
		log.Printf("ERROR: save product: %v", err)
		var notFound string
		if m.editing {
			notFound = productNotFound(m.originalCode)
		}
		m.Error = saveError(err, notFound,
			fmt.Sprintf("Ya existe un producto con el código %s", cmd.Codigo),
			fmt.Sprintf("Error al %s el producto", verb(m.editing)))
		return false
	}

	editing := m.editing
	m.Cancel()
	m.Notice = fmt.Sprintf("Producto %s exitosamente", pastVerb(editing))
	m.Load(ctx)
	return true
}

func (m *ProductManager) RequestDelete(codigo string) bool {
	i := m.find(codigo)
	if i < 0 || m.inFlight != "" {
		return false
	}
	p := m.Products[i]
	m.pending = codigo
	m.Prompt = deletePrompt(
		"¿Eliminar Producto?",
		fmt.Sprintf("¿Estás seguro de eliminar el producto \"%s\" (%s)? Esta acción no se puede deshacer.", p.Descripcion, p.Codigo),
		"/products/delete/confirm",
		"/products/delete/cancel",
	)
	return true
}

func (m *ProductManager) CancelDelete() {
	m.Prompt = Prompt{}
	m.pending = ""
}

func (m *ProductManager) ConfirmDelete() (Deletion, bool) {
	if !m.Prompt.Open || m.pending == "" {
		return Deletion{}, false
	}
	codigo := m.pending
	m.Prompt = Prompt{}
	m.pending = ""
	m.inFlight = codigo
	m.Error = ""
	m.Notice = ""

	api := m.api
	return Deletion{
		Run: func(ctx context.Context) error {
			return api.DeleteProduct(ctx, codigo)
		},
		Finish: func(err error) {
			m.finishDelete(codigo, err)
		},
	}, true
}

func (m *ProductManager) finishDelete(codigo string, err error) {
	if m.inFlight == codigo {
		m.inFlight = ""
	}
	if err != nil {
		if backend.IsNotFound(err) {
			m.Error = productNotFound(codigo)
		} else {
			m.Error = "Error al eliminar el producto. Por favor intenta nuevamente."
		}
		return
	}
	if i := m.find(codigo); i >= 0 {
		m.Products = append(m.Products[:i:i], m.Products[i+1:]...)
	}
	m.Notice = "Producto eliminado exitosamente"
}

func (m *ProductManager) find(codigo string) int {
	for i, p := range m.Products {
		if p.Codigo == codigo {
			return i
		}
	}
	return -1
}

func productNotFound(codigo string) string {
	return fmt.Sprintf("No se encontró el producto con código %s", codigo)
}
