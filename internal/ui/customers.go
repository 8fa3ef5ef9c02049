package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/kiwari-pos/pedidos-web/internal/backend"
	"github.com/kiwari-pos/pedidos-web/internal/form"
	"github.com/kiwari-pos/pedidos-web/internal/model"
)

// CustomerManager is the "clientes" tab: the customer table plus an inline
// create/edit form.
type CustomerManager struct {
	api CustomerAPI

	Customers []model.Customer
	Loaded    bool
	Error     string
	Notice    string
	Prompt    Prompt

	ShowForm bool
	Draft    form.CustomerDraft
	Errors   form.Errors
	Saving   bool

	editingID int
	inFlight  int
	pending   int
}

func NewCustomerManager(api CustomerAPI) *CustomerManager {
	return &CustomerManager{api: api}
}

func (m *CustomerManager) Load(ctx context.Context) {
	m.Error = ""
	customers, err := m.api.ListCustomers(ctx)
	m.Loaded = true
	if err != nil {
		log.Printf("ERROR: list customers: %v", err)
		m.Error = "Error al cargar los clientes"
		return
	}
	m.Customers = customers
}

// IsEditing reports whether the form targets an existing customer.
func (m *CustomerManager) IsEditing() bool {
	return m.editingID != 0
}

func (m *CustomerManager) Pending() bool {
	return m.inFlight != 0
}

func (m *CustomerManager) IsDeleting(id int) bool {
	return m.inFlight != 0 && m.inFlight == id
}

// New opens an empty form.
func (m *CustomerManager) New() {
	m.open(0, form.CustomerDraft{})
}

// Edit opens the form pre-filled with customer id. The update will target id
// even if the code is changed.
func (m *CustomerManager) Edit(id int) bool {
	i := m.find(id)
	if i < 0 {
		return false
	}
	m.open(id, form.CustomerDraftFrom(m.Customers[i]))
	return true
}

func (m *CustomerManager) open(id int, d form.CustomerDraft) {
	m.ShowForm = true
	m.editingID = id
	m.Draft = d
	m.Errors = nil
	m.Error = ""
	m.Notice = ""
}

// Cancel closes the form and discards the draft.
func (m *CustomerManager) Cancel() {
	m.ShowForm = false
	m.editingID = 0
	m.Draft = form.CustomerDraft{}
	m.Errors = nil
}

// Update stores the posted values; the DNI is sanitized.
func (m *CustomerManager) Update(d form.CustomerDraft) {
	d.SetDNI(d.DNI)
	m.Draft = d
}

// Submit validates and saves the draft, then refetches the table.
func (m *CustomerManager) Submit(ctx context.Context) bool {
	if m.Saving || !m.ShowForm {
		return false
	}
	editing := m.IsEditing()

	var (
		errs form.Errors
		err  error
	)
	m.Notice = ""
	m.Error = ""
	if editing {
		var cmd model.UpdateCustomerCommand
		if cmd, errs = m.Draft.UpdateCommand(m.editingID); errs.Empty() {
			m.Saving = true
			err = m.api.UpdateCustomer(ctx, m.editingID, cmd)
		}
	} else {
		var cmd model.CreateCustomerCommand
		if cmd, errs = m.Draft.CreateCommand(); errs.Empty() {
			m.Saving = true
			err = m.api.CreateCustomer(ctx, cmd)
		}
	}
	m.Saving = false
	m.Errors = errs
	if !errs.Empty() {
		return false
	}
	if err != nil {
		log.Printf("ERROR: save customer: %v", err)
		var notFound string
		if editing {
			notFound = customerNotFound(m.editingID)
		}
		m.Error = saveError(err, notFound, "Ya existe un cliente con ese código", fmt.Sprintf("Error al %s el cliente", verb(editing)))
		return false
	}

	m.Cancel()
	m.Notice = fmt.Sprintf("Cliente %s exitosamente", pastVerb(editing))
	m.Load(ctx)
	return true
}

func (m *CustomerManager) RequestDelete(id int) bool {
	i := m.find(id)
	if i < 0 || m.inFlight != 0 {
		return false
	}
	m.pending = id
	m.Prompt = deletePrompt(
		"¿Eliminar Cliente?",
		fmt.Sprintf("¿Estás seguro de eliminar el cliente \"%s\"? Esta acción no se puede deshacer.", m.Customers[i].Nombre),
		"/customers/delete/confirm",
		"/customers/delete/cancel",
	)
	return true
}

func (m *CustomerManager) CancelDelete() {
	m.Prompt = Prompt{}
	m.pending = 0
}

func (m *CustomerManager) ConfirmDelete() (Deletion, bool) {
	if !m.Prompt.Open || m.pending == 0 {
		return Deletion{}, false
	}
	id := m.pending
	m.Prompt = Prompt{}
	m.pending = 0
	m.inFlight = id
	m.Error = ""
	m.Notice = ""

	api := m.api
	return Deletion{
		Run: func(ctx context.Context) error {
			return api.DeleteCustomer(ctx, id)
		},
		Finish: func(err error) {
			m.finishDelete(id, err)
		},
	}, true
}

func (m *CustomerManager) finishDelete(id int, err error) {
	if m.inFlight == id {
		m.inFlight = 0
	}
	if err != nil {
		switch {
		case backend.IsNotFound(err):
			m.Error = customerNotFound(id)
		case backend.IsConflict(err):
			m.Error = or(backend.BodyMessage(err), "No se puede eliminar el cliente porque tiene pedidos asociados")
		default:
			m.Error = "Error al eliminar el cliente. Por favor intenta nuevamente."
		}
		return
	}
	if i := m.find(id); i >= 0 {
		m.Customers = append(m.Customers[:i:i], m.Customers[i+1:]...)
	}
	m.Notice = "Cliente eliminado exitosamente"
}

func (m *CustomerManager) find(id int) int {
	for i, c := range m.Customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func customerNotFound(id int) string {
	return fmt.Sprintf("No se encontró el cliente con ID %d", id)
}
