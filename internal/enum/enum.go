package enum

// ── Tabs (one active screen at a time) ──

type Tab string

const (
	TabOrders    Tab = "listar"
	TabCreate    Tab = "crear"
	TabLookup    Tab = "consultar"
	TabProducts  Tab = "productos"
	TabCustomers Tab = "clientes"
)

// Tabs lists the shell tabs in display order.
var Tabs = []Tab{TabOrders, TabCreate, TabLookup, TabProducts, TabCustomers}

func (t Tab) Valid() bool {
	for _, v := range Tabs {
		if v == t {
			return true
		}
	}
	return false
}

func (t Tab) Label() string {
	switch t {
	case TabOrders:
		return "📋 Lista de Pedidos"
	case TabCreate:
		return "➕ Crear Pedido"
	case TabLookup:
		return "🔍 Consultar Pedido"
	case TabProducts:
		return "📦 Productos"
	case TabCustomers:
		return "👥 Clientes"
	}
	return string(t)
}

// ── Form phases ──

type FormPhase int

const (
	PhaseLoading FormPhase = iota
	PhaseReady
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p FormPhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// ── Prompt severity (colour only) ──

type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// ── Push events ──

const (
	EventScreenUpdated = "screen.updated"
)
