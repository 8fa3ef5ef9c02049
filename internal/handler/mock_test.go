package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiwari-pos/pedidos-web/internal/backend"
	"github.com/kiwari-pos/pedidos-web/internal/handler"
	mw "github.com/kiwari-pos/pedidos-web/internal/middleware"
	"github.com/kiwari-pos/pedidos-web/internal/model"
	"github.com/kiwari-pos/pedidos-web/internal/session"
	"github.com/kiwari-pos/pedidos-web/internal/ui"
)

// --- Mock backend ---

type mockAPI struct {
	mu        sync.Mutex
	orders    []model.Order
	customers []model.Customer
	products  []model.ProductDetail

	deleteErr error
	created   []model.CreateOrderCommand
	getCalls  int
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		orders: []model.Order{
			{
				ID:      1,
				Cliente: model.OrderCustomer{Codigo: "C1", Nombre: "Ana", DNI: "12345678"},
				Detalles: []model.LineItem{
					{ProductoCodigo: "P1", ProductoDescripcion: "Arroz", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(4), Subtotal: decimal.NewFromInt(8)},
				},
				Total: decimal.NewFromInt(8),
			},
			{
				ID:      2,
				Cliente: model.OrderCustomer{Codigo: "C2", Nombre: "Luis", DNI: "87654321"},
			},
		},
		customers: []model.Customer{
			{ID: 1, Codigo: "C1", Nombre: "Ana", DNI: "12345678"},
			{ID: 2, Codigo: "C2", Nombre: "Luis", DNI: "87654321"},
		},
		products: []model.ProductDetail{
			{Codigo: "P1", Descripcion: "Arroz", PrecioUnitario: decimal.NewFromInt(4)},
			{Codigo: "A/1", Descripcion: "Caja surtida", PrecioUnitario: decimal.RequireFromString("12.5")},
		},
	}
}

func notFound(path string) error {
	return &backend.APIError{Method: http.MethodGet, Path: path, StatusCode: http.StatusNotFound}
}

func (m *mockAPI) ListOrders(_ context.Context) ([]model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Order(nil), m.orders...), nil
}

func (m *mockAPI) GetOrder(_ context.Context, id int) (model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, notFound("/Pedidos/detalle")
}

func (m *mockAPI) CreateOrder(_ context.Context, cmd model.CreateOrderCommand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, cmd)
	m.orders = append(m.orders, model.Order{
		ID:      100 + len(m.created),
		Cliente: model.OrderCustomer{Codigo: cmd.ClienteCodigo},
	})
	return nil
}

func (m *mockAPI) UpdateOrder(_ context.Context, _ int, _ model.UpdateOrderCommand) error {
	return nil
}

func (m *mockAPI) DeleteOrder(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, o := range m.orders {
		if o.ID == id {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return notFound("/Pedidos")
}

func (m *mockAPI) ListCustomers(_ context.Context) ([]model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Customer(nil), m.customers...), nil
}

func (m *mockAPI) CreateCustomer(_ context.Context, _ model.CreateCustomerCommand) error {
	return nil
}

func (m *mockAPI) UpdateCustomer(_ context.Context, _ int, _ model.UpdateCustomerCommand) error {
	return nil
}

func (m *mockAPI) DeleteCustomer(_ context.Context, _ int) error {
	return nil
}

func (m *mockAPI) ListProducts(_ context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Product, len(m.products))
	for i, p := range m.products {
		out[i] = model.Product{Codigo: p.Codigo, Descripcion: p.Descripcion}
	}
	return out, nil
}

func (m *mockAPI) ListProductDetails(_ context.Context) ([]model.ProductDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ProductDetail(nil), m.products...), nil
}

func (m *mockAPI) CreateProduct(_ context.Context, cmd model.ProductCommand) (model.ProductDetail, error) {
	return model.ProductDetail(cmd), nil
}

func (m *mockAPI) UpdateProduct(_ context.Context, _ string, _ model.ProductCommand) error {
	return nil
}

func (m *mockAPI) DeleteProduct(_ context.Context, _ string) error {
	return nil
}

// --- Mock notifier ---

type pushed struct {
	sessionID uuid.UUID
	eventType string
}

type mockNotifier struct {
	mu     sync.Mutex
	events []pushed
}

func (n *mockNotifier) Notify(sessionID uuid.UUID, eventType string, _ any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, pushed{sessionID: sessionID, eventType: eventType})
	return nil
}

func (n *mockNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

// --- Test console ---

// console wires the handlers around one fixed session.
type console struct {
	t        *testing.T
	api      *mockAPI
	sess     *session.Session
	notifier *mockNotifier
	deleter  *handler.Deleter
	router   chi.Router
}

func newConsole(t *testing.T) *console {
	t.Helper()

	api := newMockAPI()
	store := session.NewStore(time.Hour, func() *ui.Shell { return ui.NewShell(api) })
	sess := store.Create()

	renderer, err := handler.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	notifier := &mockNotifier{}
	deleter := handler.NewDeleter(notifier)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(mw.WithSession(r.Context(), sess)))
		})
	})
	handler.NewShellHandler(renderer).RegisterRoutes(r)
	r.Route("/orders", handler.NewOrderHandler(deleter).RegisterRoutes)
	r.Route("/customers", handler.NewCustomerHandler(deleter).RegisterRoutes)
	r.Route("/products", handler.NewProductHandler(deleter).RegisterRoutes)

	return &console{t: t, api: api, sess: sess, notifier: notifier, deleter: deleter, router: r}
}

// post submits form to path and expects the redirect back to the console.
func (c *console) post(path string, form url.Values) {
	c.t.Helper()
	rr := c.do(path, form)
	if rr.Code != http.StatusSeeOther {
		c.t.Fatalf("POST %s: status %d, want %d: %s", path, rr.Code, http.StatusSeeOther, rr.Body.String())
	}
	if loc := rr.Header().Get("Location"); loc != "/" {
		c.t.Fatalf("POST %s: redirected to %q, want /", path, loc)
	}
}

func (c *console) do(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, req)
	return rr
}

// page renders the console and returns the HTML.
func (c *console) page() string {
	c.t.Helper()
	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusOK {
		c.t.Fatalf("GET /: status %d: %s", rr.Code, rr.Body.String())
	}
	return rr.Body.String()
}
