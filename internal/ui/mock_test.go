package ui_test

import (
	"context"
	"sync"

	"github.com/kiwari-pos/pedidos-web/internal/model"
)

// mockAPI is an in-memory backend. Set the *Err fields to make a call fail.
type mockAPI struct {
	mu sync.Mutex

	orders    []model.Order
	customers []model.Customer
	products  []model.ProductDetail

	listOrdersErr     error
	getOrderErr       error
	createOrderErr    error
	updateOrderErr    error
	deleteOrderErr    error
	listCustomersErr  error
	listProductsErr   error
	saveCustomerErr   error
	deleteCustomerErr error
	saveProductErr    error
	deleteProductErr  error

	calls []string

	createdOrders   []model.CreateOrderCommand
	updatedOrders   []model.UpdateOrderCommand
	createdCustomer []model.CreateCustomerCommand
	updatedCustomer []model.UpdateCustomerCommand
	updatedProduct  map[string]model.ProductCommand
	createdProduct  []model.ProductCommand
	nextOrderID     int
}

func (m *mockAPI) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockAPI) count(call string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (m *mockAPI) ListOrders(ctx context.Context) ([]model.Order, error) {
	m.record("ListOrders")
	if m.listOrdersErr != nil {
		return nil, m.listOrdersErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Order(nil), m.orders...), nil
}

func (m *mockAPI) GetOrder(ctx context.Context, id int) (model.Order, error) {
	m.record("GetOrder")
	if m.getOrderErr != nil {
		return model.Order{}, m.getOrderErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, notFound("/Pedidos")
}

func (m *mockAPI) CreateOrder(ctx context.Context, cmd model.CreateOrderCommand) error {
	m.record("CreateOrder")
	if m.createOrderErr != nil {
		return m.createOrderErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createdOrders = append(m.createdOrders, cmd)
	m.nextOrderID++
	o := model.Order{ID: 100 + m.nextOrderID, Cliente: model.OrderCustomer{Codigo: cmd.ClienteCodigo}}
	for _, it := range cmd.Items {
		o.Detalles = append(o.Detalles, model.LineItem{ProductoCodigo: it.ProductoCodigo, Cantidad: it.Cantidad})
	}
	m.orders = append(m.orders, o)
	return nil
}

func (m *mockAPI) UpdateOrder(ctx context.Context, id int, cmd model.UpdateOrderCommand) error {
	m.record("UpdateOrder")
	if m.updateOrderErr != nil {
		return m.updateOrderErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updatedOrders = append(m.updatedOrders, cmd)
	return nil
}

func (m *mockAPI) DeleteOrder(ctx context.Context, id int) error {
	m.record("DeleteOrder")
	if m.deleteOrderErr != nil {
		return m.deleteOrderErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, o := range m.orders {
		if o.ID == id {
			m.orders = append(m.orders[:i:i], m.orders[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockAPI) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	m.record("ListCustomers")
	if m.listCustomersErr != nil {
		return nil, m.listCustomersErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Customer(nil), m.customers...), nil
}

func (m *mockAPI) CreateCustomer(ctx context.Context, cmd model.CreateCustomerCommand) error {
	m.record("CreateCustomer")
	if m.saveCustomerErr != nil {
		return m.saveCustomerErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createdCustomer = append(m.createdCustomer, cmd)
	m.customers = append(m.customers, model.Customer{ID: len(m.customers) + 1, Codigo: cmd.Codigo, Nombre: cmd.Nombre, DNI: cmd.DNI})
	return nil
}

func (m *mockAPI) UpdateCustomer(ctx context.Context, id int, cmd model.UpdateCustomerCommand) error {
	m.record("UpdateCustomer")
	if m.saveCustomerErr != nil {
		return m.saveCustomerErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updatedCustomer = append(m.updatedCustomer, cmd)
	return nil
}

func (m *mockAPI) DeleteCustomer(ctx context.Context, id int) error {
	m.record("DeleteCustomer")
	return m.deleteCustomerErr
}

func (m *mockAPI) ListProducts(ctx context.Context) ([]model.Product, error) {
	m.record("ListProducts")
	if m.listProductsErr != nil {
		return nil, m.listProductsErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Product, len(m.products))
	for i, p := range m.products {
		out[i] = model.Product{Codigo: p.Codigo, Descripcion: p.Descripcion}
	}
	return out, nil
}

func (m *mockAPI) ListProductDetails(ctx context.Context) ([]model.ProductDetail, error) {
	m.record("ListProductDetails")
	if m.listProductsErr != nil {
		return nil, m.listProductsErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ProductDetail(nil), m.products...), nil
}

func (m *mockAPI) CreateProduct(ctx context.Context, cmd model.ProductCommand) (model.ProductDetail, error) {
	m.record("CreateProduct")
	if m.saveProductErr != nil {
		return model.ProductDetail{}, m.saveProductErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createdProduct = append(m.createdProduct, cmd)
	p := model.ProductDetail{Codigo: cmd.Codigo, Descripcion: cmd.Descripcion, PrecioUnitario: cmd.PrecioUnitario}
	m.products = append(m.products, p)
	return p, nil
}

func (m *mockAPI) UpdateProduct(ctx context.Context, codigo string, cmd model.ProductCommand) error {
	m.record("UpdateProduct")
	if m.saveProductErr != nil {
		return m.saveProductErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updatedProduct == nil {
		m.updatedProduct = make(map[string]model.ProductCommand)
	}
	m.updatedProduct[codigo] = cmd
	return nil
}

func (m *mockAPI) DeleteProduct(ctx context.Context, codigo string) error {
	m.record("DeleteProduct")
	return m.deleteProductErr
}
