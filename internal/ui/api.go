// Package ui holds the per-session screen state of the console: one tab shell
// with exactly one active screen. Screens are not safe for concurrent use; the
// owning session serializes every call.
package ui

import (
	"context"

	"github.com/kiwari-pos/pedidos-web/internal/model"
)

// ReferenceAPI is the read side used to fill the order form selectors.
type ReferenceAPI interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type OrderAPI interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int) (model.Order, error)
	CreateOrder(ctx context.Context, cmd model.CreateOrderCommand) error
	UpdateOrder(ctx context.Context, id int, cmd model.UpdateOrderCommand) error
	DeleteOrder(ctx context.Context, id int) error
}

// OrderFormAPI is what the create and edit order forms need.
type OrderFormAPI interface {
	ReferenceAPI
	OrderAPI
}

type CustomerAPI interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	CreateCustomer(ctx context.Context, cmd model.CreateCustomerCommand) error
	UpdateCustomer(ctx context.Context, id int, cmd model.UpdateCustomerCommand) error
	DeleteCustomer(ctx context.Context, id int) error
}

type ProductAPI interface {
	ListProductDetails(ctx context.Context) ([]model.ProductDetail, error)
	CreateProduct(ctx context.Context, cmd model.ProductCommand) (model.ProductDetail, error)
	UpdateProduct(ctx context.Context, codigo string, cmd model.ProductCommand) error
	DeleteProduct(ctx context.Context, codigo string) error
}

// API is the full backend surface; *backend.Client satisfies it.
type API interface {
	OrderFormAPI
	CustomerAPI
	ProductAPI
}
