// Package backend is the HTTP client for the remote order, customer and
// product API. Each method is a single round trip: no retries, no batching
// and no timeout beyond the caller's context.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kiwari-pos/pedidos-web/internal/model"
)

// Client talks to the backend rooted at baseURL (for example
// https://localhost:7192/api).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client, e.g. to trust a
// development certificate.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Orders ---

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/Pedidos", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int) (model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, "/Pedidos/"+strconv.Itoa(id), nil, &order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (c *Client) CreateOrder(ctx context.Context, cmd model.CreateOrderCommand) error {
	return c.do(ctx, http.MethodPost, "/Pedidos", cmd, nil)
}

func (c *Client) UpdateOrder(ctx context.Context, id int, cmd model.UpdateOrderCommand) error {
	return c.do(ctx, http.MethodPut, "/Pedidos/"+strconv.Itoa(id), cmd, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/Pedidos/"+strconv.Itoa(id), nil, nil)
}

// --- Customers ---

func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := c.do(ctx, http.MethodGet, "/Clientes", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, cmd model.CreateCustomerCommand) error {
	return c.do(ctx, http.MethodPost, "/Clientes", cmd, nil)
}

func (c *Client) UpdateCustomer(ctx context.Context, id int, cmd model.UpdateCustomerCommand) error {
	return c.do(ctx, http.MethodPut, "/Clientes/"+strconv.Itoa(id), cmd, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/Clientes/"+strconv.Itoa(id), nil, nil)
}

// --- Products ---

// ListProducts returns the selector view used by the order forms.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.do(ctx, http.MethodGet, "/Productos", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductDetails returns the same collection with unit prices.
func (c *Client) ListProductDetails(ctx context.Context) ([]model.ProductDetail, error) {
	var products []model.ProductDetail
	if err := c.do(ctx, http.MethodGet, "/Productos", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, cmd model.ProductCommand) (model.ProductDetail, error) {
	var created model.ProductDetail
	if err := c.do(ctx, http.MethodPost, "/Productos", cmd, &created); err != nil {
		return model.ProductDetail{}, err
	}
	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, codigo string, cmd model.ProductCommand) error {
	return c.do(ctx, http.MethodPut, "/Productos/"+url.PathEscape(codigo), cmd, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, codigo string) error {
	return c.do(ctx, http.MethodDelete, "/Productos/"+url.PathEscape(codigo), nil, nil)
}

// do performs one request. in is encoded as the JSON body when non-nil; out
// receives the decoded response when non-nil and the body is not empty.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
