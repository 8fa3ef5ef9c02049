package main

import (
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kiwari-pos/pedidos-web/internal/backend"
	"github.com/kiwari-pos/pedidos-web/internal/form"
	"github.com/kiwari-pos/pedidos-web/internal/model"
)

var demoCustomers = []form.CustomerDraft{
	{Codigo: "C001", Nombre: "María Quispe", DNI: "45871236"},
	{Codigo: "C002", Nombre: "José Huamán", DNI: "70125489"},
	{Codigo: "C003", Nombre: "Rosa Mamani", DNI: "10293847"},
}

var demoProducts = []model.ProductCommand{
	{Codigo: "P001", Descripcion: "Arroz Costeño 5kg", PrecioUnitario: decimal.RequireFromString("24.90")},
	{Codigo: "P002", Descripcion: "Aceite Primor 1L", PrecioUnitario: decimal.RequireFromString("11.50")},
	{Codigo: "P003", Descripcion: "Leche Gloria 400g", PrecioUnitario: decimal.RequireFromString("4.20")},
	{Codigo: "P004", Descripcion: "Azúcar Rubia 1kg", PrecioUnitario: decimal.RequireFromString("4.80")},
}

func main() {
	// CLI flags
	backendURL := flag.String("backend", "", "Backend API base URL")
	insecure := flag.Bool("insecure", false, "Skip TLS verification of the backend certificate")
	flag.Parse()

	// Fall back to environment variables, then the development backend
	if *backendURL == "" {
		*backendURL = os.Getenv("BACKEND_URL")
	}
	if *backendURL == "" {
		*backendURL = "https://localhost:7192/api"
	}

	var opts []backend.Option
	if *insecure || os.Getenv("BACKEND_INSECURE_TLS") == "true" {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		opts = append(opts, backend.WithHTTPClient(&http.Client{Transport: transport}))
	}
	client := backend.New(*backendURL, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created, skipped, err := seedCustomers(ctx, client)
	if err != nil {
		log.Fatalf("Failed to seed customers: %v", err)
	}
	log.Printf("Customers: %d created, %d skipped", created, skipped)

	created, skipped, err = seedProducts(ctx, client)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("Products: %d created, %d skipped", created, skipped)

	log.Println("Seed completed successfully")
}

// seedCustomers creates the demo customers, skipping those the backend
// already has.
func seedCustomers(ctx context.Context, client *backend.Client) (created, skipped int, err error) {
	for _, d := range demoCustomers {
		cmd, errs := d.CreateCommand()
		if !errs.Empty() {
			return created, skipped, fmt.Errorf("invalid demo customer %s: %v", d.Codigo, errs)
		}
		if err := client.CreateCustomer(ctx, cmd); err != nil {
			if backend.IsConflict(err) {
				log.Printf("Customer '%s' already exists, skipping", d.Codigo)
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("create customer %s: %w", d.Codigo, err)
		}
		log.Printf("Created customer '%s' (%s)", d.Codigo, d.Nombre)
		created++
	}
	return created, skipped, nil
}

// seedProducts creates the demo products, skipping those the backend
// already has.
func seedProducts(ctx context.Context, client *backend.Client) (created, skipped int, err error) {
	for _, p := range demoProducts {
		got, err := client.CreateProduct(ctx, p)
		if err != nil {
			if backend.IsConflict(err) {
				log.Printf("Product '%s' already exists, skipping", p.Codigo)
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("create product %s: %w", p.Codigo, err)
		}
		log.Printf("Created product '%s' at %s", got.Codigo, model.FormatMoney(got.PrecioUnitario))
		created++
	}
	return created, skipped, nil
}
