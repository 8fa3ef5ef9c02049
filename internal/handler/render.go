package handler

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/kiwari-pos/pedidos-web/internal/enum"
	"github.com/kiwari-pos/pedidos-web/internal/model"
	"github.com/kiwari-pos/pedidos-web/internal/ui"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"money":         model.FormatMoney,
	"customerLabel": ui.CustomerLabel,
	"pathEscape":    url.PathEscape,
}

// Renderer executes the embedded console templates.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("console").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// page is the layout's data. Exactly one of the screen fields is set.
type page struct {
	Tabs   []enum.Tab
	Active enum.Tab
	Event  string
	// Refresh makes the page reload itself while a delete is pending, in
	// case the push arrives before the socket is open.
	Refresh bool

	Orders    *ui.OrderList
	Create    *ui.OrderForm
	Lookup    *ui.OrderLookup
	Products  *ui.ProductManager
	Customers *ui.CustomerManager
}

// Page renders sh. Callers hold the session lock.
func (rd *Renderer) Page(w io.Writer, sh *ui.Shell) error {
	p := page{Tabs: enum.Tabs, Active: sh.Active(), Event: enum.EventScreenUpdated}
	switch sc := sh.Screen().(type) {
	case *ui.OrderList:
		p.Orders = sc
		p.Refresh = sc.Pending()
	case *ui.OrderForm:
		p.Create = sc
	case *ui.OrderLookup:
		p.Lookup = sc
	case *ui.ProductManager:
		p.Products = sc
		p.Refresh = sc.Pending()
	case *ui.CustomerManager:
		p.Customers = sc
		p.Refresh = sc.Pending()
	}
	return rd.tmpl.ExecuteTemplate(w, "page", p)
}
