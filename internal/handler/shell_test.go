package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/kiwari-pos/pedidos-web/internal/handler"
)

func TestShow_RendersDefaultTab(t *testing.T) {
	c := newConsole(t)

	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q", ct)
	}
	if cc := rr.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("cache control: got %q, want no-store", cc)
	}
	body := rr.Body.String()
	for _, want := range []string{"Lista de Pedidos", "Pedido #1", "Pedido #2", "S/ 8.00", `action="/tabs/productos"`} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, `http-equiv="refresh"`) {
		t.Error("page should not auto-refresh without a pending delete")
	}
}

func TestSwitch_ChangesTab(t *testing.T) {
	c := newConsole(t)
	c.page()

	c.post("/tabs/productos", nil)

	body := c.page()
	if !strings.Contains(body, "Gestión de Productos") {
		t.Fatal("expected the products screen")
	}
	if !strings.Contains(body, "S/ 12.50") {
		t.Error("expected product price formatted with two decimals")
	}
	if !strings.Contains(body, "/products/A%2F1/edit") {
		t.Error("expected product code escaped in action paths")
	}
}

func TestSwitch_UnknownTab(t *testing.T) {
	c := newConsole(t)

	rr := c.do("/tabs/reportes", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestShow_NoSession(t *testing.T) {
	renderer, err := handler.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r := chi.NewRouter()
	handler.NewShellHandler(renderer).RegisterRoutes(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

type sessionCount int

func (n sessionCount) Len() int { return int(n) }

func TestHealth(t *testing.T) {
	h := handler.NewHealthHandler(sessionCount(3))

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"status":"ok"`) || !strings.Contains(body, `"sessions":3`) {
		t.Errorf("body: got %s", body)
	}
}
