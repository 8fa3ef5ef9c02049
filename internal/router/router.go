package router

import (
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kiwari-pos/pedidos-web/internal/config"
	"github.com/kiwari-pos/pedidos-web/internal/handler"
	mw "github.com/kiwari-pos/pedidos-web/internal/middleware"
	"github.com/kiwari-pos/pedidos-web/internal/session"
	"github.com/kiwari-pos/pedidos-web/internal/ws"
)

// New creates a Chi router with the console routes wired up.
// Every console route runs inside a browser session; the WebSocket only
// accepts sessions that already exist.
func New(cfg *config.Config, store *session.Store, hub *ws.Hub, renderer *handler.Renderer, deleter *handler.Deleter) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	healthHandler := handler.NewHealthHandler(store)
	r.Get("/health", healthHandler.Health)

	// WebSocket route (session from the signed cookie)
	r.With(mw.RequireSession(store, cfg.SessionSecret)).
		Get("/ws", ws.ServeWS(hub, ws.NewUpgrader(cfg.AllowedOrigins)))

	// Console routes
	r.Group(func(r chi.Router) {
		r.Use(mw.Session(store, cfg.SessionSecret, cfg.SessionTTL))

		shellHandler := handler.NewShellHandler(renderer)
		shellHandler.RegisterRoutes(r)

		orderHandler := handler.NewOrderHandler(deleter)
		r.Route("/orders", orderHandler.RegisterRoutes)

		customerHandler := handler.NewCustomerHandler(deleter)
		r.Route("/customers", customerHandler.RegisterRoutes)

		productHandler := handler.NewProductHandler(deleter)
		r.Route("/products", productHandler.RegisterRoutes)
	})

	log.Println("Router initialized with all handlers")
	return r
}
