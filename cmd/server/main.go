package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiwari-pos/pedidos-web/internal/backend"
	"github.com/kiwari-pos/pedidos-web/internal/config"
	"github.com/kiwari-pos/pedidos-web/internal/handler"
	"github.com/kiwari-pos/pedidos-web/internal/router"
	"github.com/kiwari-pos/pedidos-web/internal/session"
	"github.com/kiwari-pos/pedidos-web/internal/ui"
	"github.com/kiwari-pos/pedidos-web/internal/ws"
)

const (
	sweepInterval = 10 * time.Minute
	shutdownGrace = 10 * time.Second
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []backend.Option
	if cfg.BackendInsecureTLS {
		// Development backends run on a self-signed certificate.
		log.Println("WARNING: backend TLS verification disabled")
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		opts = append(opts, backend.WithHTTPClient(&http.Client{Transport: transport}))
	}
	client := backend.New(cfg.BackendURL, opts...)

	hub := ws.NewHub()
	go hub.Run(ctx)

	store := session.NewStore(cfg.SessionTTL, func() *ui.Shell {
		return ui.NewShell(client)
	})
	go store.Run(ctx, sweepInterval)

	renderer, err := handler.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}
	deleter := handler.NewDeleter(hub)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router.New(cfg, store, hub, renderer, deleter),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on :%s (backend %s)", cfg.Port, cfg.BackendURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		log.Fatalf("Server failed: %v", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: shutdown: %v", err)
	}
	deleter.Wait()
}
