// Package main implements the AAS Explorer service server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/eclipse-basyx/basyx-go-explorer/internal/common"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/api"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/client"
	"github.com/eclipse-basyx/basyx-go-explorer/internal/explorer/session"
)

func runServer(ctx context.Context, configPath string) error {
	log.Default().Println("Loading AAS Explorer Service...")
	log.Default().Println("Config Path:", configPath)

	cfg, err := common.LoadConfig(configPath)
	if err != nil {
		log.Printf("❌ Failed to load config: %v", err)
		return err
	}

	// === Main Router ===
	r := chi.NewRouter()

	// --- CORS ---
	common.AddCors(r, cfg)

	// --- Health Endpoint (public) ---
	common.AddHealthEndpoint(r, cfg)

	// === Submodel Cache ===
	var cache *client.Cache
	if cfg.Cache.Enabled {
		cache, err = client.OpenCache(cfg.Cache.Path)
		if err != nil {
			log.Printf("❌ Cache open failed: %v", err)
			return err
		}
		defer cache.Close()
	}

	// === Upstream Repository Client ===
	repo := client.New(cfg, cache)
	log.Println("✅ Upstream repository client ready")

	// --- Upstream Health Passthrough (public) ---
	r.Get(cfg.Server.ContextPath+"/health/upstream", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		if repo.Health(req.Context()) {
			_, _ = w.Write([]byte("{\"status\":\"UP\"}"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("{\"status\":\"DOWN\"}"))
	})

	manager := session.NewManager(cfg, repo)
	controller := api.NewExplorerAPIController(manager)

	base := common.NormalizeBasePath(cfg.Server.ContextPath)

	// === Explorer API Subrouter ===
	apiRouter := chi.NewRouter()
	controller.Routes(apiRouter)

	if base == "/" {
		r.Mount("/explorer", apiRouter)
	} else {
		r.Mount(base+"/explorer", apiRouter)
	}

	// === Start Server ===
	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Server.Port)
	log.Printf("▶️ AAS Explorer listening on %s (contextPath=%q)\n", addr, cfg.Server.ContextPath)

	go func() {
		if err := http.ListenAndServe(addr, r); err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath := ""
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()
	if err := runServer(ctx, configPath); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
