package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/cantonmap/cache"
	"github.com/danielhkuo/cantonmap/cliparse"
	"github.com/danielhkuo/cantonmap/dataset"
	"github.com/danielhkuo/cantonmap/driver"
	"github.com/danielhkuo/cantonmap/frame"
	"github.com/danielhkuo/cantonmap/middleware"
	"github.com/danielhkuo/cantonmap/router"
)

func main() {
	var err error

	// Load .env if present (local development)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the source snapshot cache
	var snapshots *cache.Cache
	if cfg.CachePath != "" {
		snapshots, err = cache.Open(cfg.CachePath, cfg.CacheTTL)
		if err != nil {
			slog.Error("snapshot cache open failed", "error", err)
			os.Exit(1)
		}
		defer snapshots.Close()
	}

	// Load the four sources (synchronous, before serving)
	src, err := dataset.Load(context.Background(), cfg, snapshots)
	if err != nil {
		slog.Error("source loading failed", "error", err)
		os.Exit(1)
	}

	// Merge into the frame store
	store, err := frame.Merge(src)
	if err != nil {
		slog.Error("merge failed", "error", err)
		os.Exit(1)
	}
	slog.Info("frame store ready",
		"cantons", len(store.Records()),
		"earliest", store.Earliest(),
		"latest", store.Latest(),
	)

	// Create the map driver (Idle, positioned on the latest date)
	drv, err := driver.New(store, cfg.TickInterval)
	if err != nil {
		slog.Error("driver initialization failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(drv, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
