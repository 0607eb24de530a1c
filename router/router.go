// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/cantonmap/cliparse"
	"github.com/danielhkuo/cantonmap/driver"
	"github.com/danielhkuo/cantonmap/handlers"
	"github.com/danielhkuo/cantonmap/middleware"
)

func NewRouter(drv *driver.Driver, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	mapHandler := handlers.NewMapHandler(drv, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// View retrieval
	mux.HandleFunc("GET /map/view", middleware.WithLogging(mapHandler.GetView))
	mux.HandleFunc("GET /map/state", middleware.WithLogging(mapHandler.GetState))
	mux.HandleFunc("GET /map/dates", middleware.WithLogging(mapHandler.GetDates))
	mux.HandleFunc("GET /map/legend", middleware.WithLogging(mapHandler.GetLegend))

	// View control (the driver's three transitions)
	mux.HandleFunc("POST /map/date", middleware.WithLogging(mapHandler.SetDate))
	mux.HandleFunc("POST /map/metric", middleware.WithLogging(mapHandler.SetMetric))
	mux.HandleFunc("POST /map/play", middleware.WithLogging(mapHandler.PressPlay))

	// Map page
	mux.HandleFunc("GET /", middleware.WithLogging(mapHandler.Index))

	return mux
}
