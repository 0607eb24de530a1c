// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/cantonmap/cliparse"
	"github.com/danielhkuo/cantonmap/driver"
	"github.com/danielhkuo/cantonmap/middleware"
	"github.com/danielhkuo/cantonmap/models"
)

type MapHandler struct {
	drv *driver.Driver
	cfg cliparse.Config
}

func NewMapHandler(drv *driver.Driver, cfg cliparse.Config) *MapHandler {
	return &MapHandler{drv: drv, cfg: cfg}
}

// GetView handles GET /map/view
// Returns the current GeoJSON view document: one feature per canton with
// polygon geometry, demographic fields, fill color, and marker size/dnc.
func (h *MapHandler) GetView(w http.ResponseWriter, r *http.Request) {
	middleware.GeoJSONResponse(w, h.drv.Document())
}

// GetState handles GET /map/state
func (h *MapHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.drv.State())
}

// GetDates handles GET /map/dates
// Returns the slider domain: all observed dates, ascending.
func (h *MapHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.DatesResponse{
		Dates: h.drv.Dates(),
	})
}

// GetLegend handles GET /map/legend
func (h *MapHandler) GetLegend(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.drv.Legend())
}

// SetDate handles POST /map/date
// The date must be well-formed (YYYY-MM-DD). A well-formed date outside the
// observed range still publishes (all markers render as "no data"), matching
// the fail-soft transition semantics.
func (h *MapHandler) SetDate(w http.ResponseWriter, r *http.Request) {
	var req models.SetDateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	if err := h.drv.SetDate(req.Date); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to publish view")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.drv.State())
}

// SetMetric handles POST /map/metric
func (h *MapHandler) SetMetric(w http.ResponseWriter, r *http.Request) {
	var req models.SetMetricRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidMetric(req.Metric) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "metric must be density or beds_per_capita")
		return
	}

	if err := h.drv.SetMetric(req.Metric); err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to publish view")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.drv.State())
}

// PressPlay handles POST /map/play
// Toggles the animation: Idle starts the recurring tick, Playing cancels it.
func (h *MapHandler) PressPlay(w http.ResponseWriter, r *http.Request) {
	playing := h.drv.PressPlay()
	middleware.JSONResponse(w, http.StatusOK, models.PlayResponse{Playing: playing})
}
