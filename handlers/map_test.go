// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"

	geojson "github.com/paulmach/go.geojson"

	"github.com/danielhkuo/cantonmap/models"
	"github.com/danielhkuo/cantonmap/testutil"
)

func newTestHandler(t *testing.T) *MapHandler {
	t.Helper()
	return NewMapHandler(testutil.NewTestDriver(t), testutil.GetTestConfig())
}

func TestGetView(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.MakeRequest("GET", "/map/view", nil, nil)
	w := httptest.NewRecorder()
	h.GetView(w, req)

	testutil.AssertStatus(t, w, 200)
	if ct := w.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Errorf("Expected application/geo+json, got %s", ct)
	}

	fc, err := geojson.UnmarshalFeatureCollection(w.Body.Bytes())
	if err != nil {
		t.Fatalf("View document is not valid GeoJSON: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Errorf("Expected 2 features (AG, ZH), got %d", len(fc.Features))
	}
}

func TestGetState(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.MakeRequest("GET", "/map/state", nil, nil)
	w := httptest.NewRecorder()
	h.GetState(w, req)

	testutil.AssertStatus(t, w, 200)

	var state models.ViewStateResponse
	testutil.AssertJSON(t, w, &state)
	if state.Date != "2020-10-31" || state.Metric != models.MetricDensity {
		t.Errorf("Unexpected initial state: %+v", state)
	}
	if state.Playing {
		t.Error("Expected initial state Idle")
	}
}

func TestGetDates(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.MakeRequest("GET", "/map/dates", nil, nil)
	w := httptest.NewRecorder()
	h.GetDates(w, req)

	testutil.AssertStatus(t, w, 200)

	var resp models.DatesResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Dates) != 3 || resp.Dates[0] != "2020-10-29" {
		t.Errorf("Unexpected dates: %v", resp.Dates)
	}
}

func TestGetLegend(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.MakeRequest("GET", "/map/legend", nil, nil)
	w := httptest.NewRecorder()
	h.GetLegend(w, req)

	testutil.AssertStatus(t, w, 200)

	var legend models.LegendResponse
	testutil.AssertJSON(t, w, &legend)
	if legend.Metric != models.MetricDensity || legend.Title != "Density" {
		t.Errorf("Unexpected legend: %+v", legend)
	}
	// Bounds come from the full demographics column, BE included
	if legend.Low != 80 || legend.High != 200 {
		t.Errorf("Expected legend bounds [80, 200], got [%v, %v]", legend.Low, legend.High)
	}
	if len(legend.Palette) == 0 {
		t.Error("Expected a non-empty palette")
	}
}

func TestSetDate(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.MakeRequest("POST", "/map/date", models.SetDateRequest{Date: "2020-10-29"}, nil)
	w := httptest.NewRecorder()
	h.SetDate(w, req)

	testutil.AssertStatus(t, w, 200)

	var state models.ViewStateResponse
	testutil.AssertJSON(t, w, &state)
	if state.Date != "2020-10-29" {
		t.Errorf("Expected date 2020-10-29, got %s", state.Date)
	}
}

func TestSetDateMalformed(t *testing.T) {
	h := newTestHandler(t)

	for _, bad := range []string{"31-10-2020", "2020/10/31", "yesterday", ""} {
		req := testutil.MakeRequest("POST", "/map/date", models.SetDateRequest{Date: bad}, nil)
		w := httptest.NewRecorder()
		h.SetDate(w, req)

		if w.Code != 400 {
			t.Errorf("Expected 400 for date %q, got %d", bad, w.Code)
		}
	}
}

func TestSetDateOutOfRangeFailsSoft(t *testing.T) {
	h := newTestHandler(t)

	// Well-formed but unobserved: publishes an all-"no data" view
	req := testutil.MakeRequest("POST", "/map/date", models.SetDateRequest{Date: "2019-01-01"}, nil)
	w := httptest.NewRecorder()
	h.SetDate(w, req)
	testutil.AssertStatus(t, w, 200)

	vw := httptest.NewRecorder()
	h.GetView(vw, testutil.MakeRequest("GET", "/map/view", nil, nil))
	fc, err := geojson.UnmarshalFeatureCollection(vw.Body.Bytes())
	if err != nil {
		t.Fatalf("View document is not valid GeoJSON: %v", err)
	}
	for _, f := range fc.Features {
		if f.Properties["size"] != nil {
			t.Errorf("Expected null sizes on an unobserved date, got %v", f.Properties["size"])
		}
	}
}

func TestSetMetric(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.MakeRequest("POST", "/map/metric", models.SetMetricRequest{Metric: models.MetricBedsPerCapita}, nil)
	w := httptest.NewRecorder()
	h.SetMetric(w, req)

	testutil.AssertStatus(t, w, 200)

	var state models.ViewStateResponse
	testutil.AssertJSON(t, w, &state)
	if state.Metric != models.MetricBedsPerCapita {
		t.Errorf("Expected metric beds_per_capita, got %s", state.Metric)
	}
	if state.Date != "2020-10-31" {
		t.Errorf("SetMetric must not change the date, got %s", state.Date)
	}
}

func TestSetMetricUnknown(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.MakeRequest("POST", "/map/metric", models.SetMetricRequest{Metric: "elevation"}, nil)
	w := httptest.NewRecorder()
	h.SetMetric(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestSelectDateThenView(t *testing.T) {
	h := newTestHandler(t)

	viewProps := func(canton string) map[string]interface{} {
		w := httptest.NewRecorder()
		h.GetView(w, testutil.MakeRequest("GET", "/map/view", nil, nil))
		fc, err := geojson.UnmarshalFeatureCollection(w.Body.Bytes())
		if err != nil {
			t.Fatalf("View document is not valid GeoJSON: %v", err)
		}
		for _, f := range fc.Features {
			if f.Properties["Canton"] == canton {
				return f.Properties
			}
		}
		t.Fatalf("Canton %s not in view", canton)
		return nil
	}

	// 2020-10-31: AG has 0.0005 new cases per capita → marker size 20
	w := httptest.NewRecorder()
	h.SetDate(w, testutil.MakeRequest("POST", "/map/date", models.SetDateRequest{Date: "2020-10-31"}, nil))
	testutil.AssertStatus(t, w, 200)

	props := viewProps("AG")
	if size, _ := props["size"].(float64); size != 20.0 {
		t.Errorf("Expected AG size 20.0 on 2020-10-31, got %v", props["size"])
	}
	if dnc, _ := props["dnc"].(float64); dnc != 0.0005 {
		t.Errorf("Expected AG dnc 0.0005 on 2020-10-31, got %v", props["dnc"])
	}

	// 2020-10-30: AG reported nothing → both null, ZH still has data
	w = httptest.NewRecorder()
	h.SetDate(w, testutil.MakeRequest("POST", "/map/date", models.SetDateRequest{Date: "2020-10-30"}, nil))
	testutil.AssertStatus(t, w, 200)

	props = viewProps("AG")
	if props["size"] != nil || props["dnc"] != nil {
		t.Errorf("Expected AG size/dnc null on 2020-10-30, got %v/%v", props["size"], props["dnc"])
	}
	if zh := viewProps("ZH"); zh["dnc"] == nil {
		t.Error("Expected ZH to keep its value on 2020-10-30")
	}
}

func TestPressPlayToggles(t *testing.T) {
	h := newTestHandler(t)

	w := httptest.NewRecorder()
	h.PressPlay(w, testutil.MakeRequest("POST", "/map/play", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var resp models.PlayResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Playing {
		t.Error("Expected playing after first toggle")
	}

	w = httptest.NewRecorder()
	h.PressPlay(w, testutil.MakeRequest("POST", "/map/play", nil, nil))
	testutil.AssertJSON(t, w, &resp)
	if resp.Playing {
		t.Error("Expected idle after second toggle")
	}
}
