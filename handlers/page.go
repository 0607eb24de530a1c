// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
)

// Index handles GET /
// Serves the map page: a Leaflet view over /map/view with the slider, metric
// selector, and play button wired to the control endpoints.
func (h *MapHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, struct{ Title string }{"Covid-19 in Switzerland"}); err != nil {
		slog.Error("failed to render map page", "error", err)
	}
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  body { font-family: sans-serif; margin: 0; }
  #map { height: 70vh; }
  #controls { padding: 12px 16px; }
  #controls > * { margin-right: 12px; }
  #date-label { font-weight: bold; }
</style>
</head>
<body>
<div id="map"></div>
<div id="controls">
  <label><input type="radio" name="metric" value="density" checked> Density</label>
  <label><input type="radio" name="metric" value="beds_per_capita"> BedsPerCapita</label>
  <input type="range" id="slider" min="0" max="0" value="0">
  <span id="date-label"></span>
  <button id="play">&#9658; Play</button>
</div>
<script>
const map = L.map('map').setView([46.8, 8.2], 8);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
  attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);

let layer = null;
let dates = [];
let playing = false;

function render(doc) {
  if (layer) map.removeLayer(layer);
  layer = L.geoJSON(doc, {
    style: f => ({ color: '#444', weight: 0.5, fillColor: f.properties.fill, fillOpacity: 0.6 }),
    onEachFeature: (f, l) => {
      const p = f.properties;
      l.bindTooltip('canton: ' + p.Canton +
        '<br>Density: ' + p.Density +
        '<br>BedsPerCapita: ' + p.BedsPerCapita +
        '<br>Daily New Cases per Capita: ' + (p.dnc === null ? 'no data' : p.dnc));
      if (p.size !== null) {
        L.circleMarker([p.lat, p.long], {
          radius: p.size / 2, color: 'violet', fillOpacity: 0.33
        }).addTo(map);
      }
    }
  }).addTo(map);
}

async function refresh() {
  const [view, state] = await Promise.all([
    fetch('/map/view').then(r => r.json()),
    fetch('/map/state').then(r => r.json())
  ]);
  map.eachLayer(l => { if (l instanceof L.CircleMarker) map.removeLayer(l); });
  render(view);
  const i = dates.indexOf(state.date);
  if (i >= 0) document.getElementById('slider').value = i;
  document.getElementById('date-label').textContent = state.date;
  playing = state.playing;
  document.getElementById('play').innerHTML = playing ? '&#10074;&#10074; Pause' : '&#9658; Play';
}

async function init() {
  const res = await fetch('/map/dates').then(r => r.json());
  dates = res.dates;
  const slider = document.getElementById('slider');
  slider.max = dates.length - 1;
  slider.value = dates.length - 1;
  slider.addEventListener('input', async () => {
    await fetch('/map/date', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ date: dates[slider.value] })
    });
    refresh();
  });
  for (const radio of document.querySelectorAll('input[name=metric]')) {
    radio.addEventListener('change', async () => {
      await fetch('/map/metric', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({ metric: radio.value })
      });
      refresh();
    });
  }
  document.getElementById('play').addEventListener('click', async () => {
    await fetch('/map/play', { method: 'POST' });
    refresh();
  });
  setInterval(() => { if (playing) refresh(); }, 500);
  refresh();
}
init();
</script>
</body>
</html>
`))
