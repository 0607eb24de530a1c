package models

// Metric constants: the demographic field driving the choropleth fill
const (
	MetricDensity       = "density"
	MetricBedsPerCapita = "beds_per_capita"
)

// DateLayout is the calendar form used for slider dates and case columns
const DateLayout = "2006-01-02"

// Request types

type SetDateRequest struct {
	Date string `json:"date"`
}

type SetMetricRequest struct {
	Metric string `json:"metric"`
}

// Response types

type ViewStateResponse struct {
	Date     string `json:"date"`
	Metric   string `json:"metric"`
	Playing  bool   `json:"playing"`
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

type PlayResponse struct {
	Playing bool `json:"playing"`
}

type DatesResponse struct {
	Dates []string `json:"dates"`
}

type LegendResponse struct {
	Metric  string   `json:"metric"`
	Title   string   `json:"title"`
	Low     float64  `json:"low"`
	High    float64  `json:"high"`
	Palette []string `json:"palette"`
}

// Domain types

// ViewState is the single mutable view descriptor owned by the map driver.
// Date selects which per-date case column backs the marker sizes; Metric
// selects which static demographic field backs the fill color.
type ViewState struct {
	Date   string `json:"date"`
	Metric string `json:"metric"`
}

// ValidMetric reports whether m names a known choropleth metric.
func ValidMetric(m string) bool {
	return m == MetricDensity || m == MetricBedsPerCapita
}

// MetricTitle returns the legend title shown next to the color bar.
func MetricTitle(m string) string {
	switch m {
	case MetricDensity:
		return "Density"
	case MetricBedsPerCapita:
		return "BedsPerCapita"
	}
	return m
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
