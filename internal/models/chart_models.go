package models

// BarSeries is a chart-ready bar series; rendering is a display concern.
type BarSeries struct {
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}
