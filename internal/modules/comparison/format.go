package comparison

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// MetricLabel returns the display label of a metric
func MetricLabel(metric Metric) string {
	switch metric {
	case MetricPrice:
		return "Price (INR)"
	case MetricPERatio:
		return "P/E"
	case MetricVolumeMillions:
		return "Volume (Mn)"
	default:
		return string(metric)
	}
}

// FormatMetric renders a metric value: price as rupees with thousands
// separators, the rest with one decimal.
func FormatMetric(metric Metric, v float64) string {
	if metric == MetricPrice {
		return "₹" + humanize.Commaf(v)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
