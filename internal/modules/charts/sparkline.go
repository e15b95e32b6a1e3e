// Package charts renders small line charts as SVG path data.
package charts

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Default sparkline viewport
const (
	DefaultWidth  = 220.0
	DefaultHeight = 70.0
)

// Sparkline is a rendered series ready for an SVG <path d="...">
type Sparkline struct {
	Points []float64 `json:"points" msgpack:"points"`
	Width  float64   `json:"width" msgpack:"width"`
	Height float64   `json:"height" msgpack:"height"`
	Path   string    `json:"path" msgpack:"path"`
}

// NewSparkline renders points in the default viewport
func NewSparkline(points []float64) Sparkline {
	return Sparkline{
		Points: points,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Path:   SparklinePath(points, DefaultWidth, DefaultHeight),
	}
}

// SparklinePath scales points into a width x height box and returns the
// "M x,y L x,y ..." path. The lowest value sits on the bottom edge and the
// highest on the top edge. A flat series is drawn along the bottom.
func SparklinePath(points []float64, width, height float64) string {
	n := len(points)
	if n == 0 {
		return ""
	}
	if n == 1 {
		return "M 0," + formatCoord(height)
	}

	lo, hi := floats.Min(points), floats.Max(points)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for i, v := range points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		x := float64(i) * width / float64(n-1)
		y := height - (v-lo)/span*height
		b.WriteString(formatCoord(x))
		b.WriteByte(',')
		b.WriteString(formatCoord(y))
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
