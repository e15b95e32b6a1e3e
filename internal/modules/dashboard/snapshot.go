// Package dashboard serves the fixed market snapshot shown on the analysis
// dashboard. The figures are demo data and never change at runtime.
package dashboard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aristath/investai/internal/modules/charts"
)

// ErrUnknownTab is returned for a tab name outside Tabs
var ErrUnknownTab = errors.New("unknown dashboard tab")

var (
	cardSeries        = []float64{100, 102, 98, 104, 110, 108, 115}
	priceActionSeries = []float64{120, 129, 126, 134, 141, 139, 148}
)

const insightText = "Momentum remains constructive with higher highs forming on major indices. " +
	"Consider a staggered approach for large-cap entries; mid-caps show selective strength. " +
	"Keep an eye on banking breadth, as a sustained uptick could extend the current leg higher."

// ParseTab matches name against Tabs, ignoring case and surrounding spaces
func ParseTab(name string) (Tab, error) {
	name = strings.TrimSpace(name)
	for _, tab := range Tabs {
		if strings.EqualFold(string(tab), name) {
			return tab, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, name)
}

// GetView returns the snapshot for the named tab
func GetView(name string) (View, error) {
	tab, err := ParseTab(name)
	if err != nil {
		return View{}, err
	}

	switch tab {
	case TabTechnical:
		return View{
			Tab: tab,
			Cards: []StatCard{
				NumericCard("RSI (14)", "56.3", 2.1, "indigo"),
				TextCard("MACD", "Bullish", "+", "purple"),
			},
			Levels: []Level{
				{Label: "Support 1", Value: "21,980"},
				{Label: "Support 2", Value: "21,750"},
				{Label: "Resistance 1", Value: "22,260"},
				{Label: "Resistance 2", Value: "22,520"},
			},
		}, nil
	case TabFundamentals:
		return View{
			Tab: tab,
			Cards: []StatCard{
				NumericCard("PE Ratio (Nifty)", "24.1", -0.3, "indigo"),
				NumericCard("PB Ratio (Nifty)", "3.6", 0.1, "purple"),
			},
			Sectors: []SectorScore{
				{Name: "IT", Score: 72},
				{Name: "Banks", Score: 65},
				{Name: "Auto", Score: 58},
				{Name: "FMCG", Score: 61},
				{Name: "Energy", Score: 69},
				{Name: "Pharma", Score: 55},
			},
		}, nil
	default:
		priceAction := charts.NewSparkline(priceActionSeries)
		return View{
			Tab: tab,
			Cards: []StatCard{
				NumericCard("Nifty 50", "22,150", 0.8, "indigo"),
				NumericCard("Sensex", "73,250", 0.5, "purple"),
			},
			Insight:     &Insight{Title: "AI Insight", Tag: "signal", Body: insightText},
			PriceAction: &priceAction,
		}, nil
	}
}

// NumericCard builds a card whose delta is a percentage change.
// Zero counts as positive.
func NumericCard(title, value string, delta float64, color string) StatCard {
	return StatCard{
		Title:         title,
		Value:         value,
		Delta:         strconv.FormatFloat(math.Abs(delta), 'f', -1, 64) + "%",
		DeltaPositive: delta >= 0,
		Color:         color,
		Sparkline:     charts.NewSparkline(cardSeries),
	}
}

// TextCard builds a card with a free-text delta. It is positive when the
// text contains "+".
func TextCard(title, value, delta, color string) StatCard {
	return StatCard{
		Title:         title,
		Value:         value,
		Delta:         delta,
		DeltaPositive: strings.Contains(delta, "+"),
		Color:         color,
		Sparkline:     charts.NewSparkline(cardSeries),
	}
}
