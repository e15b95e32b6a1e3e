package dashboard

import "github.com/aristath/investai/internal/modules/charts"

// Tab names one dashboard view
type Tab string

const (
	TabOverview     Tab = "Overview"
	TabTechnical    Tab = "Technical"
	TabFundamentals Tab = "Fundamentals"
)

// Tabs lists the dashboard views in display order
var Tabs = []Tab{TabOverview, TabTechnical, TabFundamentals}

// StatCard is a headline figure with its change and trend line
type StatCard struct {
	Title         string           `json:"title" msgpack:"title"`
	Value         string           `json:"value" msgpack:"value"`
	Delta         string           `json:"delta" msgpack:"delta"`
	DeltaPositive bool             `json:"delta_positive" msgpack:"delta_positive"`
	Color         string           `json:"color" msgpack:"color"`
	Sparkline     charts.Sparkline `json:"sparkline" msgpack:"sparkline"`
}

// Insight is the commentary block on the overview tab
type Insight struct {
	Title string `json:"title" msgpack:"title"`
	Tag   string `json:"tag" msgpack:"tag"`
	Body  string `json:"body" msgpack:"body"`
}

// Level is a labelled index level (support or resistance)
type Level struct {
	Label string `json:"label" msgpack:"label"`
	Value string `json:"value" msgpack:"value"`
}

// SectorScore is a 0-100 strength score for one sector
type SectorScore struct {
	Name  string `json:"name" msgpack:"name"`
	Score int    `json:"score" msgpack:"score"`
}

// View is the content of one tab. Sections that do not apply to a tab are omitted.
type View struct {
	Tab         Tab               `json:"tab" msgpack:"tab"`
	Cards       []StatCard        `json:"cards" msgpack:"cards"`
	Insight     *Insight          `json:"insight,omitempty" msgpack:"insight,omitempty"`
	PriceAction *charts.Sparkline `json:"price_action,omitempty" msgpack:"price_action,omitempty"`
	Levels      []Level           `json:"levels,omitempty" msgpack:"levels,omitempty"`
	Sectors     []SectorScore     `json:"sectors,omitempty" msgpack:"sectors,omitempty"`
}
