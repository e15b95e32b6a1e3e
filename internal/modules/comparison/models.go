package comparison

// Metric names a comparable SymbolMetrics field
type Metric string

const (
	MetricPrice          Metric = "price"
	MetricPERatio        Metric = "pe_ratio"
	MetricVolumeMillions Metric = "volume_millions"
)

// Metrics lists the compared metrics in display order
var Metrics = []Metric{MetricPrice, MetricPERatio, MetricVolumeMillions}

// Verdict is the outcome of comparing one metric across two symbols
type Verdict string

const (
	ALeads Verdict = "A_LEADS"
	BLeads Verdict = "B_LEADS"
	Tie    Verdict = "TIE"
)

// Label returns the badge text for a verdict. Ties carry no badge.
func (v Verdict) Label() string {
	switch v {
	case ALeads:
		return "A leads"
	case BLeads:
		return "B leads"
	default:
		return ""
	}
}

// SymbolMetrics is a snapshot of one ticker
type SymbolMetrics struct {
	Price          float64 `json:"price" msgpack:"price"`                     // INR
	PERatio        float64 `json:"pe_ratio" msgpack:"pe_ratio"`               //
	VolumeMillions float64 `json:"volume_millions" msgpack:"volume_millions"` // Shares traded, millions
	Sector         string  `json:"sector" msgpack:"sector"`
}

// Value returns the field named by metric. Unknown metrics return 0.
func (m SymbolMetrics) Value(metric Metric) float64 {
	switch metric {
	case MetricPrice:
		return m.Price
	case MetricPERatio:
		return m.PERatio
	case MetricVolumeMillions:
		return m.VolumeMillions
	default:
		return 0
	}
}

// Comparison is the pairwise result of CompareSymbols
type Comparison struct {
	SymbolA  string             `json:"symbol_a" msgpack:"symbol_a"`
	SymbolB  string             `json:"symbol_b" msgpack:"symbol_b"`
	A        SymbolMetrics      `json:"a" msgpack:"a"`
	B        SymbolMetrics      `json:"b" msgpack:"b"`
	Verdicts map[Metric]Verdict `json:"verdicts" msgpack:"verdicts"`
}
