package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"reliance", "RELIANCE"},
		{" RELIANCE ", "RELIANCE"},
		{"hdfc bank", "HDFCBANK"},
		{"\tinfy\n", "INFY"},
		{"t c s", "TCS"},
		{" tcs ", "TCS"},
		{"\ufeffTCS", "TCS"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTicker(tt.in))
		})
	}
}

func TestResolveSymbol_CaseAndWhitespaceInsensitive(t *testing.T) {
	want := ResolveSymbol("RELIANCE")
	assert.Equal(t, want, ResolveSymbol("reliance"))
	assert.Equal(t, want, ResolveSymbol(" RELIANCE "))
	assert.Equal(t, want, ResolveSymbol("Reli ance"))
	assert.Equal(t, SymbolMetrics{Price: 2905, PERatio: 25.1, VolumeMillions: 7.2, Sector: "Energy"}, want)
}

func TestResolveSymbol_Fallback(t *testing.T) {
	want := SymbolMetrics{Price: 1000, PERatio: 20.0, VolumeMillions: 1.5, Sector: "—"}

	for _, in := range []string{"ZZZZ", "", "   ", "RELIANCE.NS", "🚀", "\x00\xff"} {
		assert.Equal(t, want, ResolveSymbol(in), "input %q", in)
	}
}

func TestResolveSymbol_Total(t *testing.T) {
	inputs := []string{"a", "TCS", "tcs ", "x y z", "\n", "HDFCBANK", "hdfcbank", "日本", "123", "INFY\r\n"}
	for _, in := range inputs {
		m := ResolveSymbol(in)
		assert.Positive(t, m.Price, "input %q", in)
		assert.Positive(t, m.PERatio, "input %q", in)
		assert.Positive(t, m.VolumeMillions, "input %q", in)
		assert.NotEmpty(t, m.Sector, "input %q", in)
	}
}

func TestReferenceTable(t *testing.T) {
	assert.Equal(t, []string{"HDFCBANK", "INFY", "RELIANCE", "TCS"}, Symbols())

	assert.Equal(t, SymbolMetrics{Price: 3840, PERatio: 30.5, VolumeMillions: 3.8, Sector: "IT"}, ResolveSymbol("TCS"))
	assert.Equal(t, SymbolMetrics{Price: 1460, PERatio: 27.8, VolumeMillions: 5.1, Sector: "IT"}, ResolveSymbol("INFY"))
	assert.Equal(t, SymbolMetrics{Price: 1485, PERatio: 18.2, VolumeMillions: 8.9, Sector: "Banking"}, ResolveSymbol("HDFCBANK"))
}

func TestIsKnown(t *testing.T) {
	assert.True(t, IsKnown("tcs"))
	assert.True(t, IsKnown(" hdfc bank "))
	assert.False(t, IsKnown("ZZZZ"))
	assert.False(t, IsKnown(""))
}

func TestCompareMetric(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want Verdict
	}{
		{"b larger", 2905, 3840, BLeads},
		{"equal", 5, 5, Tie},
		{"a larger", 10, 3, ALeads},
		{"no epsilon", 0.30000000000000004, 0.3, ALeads},
		{"negative", -1, 0, BLeads},
		{"zero", 0, 0, Tie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareMetric(tt.a, tt.b))
		})
	}
}

func TestCompareSymbols_RelianceVsTCS(t *testing.T) {
	result := CompareSymbols("RELIANCE", "TCS")

	assert.Equal(t, "RELIANCE", result.SymbolA)
	assert.Equal(t, "TCS", result.SymbolB)
	assert.Equal(t, 2905.0, result.A.Price)
	assert.Equal(t, 3840.0, result.B.Price)
	assert.Equal(t, map[Metric]Verdict{
		MetricPrice:          BLeads,
		MetricPERatio:        BLeads, // higher P/E still "leads"
		MetricVolumeMillions: ALeads,
	}, result.Verdicts)
}

func TestCompareSymbols_SameSymbolTies(t *testing.T) {
	result := CompareSymbols("infy", " INFY")
	for _, metric := range Metrics {
		assert.Equal(t, Tie, result.Verdicts[metric], "metric %s", metric)
	}
}

func TestCompareSymbols_UnknownVsUnknown(t *testing.T) {
	result := CompareSymbols("AAA", "BBB")
	assert.Equal(t, FallbackMetrics, result.A)
	assert.Equal(t, FallbackMetrics, result.B)
	assert.Len(t, result.Verdicts, 3)
	for _, v := range result.Verdicts {
		assert.Equal(t, Tie, v)
	}
}

func TestCompareSymbols_Idempotent(t *testing.T) {
	first := CompareSymbols("hdfcbank", "tcs")
	second := CompareSymbols("hdfcbank", "tcs")
	assert.Equal(t, first, second)

	// Mutating a returned map must not leak into later calls.
	first.Verdicts[MetricPrice] = Tie
	assert.Equal(t, BLeads, CompareSymbols("hdfcbank", "tcs").Verdicts[MetricPrice])
}

func TestVerdictLabel(t *testing.T) {
	assert.Equal(t, "A leads", ALeads.Label())
	assert.Equal(t, "B leads", BLeads.Label())
	assert.Equal(t, "", Tie.Label())
}

func TestSymbolMetricsValue(t *testing.T) {
	m := ResolveSymbol("TCS")
	assert.Equal(t, 3840.0, m.Value(MetricPrice))
	assert.Equal(t, 30.5, m.Value(MetricPERatio))
	assert.Equal(t, 3.8, m.Value(MetricVolumeMillions))
	assert.Zero(t, m.Value(Metric("dividend_yield")))
}

func TestFormatMetric(t *testing.T) {
	tests := []struct {
		metric Metric
		value  float64
		want   string
	}{
		{MetricPrice, 2905, "₹2,905"},
		{MetricPrice, 1000, "₹1,000"},
		{MetricPrice, 999, "₹999"},
		{MetricPrice, 1485.5, "₹1,485.5"},
		{MetricPERatio, 25.1, "25.1"},
		{MetricPERatio, 20, "20.0"},
		{MetricVolumeMillions, 7.2, "7.2"},
		{MetricVolumeMillions, 8.9, "8.9"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMetric(tt.metric, tt.value))
		})
	}
}

func TestMetricLabel(t *testing.T) {
	assert.Equal(t, "Price (INR)", MetricLabel(MetricPrice))
	assert.Equal(t, "P/E", MetricLabel(MetricPERatio))
	assert.Equal(t, "Volume (Mn)", MetricLabel(MetricVolumeMillions))
	assert.Equal(t, "other", MetricLabel(Metric("other")))
}
