package comparison

// CompareMetric compares a and b exactly. Lower-is-better metrics such as
// P/E are not inverted: the numerically larger side leads.
func CompareMetric(a, b float64) Verdict {
	switch {
	case a > b:
		return ALeads
	case a < b:
		return BLeads
	default:
		return Tie
	}
}

// CompareSymbols resolves both tickers and compares every metric independently.
func CompareSymbols(tickerA, tickerB string) Comparison {
	a := ResolveSymbol(tickerA)
	b := ResolveSymbol(tickerB)

	verdicts := make(map[Metric]Verdict, len(Metrics))
	for _, metric := range Metrics {
		verdicts[metric] = CompareMetric(a.Value(metric), b.Value(metric))
	}

	return Comparison{
		SymbolA:  NormalizeTicker(tickerA),
		SymbolB:  NormalizeTicker(tickerB),
		A:        a,
		B:        b,
		Verdicts: verdicts,
	}
}
