// Package comparison resolves tickers against the reference table and
// compares their metrics pairwise.
package comparison

import (
	"sort"
	"strings"
	"unicode"
)

// FallbackMetrics is returned for any ticker missing from the table.
var FallbackMetrics = SymbolMetrics{
	Price:          1000,
	PERatio:        20.0,
	VolumeMillions: 1.5,
	Sector:         "—",
}

// referenceTable is keyed by normalized ticker and never mutated.
var referenceTable = map[string]SymbolMetrics{
	"RELIANCE": {Price: 2905, PERatio: 25.1, VolumeMillions: 7.2, Sector: "Energy"},
	"TCS":      {Price: 3840, PERatio: 30.5, VolumeMillions: 3.8, Sector: "IT"},
	"INFY":     {Price: 1460, PERatio: 27.8, VolumeMillions: 5.1, Sector: "IT"},
	"HDFCBANK": {Price: 1485, PERatio: 18.2, VolumeMillions: 8.9, Sector: "Banking"},
}

// NormalizeTicker uppercases s and strips every whitespace rune.
func NormalizeTicker(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\ufeff' {
			return -1
		}
		return r
	}, s)
	return strings.ToUpper(stripped)
}

// ResolveSymbol returns the metrics for ticker, or FallbackMetrics when the
// ticker is not in the table. It never fails.
func ResolveSymbol(ticker string) SymbolMetrics {
	if m, ok := referenceTable[NormalizeTicker(ticker)]; ok {
		return m
	}
	return FallbackMetrics
}

// IsKnown reports whether ticker resolves to a table entry.
func IsKnown(ticker string) bool {
	_, ok := referenceTable[NormalizeTicker(ticker)]
	return ok
}

// Symbols returns the table's tickers, sorted.
func Symbols() []string {
	symbols := make([]string, 0, len(referenceTable))
	for s := range referenceTable {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
