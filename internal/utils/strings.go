// Package utils holds small helpers shared across packages.
package utils

import "strings"

// ParseCSV splits a comma-separated list into trimmed, non-empty, upper-cased
// values with duplicates removed. Order of first appearance is kept.
// Returns nil when nothing remains.
func ParseCSV(s string) []string {
	var result []string
	seen := make(map[string]bool)
	for _, v := range strings.Split(s, ",") {
		value := strings.ToUpper(strings.TrimSpace(v))
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		result = append(result, value)
	}
	return result
}
