package util

import "strings"

// NormalizeTicker uppercases and trims a ticker symbol.
func NormalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ContainsTicker reports whether ticker is in the given set (case-insensitive).
func ContainsTicker(set []string, ticker string) bool {
	t := NormalizeTicker(ticker)
	for _, s := range set {
		if NormalizeTicker(s) == t {
			return true
		}
	}
	return false
}
