package validate

import (
	"strings"

	"golang.org/x/text/width"
)

// NormalizeWidth folds full-width ASCII to its narrow form and trims
// surrounding space. Domains and filetype extensions typed with a Japanese
// IME often arrive as ｍｈｌｗ．ｇｏ．ｊｐ; folding at the import boundary
// keeps the core engine free of input repair.
func NormalizeWidth(s string) string {
	return strings.TrimSpace(width.Narrow.String(s))
}

// NormalizeDomains folds each entry and drops blanks, preserving order.
func NormalizeDomains(in []string) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		n := NormalizeWidth(d)
		if n == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

// NormalizeFiletypes folds, lowercases and strips a leading dot from each
// extension, dropping blanks.
func NormalizeFiletypes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, ft := range in {
		n := strings.ToLower(strings.TrimPrefix(NormalizeWidth(ft), "."))
		if n == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}
