// Package money handles the localized VND price strings used throughout
// the catalogue ("189.000đ" style: dot thousand separators, đ suffix).
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var normalizer = strings.NewReplacer(
	"đ", "",
	"₫", "",
	".", "",
	",", "",
	" ", "",
	"\u00a0", "", // NBSP shows up in some catalogue exports
)

// Parse converts a localized price string into integer đồng.
// "189.000đ" yields 189000. Malformed input parses to 0.
func Parse(s string) int64 {
	cleaned := normalizer.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return 0
	}
	return d.IntPart()
}

// Format renders integer đồng back into the display form, so
// Format(533000) returns "533.000đ".
func Format(n int64) string {
	d := decimal.NewFromInt(n)
	digits := d.Abs().String()

	var groups []string
	lead := len(digits) % 3
	if lead > 0 {
		groups = append(groups, digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		groups = append(groups, digits[i:i+3])
	}

	out := strings.Join(groups, ".") + "đ"
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}
