package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"189.000đ", 189000},
		{"155.000đ", 155000},
		{"1.250.000đ", 1250000},
		{"89.000₫", 89000},
		{" 215.000đ ", 215000},
		{"500đ", 500},
		{"0đ", 0},
		{"", 0},
		{"liên hệ", 0},
		{"abcđ", 0},
		{"-10.000đ", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Parse(tt.in), "Parse(%q)", tt.in)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{189000, "189.000đ"},
		{533000, "533.000đ"},
		{1250000, "1.250.000đ"},
		{500, "500đ"},
		{0, "0đ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%d)", tt.in)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, n := range []int64{1, 999, 1000, 378000, 99999999} {
		assert.Equal(t, n, Parse(Format(n)))
	}
}
