package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"₱1,500.00", "1500", true},
		{"₱ 75.00", "75", true},
		{"250", "250", true},
		{"-12.5", "-12.5", true},
		{"12.", "12", true},
		{".5", "0.5", true},
		{"abc", "0", false},
		{"", "0", false},
		{"₱", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "₱ 0.00", Format(decimal.Zero))
	assert.Equal(t, "₱ 75.00", Format(decimal.NewFromInt(75)))
	assert.Equal(t, "₱ 1,500.00", Format(decimal.NewFromInt(1500)))
	assert.Equal(t, "₱ 1,234,567.89", Format(decimal.RequireFromString("1234567.891")))
	assert.Equal(t, "₱ -1,000.50", Format(decimal.RequireFromString("-1000.5")))
}

func TestCentsAndMax(t *testing.T) {
	assert.Equal(t, "2.68", Cents(decimal.RequireFromString("2.675")).String())
	assert.True(t, Max(decimal.Zero, decimal.NewFromInt(-3)).IsZero())
}
