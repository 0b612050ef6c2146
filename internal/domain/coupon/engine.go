// internal/domain/coupon/engine.go
package coupon

import (
	"errors"
	"sort"
	"strings"

	"github.com/pawtopia/storefront/internal/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCode is returned when a code is not in the table
	ErrInvalidCode = errors.New("invalid coupon code")
	// ErrEmptyCode is returned when no code was entered
	ErrEmptyCode = errors.New("coupon code is empty")
)

// Result reports the outcome of applying a code
type Result struct {
	Applied bool            `json:"applied"`
	Code    string          `json:"code,omitempty"`
	Rate    decimal.Decimal `json:"rate"`
}

// Engine validates codes against a fixed table and holds at most one
// active coupon for a page session. It is not persisted.
type Engine struct {
	table  map[string]decimal.Decimal
	active string
}

// NewEngine creates an engine over codes. Codes are matched upper-cased.
func NewEngine(codes map[string]decimal.Decimal) *Engine {
	table := make(map[string]decimal.Decimal, len(codes))
	for code, rate := range codes {
		table[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	return &Engine{table: table}
}

// Apply makes code the active coupon. An unknown code clears any active
// coupon and returns ErrInvalidCode; an empty one changes nothing and
// returns ErrEmptyCode.
func (e *Engine) Apply(code string) (Result, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Result{}, ErrEmptyCode
	}

	rate, ok := e.table[code]
	if !ok {
		e.active = ""
		return Result{}, ErrInvalidCode
	}

	e.active = code
	return Result{Applied: true, Code: code, Rate: rate}, nil
}

// Remove clears the active coupon and reports whether there was one
func (e *Engine) Remove() bool {
	had := e.active != ""
	e.active = ""
	return had
}

// Active returns the applied code and its rate
func (e *Engine) Active() (string, decimal.Decimal, bool) {
	if e.active == "" {
		return "", decimal.Zero, false
	}
	return e.active, e.table[e.active], true
}

// Discount is the discount for subtotal under the active coupon
func (e *Engine) Discount(subtotal decimal.Decimal) decimal.Decimal {
	_, rate, ok := e.Active()
	if !ok {
		return decimal.Zero
	}
	return ComputeDiscount(subtotal, rate)
}

// Suggestions lists the known codes in alphabetical order, for the coupon
// dropdown
func (e *Engine) Suggestions() []string {
	codes := make([]string, 0, len(e.table))
	for code := range e.table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ComputeDiscount is subtotal × rate rounded to cents, never negative
func ComputeDiscount(subtotal, rate decimal.Decimal) decimal.Decimal {
	d := money.Cents(subtotal.Mul(rate))
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Percent is rate as a whole percentage, e.g. 0.99 -> 99
func Percent(rate decimal.Decimal) int64 {
	return rate.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
