// Package calculator holds the pure pricing calculators for the eight trades.
// Every calculator maps a trade-specific input plus the pricing table to an
// ordered list of line items and their subtotal. No I/O, no shared state, and
// no errors: invalid numeric input clamps to zero and produces a $0 result.
package calculator

import (
	"math"
	"strings"

	"bidworks/internal/domain/entities"
)

// Breakdown is the common calculator output: the itemized costs for one trade
// and their sum.

type Breakdown struct {
	Items    []entities.LineItem `json:"items"`
	Subtotal float64             `json:"subtotal"`
}

func newBreakdown(items []entities.LineItem) Breakdown {
	sum := 0.0
	for _, it := range items {
		sum += it.Total
	}
	return Breakdown{Items: items, Subtotal: sum}
}

// nonNegative clamps NaN, Inf and negative input to 0. Blank form fields
// arrive as zero values, so every calculator treats "no input" and "bad
// input" identically.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// positiveOr returns v when it is a usable positive number, otherwise def.
// Used for fields with a sensible default (pitch, waste, spacing).
func positiveOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return def
	}
	return v
}

func countOf(v int) float64 {
	if v < 0 {
		return 0
	}
	return float64(v)
}

func ceil(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Ceil(v)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
