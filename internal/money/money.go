// Package money holds the one conversion rule shared by the checkout
// initiator and the return reconciler. The gateway speaks paisa; both sides
// must round identically or reconciliation fails on drift.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit amount to minor units (paisa),
// rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromMinorUnits converts minor units back to a major-unit amount,
// for display only.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(hundred)
}
