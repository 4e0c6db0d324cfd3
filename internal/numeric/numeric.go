// Package numeric provides decimal arithmetic helpers used by the
// evaluator's BinOp rule (§4.3), atop github.com/shopspring/decimal so
// that 0.1 + 0.1 + 0.1 == 0.3 exactly (§3.1) instead of accumulating
// binary-float error.
package numeric

import (
	"errors"

	"github.com/shopspring/decimal"
)

var errDivByZero = errors.New("division by zero")

// DivisionPrecision bounds the number of decimal places "/" produces for
// non-terminating quotients (shopspring/decimal's Div is otherwise exact
// only for terminating results).
const DivisionPrecision = 34

func Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }

func Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, errDivByZero
	}
	return a.DivRound(b, DivisionPrecision), nil
}

// Pow computes a**b. Both operands are already decimal by construction
// (ops.Apply rejects non-number operands before calling this), which bounds the cost
// of exponentiation and avoids runaway big-integer growth from naive
// integer exponentiation (§4.3: "** coerces both to decimal to prevent
// runaway big-integer exponentiation").
func Pow(a, b decimal.Decimal) decimal.Decimal {
	return a.Pow(b)
}

func Neg(a decimal.Decimal) decimal.Decimal { return a.Neg() }
