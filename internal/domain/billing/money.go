package billing

import (
	"fmt"
	"math"
)

// Money is an amount in integer cents. All invoice arithmetic happens in
// cents; tax amounts round half-up to the nearest cent.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Mul(factor int64) Money {
	return Money{cents: m.cents * factor}
}

// ApplyRate multiplies by a fractional rate, rounding half-up.
func (m Money) ApplyRate(rate float64) Money {
	return Money{cents: int64(math.Round(float64(m.cents) * rate))}
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) IsZeroOrNegative() bool {
	return m.cents <= 0
}

func (m Money) String() string {
	return fmt.Sprintf("$%.2f", m.Dollars())
}
