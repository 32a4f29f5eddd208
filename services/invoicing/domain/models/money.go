package models

import (
	"fmt"
	"strings"

	domain "github.com/ghuser/invoicing/services/invoicing/domain"
)

// Money is a value object holding an amount in the smallest currency unit
// (cents) plus a currency tag. Amounts are integers to avoid floating-point
// drift. Money is immutable; every operation returns a new value.
type Money struct {
	amount   int64
	currency string
}

// NewMoney constructs a valid Money or returns an error if constraints are violated.
func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: got %d", domain.ErrInvalidAmount, amount)
	}
	if strings.TrimSpace(currency) == "" {
		return Money{}, domain.ErrInvalidCurrency
	}
	return Money{amount: amount, currency: currency}, nil
}

// Zero returns the additive identity for the given currency.
func Zero(currency string) (Money, error) {
	return NewMoney(0, currency)
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency tag.
func (m Money) Currency() string {
	return m.currency
}

// Add returns a new Money holding the sum of both amounts.
// Both operands must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if !m.SameCurrency(other) {
		return Money{}, fmt.Errorf("%w: cannot add %s to %s", domain.ErrCurrencyMismatch, other.currency, m.currency)
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns a new Money holding the difference. Both operands must
// share a currency and the result must not go below zero.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.SameCurrency(other) {
		return Money{}, fmt.Errorf("%w: cannot subtract %s from %s", domain.ErrCurrencyMismatch, other.currency, m.currency)
	}
	if m.amount < other.amount {
		return Money{}, domain.ErrInsufficientFunds
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Equals reports structural equality on (amount, currency).
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// SameCurrency reports whether both values share a currency tag.
func (m Money) SameCurrency(other Money) bool {
	return m.currency == other.currency
}

// String renders the value for logs and error messages, e.g. "1300 USD".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
