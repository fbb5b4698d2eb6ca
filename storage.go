package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// NullAmount represents an amount that can be absent.
// Its zero value is absent.
//
// An absent amount is stored as null in both the amount column and
// the currency column, see [NullAmount.Columns] and [ComposeNullAmount].
type NullAmount struct {
	Amount Amount
	Valid  bool
}

// NewAmountFromStored reconstructs an amount from values read from storage.
// Stored values were written by [Amount.Decimal], so the scale of amount
// must be equal to the scale of the currency. NewAmountFromStored never
// rounds or pads: if the scales differ, or the currency is not a known
// currency, it returns [ErrCorruptAmount].
func NewAmountFromStored(curr Currency, amount decimal.Decimal) (Amount, error) {
	if !curr.valid() {
		return Amount{}, fmt.Errorf("stored currency index %d is out of range: %w", uint8(curr), ErrCorruptAmount)
	}
	if amount.Scale() != curr.Scale() {
		return Amount{}, fmt.Errorf("stored amount %v has %v digit(s) after the decimal point, %v requires %v: %w",
			amount, amount.Scale(), curr, curr.Scale(), ErrCorruptAmount)
	}
	return newAmountUnsafe(curr, amount), nil
}

// ComposeNullAmount reconstructs an amount from the values of its amount
// and currency columns.
// If both columns are null, the result is an absent amount.
//
// ComposeNullAmount returns [ErrCorruptAmount] if exactly one column is
// null, or if the stored scale does not match the scale of the currency.
func ComposeNullAmount(amount decimal.NullDecimal, curr NullCurrency) (NullAmount, error) {
	switch {
	case !amount.Valid && !curr.Valid:
		return NullAmount{}, nil
	case !amount.Valid:
		return NullAmount{}, fmt.Errorf("amount is null, currency is not: %w", ErrCorruptAmount)
	case !curr.Valid:
		return NullAmount{}, fmt.Errorf("currency is null, amount is %v: %w", amount.Decimal, ErrCorruptAmount)
	}
	a, err := NewAmountFromStored(curr.Currency, amount.Decimal)
	if err != nil {
		return NullAmount{}, err
	}
	return NullAmount{Amount: a, Valid: true}, nil
}

// Columns returns the values to be written to the amount and currency
// columns. An absent amount is written as null in both columns.
// See also [ComposeNullAmount].
func (n NullAmount) Columns() (decimal.NullDecimal, NullCurrency) {
	if !n.Valid {
		return decimal.NullDecimal{}, NullCurrency{}
	}
	return decimal.NullDecimal{Decimal: n.Amount.Decimal(), Valid: true},
		NullCurrency{Currency: n.Amount.Curr(), Valid: true}
}

// Equal returns true if both amounts are absent, or if both are present and
// equal according to [Amount.Equal].
// An absent amount is never equal to a present one.
func (n NullAmount) Equal(m NullAmount) bool {
	if !n.Valid || !m.Valid {
		return n.Valid == m.Valid
	}
	return n.Amount.Equal(m.Amount)
}

// String returns the string representation of the amount, or "null" if
// the amount is absent.
func (n NullAmount) String() string {
	if !n.Valid {
		return "null"
	}
	return n.Amount.String()
}
