// Package moneydb stores amounts of package money in a pair of nullable
// columns: the decimal amount and the alphabetic currency code.
//
// A column pair is named after a prefix, for example "total" is stored in
// total_amount and total_currency, see [Names]. An absent amount is null in
// both columns. Rows with exactly one null column, or with a stored scale
// that differs from the scale of the currency, are reported as
// [money.ErrCorruptAmount] and are never repaired silently.
//
// The package works with plain database/sql through [Columns.Dest] and
// [Columns.Args], and with GORM through embedded [Columns] fields and
// the scopes [WhereEqual] and [WhereNull].
package moneydb

import (
	"fmt"

	"github.com/clanie/money"
	"github.com/govalues/decimal"
)

// Columns holds the values of a pair of money columns.
// It is a transient carrier between a row and a [money.NullAmount]
// and should not be kept after [Columns.Compose].
//
// Embedded into a GORM model with a prefix, it maps to the columns
// <prefix>amount and <prefix>currency:
//
//	type Invoice struct {
//		ID    uint
//		Total moneydb.Columns `gorm:"embedded;embeddedPrefix:total_"`
//	}
//
// The amount column is declared as text. Numeric column types drop
// trailing zeros (SQLite) or round to a default scale (MySQL), and the
// stored scale must survive the round trip.
type Columns struct {
	Amount   decimal.NullDecimal `gorm:"column:amount;type:varchar(40)"`
	Currency money.NullCurrency  `gorm:"column:currency;type:varchar(3)"`
}

// NewColumns returns the column values of an amount that can be absent.
func NewColumns(a money.NullAmount) Columns {
	amount, curr := a.Columns()
	return Columns{Amount: amount, Currency: curr}
}

// FromAmount returns the column values of an amount.
func FromAmount(a money.Amount) Columns {
	return NewColumns(money.NullAmount{Amount: a, Valid: true})
}

// Dest returns the scan destinations for the amount and currency columns,
// in this order, to be passed to [database/sql.Rows.Scan].
func (c *Columns) Dest() []any {
	return []any{&c.Amount, &c.Currency}
}

// Args returns the values of the amount and currency columns, in this
// order, to be passed as statement arguments.
func (c Columns) Args() []any {
	return []any{c.Amount, c.Currency}
}

// Compose reconstructs the amount from the column values.
// See [money.ComposeNullAmount].
func (c Columns) Compose() (money.NullAmount, error) {
	a, err := money.ComposeNullAmount(c.Amount, c.Currency)
	if err != nil {
		return money.NullAmount{}, fmt.Errorf("composing amount: %w", err)
	}
	return a, nil
}

// Names returns the names of the amount and currency columns of a money
// column pair.
func Names(prefix string) (amount, currency string) {
	if prefix == "" {
		return "amount", "currency"
	}
	return prefix + "_amount", prefix + "_currency"
}
