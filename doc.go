/*
Package money implements exact monetary amounts denominated in a currency.
It leverages the [decimal] package's capabilities for handling decimal
numbers and combines it with a [Currency] type for representing different
currencies.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Exact decimal representation, no floating-point arithmetic
  - Amounts always kept at the scale of their currency
  - Arithmetic and comparison operations between amounts of one currency
  - Splitting an amount into evenly distributed parts without losing a cent
  - Two-column persistence contract: amount and currency code

# Representation

An [Amount] consists of a [Currency] and a decimal.Decimal value.
The scale of the value is fixed by the currency: it is the ISO 4217 minor
unit of the currency (2 for DKK, 0 for JPY, 3 for OMR), or [FallbackScale]
for currencies without a minor unit, such as XDR or XAU.

The Currency type is implemented as an integer index into in-memory
arrays generated from the ISO 4217 list. The arrays are read-only.

# Construction

Constructors never round unless asked to: [ParseAmount], [NewAmount] and
[NewAmountFromDecimal] return [ErrInexactAmount] if the value has more
significant digits after the decimal point than the scale of the currency.
[NewAmountRounded] accepts a [RoundingMode] instead.

# Operations

Add, Sub, Cmp and [Sum] require all amounts to be denominated in the same
currency, otherwise they return a [*CurrencyMismatchError]. Amounts are never
converted between currencies.

[Amount.Split] divides an amount into parts that differ by at most one
minimal step of the currency and sum up exactly to the original amount:

	DKK 10.00 / 3 = DKK 3.33, DKK 3.34, DKK 3.33

# Persistence

An amount is persisted as two columns, see [NullAmount.Columns] and
[ComposeNullAmount]. An absent amount is null in both columns. Values read
back are never re-rounded: a mismatch between stored scale and currency
scale, or a single null column, is reported as [ErrCorruptAmount].

# Errors

All errors are returned, wrapped with context, and can be matched with
[errors.Is]. Only the Must* helpers panic.
*/
package money
