package money

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Amount type represents a monetary amount: an exact decimal value
// denominated in a currency.
//
// The scale of the value is always equal to the scale of the currency,
// see [Currency.Scale]. Since the representation is canonical, two amounts
// are equal (==) if and only if they have the same currency and numerically
// equal values, so Amount can be used as a map key.
//
// Amount is immutable and designed to be safe for concurrent use by multiple
// goroutines. Every operation returns a new amount.
//
// The zero value is not a valid amount, use one of the constructors.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary value
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, d decimal.Decimal) Amount {
	return Amount{curr: c, value: d}
}

// newAmount creates a new amount rescaled to the scale of the currency.
func newAmount(c Currency, d decimal.Decimal, mode RoundingMode) (Amount, error) {
	d, err := rescale(d, c.Scale(), mode)
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(c, d), nil
}

// NewAmount returns an amount equal to coef / 10^scale.
// If the scale is less than the scale of the currency, the result
// will be zero-padded to the right.
//
// NewAmount returns an error if:
//   - the currency code is not valid;
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the value has more significant digits after the decimal point than
//     the scale of the currency ([ErrInexactAmount]);
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits ([ErrAmountOverflow]).
func NewAmount(curr string, coef int64, scale int) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	// Amount
	a, err := newAmount(c, d, RoundExact)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr string, coef int64, scale int) Amount {
	a, err := NewAmount(curr, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v, %v) failed: %v", curr, coef, scale, err))
	}
	return a
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// The value is never rounded: if it has more significant digits after
// the decimal point than the scale of the currency, NewAmountFromDecimal
// returns [ErrInexactAmount]. Use [NewAmountRounded] to round instead.
// Trailing zeros are added or removed to match the scale of the currency.
// See also method [Amount.Decimal].
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return NewAmountRounded(curr, amount, RoundExact)
}

// NewAmountRounded is like [NewAmountFromDecimal], but rounds the value to
// the scale of the currency using the given rounding mode.
// With [RoundExact] it behaves exactly like [NewAmountFromDecimal].
func NewAmountRounded(curr Currency, amount decimal.Decimal, mode RoundingMode) (Amount, error) {
	a, err := newAmount(curr, amount, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v to %v: %w", amount, curr, err)
	}
	return a, nil
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, øre), to an amount.
// See also method [Amount.MinorUnits].
//
// NewAmountFromMinorUnits returns an error if currency code is not valid.
func NewAmountFromMinorUnits(curr string, units int64) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := decimal.New(units, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("converting minor units: %w", err)
	}
	// Amount
	return newAmountUnsafe(c, d), nil
}

// ParseAmount converts currency and decimal strings to an amount.
// If the scale of the decimal is less than the scale of the currency,
// the result will be zero-padded to the right.
// ParseAmount does not round: it returns [ErrInexactAmount] if the decimal
// has more significant digits after the decimal point than the scale of
// the currency.
// See also constructors [ParseCurr] and [decimal.Parse].
func ParseAmount(curr, amount string) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := decimal.Parse(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	// Amount
	a, err := newAmount(c, d, RoundExact)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return a, nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Sum returns the sum of the amounts.
// The order of the amounts does not affect the result.
//
// Sum of no amounts is not a zero amount, because a zero amount requires
// a currency: if amounts is empty, the returned [NullAmount] is not valid.
//
// Sum returns an error if:
//   - amounts are denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func Sum(amounts ...Amount) (NullAmount, error) {
	if len(amounts) == 0 {
		return NullAmount{}, nil
	}
	s := amounts[0]
	for _, a := range amounts[1:] {
		var err error
		s, err = s.add(a)
		if err != nil {
			return NullAmount{}, fmt.Errorf("computing sum of %v amounts: %w", len(amounts), err)
		}
	}
	return NullAmount{Amount: s, Valid: true}, nil
}

// MinorUnits returns the amount in minor units of currency
// (e.g. cents, pennies, øre).
// See also constructor [NewAmountFromMinorUnits].
//
// If the result cannot be represented as an int64, then false is returned.
func (a Amount) MinorUnits() (units int64, ok bool) {
	d := a.Decimal()
	u := d.Coef()
	if d.IsNeg() {
		if u > -math.MinInt64 {
			return 0, false
		}
		return -int64(u), true //nolint:gosec
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
// Its scale is always equal to the scale of the currency.
// It is meant for persistence, use methods of the amount for arithmetic.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Scale returns the number of digits after the decimal point.
func (a Amount) Scale() int {
	return a.Decimal().Scale()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Decimal().Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.Decimal().IsNeg()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.Decimal().IsPos()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.Decimal().IsZero()
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	if !a.IsNeg() {
		return a
	}
	return a.Neg()
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.Curr(), a.Decimal().Neg())
}

// Zero returns an amount with a value of 0 in the currency of amount a.
// See also method [Amount.ULP].
func (a Amount) Zero() Amount {
	return newAmountUnsafe(a.Curr(), a.Decimal().Zero())
}

// ULP (Unit in the Last Place) returns the minimal step of the currency of
// amount a, that is the value of its smallest denomination:
// 0.01 for a currency with scale 2, 1 for a currency with scale 0.
// See also methods [Amount.Zero], [Currency.Scale].
func (a Amount) ULP() Amount {
	return newAmountUnsafe(a.Curr(), a.Decimal().ULP())
}

// Add returns the sum of amounts a and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
//     For example, when currency is Danish Krone, Add will return an error if the integer
//     part of the result has more than 17 digits (19 - 2 = 17).
func (a Amount) Add(b Amount) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Amount) (Amount, error) {
	if err := checkCurr(a, b); err != nil {
		return Amount{}, err
	}
	c, d, e := a.Curr(), a.Decimal(), b.Decimal()
	d, err := d.AddExact(e, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	return newAmount(c, d, RoundExact)
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the integer part of the result has more than ([decimal.MaxPrec] - [Currency.Scale]) digits.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Amount) (Amount, error) {
	if err := checkCurr(a, b); err != nil {
		return Amount{}, err
	}
	c, d, e := a.Curr(), a.Decimal(), b.Decimal()
	d, err := d.SubExact(e, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %w", ErrAmountOverflow, err)
	}
	return newAmount(c, d, RoundExact)
}

// Split returns a slice of amounts that sum up exactly to the original amount,
// ensuring the parts are as equal as possible: no two parts differ by more
// than the minimal step of the currency, see [Amount.ULP].
//
// The larger parts are spread evenly over the slice rather than gathered at
// its start or end. For example, DKK 20.00 is split into 6 parts as
//
//	DKK 3.33, DKK 3.34, DKK 3.33, DKK 3.33, DKK 3.34, DKK 3.33
//
// The sum of the first k parts is always a * k / parts rounded to the scale
// of the currency using [rounding half to even].
//
// Split returns an error if the number of parts is not a positive integer
// or is greater than [MaxSplitParts].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (a Amount) Split(parts int) ([]Amount, error) {
	r, err := a.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, err)
	}
	return r, nil
}

// MaxSplitParts is the largest number of parts accepted by [Amount.Split].
const MaxSplitParts = math.MaxInt32

// split writes |a| as q * n + r minimal steps, where n is the number of parts
// and 0 <= r < n. The running total of the first k parts is then exactly
// q * k + r * k / n minimal steps, so only the fraction r * k / n needs
// rounding and no intermediate value exceeds |a|.
func (a Amount) split(parts int) ([]Amount, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("number of parts must be positive: %w", ErrInvalidArgument)
	}
	if parts > MaxSplitParts {
		return nil, fmt.Errorf("number of parts must not exceed %v: %w", MaxSplitParts, ErrInvalidArgument)
	}
	if parts == 1 {
		return []Amount{a}, nil
	}
	c, d := a.Curr(), a.Decimal()
	scale := d.Scale()
	n := int64(parts)

	// Quotient and remainder in minimal steps
	block, err := decimal.New(n, scale)
	if err != nil {
		return nil, err
	}
	q, r, err := d.Abs().QuoRem(block)
	if err != nil {
		return nil, err
	}
	q = q.Trunc(0)
	rem := int64(r.Rescale(scale).Coef()) //nolint:gosec

	// Running totals
	ulp := d.ULP()
	prev := d.Zero()
	res := make([]Amount, parts)
	for i := range parts {
		k := int64(i + 1)
		steps, err := runningSteps(q, k, rem*k, n)
		if err != nil {
			return nil, err
		}
		total, err := steps.Mul(ulp)
		if err != nil {
			return nil, err
		}
		part, err := total.SubExact(prev, scale)
		if err != nil {
			return nil, err
		}
		prev = total
		if d.IsNeg() {
			part = part.Neg()
		}
		res[i] = newAmountUnsafe(c, part)
	}
	return res, nil
}

// runningSteps returns q * k + rk / n rounded half to even.
// q must be a non-negative integer, 0 <= rk < n * k, n <= MaxSplitParts.
func runningSteps(q decimal.Decimal, k, rk, n int64) (decimal.Decimal, error) {
	whole, frac := rk/n, rk%n
	switch {
	case 2*frac > n:
		whole++
	case 2*frac == n:
		// Tie: round to even, q * k is odd if both q and k are odd
		qkOdd := q.Coef()%2 == 1 && k%2 == 1
		if qkOdd != (whole%2 == 1) {
			whole++
		}
	}
	e, err := decimal.New(k, 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	qk, err := q.Mul(e)
	if err != nil {
		return decimal.Decimal{}, err
	}
	f, err := decimal.New(whole, 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return qk.Add(f)
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// All six relations are expressed as a.Cmp(b) <op> 0.
// See also method [Amount.Equal].
//
// Cmp returns an error if amounts are denominated in different currencies.
func (a Amount) Cmp(b Amount) (int, error) {
	if err := checkCurr(a, b); err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, err)
	}
	d, e := a.Decimal(), b.Decimal()
	return d.Cmp(e), nil
}

// Equal returns true if amounts are denominated in the same currency and
// their values are numerically equal.
// Unlike [Amount.Cmp], Equal never fails: amounts in different currencies
// are not equal.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.Decimal().Cmp(b.Decimal()) == 0
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, e.g. "DKK 3.33".
// See also methods [Currency.String], [Decimal.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
// [Decimal.String]: https://pkg.go.dev/github.com/govalues/decimal#Decimal.String
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}
