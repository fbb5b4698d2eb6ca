package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// RoundingMode specifies how a decimal with more digits after the decimal
// point than the scale of a currency is converted to an amount.
// The zero value is [RoundExact].
type RoundingMode int

const (
	// RoundExact does not round: conversion fails with [ErrInexactAmount]
	// if any significant digit would be lost.
	RoundExact RoundingMode = iota
	// RoundHalfEven rounds to the nearest neighbor, ties to the even one
	// (banker's rounding).
	RoundHalfEven
	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp
	// RoundDown rounds toward zero (truncation).
	RoundDown
	// RoundUp rounds away from zero.
	RoundUp
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

func (m RoundingMode) String() string {
	switch m {
	case RoundExact:
		return "exact"
	case RoundHalfEven:
		return "half-even"
	case RoundHalfUp:
		return "half-up"
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundCeiling:
		return "ceiling"
	case RoundFloor:
		return "floor"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// rescale returns a decimal equal to d, rounded using the given mode or
// zero-padded, with exactly the given number of digits after the decimal point.
func rescale(d decimal.Decimal, scale int, mode RoundingMode) (decimal.Decimal, error) {
	if d.Scale() <= scale {
		e := d.Pad(scale)
		if e.Scale() != scale {
			return decimal.Decimal{}, fmt.Errorf("padding %v to %v digit(s): %w", d, scale, ErrAmountOverflow)
		}
		return e, nil
	}
	switch mode {
	case RoundExact:
		if d.MinScale() > scale {
			return decimal.Decimal{}, fmt.Errorf("%v has more than %v significant digit(s) after the decimal point: %w", d, scale, ErrInexactAmount)
		}
		return d.Trunc(scale), nil
	case RoundHalfEven:
		return d.Round(scale), nil
	case RoundDown:
		return d.Trunc(scale), nil
	case RoundCeiling:
		return d.Ceil(scale), nil
	case RoundFloor:
		return d.Floor(scale), nil
	case RoundUp, RoundHalfUp:
		return roundAway(d, scale, mode == RoundHalfUp)
	}
	return decimal.Decimal{}, fmt.Errorf("rounding mode %v: %w", mode, ErrInvalidArgument)
}

// roundAway truncates d and moves the result one step away from zero if
// the discarded digits are non-zero or, when half is set, at least half a step.
func roundAway(d decimal.Decimal, scale int, half bool) (decimal.Decimal, error) {
	t := d.Trunc(scale)
	r, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if r.IsZero() {
		return t, nil
	}
	ulp := t.ULP()
	if half {
		r, err = r.Add(r)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if r.CmpAbs(ulp) < 0 {
			return t, nil
		}
	}
	t, err = t.AddExact(ulp.CopySign(d), scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("rounding %v: %w", d, ErrAmountOverflow)
	}
	return t, nil
}
