package beverage

import (
	"reflect"

	"github.com/shopspring/decimal"
)

// Beverage is anything the shop can sell: a base coffee, or a coffee wrapped with condiments.
type Beverage interface {
	// GetDescription returns a human-readable label, never empty.
	GetDescription() string

	// GetCost returns the price as an exact decimal amount, never negative.
	GetCost() decimal.Decimal
}

// wrapper is implemented by every condiment.
type wrapper interface {
	Unwrap() Beverage
	Suffix() string
}

// Unwrap returns the beverage b wraps, or nil if b is a base beverage.
func Unwrap(b Beverage) Beverage {
	w, ok := b.(wrapper)
	if !ok {
		return nil
	}
	return w.Unwrap()
}

// Leaf walks the chain down to the base beverage.
func Leaf(b Beverage) Beverage {
	for {
		inner := Unwrap(b)
		if inner == nil {
			return b
		}
		b = inner
	}
}

// Condiments returns the suffixes of every condiment in the chain, in the order they were applied.
func Condiments(b Beverage) []string {
	var suffixes []string
	for {
		w, ok := b.(wrapper)
		if !ok {
			break
		}
		suffixes = append([]string{w.Suffix()}, suffixes...)
		b = w.Unwrap()
	}
	return suffixes
}

func isNil(b Beverage) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
