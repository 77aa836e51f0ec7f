package menu

import (
	"fmt"
	"strings"

	"github.com/go-leo/starbuzz/beverage"
	"github.com/go-leo/starbuzz/decorator"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Item is a line of the printed menu.
type Item struct {
	Name        string
	Description string
	Cost        decimal.Decimal
}

var bases = map[string]func() beverage.Beverage{
	"HouseBlend": func() beverage.Beverage { return beverage.NewHouseBlend() },
	"DarkRoast":  func() beverage.Beverage { return beverage.NewDarkRoast() },
	"Decaf":      func() beverage.Beverage { return beverage.NewDecaf() },
	"Expresso":   func() beverage.Beverage { return beverage.NewExpresso() },
}

var condiments = map[string]func() decorator.Decorator[beverage.Beverage]{
	"SteamedMilk":  beverage.WithSteamedMilk,
	"Mocha":        beverage.WithMocha,
	"Soy":          beverage.WithSoy,
	"WhippedCream": beverage.WithWhippedCream,
}

var aliases = map[string]string{
	"espresso": "Expresso",
	"whip":     "WhippedCream",
}

// Base returns the constructor of the base beverage called name.
func Base(name string) (func() beverage.Beverage, error) {
	canonical, ok := lookup(name, maps.Keys(bases))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBeverage, name)
	}
	return bases[canonical], nil
}

// Condiment returns a Decorator adding the condiment called name.
func Condiment(name string) (decorator.Decorator[beverage.Beverage], error) {
	canonical, ok := lookup(name, maps.Keys(condiments))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCondiment, name)
	}
	return condiments[canonical](), nil
}

// Bases returns the sorted names of the base beverages.
func Bases() []string {
	names := maps.Keys(bases)
	slices.Sort(names)
	return names
}

// Condiments returns the sorted names of the condiments.
func Condiments() []string {
	names := maps.Keys(condiments)
	slices.Sort(names)
	return names
}

// BaseItems lists the base beverages with their prices.
func BaseItems() []Item {
	names := Bases()
	items := make([]Item, 0, len(names))
	for _, name := range names {
		b := bases[name]()
		items = append(items, Item{Name: name, Description: b.GetDescription(), Cost: b.GetCost()})
	}
	return items
}

// CondimentItems lists the condiments with the amount each one adds.
func CondimentItems() ([]Item, error) {
	names := Condiments()
	items := make([]Item, 0, len(names))
	for _, name := range names {
		b, err := condiments[name]().Decorate(nothing{})
		if err != nil {
			return nil, err
		}
		suffixes := beverage.Condiments(b)
		items = append(items, Item{Name: name, Description: suffixes[len(suffixes)-1], Cost: b.GetCost()})
	}
	return items, nil
}

// nothing is an empty cup, used to read what a condiment adds on its own.
type nothing struct{}

func (nothing) GetDescription() string { return "" }

func (nothing) GetCost() decimal.Decimal { return decimal.Zero }

func lookup(name string, names []string) (string, bool) {
	key := normalize(name)
	if canonical, ok := aliases[key]; ok && slices.Contains(names, canonical) {
		return canonical, true
	}
	for _, canonical := range names {
		if normalize(canonical) == key {
			return canonical, true
		}
	}
	return "", false
}

func normalize(name string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.TrimSpace(name)))
}
