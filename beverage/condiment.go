package beverage

import (
	"github.com/go-leo/starbuzz/decorator"
	"github.com/shopspring/decimal"
)

const separator = ", "

var (
	steamedMilkCost  = decimal.New(30, -2)
	mochaCost        = decimal.New(60, -2)
	soyCost          = decimal.New(45, -2)
	whippedCreamCost = decimal.New(30, -2)
)

var (
	_ Beverage = (*steamedMilk)(nil)
	_ Beverage = (*mocha)(nil)
	_ Beverage = (*soy)(nil)
	_ Beverage = (*whippedCream)(nil)
)

// steamedMilk adds steamed milk to a beverage.
type steamedMilk struct {
	beverage Beverage
}

// NewSteamedMilk wraps b with SteamedMilk. It fails with ErrBeverageNil if b is nil.
func NewSteamedMilk(b Beverage) (Beverage, error) {
	if isNil(b) {
		return nil, ErrBeverageNil
	}
	return &steamedMilk{beverage: b}, nil
}

func (c *steamedMilk) GetDescription() string {
	return c.beverage.GetDescription() + separator + c.Suffix()
}

func (c *steamedMilk) GetCost() decimal.Decimal { return c.beverage.GetCost().Add(c.Increment()) }

func (c *steamedMilk) Unwrap() Beverage { return c.beverage }

func (*steamedMilk) Suffix() string { return "Steamed Milk" }

func (*steamedMilk) Increment() decimal.Decimal { return steamedMilkCost }

// mocha adds chocolate to a beverage.
type mocha struct {
	beverage Beverage
}

// NewMocha wraps b with Mocha. It fails with ErrBeverageNil if b is nil.
func NewMocha(b Beverage) (Beverage, error) {
	if isNil(b) {
		return nil, ErrBeverageNil
	}
	return &mocha{beverage: b}, nil
}

func (c *mocha) GetDescription() string {
	return c.beverage.GetDescription() + separator + c.Suffix()
}

func (c *mocha) GetCost() decimal.Decimal { return c.beverage.GetCost().Add(c.Increment()) }

func (c *mocha) Unwrap() Beverage { return c.beverage }

func (*mocha) Suffix() string { return "Mocha" }

func (*mocha) Increment() decimal.Decimal { return mochaCost }

// soy replaces the milk of a beverage with soy.
type soy struct {
	beverage Beverage
}

// NewSoy wraps b with Soy. It fails with ErrBeverageNil if b is nil.
func NewSoy(b Beverage) (Beverage, error) {
	if isNil(b) {
		return nil, ErrBeverageNil
	}
	return &soy{beverage: b}, nil
}

func (c *soy) GetDescription() string {
	return c.beverage.GetDescription() + separator + c.Suffix()
}

func (c *soy) GetCost() decimal.Decimal { return c.beverage.GetCost().Add(c.Increment()) }

func (c *soy) Unwrap() Beverage { return c.beverage }

func (*soy) Suffix() string { return "Soy" }

func (*soy) Increment() decimal.Decimal { return soyCost }

// whippedCream tops a beverage with whip.
type whippedCream struct {
	beverage Beverage
}

// NewWhippedCream wraps b with WhippedCream. It fails with ErrBeverageNil if b is nil.
func NewWhippedCream(b Beverage) (Beverage, error) {
	if isNil(b) {
		return nil, ErrBeverageNil
	}
	return &whippedCream{beverage: b}, nil
}

func (c *whippedCream) GetDescription() string {
	return c.beverage.GetDescription() + separator + c.Suffix()
}

func (c *whippedCream) GetCost() decimal.Decimal { return c.beverage.GetCost().Add(c.Increment()) }

func (c *whippedCream) Unwrap() Beverage { return c.beverage }

func (*whippedCream) Suffix() string { return "Whip" }

func (*whippedCream) Increment() decimal.Decimal { return whippedCreamCost }

// WithSteamedMilk returns a Decorator that wraps a beverage with SteamedMilk.
func WithSteamedMilk() decorator.Decorator[Beverage] { return decorate(NewSteamedMilk) }

// WithMocha returns a Decorator that wraps a beverage with Mocha.
func WithMocha() decorator.Decorator[Beverage] { return decorate(NewMocha) }

// WithSoy returns a Decorator that wraps a beverage with Soy.
func WithSoy() decorator.Decorator[Beverage] { return decorate(NewSoy) }

// WithWhippedCream returns a Decorator that wraps a beverage with WhippedCream.
func WithWhippedCream() decorator.Decorator[Beverage] { return decorate(NewWhippedCream) }

func decorate(newFunc func(b Beverage) (Beverage, error)) decorator.Decorator[Beverage] {
	return decorator.DecoratorFunc[Beverage](newFunc)
}
