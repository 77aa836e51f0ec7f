package menu

import (
	"context"

	"github.com/go-leo/starbuzz/beverage"
	"github.com/go-leo/starbuzz/builder"
	"github.com/go-leo/starbuzz/decorator"
)

type option struct {
	Condiments []string
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type Option func(*option)

// With appends condiments to the order, applied in the given order.
func With(condiments ...string) Option {
	return func(o *option) {
		o.Condiments = append(o.Condiments, condiments...)
	}
}

var _ builder.Builder[beverage.Beverage] = (*OrderBuilder)(nil)

// OrderBuilder builds a beverage from menu names.
type OrderBuilder struct {
	base    string
	options *option
}

func NewOrderBuilder(base string, opts ...Option) *OrderBuilder {
	return &OrderBuilder{base: base, options: newOption(opts...)}
}

func (o *OrderBuilder) Build(ctx context.Context) (beverage.Beverage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	newBase, err := Base(o.base)
	if err != nil {
		return nil, err
	}
	decorators := make([]decorator.Decorator[beverage.Beverage], 0, len(o.options.Condiments))
	for _, name := range o.options.Condiments {
		d, err := Condiment(name)
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, d)
	}
	return decorator.Chain(newBase(), decorators...)
}
