package beverage

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-leo/starbuzz/decorator"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondiment(t *testing.T) {
	bases := []Beverage{NewHouseBlend(), NewDarkRoast(), NewDecaf(), NewExpresso()}
	tests := []struct {
		name      string
		decorator decorator.Decorator[Beverage]
		suffix    string
		increment decimal.Decimal
	}{
		{name: "SteamedMilk", decorator: WithSteamedMilk(), suffix: "Steamed Milk", increment: decimal.RequireFromString("0.30")},
		{name: "Mocha", decorator: WithMocha(), suffix: "Mocha", increment: decimal.RequireFromString("0.60")},
		{name: "Soy", decorator: WithSoy(), suffix: "Soy", increment: decimal.RequireFromString("0.45")},
		{name: "WhippedCream", decorator: WithWhippedCream(), suffix: "Whip", increment: decimal.RequireFromString("0.30")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, base := range bases {
				wrapped, err := tt.decorator.Decorate(base)
				require.NoError(t, err)
				assert.Equal(t, base.GetDescription()+", "+tt.suffix, wrapped.GetDescription())
				assert.True(t, base.GetCost().Add(tt.increment).Equal(wrapped.GetCost()))
				assert.Equal(t, base, Unwrap(wrapped))
				assert.Equal(t, []string{tt.suffix}, Condiments(wrapped))
			}
		})
	}
}

func TestCondiment_NilBeverage(t *testing.T) {
	_, err := NewSteamedMilk(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMocha(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewSoy(nil)
	assert.ErrorIs(t, err, ErrBeverageNil)
	_, err = NewWhippedCream(nil)
	assert.ErrorIs(t, err, ErrBeverageNil)

	var m *mocha
	_, err = NewSoy(m)
	assert.ErrorIs(t, err, ErrBeverageNil)

	_, err = WithMocha().Decorate(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestChain(t *testing.T) {
	Convey("Given a dark roast", t, func() {
		var b Beverage = NewDarkRoast()
		So(b.GetDescription(), ShouldEqual, "Dark Roast Coffee")
		So(b.GetCost().StringFixed(2), ShouldEqual, "2.20")

		Convey("When mocha is added", func() {
			b, err := NewMocha(b)
			So(err, ShouldBeNil)
			So(b.GetDescription(), ShouldEqual, "Dark Roast Coffee, Mocha")
			So(b.GetCost().StringFixed(2), ShouldEqual, "2.80")

			Convey("And whip on top", func() {
				b, err := NewWhippedCream(b)
				So(err, ShouldBeNil)
				So(b.GetDescription(), ShouldEqual, "Dark Roast Coffee, Mocha, Whip")
				So(b.GetCost().StringFixed(2), ShouldEqual, "3.10")
				So(Leaf(b), ShouldEqual, NewDarkRoast())
				So(Condiments(b), ShouldResemble, []string{"Mocha", "Whip"})
			})
		})
	})

	Convey("Given an espresso with mocha, whip and soy", t, func() {
		b, err := decorator.Chain[Beverage](NewExpresso(), WithMocha(), WithWhippedCream(), WithSoy())
		So(err, ShouldBeNil)
		So(b.GetDescription(), ShouldEqual, "Espresso, Mocha, Whip, Soy")
		So(b.GetCost().StringFixed(2), ShouldEqual, "4.25")
	})

	Convey("Given the same condiments in another order", t, func() {
		first, err := decorator.Chain[Beverage](NewDecaf(), WithSoy(), WithMocha(), WithSteamedMilk())
		So(err, ShouldBeNil)
		second, err := decorator.Chain[Beverage](NewDecaf(), WithSteamedMilk(), WithMocha(), WithSoy())
		So(err, ShouldBeNil)

		Convey("The cost is the same", func() {
			So(first.GetCost().Equal(second.GetCost()), ShouldBeTrue)
			So(first.GetCost().StringFixed(2), ShouldEqual, "3.35")
		})
		Convey("The description follows the wrapping order", func() {
			So(first.GetDescription(), ShouldEqual, "Decaf Coffee, Soy, Mocha, Steamed Milk")
			So(second.GetDescription(), ShouldEqual, "Decaf Coffee, Steamed Milk, Mocha, Soy")
		})
	})

	Convey("Given a deep chain", t, func() {
		var b Beverage = NewHouseBlend()
		const depth = 100
		for i := 0; i < depth; i++ {
			var err error
			b, err = WithMocha().Decorate(b)
			So(err, ShouldBeNil)
		}
		So(len(Condiments(b)), ShouldEqual, depth)
		So(b.GetCost().StringFixed(2), ShouldEqual, "61.80")
		So(Leaf(b), ShouldEqual, NewHouseBlend())
	})
}

func TestCondiment_OnlyBuiltAroundABeverage(t *testing.T) {
	constructors := map[string]func(Beverage) (Beverage, error){
		"SteamedMilk":  NewSteamedMilk,
		"Mocha":        NewMocha,
		"Soy":          NewSoy,
		"WhippedCream": NewWhippedCream,
	}
	for name, newFunc := range constructors {
		t.Run(name, func(t *testing.T) {
			b, err := newFunc(nil)
			assert.ErrorIs(t, err, ErrBeverageNil)
			assert.True(t, b == nil, "a failed construction must not hand out a condiment")

			b, err = newFunc(NewDecaf())
			require.NoError(t, err)
			require.NotNil(t, Unwrap(b))
			assert.NotPanics(t, func() {
				_ = b.GetDescription()
				_ = b.GetCost()
			})
		})
	}
}

func TestChain_ConcurrentReads(t *testing.T) {
	b, err := decorator.Chain[Beverage](NewExpresso(), WithMocha(), WithWhippedCream(), WithSoy())
	require.NoError(t, err)

	const readers = 16
	var wg sync.WaitGroup
	descriptions := make([]string, readers)
	costs := make([]string, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			descriptions[i] = b.GetDescription()
			costs[i] = b.GetCost().StringFixed(2)
		}(i)
	}
	wg.Wait()

	for i := 0; i < readers; i++ {
		assert.Equal(t, "Espresso, Mocha, Whip, Soy", descriptions[i])
		assert.Equal(t, "4.25", costs[i])
	}
}
