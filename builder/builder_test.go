package builder_test

import (
	"context"
	"testing"

	"github.com/go-leo/starbuzz/beverage"
	"github.com/go-leo/starbuzz/builder"
	"github.com/go-leo/starbuzz/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderFunc(t *testing.T) {
	var b builder.Builder[beverage.Beverage] = builder.BuilderFunc[beverage.Beverage](func(ctx context.Context) (beverage.Beverage, error) {
		return beverage.NewMocha(beverage.NewDarkRoast())
	})
	got, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dark Roast Coffee, Mocha", got.GetDescription())
}

func TestOrderBuilder(t *testing.T) {
	var b builder.Builder[beverage.Beverage] = menu.NewOrderBuilder("DarkRoast", menu.With("Mocha"))
	got, err := b.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.80", got.GetCost().StringFixed(2))
}
