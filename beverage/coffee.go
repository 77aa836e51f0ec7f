package beverage

import "github.com/shopspring/decimal"

var (
	houseBlendCost = decimal.New(180, -2)
	darkRoastCost  = decimal.New(220, -2)
	decafCost      = decimal.New(200, -2)
	expressoCost   = decimal.New(290, -2)
)

type HouseBlend struct{}

func NewHouseBlend() HouseBlend { return HouseBlend{} }

func (HouseBlend) GetDescription() string { return "House Blend Coffee" }

func (HouseBlend) GetCost() decimal.Decimal { return houseBlendCost }

type DarkRoast struct{}

func NewDarkRoast() DarkRoast { return DarkRoast{} }

func (DarkRoast) GetDescription() string { return "Dark Roast Coffee" }

func (DarkRoast) GetCost() decimal.Decimal { return darkRoastCost }

type Decaf struct{}

func NewDecaf() Decaf { return Decaf{} }

func (Decaf) GetDescription() string { return "Decaf Coffee" }

func (Decaf) GetCost() decimal.Decimal { return decafCost }

// Expresso is sold as "Espresso".
type Expresso struct{}

func NewExpresso() Expresso { return Expresso{} }

func (Expresso) GetDescription() string { return "Espresso" }

func (Expresso) GetCost() decimal.Decimal { return expressoCost }
