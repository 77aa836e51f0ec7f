package receipt

import (
	"fmt"
	"io"

	"github.com/go-leo/starbuzz/beverage"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Places is the number of fraction digits a cost is printed with.
const Places = 2

// Receipt is what the customer takes away: a description and a price, read once from a beverage.
type Receipt struct {
	ID          uuid.UUID
	Description string
	Cost        decimal.Decimal
}

type document struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Cost        string `json:"cost" yaml:"cost"`
}

// New reads the description and the cost of b once. It fails with beverage.ErrBeverageNil if b is nil.
func New(b beverage.Beverage) (*Receipt, error) {
	if b == nil {
		return nil, beverage.ErrBeverageNil
	}
	return &Receipt{
		ID:          uuid.New(),
		Description: b.GetDescription(),
		Cost:        b.GetCost(),
	}, nil
}

// FormatCost prints cost the way the till does, e.g. 3.10.
func FormatCost(cost decimal.Decimal) string {
	return cost.StringFixed(Places)
}

// WriteText writes the beverage line and the cost line.
func (r *Receipt) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Beverage: %s\nCost: $%s\n", r.Description, FormatCost(r.Cost))
	return err
}

func (r *Receipt) WriteJSON(w io.Writer) error {
	return jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(r.document())
}

func (r *Receipt) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.document()); err != nil {
		return err
	}
	return enc.Close()
}

// Write writes the receipt in the given format: text, json or yaml.
func (r *Receipt) Write(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (r *Receipt) document() document {
	return document{
		ID:          r.ID.String(),
		Description: r.Description,
		Cost:        FormatCost(r.Cost),
	}
}
