package compare

import (
	"errors"

	"pcstore-be/internal/build"
	"pcstore-be/internal/product"
)

const (
	SeriesPrice       = "Price (LKR)"
	SeriesRAM         = "RAM (GB)"
	SeriesStorage     = "Storage (GB)"
	SeriesPowerSupply = "Power Supply (W)"
)

// Spec keys read from component products.
const (
	KeyRAMCapacity     = "ramCapacity"
	KeyStorageCapacity = "storageCapacity"
	KeyWattage         = "wattage"
	KeyPowerOutput     = "powerOutput"
)

var ErrNeedTwoBuilds = errors.New("comparison requires exactly two distinct builds")

type Build struct {
	ID          string
	Description string
	Price       float64
	Selection   build.Selection
}

type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

type Chart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

type ProductLookup interface {
	Find(id string) (product.Product, bool)
}

// Catalog is an in-memory ProductLookup keyed by product id.
type Catalog map[string]product.Product

func Index(products []product.Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}

func (c Catalog) Find(id string) (product.Product, bool) {
	p, ok := c[id]
	return p, ok
}

func specOf(lookup ProductLookup, id string, keys ...string) string {
	p, ok := lookup.Find(id)
	if !ok {
		return ""
	}
	for _, k := range keys {
		if v, ok := p.SpecValue(k); ok && v != "" {
			return v
		}
	}
	return ""
}

// Compare derives the four comparison series for two builds.
// Unparsable or missing component specs count as 0.
func Compare(a, b Build, lookup ProductLookup) (Chart, error) {
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		return Chart{}, ErrNeedTwoBuilds
	}
	if lookup == nil {
		lookup = Catalog{}
	}

	builds := []Build{a, b}
	chart := Chart{
		Labels: []string{a.Description, b.Description},
		Series: []Series{
			{Name: SeriesPrice},
			{Name: SeriesRAM},
			{Name: SeriesStorage},
			{Name: SeriesPowerSupply},
		},
	}

	for _, bl := range builds {
		values := [...]float64{
			bl.Price,
			ParseLeadingInt(specOf(lookup, bl.Selection.RAM, KeyRAMCapacity)),
			ParseStorageGB(specOf(lookup, bl.Selection.Storage, KeyStorageCapacity)),
			ParseWattage(specOf(lookup, bl.Selection.PowerSupply, KeyWattage, KeyPowerOutput)),
		}
		for i, v := range values {
			chart.Series[i].Points = append(chart.Series[i].Points, Point{Label: bl.Description, Value: v})
		}
	}

	return chart, nil
}
