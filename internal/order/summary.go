package order

import (
	"math"
	"strings"

	"pcstore-be/internal/build"
)

// PrebuildLabels must all appear in an item's specs for it to count as a prebuild.
var PrebuildLabels = []string{"Processor", "GPU", "RAM", "Storage", "Power Supply", "Casing"}

// Classify turns a cart line into an order item. Lines carrying every
// prebuild label keep their spec snapshot; anything else is a plain product.
func Classify(in ItemInput) OrderItem {
	labels := make(map[string]struct{}, len(in.Specs))
	for _, s := range in.Specs {
		if l := strings.TrimSpace(s.Label); l != "" {
			labels[l] = struct{}{}
		}
	}

	isPrebuild := true
	for _, want := range PrebuildLabels {
		if _, ok := labels[want]; !ok {
			isPrebuild = false
			break
		}
	}

	item := OrderItem{
		ItemID:      in.ItemID,
		ItemType:    ItemProduct,
		Quantity:    in.Quantity,
		Description: strings.TrimSpace(in.Description),
	}
	if isPrebuild {
		item.ItemType = ItemPrebuild
		item.Specs = append([]build.Spec(nil), in.Specs...)
	}
	return item
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Totals returns subtotal, tax and total for the priced items.
func Totals(items []OrderItem) (subtotal, tax, total float64) {
	for _, it := range items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	subtotal = roundCents(subtotal)
	tax = roundCents(subtotal * TaxRate)
	total = roundCents(subtotal + tax)
	return subtotal, tax, total
}
