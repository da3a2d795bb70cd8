package build

// Item is a catalog entry eligible for a slot.
type Item struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

// Options maps each slot to its eligible items.
type Options map[Slot][]Item

func (o Options) find(slot Slot, id string) (Item, bool) {
	if id == "" {
		return Item{}, false
	}
	for _, it := range o[slot] {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// ByField renders the options keyed by slot JSON field, every slot present.
func (o Options) ByField() map[string][]Item {
	out := make(map[string][]Item, len(Slots))
	for _, slot := range Slots {
		items := o[slot]
		if items == nil {
			items = []Item{}
		}
		out[slot.Field()] = items
	}
	return out
}

// Price sums the selected item of each slot. A slot that is empty or
// whose id is not among its options contributes 0.
func Price(sel Selection, opts Options) float64 {
	var total float64
	for _, slot := range Slots {
		if it, ok := opts.find(slot, sel.Get(slot)); ok {
			total += it.Price
		}
	}
	return total
}
