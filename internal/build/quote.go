package build

import "strings"

// Spec is one line of a frozen build snapshot, shaped like an order item spec.
type Spec struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type Quote struct {
	Selection Selection `json:"selection"`
	Price     float64   `json:"price"`
	Specs     []Spec    `json:"specs"`
}

type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "build is incomplete: " + strings.Join(e.Messages, " ")
}

// Validate returns one message per empty slot, in slot order.
func Validate(sel Selection) []string {
	var msgs []string
	for _, slot := range Slots {
		if strings.TrimSpace(sel.Get(slot)) == "" {
			msgs = append(msgs, slot.requiredMessage())
		}
	}
	return msgs
}

// NewQuote prices a complete selection and freezes its component snapshot.
func NewQuote(sel Selection, opts Options) (Quote, error) {
	if msgs := Validate(sel); len(msgs) > 0 {
		return Quote{}, &ValidationError{Messages: msgs}
	}

	specs := make([]Spec, 0, len(Slots))
	for _, slot := range Slots {
		id := sel.Get(slot)
		value := id
		if it, ok := opts.find(slot, id); ok {
			value = it.Description
		}
		specs = append(specs, Spec{ID: id, Label: slot.Label(), Value: value})
	}

	return Quote{
		Selection: sel,
		Price:     Price(sel, opts),
		Specs:     specs,
	}, nil
}
