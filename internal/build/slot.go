package build

import "strings"

// Slot is one of the six component positions of a build.
type Slot int

const (
	SlotProcessor Slot = iota
	SlotGPU
	SlotRAM
	SlotStorage
	SlotPowerSupply
	SlotCasing
)

// Slots lists every slot in display and validation order.
var Slots = [...]Slot{SlotProcessor, SlotGPU, SlotRAM, SlotStorage, SlotPowerSupply, SlotCasing}

var slotMeta = [...]struct {
	field    string
	label    string
	required string
}{
	SlotProcessor:   {"processor", "Processor", "Processor is required."},
	SlotGPU:         {"gpu", "GPU", "GPU is required."},
	SlotRAM:         {"ram", "RAM", "RAM is required."},
	SlotStorage:     {"storage", "Storage", "Storage is required."},
	SlotPowerSupply: {"powerSupply", "Power Supply", "Power Supply is required."},
	SlotCasing:      {"casings", "Casing", "Casings are required."},
}

func (s Slot) valid() bool { return s >= SlotProcessor && s <= SlotCasing }

// Field is the JSON key used by prebuild documents and compatibility responses.
func (s Slot) Field() string {
	if !s.valid() {
		return ""
	}
	return slotMeta[s].field
}

// Label is the human readable slot name. It doubles as the product category.
func (s Slot) Label() string {
	if !s.valid() {
		return ""
	}
	return slotMeta[s].label
}

func (s Slot) Category() string { return s.Label() }

func (s Slot) String() string { return s.Label() }

func (s Slot) requiredMessage() string { return slotMeta[s].required }

// SlotByField resolves a JSON key such as "powerSupply".
func SlotByField(field string) (Slot, bool) {
	for _, s := range Slots {
		if slotMeta[s].field == field {
			return s, true
		}
	}
	return 0, false
}

// SlotByLabel resolves a snapshot label such as "Power Supply", ignoring
// case and surrounding space.
func SlotByLabel(label string) (Slot, bool) {
	label = strings.TrimSpace(label)
	for _, s := range Slots {
		if strings.EqualFold(slotMeta[s].label, label) {
			return s, true
		}
	}
	return 0, false
}
