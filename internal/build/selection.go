package build

// Selection holds one product id per slot. It is a value: every change
// produces a copy and the source prebuild is never touched.
type Selection struct {
	Processor   string `json:"processor"`
	GPU         string `json:"gpu"`
	RAM         string `json:"ram"`
	Storage     string `json:"storage"`
	PowerSupply string `json:"powerSupply"`
	Casings     string `json:"casings"`
}

func (s Selection) Get(slot Slot) string {
	switch slot {
	case SlotProcessor:
		return s.Processor
	case SlotGPU:
		return s.GPU
	case SlotRAM:
		return s.RAM
	case SlotStorage:
		return s.Storage
	case SlotPowerSupply:
		return s.PowerSupply
	case SlotCasing:
		return s.Casings
	}
	return ""
}

// With returns a copy of s with slot set to productID.
func (s Selection) With(slot Slot, productID string) Selection {
	switch slot {
	case SlotProcessor:
		s.Processor = productID
	case SlotGPU:
		s.GPU = productID
	case SlotRAM:
		s.RAM = productID
	case SlotStorage:
		s.Storage = productID
	case SlotPowerSupply:
		s.PowerSupply = productID
	case SlotCasing:
		s.Casings = productID
	}
	return s
}

// IDs returns the non-empty product ids in slot order.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(Slots))
	for _, slot := range Slots {
		if id := s.Get(slot); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
