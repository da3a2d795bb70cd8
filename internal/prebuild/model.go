package prebuild

import (
	"time"

	"pcstore-be/internal/build"
)

// Prebuild is a catalog bundle. Its component ids are the embedded Selection,
// so they serialize as processor, gpu, ram, storage, powerSupply and casings.
type Prebuild struct {
	ID            string  `json:"id"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	Compatibility string  `json:"compatibility,omitempty"`
	build.Selection
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Component struct {
	Label       string `json:"label"`
	ProductID   string `json:"id"`
	Description string `json:"description"`
}

// Detail is a prebuild with its components resolved against the catalog.
type Detail struct {
	Prebuild
	Components []Component `json:"components"`
}

type PrebuildInput struct {
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	Compatibility string  `json:"compatibility"`
	build.Selection
	Version int `json:"version"`
}

// FromPrebuild starts a customization. The returned Selection is a copy.
func FromPrebuild(p Prebuild) build.Selection {
	return p.Selection
}
