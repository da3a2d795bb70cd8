package product

import (
	"database/sql/driver"
	"strings"
	"time"

	"pcstore-be/internal/db"
)

const (
	CategoryProcessor   = "Processor"
	CategoryGPU         = "GPU"
	CategoryRAM         = "RAM"
	CategoryStorage     = "Storage"
	CategoryPowerSupply = "Power Supply"
	CategoryCasing      = "Casing"
)

type Spec struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Specs is stored as a JSONB array.
type Specs []Spec

func (s Specs) Value() (driver.Value, error) {
	if s == nil {
		s = Specs{}
	}
	return db.JSONValue([]Spec(s))
}

func (s *Specs) Scan(src interface{}) error {
	return db.ScanJSON(src, (*[]Spec)(s))
}

type Product struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Specs       Specs     `json:"specs"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SpecValue looks up a spec by key, ignoring case.
func (p Product) SpecValue(key string) (string, bool) {
	for _, s := range p.Specs {
		if strings.EqualFold(s.Key, key) {
			return s.Value, true
		}
	}
	return "", false
}

type ProductInput struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Specs       Specs   `json:"specs"`
	Version     int     `json:"version"`
}
