package order

import (
	"database/sql/driver"
	"time"

	"pcstore-be/internal/build"
	"pcstore-be/internal/db"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type ItemType string

const (
	ItemProduct  ItemType = "product"
	ItemPrebuild ItemType = "prebuild"
)

// TaxRate is applied to the subtotal at checkout.
const TaxRate = 0.05

type OrderItem struct {
	ItemID      string       `json:"itemId"`
	ItemType    ItemType     `json:"itemType"`
	Quantity    int          `json:"quantity"`
	UnitPrice   float64      `json:"unitPrice"`
	Description string       `json:"description,omitempty"`
	Specs       []build.Spec `json:"specs,omitempty"`
}

// Items is stored as a JSONB array.
type Items []OrderItem

func (it Items) Value() (driver.Value, error) {
	if it == nil {
		it = Items{}
	}
	return db.JSONValue([]OrderItem(it))
}

func (it *Items) Scan(src interface{}) error {
	return db.ScanJSON(src, (*[]OrderItem)(it))
}

type Order struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"orderId"`
	CustomerID  string    `json:"customerId"`
	Items       Items     `json:"items"`
	Subtotal    float64   `json:"subtotal"`
	Tax         float64   `json:"tax"`
	TotalAmount float64   `json:"totalAmount"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ItemInput struct {
	ItemID      string       `json:"itemId"`
	Quantity    int          `json:"quantity"`
	Description string       `json:"description"`
	Specs       []build.Spec `json:"specs"`
}

type CreateInput struct {
	OrderID string      `json:"orderId"`
	Items   []ItemInput `json:"items"`
}
