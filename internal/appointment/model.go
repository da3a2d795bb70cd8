package appointment

import "time"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// DateLayout is the wire format of preferredDate.
const DateLayout = "2006-01-02"

type Appointment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	DeviceType    string    `json:"deviceType"`
	Issue         string    `json:"issue"`
	Description   string    `json:"description"`
	PreferredDate time.Time `json:"preferredDate"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Input struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	DeviceType    string `json:"deviceType"`
	Issue         string `json:"issue"`
	Description   string `json:"description"`
	PreferredDate string `json:"preferredDate"`
}
