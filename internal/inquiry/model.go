package inquiry

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type Inquiry struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	FullName          string     `json:"fullName"`
	Email             string     `json:"email"`
	InquirySubject    string     `json:"inquirySubject"`
	AdditionalDetails string     `json:"additionalDetails"`
	Status            Status     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	ResolvedAt        *time.Time `json:"resolvedAt,omitempty"`
	Version           int        `json:"version"`
	// Countdown is derived at read time, never stored.
	Countdown string `json:"countdown,omitempty"`
}

type CreateInput struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	InquirySubject    string `json:"inquirySubject"`
	AdditionalDetails string `json:"additionalDetails"`
}

type UpdateInput struct {
	InquirySubject    string `json:"inquirySubject"`
	AdditionalDetails string `json:"additionalDetails"`
	Version           int    `json:"version"`
}
