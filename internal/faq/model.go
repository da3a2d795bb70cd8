package faq

import "time"

type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type Input struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// Filter narrows List. Empty fields match everything.
type Filter struct {
	Category string
	Search   string
}
