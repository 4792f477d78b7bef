package domain

import "time"

type WaitlistEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type WaitlistRequest struct {
	Email  string `json:"email" validate:"required,email,max=254"`
	Source string `json:"source" validate:"max=64"`
}

type WaitlistResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AlreadyJoined bool   `json:"already_joined"`
}

type WaitlistFilters struct {
	Since  *time.Time
	Limit  int
	Offset int
}

type WaitlistPage struct {
	Entries []*WaitlistEntry `json:"entries"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// WaitlistDigest resume as inscrições recebidas desde o último resumo
type WaitlistDigest struct {
	Since        *time.Time `json:"since"`
	Until        time.Time  `json:"until"`
	NewSignups   int        `json:"new_signups"`
	TotalSignups int        `json:"total_signups"`
}
