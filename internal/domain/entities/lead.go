package entities

import "time"

// Lead is a prospective client's intake submission persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (ascending numeric string issued by the counters table)
//
// Follow-up flags:
//   - SendRetainer/RetainerAmount are coupled: RetainerAmount is empty
//     whenever SendRetainer is false. The use case clears the amount when
//     the flag is toggled off, never leaves it stale.
//   - LVM ("left voicemail") gates the client auto-reply on staff updates.
type Lead struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Charge         string    `json:"charge"`
	CourtDate      string    `json:"court_date"`
	CourtTime      string    `json:"court_time"`
	Court          string    `json:"court"`
	Notes          string    `json:"notes"`
	Homework       string    `json:"homework"`
	SendRetainer   bool      `json:"send_retainer"`
	RetainerAmount string    `json:"retainer_amount,omitempty"`
	LVM            bool      `json:"lvm"`
	NotPC          bool      `json:"not_pc"`
	Quote          string    `json:"quote,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LeadIntake carries the fields accepted on first submission. Follow-up
// flags are staff-only and always start false.
type LeadIntake struct {
	Name      string
	Phone     string
	Email     string
	Charge    string
	CourtDate string
	CourtTime string
	Court     string
	Notes     string
	Homework  string
}

// LeadUpdate is a partial overwrite. Nil means "leave unchanged".
type LeadUpdate struct {
	Name           *string
	Phone          *string
	Email          *string
	Charge         *string
	CourtDate      *string
	CourtTime      *string
	Court          *string
	Notes          *string
	Homework       *string
	SendRetainer   *bool
	RetainerAmount *string
	LVM            *bool
	NotPC          *bool
	Quote          *string
}

// LeadStaffUpdate is the full follow-up form staff submit from the lead
// detail view. Text fields are optional overwrites; the three flags use
// checkbox semantics, so every submission states all of them explicitly.
type LeadStaffUpdate struct {
	Name           *string
	Phone          *string
	Email          *string
	Charge         *string
	CourtDate      *string
	CourtTime      *string
	Court          *string
	Notes          *string
	Homework       *string
	SendRetainer   bool
	RetainerAmount string
	LVM            bool
	NotPC          bool
	Quote          string
}
