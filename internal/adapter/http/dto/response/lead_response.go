package response

import (
	"time"

	"dischley_intake/internal/domain/entities"
	"dischley_intake/internal/usecase"
)

type LeadResponse struct {
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

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:             l.ID,
		Name:           l.Name,
		Phone:          l.Phone,
		Email:          l.Email,
		Charge:         l.Charge,
		CourtDate:      l.CourtDate,
		CourtTime:      l.CourtTime,
		Court:          l.Court,
		Notes:          l.Notes,
		Homework:       l.Homework,
		SendRetainer:   l.SendRetainer,
		RetainerAmount: l.RetainerAmount,
		LVM:            l.LVM,
		NotPC:          l.NotPC,
		Quote:          l.Quote,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func FromLeads(leads []entities.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l))
	}
	return out
}

// NotificationsResponse reports which best-effort notification steps
// landed. Persistence success alone decides the HTTP status; these fields
// let the operator see whether a follow-up by hand is needed.
type NotificationsResponse struct {
	AttorneysNotified bool     `json:"attorneys_notified"`
	ClientNotified    bool     `json:"client_notified"`
	CRMAccepted       bool     `json:"crm_accepted"`
	Warnings          []string `json:"warnings,omitempty"`
}

func FromReport(r usecase.NotificationReport) NotificationsResponse {
	return NotificationsResponse{
		AttorneysNotified: r.AttorneysNotified,
		ClientNotified:    r.ClientNotified,
		CRMAccepted:       r.CRMAccepted,
		Warnings:          r.Warnings,
	}
}

type LeadSubmissionResponse struct {
	Lead          LeadResponse          `json:"lead"`
	Notifications NotificationsResponse `json:"notifications"`
}

func FromLeadSubmission(l entities.Lead, r usecase.NotificationReport) LeadSubmissionResponse {
	return LeadSubmissionResponse{
		Lead:          FromLead(l),
		Notifications: FromReport(r),
	}
}
