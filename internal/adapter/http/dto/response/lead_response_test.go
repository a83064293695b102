package response

import (
	"testing"
	"time"

	"dischley_intake/internal/domain/entities"
	"dischley_intake/internal/usecase"
)

func TestFromLead(t *testing.T) {
	now := time.Now().UTC()
	l := entities.Lead{
		ID:             "7",
		Name:           "Jane Roe",
		Phone:          "703-555-0100",
		Email:          "jane@example.com",
		Charge:         "Reckless Driving",
		SendRetainer:   true,
		RetainerAmount: "2500",
		LVM:            true,
		Quote:          "3000",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	got := FromLead(l)
	if got.ID != "7" || got.Name != "Jane Roe" || got.Charge != "Reckless Driving" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if !got.SendRetainer || got.RetainerAmount != "2500" || !got.LVM || got.NotPC {
		t.Fatalf("unexpected flags: %+v", got)
	}
	if !got.CreatedAt.Equal(now) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", got)
	}
}

func TestFromLeads(t *testing.T) {
	got := FromLeads(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}

	got = FromLeads([]entities.Lead{{ID: "7"}, {ID: "6"}})
	if len(got) != 2 || got[0].ID != "7" || got[1].ID != "6" {
		t.Fatalf("unexpected responses: %+v", got)
	}
}

func TestFromLeadSubmission(t *testing.T) {
	report := usecase.NotificationReport{
		AttorneysNotified: true,
		CRMAccepted:       true,
		Warnings:          []string{"client follow-up not sent: smtp down"},
	}

	got := FromLeadSubmission(entities.Lead{ID: "7"}, report)
	if got.Lead.ID != "7" {
		t.Fatalf("unexpected lead: %+v", got.Lead)
	}
	n := got.Notifications
	if !n.AttorneysNotified || n.ClientNotified || !n.CRMAccepted {
		t.Fatalf("unexpected notifications: %+v", n)
	}
	if len(n.Warnings) != 1 {
		t.Fatalf("unexpected warnings: %v", n.Warnings)
	}
}
