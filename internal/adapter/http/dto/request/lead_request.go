package request

import (
	"net/url"

	"dischley_intake/internal/domain/entities"
)

// ParseLeadIntake reads the public intake form. Flags are staff-only and
// not accepted here; a fresh lead always starts with them off.
func ParseLeadIntake(v url.Values) entities.LeadIntake {
	return entities.LeadIntake{
		Name:      v.Get("name"),
		Phone:     v.Get("phone"),
		Email:     v.Get("email"),
		Charge:    v.Get("charge"),
		CourtDate: v.Get("court_date"),
		CourtTime: v.Get("court_time"),
		Court:     v.Get("court"),
		Notes:     v.Get("notes"),
		Homework:  v.Get("homework"),
	}
}

// ParseLeadStaffUpdate reads the follow-up form from the lead detail view.
// Text fields overwrite only when submitted; the three flags use checkbox
// presence and are therefore always stated.
func ParseLeadStaffUpdate(v url.Values) entities.LeadStaffUpdate {
	return entities.LeadStaffUpdate{
		Name:           optional(v, "name"),
		Phone:          optional(v, "phone"),
		Email:          optional(v, "email"),
		Charge:         optional(v, "charge"),
		CourtDate:      optional(v, "court_date"),
		CourtTime:      optional(v, "court_time"),
		Court:          optional(v, "court"),
		Notes:          optional(v, "notes"),
		Homework:       optional(v, "homework"),
		SendRetainer:   checkbox(v, "send_retainer"),
		RetainerAmount: v.Get("retainer_amount"),
		LVM:            checkbox(v, "lvm"),
		NotPC:          checkbox(v, "not_pc"),
		Quote:          v.Get("quote"),
	}
}

// ParseLeadQuickEdit reads the abbreviated edit form. Only the contact and
// court basics are editable here and the edit sends no notification.
func ParseLeadQuickEdit(v url.Values) entities.LeadUpdate {
	return entities.LeadUpdate{
		Name:      optional(v, "name"),
		Phone:     optional(v, "phone"),
		Email:     optional(v, "email"),
		Charge:    optional(v, "charge"),
		CourtDate: optional(v, "court_date"),
		Notes:     optional(v, "notes"),
	}
}
