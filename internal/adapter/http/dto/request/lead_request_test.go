package request

import (
	"net/url"
	"testing"
)

func TestParseLeadIntake(t *testing.T) {
	v := url.Values{}
	v.Set("name", "Jane Roe")
	v.Set("phone", "703-555-0100")
	v.Set("charge", "Reckless Driving")

	in := ParseLeadIntake(v)
	if in.Name != "Jane Roe" || in.Phone != "703-555-0100" || in.Charge != "Reckless Driving" {
		t.Fatalf("unexpected intake: %+v", in)
	}
	if in.Email != "" || in.Notes != "" {
		t.Fatalf("absent fields should be empty: %+v", in)
	}
}

func TestParseLeadStaffUpdate(t *testing.T) {
	t.Run("checkbox presence", func(t *testing.T) {
		v := url.Values{}
		v.Set("send_retainer", "on")
		v.Set("lvm", "")

		upd := ParseLeadStaffUpdate(v)
		if !upd.SendRetainer {
			t.Fatalf("expected send_retainer checked")
		}
		if !upd.LVM {
			t.Fatalf("presence alone should check lvm (browsers may send empty values)")
		}
		if upd.NotPC {
			t.Fatalf("absent checkbox should be unchecked")
		}
	})

	t.Run("text field presence", func(t *testing.T) {
		v := url.Values{}
		v.Set("name", "Jane Roe")
		v.Set("notes", "")

		upd := ParseLeadStaffUpdate(v)
		if upd.Name == nil || *upd.Name != "Jane Roe" {
			t.Fatalf("expected submitted name, got %+v", upd.Name)
		}
		if upd.Notes == nil || *upd.Notes != "" {
			t.Fatalf("submitted empty field should clear, got %+v", upd.Notes)
		}
		if upd.Phone != nil {
			t.Fatalf("absent field should stay nil, got %+v", upd.Phone)
		}
	})

	t.Run("retainer amount and quote are plain values", func(t *testing.T) {
		v := url.Values{}
		v.Set("retainer_amount", "2500")
		v.Set("quote", "3000")

		upd := ParseLeadStaffUpdate(v)
		if upd.RetainerAmount != "2500" || upd.Quote != "3000" {
			t.Fatalf("unexpected amounts: %+v", upd)
		}
	})
}

func TestParseLeadQuickEdit(t *testing.T) {
	v := url.Values{}
	v.Set("name", "Jane Roe")
	v.Set("court_date", "2025-09-12")
	v.Set("homework", "ignored here")

	upd := ParseLeadQuickEdit(v)
	if upd.Name == nil || *upd.Name != "Jane Roe" {
		t.Fatalf("expected submitted name, got %+v", upd.Name)
	}
	if upd.CourtDate == nil || *upd.CourtDate != "2025-09-12" {
		t.Fatalf("expected submitted court date, got %+v", upd.CourtDate)
	}
	if upd.Phone != nil || upd.Email != nil {
		t.Fatalf("absent fields should stay nil: %+v", upd)
	}
	if upd.SendRetainer != nil || upd.LVM != nil || upd.NotPC != nil {
		t.Fatalf("quick edit must not touch flags: %+v", upd)
	}
}
