package request

import (
	"net/url"
	"testing"

	"dischley_intake/internal/domain/entities"
)

func TestParseCaseResultIntake(t *testing.T) {
	t.Run("fields and review checkbox", func(t *testing.T) {
		v := url.Values{}
		v.Set("defendant_name", "John Doe")
		v.Set("court", "Fairfax GDC")
		v.Set("offense", "DUI")
		v.Set("disposition", "Guilty")
		v.Set("amended_charge", "Reckless Driving")
		v.Set("send_review_links", "on")

		in := ParseCaseResultIntake(v)
		if in.DefendantName != "John Doe" || in.Court != "Fairfax GDC" || in.Offense != "DUI" {
			t.Fatalf("unexpected intake: %+v", in)
		}
		if in.Disposition != entities.DispositionGuilty {
			t.Fatalf("unexpected disposition: %q", in.Disposition)
		}
		if !in.SendReviewLinks {
			t.Fatalf("expected send_review_links checked")
		}
	})

	t.Run("absent checkbox is off", func(t *testing.T) {
		in := ParseCaseResultIntake(url.Values{})
		if in.SendReviewLinks {
			t.Fatalf("expected send_review_links unchecked")
		}
	})

	t.Run("asap and continuance stay free-form", func(t *testing.T) {
		v := url.Values{}
		v.Set("asap_ordered", "Yes")
		v.Set("was_continued", "No")

		in := ParseCaseResultIntake(v)
		if in.ASAPOrdered != "Yes" || in.WasContinued != "No" {
			t.Fatalf("unexpected intake: %+v", in)
		}
	})
}

func TestParseCaseResultEdit(t *testing.T) {
	v := url.Values{}
	v.Set("disposition", "Dismissed")
	v.Set("notes", "")

	upd := ParseCaseResultEdit(v)
	if upd.Disposition == nil || *upd.Disposition != "Dismissed" {
		t.Fatalf("expected submitted disposition, got %+v", upd.Disposition)
	}
	if upd.Notes == nil || *upd.Notes != "" {
		t.Fatalf("submitted empty field should clear, got %+v", upd.Notes)
	}
	if upd.DefendantName != nil || upd.FineImposed != nil {
		t.Fatalf("absent fields should stay nil: %+v", upd)
	}
}
