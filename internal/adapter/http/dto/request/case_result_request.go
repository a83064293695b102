package request

import (
	"net/url"

	"dischley_intake/internal/domain/entities"
)

// ParseCaseResultIntake reads the post-hearing form. court and
// send_review_links are submission-only fields: court is interpolated into
// the notification without being persisted, send_review_links folds the
// review-request addendum into the same dispatch. asap_ordered and
// was_continued stay free-form strings, not checkboxes.
func ParseCaseResultIntake(v url.Values) entities.CaseResultIntake {
	return entities.CaseResultIntake{
		DefendantName:     v.Get("defendant_name"),
		Court:             v.Get("court"),
		Offense:           v.Get("offense"),
		AmendedCharge:     v.Get("amended_charge"),
		Disposition:       entities.Disposition(v.Get("disposition")),
		OtherDisposition:  v.Get("other_disposition"),
		JailTimeImposed:   v.Get("jail_time_imposed"),
		JailTimeSuspended: v.Get("jail_time_suspended"),
		FineImposed:       v.Get("fine_imposed"),
		FineSuspended:     v.Get("fine_suspended"),
		LicenseSuspension: v.Get("license_suspension"),
		ASAPOrdered:       v.Get("asap_ordered"),
		ProbationType:     v.Get("probation_type"),
		WasContinued:      v.Get("was_continued"),
		ContinuationDate:  v.Get("continuation_date"),
		ClientEmail:       v.Get("client_email"),
		Notes:             v.Get("notes"),
		DateDisposition:   v.Get("date_disposition"),
		SendReviewLinks:   checkbox(v, "send_review_links"),
	}
}

// ParseCaseResultEdit reads the edit form. Every persisted field is
// independently overwritable; absent fields stay unchanged.
func ParseCaseResultEdit(v url.Values) entities.CaseResultUpdate {
	return entities.CaseResultUpdate{
		DefendantName:     optional(v, "defendant_name"),
		Offense:           optional(v, "offense"),
		AmendedCharge:     optional(v, "amended_charge"),
		Disposition:       optional(v, "disposition"),
		OtherDisposition:  optional(v, "other_disposition"),
		JailTimeImposed:   optional(v, "jail_time_imposed"),
		JailTimeSuspended: optional(v, "jail_time_suspended"),
		FineImposed:       optional(v, "fine_imposed"),
		FineSuspended:     optional(v, "fine_suspended"),
		LicenseSuspension: optional(v, "license_suspension"),
		ASAPOrdered:       optional(v, "asap_ordered"),
		ProbationType:     optional(v, "probation_type"),
		WasContinued:      optional(v, "was_continued"),
		ContinuationDate:  optional(v, "continuation_date"),
		ClientEmail:       optional(v, "client_email"),
		Notes:             optional(v, "notes"),
		DateDisposition:   optional(v, "date_disposition"),
	}
}
