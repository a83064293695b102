package response

import (
	"time"

	"dischley_intake/internal/domain/entities"
	"dischley_intake/internal/usecase"
)

type CaseResultResponse struct {
	ID                string    `json:"id"`
	DefendantName     string    `json:"defendant_name"`
	Offense           string    `json:"offense"`
	AmendedCharge     string    `json:"amended_charge,omitempty"`
	Disposition       string    `json:"disposition"`
	OtherDisposition  string    `json:"other_disposition,omitempty"`
	JailTimeImposed   string    `json:"jail_time_imposed,omitempty"`
	JailTimeSuspended string    `json:"jail_time_suspended,omitempty"`
	FineImposed       string    `json:"fine_imposed,omitempty"`
	FineSuspended     string    `json:"fine_suspended,omitempty"`
	LicenseSuspension string    `json:"license_suspension,omitempty"`
	ASAPOrdered       string    `json:"asap_ordered,omitempty"`
	ProbationType     string    `json:"probation_type,omitempty"`
	WasContinued      string    `json:"was_continued,omitempty"`
	ContinuationDate  string    `json:"continuation_date,omitempty"`
	ClientEmail       string    `json:"client_email,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	DateDisposition   string    `json:"date_disposition,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromCaseResult(cr entities.CaseResult) CaseResultResponse {
	return CaseResultResponse{
		ID:                cr.ID,
		DefendantName:     cr.DefendantName,
		Offense:           cr.Offense,
		AmendedCharge:     cr.AmendedCharge,
		Disposition:       string(cr.Disposition),
		OtherDisposition:  cr.OtherDisposition,
		JailTimeImposed:   cr.JailTimeImposed,
		JailTimeSuspended: cr.JailTimeSuspended,
		FineImposed:       cr.FineImposed,
		FineSuspended:     cr.FineSuspended,
		LicenseSuspension: cr.LicenseSuspension,
		ASAPOrdered:       cr.ASAPOrdered,
		ProbationType:     cr.ProbationType,
		WasContinued:      cr.WasContinued,
		ContinuationDate:  cr.ContinuationDate,
		ClientEmail:       cr.ClientEmail,
		Notes:             cr.Notes,
		DateDisposition:   cr.DateDisposition,
		CreatedAt:         cr.CreatedAt,
		UpdatedAt:         cr.UpdatedAt,
	}
}

func FromCaseResults(results []entities.CaseResult) []CaseResultResponse {
	out := make([]CaseResultResponse, 0, len(results))
	for _, cr := range results {
		out = append(out, FromCaseResult(cr))
	}
	return out
}

type CaseResultSubmissionResponse struct {
	CaseResult    CaseResultResponse    `json:"case_result"`
	Notifications NotificationsResponse `json:"notifications"`
}

func FromCaseResultSubmission(cr entities.CaseResult, r usecase.NotificationReport) CaseResultSubmissionResponse {
	return CaseResultSubmissionResponse{
		CaseResult:    FromCaseResult(cr),
		Notifications: FromReport(r),
	}
}
