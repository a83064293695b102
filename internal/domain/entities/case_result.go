package entities

import "time"

// Disposition is the legal outcome category of a case. The vocabulary is
// open: forms may submit values outside this list and the composer simply
// adds no outcome line for them.

type Disposition string

const (
	DispositionGuilty             Disposition = "Guilty"
	DispositionNotGuilty          Disposition = "Not Guilty"
	DispositionNolleProsequi      Disposition = "Nolle Prosequi"
	DispositionDismissed          Disposition = "Dismissed"
	DispositionDismissedWithCosts Disposition = "Dismissed with costs"
	DispositionDeferred           Disposition = "Deferred Disposition"
)

// AmendedChargeNone is the literal sentinel the intake form submits when no
// amended charge exists. Treated the same as an empty value.
const AmendedChargeNone = "None"

// CaseResult is the recorded outcome of a court appearance. It is related
// to Lead only by convention, never by a foreign key.
//
// Storage model (DynamoDB):
//   - PK: id (ascending numeric string issued by the counters table)
//
// ASAPOrdered and WasContinued are free-form "Yes"/"No" strings from the
// form, not booleans.
type CaseResult struct {
	ID                string      `json:"id"`
	DefendantName     string      `json:"defendant_name"`
	Offense           string      `json:"offense"`
	AmendedCharge     string      `json:"amended_charge,omitempty"`
	Disposition       Disposition `json:"disposition"`
	OtherDisposition  string      `json:"other_disposition,omitempty"`
	JailTimeImposed   string      `json:"jail_time_imposed,omitempty"`
	JailTimeSuspended string      `json:"jail_time_suspended,omitempty"`
	FineImposed       string      `json:"fine_imposed,omitempty"`
	FineSuspended     string      `json:"fine_suspended,omitempty"`
	LicenseSuspension string      `json:"license_suspension,omitempty"`
	ASAPOrdered       string      `json:"asap_ordered,omitempty"`
	ProbationType     string      `json:"probation_type,omitempty"`
	WasContinued      string      `json:"was_continued,omitempty"`
	ContinuationDate  string      `json:"continuation_date,omitempty"`
	ClientEmail       string      `json:"client_email,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	DateDisposition   string      `json:"date_disposition,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// CaseResultIntake is the post-hearing form. Court and SendReviewLinks are
// submission-only: Court is interpolated into the notification but never
// persisted, SendReviewLinks folds the review-request addendum into the
// same dispatch.
type CaseResultIntake struct {
	DefendantName     string
	Court             string
	Offense           string
	AmendedCharge     string
	Disposition       Disposition
	OtherDisposition  string
	JailTimeImposed   string
	JailTimeSuspended string
	FineImposed       string
	FineSuspended     string
	LicenseSuspension string
	ASAPOrdered       string
	ProbationType     string
	WasContinued      string
	ContinuationDate  string
	ClientEmail       string
	Notes             string
	DateDisposition   string
	SendReviewLinks   bool
}

// CaseResultUpdate is a partial overwrite. Nil means "leave unchanged".
// Edits are silent: no re-notification happens on update.
type CaseResultUpdate struct {
	DefendantName     *string
	Offense           *string
	AmendedCharge     *string
	Disposition       *string
	OtherDisposition  *string
	JailTimeImposed   *string
	JailTimeSuspended *string
	FineImposed       *string
	FineSuspended     *string
	LicenseSuspension *string
	ASAPOrdered       *string
	ProbationType     *string
	WasContinued      *string
	ContinuationDate  *string
	ClientEmail       *string
	Notes             *string
	DateDisposition   *string
}
