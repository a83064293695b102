package messages

import (
	"fmt"
	"strings"

	"dischley_intake/internal/domain/entities"
)

// Package messages builds every notification body the service sends. All
// functions are pure: same inputs, byte-identical output, no transport or
// store involved.

const (
	SubjectLeadCreated    = "New Client Intake Form Submission"
	SubjectClientFollowUp = "We Tried Reaching You"

	// SenderNameLead and SenderNameCaseResult are the display names the
	// dispatcher pairs with the configured sender address.
	SenderNameLead       = "New Lead"
	SenderNameCaseResult = "Case Result"
)

// ClientFollowUpBody is the auto-reply sent to a lead when staff flag LVM
// and an email address is on file. Fixed boilerplate, no interpolation.
const ClientFollowUpBody = "We attempted to contact you regarding your recent inquiry. Please call us back at your earliest convenience."

func SubjectLeadUpdated(name string) string {
	return fmt.Sprintf("Lead Updated: %s", name)
}

func SubjectCaseResult(defendantName string) string {
	return fmt.Sprintf("Case Results - %s", defendantName)
}

// LeadCreated renders the internal notification for a fresh intake.
// detailURL points back at the lead's detail view.
func LeadCreated(l entities.Lead, detailURL string) string {
	var b strings.Builder
	b.WriteString("New lead submitted:\n")
	writeLeadFields(&b, l)
	fmt.Fprintf(&b, "\nManage lead: %s\n", detailURL)
	return b.String()
}

// LeadUpdated renders the internal notification after a staff update,
// including the follow-up flags as checked/unchecked markers. The retainer
// amount appears only while SendRetainer is set.
func LeadUpdated(l entities.Lead, detailURL string) string {
	var b strings.Builder
	b.WriteString("Lead Updated:\n")
	writeLeadFields(&b, l)

	retainer := ""
	if l.SendRetainer {
		retainer = fmt.Sprintf(" ($%s)", l.RetainerAmount)
	}
	quote := l.Quote
	if quote == "" {
		quote = "N/A"
	}

	fmt.Fprintf(&b, "\nSend Retainer: %s%s\n", checkmark(l.SendRetainer), retainer)
	fmt.Fprintf(&b, "LVM: %s\n", checkmark(l.LVM))
	fmt.Fprintf(&b, "Not a PC: %s\n", checkmark(l.NotPC))
	fmt.Fprintf(&b, "Quote: $%s\n", quote)
	fmt.Fprintf(&b, "\nView Lead: %s\n", detailURL)
	return b.String()
}

func writeLeadFields(b *strings.Builder, l entities.Lead) {
	fmt.Fprintf(b, "Name: %s\n", l.Name)
	fmt.Fprintf(b, "Phone: %s\n", l.Phone)
	fmt.Fprintf(b, "Email: %s\n", l.Email)
	fmt.Fprintf(b, "Charge: %s\n", l.Charge)
	fmt.Fprintf(b, "Court Date: %s\n", l.CourtDate)
	fmt.Fprintf(b, "Court Time: %s\n", l.CourtTime)
	fmt.Fprintf(b, "Court: %s\n", l.Court)
	fmt.Fprintf(b, "Notes: %s\n", l.Notes)
	fmt.Fprintf(b, "Homework: %s\n", l.Homework)
}

func checkmark(v bool) string {
	if v {
		return "✅"
	}
	return "❌"
}

// CaseResultReported renders the internal notification for a post-hearing
// submission. One extra line is selected by disposition; dispositions
// outside the known set add nothing. When the form asked for review links
// the addendum is part of the same body so a single dispatch covers both.
func CaseResultReported(in entities.CaseResultIntake) string {
	var b strings.Builder
	b.WriteString("CASE RESULT\n\n")
	fmt.Fprintf(&b, "Defendant: %s\n", in.DefendantName)
	fmt.Fprintf(&b, "Court: %s\n", in.Court)
	fmt.Fprintf(&b, "Original Charge: %s\n", in.Offense)

	if line := dispositionLine(in.Disposition, in.AmendedCharge, in.Offense); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if in.SendReviewLinks {
		b.WriteString("\n---\n\n")
		b.WriteString(ReviewRequest(in))
	}
	return b.String()
}

func dispositionLine(d entities.Disposition, amendedCharge, offense string) string {
	switch {
	case d == entities.DispositionGuilty && hasAmendedCharge(amendedCharge):
		return fmt.Sprintf("You were found guilty of amended charge: %s", amendedCharge)
	case d == entities.DispositionNotGuilty,
		d == entities.DispositionNolleProsequi,
		d == entities.DispositionDismissed,
		d == entities.DispositionDismissedWithCosts:
		return fmt.Sprintf("Disposition: %s", d)
	case d == entities.DispositionDeferred:
		charge := amendedCharge
		if charge == "" {
			charge = offense
		}
		return fmt.Sprintf("Deferred disposition of charge: %s", charge)
	}
	return ""
}

func hasAmendedCharge(amendedCharge string) bool {
	return amendedCharge != "" && amendedCharge != entities.AmendedChargeNone
}

// ReviewRequest builds the client-facing review-request email text. The
// outcome sentence covers a narrower disposition set than the internal
// notification; anything else gets the bare salutation.
func ReviewRequest(in entities.CaseResultIntake) string {
	var b strings.Builder
	b.WriteString("REVIEW REQUEST EMAIL\n\n")
	fmt.Fprintf(&b, "Dear %s,\n\n", in.DefendantName)
	fmt.Fprintf(&b, "You were charged with %s.\n", in.Offense)

	switch {
	case in.Disposition == entities.DispositionGuilty && hasAmendedCharge(in.AmendedCharge):
		fmt.Fprintf(&b, "You were found guilty of the amended charge: %s.\n", in.AmendedCharge)
	case in.Disposition == entities.DispositionNotGuilty,
		in.Disposition == entities.DispositionNolleProsequi:
		fmt.Fprintf(&b, "You were found %s of the charge.\n", in.Disposition)
	case in.Disposition == entities.DispositionDeferred:
		b.WriteString("You received a deferred disposition.\n")
	}

	b.WriteString(reviewLinksBlock)
	return b.String()
}

// reviewLinksBlock is literal firm content, not derived from the record.
const reviewLinksBlock = `
Thank you for choosing Dischley Law, PLLC. We truly appreciate the trust you placed in our firm and are delighted we could assist you with your legal matter. Your positive experience is our greatest reward, and your feedback helps others find trusted legal guidance.

We invite you to share your experience by leaving a review. You may choose to review our firm as a whole or share your thoughts specifically about our attorneys.

Firm Reviews:
• Google (Manassas Office): https://g.page/r/CcUBoz3y4zj5EB0/review
• Google (Fairfax Office): https://g.page/dischleylawfairfax/review
• Facebook: https://www.facebook.com/dischleylaw/reviews

David Dischley Reviews:
• Lawyers.com: https://www.lawyers.com/manassas/virginia/david-dischley-42907553-a/
• Justia: https://lawyers.justia.com/lawyer/david-joseph-dischley-1498182
• Avvo: https://www.avvo.com/attorneys/20110-va-david-dischley-1720133.html

Patrick O’Brien Reviews:
• Avvo: https://www.avvo.com/attorneys/22314-va-patrick-obrien-5090692/reviews.html
• Lawyers.com: https://www.lawyers.com/manassas/virginia/patrick-t-obrien-300385082-a/

Thank you again for your support and for taking the time to share your feedback. Your insights not only motivate our team but also help others in need of exceptional legal representation.
`
