package interfaces

import (
	"context"
	"dischley_intake/internal/domain/entities"
)

// CRMSubmission is the outcome of forwarding a lead to the external CRM.
// Accepted is true only for HTTP 201; on rejection Status/Body carry the
// response for logging. CRM sync is advisory either way.
type CRMSubmission struct {
	Accepted bool
	Status   int
	Body     string
}

// ICRMGateway abstracts the external CRM lead-inbox endpoint.
//
// A non-success HTTP status is NOT an error: it comes back as a rejected
// CRMSubmission. The error return is reserved for transport failures
// (connection refused, timeout). Neither outcome may abort the enclosing
// orchestration.
type ICRMGateway interface {
	SubmitLead(ctx context.Context, l entities.Lead) (CRMSubmission, error)
}
