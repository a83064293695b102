package interfaces

import (
	"context"
	"dischley_intake/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// Conventions:
//   - GetByID/Update return a zero-value Lead (empty ID) when the record
//     does not exist; use cases map that to their not-found error.
//   - Update applies only the non-nil fields of the LeadUpdate.
//   - List returns leads ordered by created_at descending.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	Update(ctx context.Context, id string, upd entities.LeadUpdate) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
}
