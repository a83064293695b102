package interfaces

import (
	"context"
	"dischley_intake/internal/domain/entities"
)

// ICaseResultRepository abstracts DynamoDB persistence for CaseResult.
// Same conventions as ILeadRepository: zero-value entity means not found,
// Update is partial, List is created_at descending.

type ICaseResultRepository interface {
	Create(ctx context.Context, r entities.CaseResult) (entities.CaseResult, error)
	GetByID(ctx context.Context, id string) (entities.CaseResult, error)
	Update(ctx context.Context, id string, upd entities.CaseResultUpdate) (entities.CaseResult, error)
	List(ctx context.Context) ([]entities.CaseResult, error)
}
