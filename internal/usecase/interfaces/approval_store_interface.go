package interfaces

import (
	"context"

	"freelance_hub/internal/domain/entities"
)

// IApprovalStore is the atomic multi-record write behind quote approval.
//
// CommitApproval must apply three writes as a unit, or none of them:
//   - flip the quote status under_review -> approved
//   - create the invoice
//   - create the project
//
// It returns (false, nil) when the quote's status precondition no longer
// holds, which is how a concurrent double-approve loses the race without
// creating a second invoice/project pair.

type IApprovalStore interface {
	CommitApproval(ctx context.Context, quoteID string, inv entities.Invoice, proj entities.Project) (bool, error)
}
