package interfaces

import (
	"context"

	"freelance_hub/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	UpdateProgress(ctx context.Context, id string, progress int, status entities.ProjectStatus) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, to entities.ProjectStatus, allowedFrom []entities.ProjectStatus) (entities.Project, error)
	SetGithubURL(ctx context.Context, id, url string) (entities.Project, error)
}
