package usecase

import (
	"context"
	"log"
	"strings"

	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase/interfaces"
)

// IProjectUseCase tracks delivery of approved work. Progress updates are the
// external driver of the post-approval quote states: a project moving to
// in_progress or completed mirrors that status onto the owning quote.

type IProjectUseCase interface {
	GetProject(ctx context.Context, id string) (entities.Project, error)
	UpdateProgress(ctx context.Context, id string, progress int) (entities.Project, error)
	SetGithubURL(ctx context.Context, id, url string) (entities.Project, error)
	HoldProject(ctx context.Context, id string) (entities.Project, error)
	ResumeProject(ctx context.Context, id string) (entities.Project, error)
}

type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	quotes   interfaces.IQuoteRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projects interfaces.IProjectRepository, quotes interfaces.IQuoteRepository) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, quotes: quotes}
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, validationError("project id is required")
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, persistenceError(err)
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) UpdateProgress(ctx context.Context, id string, progress int) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, validationError("project id is required")
	}
	progress = entities.ClampProgress(progress)

	current, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, persistenceError(err)
	}
	if current.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	status := progressStatus(current.Status, progress)
	updated, err := u.projects.UpdateProgress(ctx, id, progress, status)
	if err != nil {
		return entities.Project{}, persistenceError(err)
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[project][usecase] progress quote_id=%s project_id=%s progress=%d status=%s", updated.QuoteID, updated.ID, updated.Progress, updated.Status)

	if err := u.mirrorQuoteStatus(ctx, updated); err != nil {
		return entities.Project{}, err
	}
	return updated, nil
}

func (u *ProjectUseCase) SetGithubURL(ctx context.Context, id, url string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	url = strings.TrimSpace(url)
	if id == "" {
		return entities.Project{}, validationError("project id is required")
	}
	if url == "" || !strings.HasPrefix(url, "https://") {
		return entities.Project{}, validationError("github url must be an https link")
	}

	updated, err := u.projects.SetGithubURL(ctx, id, url)
	if err != nil {
		return entities.Project{}, persistenceError(err)
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) HoldProject(ctx context.Context, id string) (entities.Project, error) {
	return u.transition(ctx, id, entities.ProjectStatusOnHold, []entities.ProjectStatus{
		entities.ProjectStatusPending,
		entities.ProjectStatusInProgress,
	})
}

func (u *ProjectUseCase) ResumeProject(ctx context.Context, id string) (entities.Project, error) {
	return u.transition(ctx, id, entities.ProjectStatusInProgress, []entities.ProjectStatus{entities.ProjectStatusOnHold})
}

func (u *ProjectUseCase) transition(ctx context.Context, id string, to entities.ProjectStatus, allowedFrom []entities.ProjectStatus) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, validationError("project id is required")
	}

	updated, err := u.projects.UpdateStatus(ctx, id, to, allowedFrom)
	if err != nil {
		return entities.Project{}, persistenceError(err)
	}
	if updated.ID == "" {
		existing, gerr := u.projects.GetByID(ctx, id)
		if gerr != nil {
			return entities.Project{}, persistenceError(gerr)
		}
		if existing.ID == "" {
			return entities.Project{}, ErrProjectNotFound
		}
		return entities.Project{}, transitionError("cannot move project %s from %s to %s", id, existing.Status, to)
	}
	return updated, nil
}

// progressStatus derives project status from progress. 100 always means
// completed; forward motion implies in_progress unless the project is parked
// on hold.
func progressStatus(current entities.ProjectStatus, progress int) entities.ProjectStatus {
	switch {
	case progress >= 100:
		return entities.ProjectStatusCompleted
	case current == entities.ProjectStatusOnHold:
		return entities.ProjectStatusOnHold
	case progress > 0:
		return entities.ProjectStatusInProgress
	default:
		return current
	}
}

// mirrorQuoteStatus pushes the post-approval execution state onto the owning
// quote. Losing the compare-and-set is fine: the quote is either already
// there or was cancelled by staff.
func (u *ProjectUseCase) mirrorQuoteStatus(ctx context.Context, p entities.Project) error {
	var to entities.QuoteStatus
	var from []entities.QuoteStatus
	switch p.Status {
	case entities.ProjectStatusCompleted:
		to = entities.QuoteStatusCompleted
		from = []entities.QuoteStatus{entities.QuoteStatusApproved, entities.QuoteStatusAccepted, entities.QuoteStatusInProgress}
	case entities.ProjectStatusInProgress:
		to = entities.QuoteStatusInProgress
		from = []entities.QuoteStatus{entities.QuoteStatusApproved, entities.QuoteStatusAccepted}
	default:
		return nil
	}

	if _, err := u.quotes.UpdateStatusFrom(ctx, p.QuoteID, to, from); err != nil {
		return persistenceError(err)
	}
	return nil
}
