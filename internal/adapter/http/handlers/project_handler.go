package handlers

import (
	"context"
	"errors"
	"net/http"

	request "freelance_hub/internal/adapter/http/dto/request"
	response "freelance_hub/internal/adapter/http/dto/response"
	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase"
	"freelance_hub/pkg"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project delivery tracking.

type ProjectHandler struct {
	projects usecase.IProjectUseCase
}

func NewProjectHandler(projects usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projects.GetProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// UpdateProgress sets delivery progress and lets it drive project and quote
// status.
func (h *ProjectHandler) UpdateProgress(c *gin.Context) {
	var payload request.UpdateProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Progress == nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	project, err := h.projects.UpdateProgress(c.Request.Context(), c.Param("project_id"), *payload.Progress)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) SetGithubURL(c *gin.Context) {
	var payload request.SetGithubURLRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	project, err := h.projects.SetGithubURL(c.Request.Context(), c.Param("project_id"), payload.GithubURL)
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func (h *ProjectHandler) HoldProject(c *gin.Context) {
	h.patchProjectStatus(c, h.projects.HoldProject)
}

func (h *ProjectHandler) ResumeProject(c *gin.Context) {
	h.patchProjectStatus(c, h.projects.ResumeProject)
}

func (h *ProjectHandler) patchProjectStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Project, error),
) {
	project, err := updater(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapProjectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Project cannot change to the requested status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
