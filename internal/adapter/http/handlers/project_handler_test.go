package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance_hub/internal/adapter/http/handlers/mocks"
	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_UpdateProgress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing progress field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/progress", h.UpdateProgress)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/progress", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero progress is a valid value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().UpdateProgress(gomock.Any(), "p-1", 0).
			Return(entities.Project{ID: "p-1", Progress: 0, Status: entities.ProjectStatusPending}, nil)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/progress", h.UpdateProgress)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/progress", bytes.NewBufferString(`{"progress":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("progress applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().UpdateProgress(gomock.Any(), "p-1", 60).
			Return(entities.Project{ID: "p-1", Progress: 60, Status: entities.ProjectStatusInProgress}, nil)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/progress", h.UpdateProgress)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/progress", bytes.NewBufferString(`{"progress":60}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["status"] != string(entities.ProjectStatusInProgress) {
			t.Fatalf("expected in_progress, got %v", resp["status"])
		}
	})
}

func TestProjectHandler_SetGithubURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid url rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().SetGithubURL(gomock.Any(), "p-1", "ftp://example.com").
			Return(entities.Project{}, usecase.ErrValidation)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/github", h.SetGithubURL)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/github", bytes.NewBufferString(`{"github_url":"ftp://example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("url set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().SetGithubURL(gomock.Any(), "p-1", "https://github.com/acme/site").
			Return(entities.Project{ID: "p-1", GithubURL: "https://github.com/acme/site"}, nil)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/github", h.SetGithubURL)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/github", bytes.NewBufferString(`{"github_url":"https://github.com/acme/site"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_HoldResume(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().HoldProject(gomock.Any(), "p-1").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusOnHold}, nil)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/hold", h.HoldProject)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/hold", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("resume from completed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().ResumeProject(gomock.Any(), "p-1").
			Return(entities.Project{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/resume", h.ResumeProject)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/resume", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown project maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		uc.EXPECT().GetProject(gomock.Any(), "p-9").
			Return(entities.Project{}, usecase.ErrProjectNotFound)

		r := gin.New()
		r.GET("/v1/projects/:project_id", h.GetProject)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
