package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bidworks/internal/adapter/http/handlers/mocks"
	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"propertyAddress":"12 Oak St"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().
			Create(gomock.Any(), usecase.ProjectInfo{ClientName: "Dana Whitfield", PropertyAddress: "12 Oak St"}).
			Return(entities.Project{ID: "proj-1", ClientName: "Dana Whitfield", Status: entities.ProjectStatusQuote}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"clientName":"Dana Whitfield","propertyAddress":"12 Oak St"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "proj-1" || body["status"] != "quote" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("derived fields come from the server", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/categories/:type/items", h.AddItem)

		want := entities.NewLineItem("Vinyl Windows", 2, "each", 600, 4, 60)
		uc.EXPECT().
			AddItem(gomock.Any(), "proj-1", entities.CategoryWindows, want).
			Return(entities.Project{ID: "proj-1"}, nil)

		// Client-supplied total must be ignored in favor of the recomputed one.
		payload := `{"description":"Vinyl Windows","quantity":2,"unit":"each","unitPrice":600,"laborHours":4,"laborRate":60,"total":1}`
		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/categories/windows/items", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown category maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/categories/:type/items", h.AddItem)

		uc.EXPECT().
			AddItem(gomock.Any(), "proj-1", entities.CategoryType("plumbing"), gomock.Any()).
			Return(entities.Project{}, usecase.ErrInvalidCategoryType)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/proj-1/categories/plumbing/items", bytes.NewBufferString(`{"description":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_UpdateItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric index rejected before the use case runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PUT("/v1/projects/:id/categories/:type/items/:index", h.UpdateItem)

		req := httptest.NewRequest(http.MethodPut, "/v1/projects/proj-1/categories/windows/items/first", bytes.NewBufferString(`{"description":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.PUT("/v1/projects/:id/categories/:type/items/:index", h.UpdateItem)

		uc.EXPECT().
			UpdateItem(gomock.Any(), "proj-1", entities.CategoryWindows, 5, gomock.Any()).
			Return(entities.Project{}, usecase.ErrItemIndexOutOfRange)

		req := httptest.NewRequest(http.MethodPut, "/v1/projects/proj-1/categories/windows/items/5", bytes.NewBufferString(`{"description":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.DELETE("/v1/projects/:id", h.DeleteProject)

		uc.EXPECT().Delete(gomock.Any(), "proj-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/projects/proj-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
