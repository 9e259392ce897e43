package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yigit/facultyhub/internal/app/controllers"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/app/services"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/filestorage"
	"github.com/yigit/facultyhub/internal/pkg/validation"
)

func newRouter(t *testing.T, health HealthCheck) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repositories.NewMemoryFacultyRepository()
	if err != nil {
		t.Fatalf("NewMemoryFacultyRepository: %v", err)
	}
	files, err := filestorage.NewLocalStorage(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	router := gin.New()
	SetupRouter(router,
		controllers.NewFacultyController(services.NewFacultyService(store, validation.NewValidator())),
		controllers.NewStatisticsController(services.NewStatisticsService(store)),
		controllers.NewDocumentController(services.NewDocumentService(store, files), 1<<20),
		health,
	)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRoutesAreRegistered(t *testing.T) {
	router := newRouter(t, nil)

	tests := []struct {
		path   string
		status int
	}{
		{"/ping", http.StatusOK},
		{"/api/v1/health", http.StatusOK},
		{"/api/v1/faculty", http.StatusOK},
		{"/api/v1/faculty/ratification/rules", http.StatusOK},
		{"/api/v1/faculty/ratification/eligible", http.StatusOK},
		{"/api/v1/faculty/not-a-uuid", http.StatusBadRequest},
		{"/api/v1/stats/overview", http.StatusOK},
		{"/api/v1/stats/departments", http.StatusOK},
		{"/api/v1/faculties", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if w := get(router, tt.path); w.Code != tt.status {
				t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.status)
			}
		})
	}
}

func TestHealthReportsStorageFailure(t *testing.T) {
	router := newRouter(t, func(ctx context.Context) error {
		return apperrors.NewStorageError("ping", errors.New("connection refused"))
	})

	w := get(router, "/api/v1/health")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var body dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Success || body.Error == nil || body.Error.Code != dto.ErrorCodeStorageUnavailable {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestSwaggerDocumentDescribesTheAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupSwagger(router)

	w := get(router, "/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /swagger/doc.json = %d", w.Code)
	}

	var doc struct {
		BasePath string                     `json:"basePath"`
		Info     struct{ Title string }     `json:"info"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("swagger document is not JSON: %v", err)
	}
	if doc.Info.Title != "FacultyHub API" || doc.BasePath != "/api/v1" {
		t.Errorf("unexpected info %q base %q", doc.Info.Title, doc.BasePath)
	}
	for _, p := range []string{"/faculty", "/faculty/{id}", "/faculty/{id}/ratify", "/faculty/{id}/documents", "/stats/overview"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("path %s missing from swagger document", p)
		}
	}
}
