package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	tasklisthttp "github.com/jaekwang-park/tasklist/internal/http"
	"github.com/jaekwang-park/tasklist/internal/model"
	"github.com/jaekwang-park/tasklist/internal/service"
)

// mockTaskRepo for router tests
type mockTaskRepo struct{}

func (m *mockTaskRepo) Create(ctx context.Context, task model.Task) (int64, error) {
	return 1, nil
}
func (m *mockTaskRepo) GetByID(ctx context.Context, id int64) (model.Task, error) {
	return model.Task{ID: id, Text: "Buy groceries", Date: "2025-03-15", Time: "14:30", Status: model.TaskStatusPending}, nil
}
func (m *mockTaskRepo) List(ctx context.Context, sort model.SortKey) ([]model.Task, error) {
	return []model.Task{}, nil
}
func (m *mockTaskRepo) Update(ctx context.Context, id int64, patch model.TaskPatch) error {
	return nil
}
func (m *mockTaskRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTaskSvc() *service.TaskService {
	return service.NewTaskService(&mockTaskRepo{})
}

func TestRouter_HealthEndpoint(t *testing.T) {
	router := tasklisthttp.NewRouter(newTestTaskSvc(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var result map[string]string
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result["status"] != "ok" {
		t.Errorf("expected status=ok, got %s", result["status"])
	}
}

func TestRouter_TasksEndpointRegistered(t *testing.T) {
	router := tasklisthttp.NewRouter(newTestTaskSvc(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d (body: %s)", w.Code, w.Body.String())
	}

	var env struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !env.Success {
		t.Error("expected success envelope")
	}
}

func TestRouter_UnsupportedVerb(t *testing.T) {
	router := tasklisthttp.NewRouter(newTestTaskSvc(), testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/tasks", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Unsupported verbs answer with the envelope, not a 405
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if env.Success {
		t.Error("expected failure envelope")
	}
	if env.Message != "Invalid request method" {
		t.Errorf("expected message='Invalid request method', got %s", env.Message)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := tasklisthttp.NewRouter(newTestTaskSvc(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

func TestRouter_CORSHeaders(t *testing.T) {
	router := tasklisthttp.NewRouter(newTestTaskSvc(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected Access-Control-Allow-Origin=*, got %q", got)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := tasklisthttp.NewRouter(newTestTaskSvc(), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
