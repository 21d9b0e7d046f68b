package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/httpserver"
	"task-calendar/internal/middleware"
	subtaskHTTP "task-calendar/internal/subtask/delivery/http"
	"task-calendar/internal/subtask/repository"
	subtaskUC "task-calendar/internal/subtask/usecase"
	"task-calendar/pkg/log"
)

func newServer(t *testing.T, port int) *httpserver.HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := httpserver.New(l, httpserver.Config{
		Logger:         l,
		Port:           port,
		Mode:           gin.TestMode,
		Environment:    "test",
		Middleware:     middleware.New(l, middleware.Config{}),
		SubtaskHandler: subtaskHTTP.New(l, subtaskUC.New(l, repository.NewNop(), nil)),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()
	if _, err := httpserver.New(l, httpserver.Config{Logger: l, Mode: gin.TestMode}); err == nil {
		t.Error("expected error without port")
	}
	if _, err := httpserver.New(l, httpserver.Config{Logger: l, Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected error without subtask handler")
	}
}

func TestSystemAndDomainRoutes(t *testing.T) {
	h := newServer(t, 8080).Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"service":"task-calendar"`) {
			t.Errorf("%s = %d %s", path, w.Code, w.Body.String())
		}
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/subtasks", nil))
	if w.Code != http.StatusOK {
		t.Errorf("subtasks = %d", w.Code)
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("request id header missing")
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/streak", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unconfigured streak route = %d, want 404", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newServer(t, 38471)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
