package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
	"task-calendar/internal/notification"
	notifHTTP "task-calendar/internal/notification/delivery/http"
	notifKV "task-calendar/internal/notification/repository/kv"
	notifUC "task-calendar/internal/notification/usecase"
	"task-calendar/internal/subtask"
	"task-calendar/internal/subtask/repository"
	subtaskUC "task-calendar/internal/subtask/usecase"
	"task-calendar/pkg/datemath"
	"task-calendar/pkg/kvstore"
	"task-calendar/pkg/log"
)

type countingSink struct{ n int }

func (s *countingSink) Name() string { return "count" }

func (s *countingSink) Send(ctx context.Context, a notification.Alert) error {
	if strings.HasPrefix(a.Tag, "event-reminder-") {
		s.n++
	}
	return nil
}

func TestCheckUpcomingEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	sink := &countingSink{}
	notifier, err := notifUC.New(l, notifKV.New(kvstore.NewMemory()), p, notifUC.Config{}, sink)
	if err != nil {
		t.Fatalf("notifUC.New: %v", err)
	}
	subtasks := subtaskUC.New(l, repository.NewNop(), notifier)
	if _, err := subtasks.Create(context.Background(), subtask.CreateInput{Date: "2024-01-01", StartTime: "09:20", Title: "Soon"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	r := gin.New()
	notifHTTP.RegisterRoutes(r.Group("/api/v1"), notifHTTP.New(l, notifier, subtasks, func() time.Time { return now }), middleware.New(l, middleware.Config{}))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/reminders/check", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status %d: %s", w.Code, w.Body.String())
		}
		if i == 0 && !strings.Contains(w.Body.String(), `"reminded":[1]`) {
			t.Errorf("first check = %s", w.Body.String())
		}
	}
	if sink.n != 1 {
		t.Errorf("reminders sent = %d, want 1", sink.n)
	}
}
