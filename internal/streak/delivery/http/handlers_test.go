package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
	streakHTTP "task-calendar/internal/streak/delivery/http"
	streakKV "task-calendar/internal/streak/repository/kv"
	streakUC "task-calendar/internal/streak/usecase"
	"task-calendar/pkg/datemath"
	"task-calendar/pkg/kvstore"
	"task-calendar/pkg/log"
)

func TestStreakEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	uc := streakUC.New(l, streakKV.New(kvstore.NewMemory()), p)
	r := gin.New()
	streakHTTP.RegisterRoutes(r.Group("/api/v1"), streakHTTP.New(l, uc, func() time.Time { return now }), middleware.New(l, middleware.Config{}))

	steps := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/api/v1/streak", `"count":0`},
		{http.MethodPost, "/api/v1/streak/record", `"count":1,"lastActiveDate":"2024-01-10"`},
		{http.MethodPost, "/api/v1/streak/reset", `"count":0,"lastActiveDate":"2024-01-10"`},
	}
	for _, s := range steps {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(s.method, s.path, nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), s.want) {
			t.Errorf("%s %s = %d %s, want %s", s.method, s.path, w.Code, w.Body.String(), s.want)
		}
	}
}
