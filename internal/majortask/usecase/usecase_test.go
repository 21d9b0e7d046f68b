package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-calendar/internal/majortask"
	"task-calendar/internal/majortask/repository/kv"
	"task-calendar/internal/majortask/usecase"
	"task-calendar/internal/model"
	"task-calendar/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func fixedNow() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) } // Wednesday

func TestCreateDefaults(t *testing.T) {
	uc := usecase.New(&mockLogger{}, kv.New(kvstore.NewMemory()), fixedNow)

	out, err := uc.Create(context.Background(), majortask.CreateInput{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := model.MajorTask{ID: "1", Title: "Sample Task #1", Color: "red", StartDay: 1, EndDay: 3, WeekStart: "2024-01-08"}
	if out.Task != want {
		t.Errorf("got %+v, want %+v", out.Task, want)
	}

	second, _ := uc.Create(context.Background(), majortask.CreateInput{WeekStart: "2024-01-17", Title: "Sprint", StartDay: 2, EndDay: 5})
	if second.Task.ID != "2" || second.Task.WeekStart != "2024-01-15" || second.Task.Title != "Sprint" {
		t.Errorf("second = %+v", second.Task)
	}
}

func TestCreateValidation(t *testing.T) {
	uc := usecase.New(&mockLogger{}, kv.New(kvstore.NewMemory()), fixedNow)
	tests := []struct {
		name  string
		input majortask.CreateInput
		want  error
	}{
		{"bad week", majortask.CreateInput{WeekStart: "soon"}, majortask.ErrInvalidWeekStart},
		{"reversed days", majortask.CreateInput{StartDay: 5, EndDay: 2}, majortask.ErrInvalidDayRange},
		{"day eight", majortask.CreateInput{StartDay: 1, EndDay: 8}, majortask.ErrInvalidDayRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestListUpdateDelete(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	uc := usecase.New(&mockLogger{}, kv.New(store), fixedNow)

	a, _ := uc.Create(ctx, majortask.CreateInput{WeekStart: "2024-01-08"})
	_, _ = uc.Create(ctx, majortask.CreateInput{WeekStart: "2024-01-15"})

	list, err := uc.List(ctx, majortask.ListInput{WeekStart: "2024-01-12"})
	if err != nil || list.Total != 1 || list.Tasks[0].ID != a.Task.ID {
		t.Fatalf("List = %+v, %v", list, err)
	}

	color := "blue"
	up, err := uc.Update(ctx, majortask.UpdateInput{ID: a.Task.ID, Patch: majortask.Patch{Color: &color}})
	if err != nil || !up.Found || up.Task.Color != "blue" {
		t.Fatalf("Update = %+v, %v", up, err)
	}

	bad := 9
	if _, err := uc.Update(ctx, majortask.UpdateInput{ID: a.Task.ID, Patch: majortask.Patch{EndDay: &bad}}); !errors.Is(err, majortask.ErrInvalidDayRange) {
		t.Errorf("err = %v, want ErrInvalidDayRange", err)
	}
	if miss, _ := uc.Update(ctx, majortask.UpdateInput{ID: "404", Patch: majortask.Patch{Color: &color}}); miss.Found {
		t.Error("unknown id reported found")
	}

	del, err := uc.Delete(ctx, a.Task.ID)
	if err != nil || !del.Found {
		t.Fatalf("Delete = %+v, %v", del, err)
	}
	if del, _ := uc.Delete(ctx, a.Task.ID); del.Found {
		t.Error("second delete reported found")
	}

	reloaded := usecase.New(&mockLogger{}, kv.New(store), fixedNow)
	all, _ := reloaded.List(ctx, majortask.ListInput{})
	if all.Total != 1 {
		t.Errorf("reloaded total = %d, want 1", all.Total)
	}
	next, _ := reloaded.Create(ctx, majortask.CreateInput{})
	if next.Task.ID != "3" {
		t.Errorf("next id = %s, want 3", next.Task.ID)
	}
}
