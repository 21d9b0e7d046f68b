package app_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"task-calendar/config"
	"task-calendar/internal/app"
	"task-calendar/internal/subtask"
	"task-calendar/pkg/log"
)

func testConfig(driver, path string) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Driver = driver
	cfg.Storage.Path = path
	cfg.Storage.CacheSize = 8
	cfg.Calendar.Timezone = "UTC"
	cfg.Notification.ReminderWindow = time.Hour
	return cfg
}

func TestBuildSharesStoreAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig("sqlite", filepath.Join(t.TempDir(), "cal.db"))

	a, err := app.Build(ctx, cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	created, err := a.Subtasks.Create(ctx, subtask.CreateInput{Date: "2024-06-01", Title: "Keep me"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := app.Build(ctx, cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Build again: %v", err)
	}
	defer b.Close()
	got, err := b.Subtasks.Detail(ctx, created.Subtask.ID)
	if err != nil || got.Subtask.Title != "Keep me" {
		t.Errorf("Detail = %+v, %v", got, err)
	}
}

func TestBuildUnknownDriver(t *testing.T) {
	if _, err := app.Build(context.Background(), testConfig("redis", ""), log.NewNop()); err == nil {
		t.Fatal("expected error")
	}
}

func TestBuildBadTimezoneFallsBack(t *testing.T) {
	cfg := testConfig("memory", "")
	cfg.Calendar.Timezone = "Mars/Olympus"
	a, err := app.Build(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer a.Close()
	if a.Parser.Location().String() != "UTC" {
		t.Errorf("location = %s", a.Parser.Location())
	}
}
