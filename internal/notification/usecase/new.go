package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-calendar/internal/notification"
	"task-calendar/internal/notification/repository"
	"task-calendar/pkg/datemath"
	pkgLog "task-calendar/pkg/log"
)

const dedupeSize = 1000

// Config tunes reminder timing and alert deduplication.
type Config struct {
	ReminderWindow time.Duration
	// DedupeTTL drops an alert whose tag was already sent within this period.
	// Zero disables deduplication.
	DedupeTTL time.Duration
}

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.ReminderRepository
	parser *datemath.Parser
	sinks  []notification.Sink
	window time.Duration
	recent *expirable.LRU[string, struct{}]

	// mu serialises CheckUpcoming's read-modify-write of the sent set.
	mu sync.Mutex
}

// New creates a notification UseCase fanning out to sinks.
func New(l pkgLog.Logger, repo repository.ReminderRepository, parser *datemath.Parser, cfg Config, sinks ...notification.Sink) (notification.UseCase, error) {
	if cfg.ReminderWindow == 0 {
		cfg.ReminderWindow = notification.DefaultReminderWindow
	}
	if cfg.ReminderWindow < 0 {
		return nil, notification.ErrInvalidWindow
	}

	uc := &implUseCase{
		l:      l,
		repo:   repo,
		parser: parser,
		sinks:  sinks,
		window: cfg.ReminderWindow,
	}
	if cfg.DedupeTTL > 0 {
		uc.recent = expirable.NewLRU[string, struct{}](dedupeSize, nil, cfg.DedupeTTL)
	}
	return uc, nil
}
