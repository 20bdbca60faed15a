package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/avoronova/crypto-price-tracker/internal/service/ingest"
)

// Scheduler — фоновое периодическое выполнение цикла ингеста.
// Ретраи на полном провале цикла живут здесь, не в сервисе.
type Scheduler struct {
	ingest   ingest.Service
	interval time.Duration
	attempts int
	backoff  time.Duration
	logger   *slog.Logger
}

// NewScheduler — конструктор планировщика фонового обновления цен.
func NewScheduler(svc ingest.Service, interval time.Duration, attempts int, backoff time.Duration, logger *slog.Logger) *Scheduler {
	if attempts < 1 {
		attempts = 1
	}
	if backoff <= 0 {
		backoff = 2 * time.Second
	}
	return &Scheduler{
		ingest:   svc,
		interval: interval,
		attempts: attempts,
		backoff:  backoff,
		logger:   logger,
	}
}

// Start — запускает периодическое выполнение задачи до остановки контекста.
// Циклы не перекрываются: всё выполняется в одной горутине.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started",
		slog.Duration("interval", s.interval),
		slog.Int("retry_attempts", s.attempts),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// первый запуск сразу
	s.runCycle(ctx)

	for {
		select {
		case <-ticker.C:
			s.runCycle(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// runCycle — одна итерация с ограниченными ретраями и экспоненциальным бэкоффом.
func (s *Scheduler) runCycle(ctx context.Context) {
	delay := s.backoff
	for attempt := 1; attempt <= s.attempts; attempt++ {
		saved, err := s.ingest.IngestAll(ctx)
		if err == nil {
			s.logger.Debug("tick: ingest cycle completed", slog.Int("saved", len(saved)))
			return
		}

		s.logger.Error("tick: ingest attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		if attempt == s.attempts {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return
		}
		delay *= 2
	}
	s.logger.Error("tick: ingest cycle abandoned", slog.Int("attempts", s.attempts))
}
