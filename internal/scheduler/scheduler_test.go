package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	ingestmocks "github.com/avoronova/crypto-price-tracker/internal/service/ingest/mocks"
	"github.com/golang/mock/gomock"
)

// Успех с первой попытки — ретраев нет
func TestRunCycle_FirstAttemptSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ingestmocks.NewMockService(ctrl)
	svc.EXPECT().IngestAll(gomock.Any()).Return([]string{"btc_usd"}, nil).Times(1)

	s := NewScheduler(svc, time.Minute, 3, time.Millisecond, slog.Default())
	s.runCycle(context.Background())
}

// Две неудачи, затем успех — ровно три вызова
func TestRunCycle_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ingestmocks.NewMockService(ctrl)
	gomock.InOrder(
		svc.EXPECT().IngestAll(gomock.Any()).Return(nil, errors.New("db down")),
		svc.EXPECT().IngestAll(gomock.Any()).Return(nil, errors.New("db down")),
		svc.EXPECT().IngestAll(gomock.Any()).Return([]string{"btc_usd", "eth_usd"}, nil),
	)

	s := NewScheduler(svc, time.Minute, 3, time.Millisecond, slog.Default())
	s.runCycle(context.Background())
}

// Все попытки исчерпаны — цикл бросается, вызовов ровно attempts
func TestRunCycle_Abandoned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ingestmocks.NewMockService(ctrl)
	svc.EXPECT().IngestAll(gomock.Any()).Return(nil, errors.New("db down")).Times(3)

	s := NewScheduler(svc, time.Minute, 3, time.Millisecond, slog.Default())
	s.runCycle(context.Background())
}

// Отмена контекста прерывает бэкофф, вторая попытка не выполняется
func TestRunCycle_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())

	svc := ingestmocks.NewMockService(ctrl)
	svc.EXPECT().
		IngestAll(gomock.Any()).
		DoAndReturn(func(context.Context) ([]string, error) {
			cancel()
			return nil, errors.New("db down")
		}).
		Times(1)

	s := NewScheduler(svc, time.Minute, 3, time.Hour, slog.Default())
	done := make(chan struct{})
	go func() {
		s.runCycle(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runCycle did not stop on context cancellation")
	}
}
