package worker

import (
	"context"
	"go-gin-cinema-booking/internal/service"
	"go-gin-cinema-booking/pkg/logger"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const sweepTimeout = 20 * time.Second

// HoldSweeper 定期把過期的保留改回 available
type HoldSweeper struct {
	ledger    service.SeatLedgerService
	interval  time.Duration
	scheduler gocron.Scheduler
}

func NewHoldSweeper(ledger service.SeatLedgerService, interval time.Duration) *HoldSweeper {
	return &HoldSweeper{
		ledger:   ledger,
		interval: interval,
	}
}

func (s *HoldSweeper) Start() error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.Sweep, context.Background()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("hold-sweeper"),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.scheduler = scheduler
	scheduler.Start()
	logger.WithComponent("worker").Info("hold sweeper started", zap.Duration("interval", s.interval))
	return nil
}

// Sweep 執行一次回收；失敗只記錄，下一輪會再處理
func (s *HoldSweeper) Sweep(ctx context.Context) int64 {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	n, err := s.ledger.ReclaimExpiredHolds(ctx)
	if err != nil {
		logger.WithComponent("worker").Error("reclaim expired holds failed", zap.Error(err))
		return 0
	}
	if n > 0 {
		logger.WithComponent("worker").Info("expired holds reclaimed", zap.Int64("count", n))
	}
	return n
}

func (s *HoldSweeper) Stop() error {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Shutdown()
}
