package worker

import (
	"context"
	"go-gin-cinema-booking/internal/service"
	"go-gin-cinema-booking/pkg/logger"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const showtimeJobTimeout = 30 * time.Second

// ShowtimeJob 把已結束的場次標記為 completed
type ShowtimeJob struct {
	showtimes service.ShowtimeService
	schedule  string
	cron      *cron.Cron
}

func NewShowtimeJob(showtimes service.ShowtimeService, schedule string) *ShowtimeJob {
	return &ShowtimeJob{
		showtimes: showtimes,
		schedule:  schedule,
	}
}

func (j *ShowtimeJob) Start() error {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := c.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron = c
	c.Start()
	logger.WithComponent("worker").Info("showtime job started", zap.String("schedule", j.schedule))
	return nil
}

func (j *ShowtimeJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), showtimeJobTimeout)
	defer cancel()

	if _, err := j.showtimes.CompleteEndedShowtimes(ctx); err != nil {
		logger.WithComponent("worker").Error("complete ended showtimes failed", zap.Error(err))
	}
}

// Stop 等待執行中的工作結束
func (j *ShowtimeJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}
