package service

import (
	"context"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	"go-gin-cinema-booking/pkg/logger"

	"go.uber.org/zap"
)

type ShowtimeService interface {
	GetShowtime(ctx context.Context, id int) (*model.Showtime, error)
	// 已結束的場次改為 completed，之後不再接受保留
	CompleteEndedShowtimes(ctx context.Context) (int64, error)
}

type ShowtimeServiceImpl struct {
	showtimeRepository repository.ShowtimeRepository
	opts               options
}

func NewShowtimeService(showtimeRepository repository.ShowtimeRepository, opts ...Option) ShowtimeService {
	return &ShowtimeServiceImpl{
		showtimeRepository: showtimeRepository,
		opts:               newOptions(opts),
	}
}

func (s *ShowtimeServiceImpl) GetShowtime(ctx context.Context, id int) (*model.Showtime, error) {
	return s.showtimeRepository.FindByID(ctx, id)
}

func (s *ShowtimeServiceImpl) CompleteEndedShowtimes(ctx context.Context) (int64, error) {
	n, err := s.showtimeRepository.CompleteEnded(ctx, s.opts.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.WithComponent("service").Info("showtimes completed", zap.Int64("count", n))
	}
	return n, nil
}
