package service

import (
	"context"
	"go-gin-cinema-booking/internal/cache"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	"go-gin-cinema-booking/pkg/logger"

	"go.uber.org/zap"
)

type SeatCatalogService interface {
	// 取得影廳可用座位；影廳尚無座位時依座位模板建立
	ListActiveSeats(ctx context.Context, theaterID int) ([]*model.Seat, error)
}

type SeatCatalogServiceImpl struct {
	seatRepository   repository.SeatRepository
	layoutRepository repository.SeatLayoutRepository
	catalogCache     cache.SeatCatalogCache
}

// NewSeatCatalogService catalogCache 可為 nil
func NewSeatCatalogService(
	seatRepository repository.SeatRepository,
	layoutRepository repository.SeatLayoutRepository,
	catalogCache cache.SeatCatalogCache,
) SeatCatalogService {
	return &SeatCatalogServiceImpl{
		seatRepository:   seatRepository,
		layoutRepository: layoutRepository,
		catalogCache:     catalogCache,
	}
}

func (s *SeatCatalogServiceImpl) ListActiveSeats(ctx context.Context, theaterID int) ([]*model.Seat, error) {
	log := logger.WithComponent("service").With(zap.Int("theater_id", theaterID))

	if s.catalogCache != nil {
		seats, ok, err := s.catalogCache.Get(ctx, theaterID)
		if err != nil {
			log.Warn("seat catalog cache read failed", zap.Error(err))
		} else if ok {
			return seats, nil
		}
	}

	seats, err := s.seatRepository.ListActiveByTheater(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	if len(seats) == 0 {
		if err := s.provisionFromLayout(ctx, theaterID); err != nil {
			return nil, err
		}
		seats, err = s.seatRepository.ListActiveByTheater(ctx, theaterID)
		if err != nil {
			return nil, err
		}
	}

	if s.catalogCache != nil && len(seats) > 0 {
		if err := s.catalogCache.Set(ctx, theaterID, seats); err != nil {
			log.Warn("seat catalog cache write failed", zap.Error(err))
		}
	}

	return seats, nil
}

// provisionFromLayout 同時有兩個請求建立座位時，重複的座位由唯一索引略過
func (s *SeatCatalogServiceImpl) provisionFromLayout(ctx context.Context, theaterID int) error {
	layout, err := s.layoutRepository.FindByTheaterID(ctx, theaterID)
	if err != nil {
		return err
	}
	layout.TheaterID = theaterID

	inserted, err := s.seatRepository.BulkInsert(ctx, theaterID, layout.BuildSeats())
	if err != nil {
		return err
	}

	logger.WithComponent("service").Info("seats provisioned from layout",
		zap.Int("theater_id", theaterID),
		zap.Int64("inserted", inserted),
	)

	if s.catalogCache != nil {
		if err := s.catalogCache.Invalidate(ctx, theaterID); err != nil {
			logger.WithComponent("service").Warn("seat catalog cache invalidate failed", zap.Error(err))
		}
	}
	return nil
}
