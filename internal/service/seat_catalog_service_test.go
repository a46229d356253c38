package service_test

import (
	"context"
	"errors"
	"testing"

	cacheMocks "go-gin-cinema-booking/internal/cache/mocks"
	"go-gin-cinema-booking/internal/model"
	repoMocks "go-gin-cinema-booking/internal/repository/mocks"
	"go-gin-cinema-booking/internal/service"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeatCatalogService_ListActiveSeats(t *testing.T) {
	ctx := context.Background()

	t.Run("Cache hit", func(t *testing.T) {
		seatRepo := repoMocks.NewMockSeatRepository(t)
		layoutRepo := repoMocks.NewMockSeatLayoutRepository(t)
		catalogCache := cacheMocks.NewMockSeatCatalogCache(t)
		catalog := service.NewSeatCatalogService(seatRepo, layoutRepo, catalogCache)

		cached := []*model.Seat{testSeat(1, "A", 1, model.SeatTypeStandard)}
		catalogCache.EXPECT().Get(ctx, 3).Return(cached, true, nil).Once()

		seats, err := catalog.ListActiveSeats(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, cached, seats)
	})

	t.Run("Provision couple seats from layout", func(t *testing.T) {
		seatRepo := repoMocks.NewMockSeatRepository(t)
		layoutRepo := repoMocks.NewMockSeatLayoutRepository(t)
		catalogCache := cacheMocks.NewMockSeatCatalogCache(t)
		catalog := service.NewSeatCatalogService(seatRepo, layoutRepo, catalogCache)

		layout := &model.SeatLayout{
			Rows:        8,
			SeatsPerRow: 10,
			CoupleSeats: []model.CoupleRange{{Row: "H", StartSeat: 1, EndSeat: 4}},
		}
		provisioned := []*model.Seat{
			testSeat(71, "H", 1, model.SeatTypeCouple),
			testSeat(75, "H", 5, model.SeatTypeStandard),
		}

		catalogCache.EXPECT().Get(ctx, 3).Return(nil, false, nil).Once()
		seatRepo.EXPECT().ListActiveByTheater(ctx, 3).Return(nil, nil).Once()
		layoutRepo.EXPECT().FindByTheaterID(ctx, 3).Return(layout, nil).Once()
		seatRepo.EXPECT().BulkInsert(ctx, 3, mock.MatchedBy(func(seats []*model.Seat) bool {
			if len(seats) != 80 {
				return false
			}
			couples := 0
			for _, s := range seats {
				if s.Type == model.SeatTypeCouple {
					if s.RowLabel != "H" || s.SeatNumber > 4 {
						return false
					}
					couples++
				}
			}
			return couples == 4
		})).Return(int64(80), nil).Once()
		catalogCache.EXPECT().Invalidate(ctx, 3).Return(nil).Once()
		seatRepo.EXPECT().ListActiveByTheater(ctx, 3).Return(provisioned, nil).Once()
		catalogCache.EXPECT().Set(ctx, 3, provisioned).Return(nil).Once()

		seats, err := catalog.ListActiveSeats(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, provisioned, seats)
	})

	t.Run("Cache errors fall through to repository", func(t *testing.T) {
		seatRepo := repoMocks.NewMockSeatRepository(t)
		layoutRepo := repoMocks.NewMockSeatLayoutRepository(t)
		catalogCache := cacheMocks.NewMockSeatCatalogCache(t)
		catalog := service.NewSeatCatalogService(seatRepo, layoutRepo, catalogCache)

		stored := []*model.Seat{testSeat(1, "A", 1, model.SeatTypeStandard)}
		catalogCache.EXPECT().Get(ctx, 3).Return(nil, false, errors.New("redis down")).Once()
		seatRepo.EXPECT().ListActiveByTheater(ctx, 3).Return(stored, nil).Once()
		catalogCache.EXPECT().Set(ctx, 3, stored).Return(errors.New("redis down")).Once()

		seats, err := catalog.ListActiveSeats(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, stored, seats)
	})

	t.Run("Failed - ErrSeatLayoutNotFound", func(t *testing.T) {
		seatRepo := repoMocks.NewMockSeatRepository(t)
		layoutRepo := repoMocks.NewMockSeatLayoutRepository(t)
		catalog := service.NewSeatCatalogService(seatRepo, layoutRepo, nil)

		seatRepo.EXPECT().ListActiveByTheater(ctx, 3).Return(nil, nil).Once()
		layoutRepo.EXPECT().FindByTheaterID(ctx, 3).Return(nil, apperrors.ErrSeatLayoutNotFound).Once()

		_, err := catalog.ListActiveSeats(ctx, 3)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
