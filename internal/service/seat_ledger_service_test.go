package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	repoMocks "go-gin-cinema-booking/internal/repository/mocks"
	"go-gin-cinema-booking/internal/service"
	serviceMocks "go-gin-cinema-booking/internal/service/mocks"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ledgerMocks struct {
	showtimes *repoMocks.MockShowtimeRepository
	seats     *repoMocks.MockSeatRepository
	statuses  *repoMocks.MockSeatStatusRepository
	catalog   *serviceMocks.MockSeatCatalogService
}

func setupLedger(t *testing.T) (service.SeatLedgerService, ledgerMocks) {
	m := ledgerMocks{
		showtimes: repoMocks.NewMockShowtimeRepository(t),
		seats:     repoMocks.NewMockSeatRepository(t),
		statuses:  repoMocks.NewMockSeatStatusRepository(t),
		catalog:   serviceMocks.NewMockSeatCatalogService(t),
	}
	ledger := service.NewSeatLedgerService(m.showtimes, m.seats, m.statuses, m.catalog,
		service.WithClock(clock),
		service.WithHoldDuration(5*time.Minute),
		service.WithMaxSeats(4),
	)
	return ledger, m
}

func TestSeatLedgerService_Hold(t *testing.T) {
	ctx := context.Background()
	expires := fixedNow.Add(5 * time.Minute)

	t.Run("Success", func(t *testing.T) {
		ledger, m := setupLedger(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11, 12}).Return([]*model.Seat{
			testSeat(11, "A", 1, model.SeatTypeStandard),
			testSeat(12, "A", 2, model.SeatTypeVIP),
		}, nil).Once()
		m.statuses.EXPECT().Hold(ctx, repository.HoldParams{
			ShowtimeID: 1, SeatID: 11, UserID: 7, Now: fixedNow, ExpiresAt: expires, Price: 90000,
		}).Return(true, nil).Once()
		m.statuses.EXPECT().Hold(ctx, repository.HoldParams{
			ShowtimeID: 1, SeatID: 12, UserID: 7, Now: fixedNow, ExpiresAt: expires, Price: 120000,
		}).Return(true, nil).Once()

		outcome, err := ledger.Hold(ctx, 1, []int{11, 12, 11}, 7, false)

		require.NoError(t, err)
		assert.True(t, outcome.AllSucceeded())
		assert.False(t, outcome.Partial)
		require.Len(t, outcome.Results, 2)
		assert.Equal(t, int64(120000), outcome.Results[1].Price)
		assert.Equal(t, expires, *outcome.Results[0].ExpiresAt)
	})

	t.Run("Partial without auto release", func(t *testing.T) {
		ledger, m := setupLedger(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11, 12}).Return([]*model.Seat{
			testSeat(11, "A", 1, model.SeatTypeStandard),
			testSeat(12, "A", 2, model.SeatTypeStandard),
		}, nil).Once()
		m.statuses.EXPECT().Hold(ctx, mock.MatchedBy(func(p repository.HoldParams) bool { return p.SeatID == 11 })).Return(true, nil).Once()
		m.statuses.EXPECT().Hold(ctx, mock.MatchedBy(func(p repository.HoldParams) bool { return p.SeatID == 12 })).Return(false, nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{12}).Return([]*model.SeatStatus{
			heldStatus(12, 8, 90000, expires),
		}, nil).Once()

		outcome, err := ledger.Hold(ctx, 1, []int{11, 12}, 7, false)

		require.NoError(t, err)
		assert.True(t, outcome.Partial)
		assert.Equal(t, []int{11}, outcome.Succeeded())
		assert.Equal(t, model.HoldReasonHeld, outcome.Results[1].Reason)
		assert.Empty(t, outcome.ReleasedSeatIDs)
		m.statuses.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Partial with auto release", func(t *testing.T) {
		ledger, m := setupLedger(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11, 12}).Return([]*model.Seat{
			testSeat(11, "A", 1, model.SeatTypeStandard),
			testSeat(12, "A", 2, model.SeatTypeStandard),
		}, nil).Once()
		m.statuses.EXPECT().Hold(ctx, mock.MatchedBy(func(p repository.HoldParams) bool { return p.SeatID == 11 })).Return(true, nil).Once()
		m.statuses.EXPECT().Hold(ctx, mock.MatchedBy(func(p repository.HoldParams) bool { return p.SeatID == 12 })).Return(false, nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{12}).Return([]*model.SeatStatus{
			{ShowtimeID: 1, SeatID: 12, Status: model.SeatStateBooked},
		}, nil).Once()
		m.statuses.EXPECT().Release(ctx, 1, []int{11}, 7).Return(int64(1), nil).Once()

		outcome, err := ledger.Hold(ctx, 1, []int{11, 12}, 7, true)

		require.NoError(t, err)
		assert.True(t, outcome.Partial)
		assert.Equal(t, model.HoldReasonBooked, outcome.Results[1].Reason)
		assert.Equal(t, []int{11}, outcome.ReleasedSeatIDs)
	})

	t.Run("Failed - store error releases seats already held", func(t *testing.T) {
		ledger, m := setupLedger(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11, 12}).Return([]*model.Seat{
			testSeat(11, "A", 1, model.SeatTypeStandard),
			testSeat(12, "A", 2, model.SeatTypeStandard),
		}, nil).Once()
		m.statuses.EXPECT().Hold(ctx, mock.MatchedBy(func(p repository.HoldParams) bool { return p.SeatID == 11 })).Return(true, nil).Once()
		m.statuses.EXPECT().Hold(ctx, mock.MatchedBy(func(p repository.HoldParams) bool { return p.SeatID == 12 })).Return(false, errors.New("conn reset")).Once()
		m.statuses.EXPECT().Release(mock.Anything, 1, []int{11}, 7).Return(int64(1), nil).Once()

		outcome, err := ledger.Hold(ctx, 1, []int{11, 12}, 7, false)

		assert.Error(t, err)
		assert.Nil(t, outcome)
	})

	t.Run("Failed - store error on first seat releases nothing", func(t *testing.T) {
		ledger, m := setupLedger(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11}).Return([]*model.Seat{
			testSeat(11, "A", 1, model.SeatTypeStandard),
		}, nil).Once()
		m.statuses.EXPECT().Hold(ctx, mock.Anything).Return(false, errors.New("conn reset")).Once()

		_, err := ledger.Hold(ctx, 1, []int{11}, 7, false)

		assert.Error(t, err)
		m.statuses.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown and inactive seats", func(t *testing.T) {
		ledger, m := setupLedger(t)

		inactive := testSeat(12, "A", 2, model.SeatTypeStandard)
		inactive.IsActive = false

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{99, 12}).Return([]*model.Seat{inactive}, nil).Once()

		outcome, err := ledger.Hold(ctx, 1, []int{99, 12}, 7, false)

		require.NoError(t, err)
		assert.False(t, outcome.Partial)
		assert.Empty(t, outcome.Succeeded())
		assert.Equal(t, model.HoldReasonNotFound, outcome.Results[0].Reason)
		assert.Equal(t, model.HoldReasonUnavailable, outcome.Results[1].Reason)
	})

	t.Run("Failed - ErrShowtimeNotBookable", func(t *testing.T) {
		ledger, m := setupLedger(t)

		started := testShowtime()
		started.StartTime = fixedNow.Add(-time.Minute)
		m.showtimes.EXPECT().FindByID(ctx, 1).Return(started, nil).Once()

		_, err := ledger.Hold(ctx, 1, []int{11}, 7, false)

		assert.ErrorIs(t, err, apperrors.ErrShowtimeNotBookable)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	})

	t.Run("Failed - ErrTooManySeats", func(t *testing.T) {
		ledger, _ := setupLedger(t)

		_, err := ledger.Hold(ctx, 1, []int{1, 2, 3, 4, 5}, 7, false)

		assert.ErrorIs(t, err, apperrors.ErrTooManySeats)
	})

	t.Run("Failed - empty seat list", func(t *testing.T) {
		ledger, _ := setupLedger(t)

		_, err := ledger.Hold(ctx, 1, nil, 7, false)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestSeatLedgerService_GetSeatMap(t *testing.T) {
	ctx := context.Background()

	ledger, m := setupLedger(t)

	m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
	m.catalog.EXPECT().ListActiveSeats(ctx, 3).Return([]*model.Seat{
		testSeat(11, "A", 1, model.SeatTypeStandard),
		testSeat(12, "A", 2, model.SeatTypeCouple),
		testSeat(13, "A", 3, model.SeatTypeVIP),
		testSeat(14, "A", 4, model.SeatTypeStandard),
	}, nil).Once()
	m.statuses.EXPECT().ListByShowtime(ctx, 1).Return([]*model.SeatStatus{
		heldStatus(11, 8, 85000, fixedNow.Add(time.Minute)),
		heldStatus(12, 8, 90000, fixedNow.Add(-time.Second)),
		{ShowtimeID: 1, SeatID: 13, Status: model.SeatStateBooked, Price: 110000},
	}, nil).Once()

	entries, err := ledger.GetSeatMap(ctx, 1)

	require.NoError(t, err)
	require.Len(t, entries, 4)

	// 保留中的座位顯示凍結價格
	assert.Equal(t, model.SeatStateReserved, entries[0].Status)
	assert.Equal(t, int64(85000), entries[0].Price)
	assert.Equal(t, 8, *entries[0].ReservedBy)

	// 過期的保留視為 available，couple 未設定票價時使用一般票價
	assert.Equal(t, model.SeatStateAvailable, entries[1].Status)
	assert.Nil(t, entries[1].ReservedBy)
	assert.Equal(t, int64(90000), entries[1].Price)

	assert.Equal(t, model.SeatStateBooked, entries[2].Status)
	assert.Equal(t, int64(110000), entries[2].Price)

	assert.Equal(t, model.SeatStateAvailable, entries[3].Status)
}

func TestSeatLedgerService_ReleaseAndReclaim(t *testing.T) {
	ctx := context.Background()

	t.Run("Release only own holds", func(t *testing.T) {
		ledger, m := setupLedger(t)

		m.statuses.EXPECT().Release(ctx, 1, []int{11, 12}, 7).Return(int64(1), nil).Once()

		n, err := ledger.Release(ctx, 1, []int{11, 12, 12}, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("ReclaimExpiredHolds", func(t *testing.T) {
		ledger, m := setupLedger(t)

		m.statuses.EXPECT().ReclaimExpired(ctx, fixedNow).Return(int64(3), nil).Once()

		n, err := ledger.ReclaimExpiredHolds(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("ConfirmBooked returns affected count", func(t *testing.T) {
		ledger, m := setupLedger(t)

		m.statuses.EXPECT().ConfirmBooked(ctx, 1, []int{11, 12}, "b-1", 7).Return(int64(1), nil).Once()

		n, err := ledger.ConfirmBooked(ctx, 1, []int{11, 12}, "b-1", 7)

		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
