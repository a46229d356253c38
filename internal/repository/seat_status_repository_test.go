package repository

import (
	"context"
	"go-gin-cinema-booking/internal/model"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seatFixture struct {
	repo     SeatStatusRepository
	showtime *model.Showtime
	seatIDs  []int
	now      time.Time
}

func setupSeatFixture(t *testing.T, seats int) seatFixture {
	t.Helper()
	pool := setupTestWithTruncate(t)

	now := time.Now().UTC().Truncate(time.Second)
	theaterID := createTestTheater(t, 2)
	return seatFixture{
		repo:     NewSeatStatusRepository(pool),
		showtime: createTestShowtime(t, theaterID, now.Add(time.Hour)),
		seatIDs:  createTestSeats(t, theaterID, "A", seats),
		now:      now,
	}
}

func (f seatFixture) holdParams(seatID, userID int, now time.Time) HoldParams {
	return HoldParams{
		ShowtimeID: f.showtime.ID,
		SeatID:     seatID,
		UserID:     userID,
		Now:        now,
		ExpiresAt:  now.Add(5 * time.Minute),
		Price:      90000,
	}
}

func TestSeatStatusRepository_Hold(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - first hold inserts row", func(t *testing.T) {
		f := setupSeatFixture(t, 1)

		ok, err := f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 7, f.now))

		require.NoError(t, err)
		assert.True(t, ok)
		s := seatState(t, f.showtime.ID, f.seatIDs[0])
		require.NotNil(t, s)
		assert.Equal(t, model.SeatStateReserved, s.Status)
		assert.Equal(t, 7, *s.ReservedBy)
		assert.Equal(t, int64(90000), s.Price)
		assert.True(t, f.now.Add(5*time.Minute).Equal(*s.ReservationExpires))
	})

	t.Run("Failed - active hold by another user", func(t *testing.T) {
		f := setupSeatFixture(t, 1)

		ok, err := f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 7, f.now))
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 8, f.now.Add(time.Minute)))

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 7, *seatState(t, f.showtime.ID, f.seatIDs[0]).ReservedBy)
	})

	t.Run("Success - expired hold can be taken over", func(t *testing.T) {
		f := setupSeatFixture(t, 1)

		ok, err := f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 7, f.now))
		require.NoError(t, err)
		require.True(t, ok)

		// 剛好到期也算過期
		ok, err = f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 8, f.now.Add(5*time.Minute)))

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 8, *seatState(t, f.showtime.ID, f.seatIDs[0]).ReservedBy)
	})

	t.Run("Failed - booked seat", func(t *testing.T) {
		f := setupSeatFixture(t, 1)

		ok, err := f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 7, f.now))
		require.NoError(t, err)
		require.True(t, ok)
		booking := createTestBooking(t, f.showtime.ID, 7, f.seatIDs)
		n, err := f.repo.ConfirmBooked(ctx, f.showtime.ID, f.seatIDs, booking.ID, 7)
		require.NoError(t, err)
		require.Equal(t, int64(1), n)

		ok, err = f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 8, f.now.Add(time.Hour)))

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

// 多個 goroutine 同時搶同一個座位，只能有一個成功
func TestSeatStatusRepository_Hold_concurrentSingleWinner(t *testing.T) {
	f := setupSeatFixture(t, 1)
	ctx := context.Background()

	const contenders = 20
	var (
		wg      sync.WaitGroup
		winners int32
		errs    int32
	)
	start := make(chan struct{})
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			<-start
			ok, err := f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], userID, f.now))
			if err != nil {
				atomic.AddInt32(&errs, 1)
				return
			}
			if ok {
				atomic.AddInt32(&winners, 1)
			}
		}(100 + i)
	}
	close(start)
	wg.Wait()

	assert.Zero(t, errs)
	assert.Equal(t, int32(1), winners)
}

func TestSeatStatusRepository_Release(t *testing.T) {
	ctx := context.Background()
	f := setupSeatFixture(t, 2)

	for _, id := range f.seatIDs {
		ok, err := f.repo.Hold(ctx, f.holdParams(id, 7, f.now))
		require.NoError(t, err)
		require.True(t, ok)
	}

	t.Run("Other user releases nothing", func(t *testing.T) {
		n, err := f.repo.Release(ctx, f.showtime.ID, f.seatIDs, 8)

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Holder releases own seats", func(t *testing.T) {
		n, err := f.repo.Release(ctx, f.showtime.ID, f.seatIDs, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		s := seatState(t, f.showtime.ID, f.seatIDs[0])
		assert.Equal(t, model.SeatStateAvailable, s.Status)
		assert.Nil(t, s.ReservedBy)
		assert.Nil(t, s.ReservationExpires)
	})
}

func TestSeatStatusRepository_ConfirmBooked(t *testing.T) {
	ctx := context.Background()

	t.Run("Only active holds by the holder are booked", func(t *testing.T) {
		f := setupSeatFixture(t, 3)

		// seat 0, 1 由 7 保留；seat 2 由 8 保留
		for _, id := range f.seatIDs[:2] {
			ok, err := f.repo.Hold(ctx, f.holdParams(id, 7, f.now))
			require.NoError(t, err)
			require.True(t, ok)
		}
		ok, err := f.repo.Hold(ctx, f.holdParams(f.seatIDs[2], 8, f.now))
		require.NoError(t, err)
		require.True(t, ok)

		booking := createTestBooking(t, f.showtime.ID, 7, f.seatIDs)
		n, err := f.repo.ConfirmBooked(ctx, f.showtime.ID, f.seatIDs, booking.ID, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.Equal(t, model.SeatStateReserved, seatState(t, f.showtime.ID, f.seatIDs[2]).Status)
	})

	t.Run("Booked seats cannot be booked twice", func(t *testing.T) {
		f := setupSeatFixture(t, 1)

		ok, err := f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 7, f.now))
		require.NoError(t, err)
		require.True(t, ok)

		first := createTestBooking(t, f.showtime.ID, 7, f.seatIDs)
		second := createTestBooking(t, f.showtime.ID, 7, f.seatIDs)

		n, err := f.repo.ConfirmBooked(ctx, f.showtime.ID, f.seatIDs, first.ID, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = f.repo.ConfirmBooked(ctx, f.showtime.ID, f.seatIDs, second.ID, 7)
		require.NoError(t, err)
		assert.Zero(t, n)

		s := seatState(t, f.showtime.ID, f.seatIDs[0])
		assert.Equal(t, model.SeatStateBooked, s.Status)
		assert.Equal(t, first.ID, *s.BookingID)
	})
}

func TestSeatStatusRepository_ReclaimExpired(t *testing.T) {
	ctx := context.Background()
	f := setupSeatFixture(t, 2)

	ok, err := f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 7, f.now.Add(-10*time.Minute)))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = f.repo.Hold(ctx, f.holdParams(f.seatIDs[1], 7, f.now))
	require.NoError(t, err)
	require.True(t, ok)

	n, err := f.repo.ReclaimExpired(ctx, f.now)

	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, model.SeatStateAvailable, seatState(t, f.showtime.ID, f.seatIDs[0]).Status)
	assert.Equal(t, model.SeatStateReserved, seatState(t, f.showtime.ID, f.seatIDs[1]).Status)

	// 再跑一次不會有變化
	n, err = f.repo.ReclaimExpired(ctx, f.now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeatStatusRepository_ReassertAndReleaseByBooking(t *testing.T) {
	ctx := context.Background()
	f := setupSeatFixture(t, 2)

	ok, err := f.repo.Hold(ctx, f.holdParams(f.seatIDs[0], 7, f.now))
	require.NoError(t, err)
	require.True(t, ok)
	booking := createTestBooking(t, f.showtime.ID, 7, f.seatIDs)
	_, err = f.repo.ConfirmBooked(ctx, f.showtime.ID, f.seatIDs[:1], booking.ID, 7)
	require.NoError(t, err)

	t.Run("Reassert fills missing rows", func(t *testing.T) {
		n, err := f.repo.ReassertBooked(ctx, nil, f.showtime.ID, f.seatIDs, booking.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		for _, id := range f.seatIDs {
			s := seatState(t, f.showtime.ID, id)
			assert.Equal(t, model.SeatStateBooked, s.Status)
			assert.Equal(t, booking.ID, *s.BookingID)
		}
	})

	t.Run("Reassert does not steal another booking's seat", func(t *testing.T) {
		other := createTestBooking(t, f.showtime.ID, 8, f.seatIDs[:1])

		n, err := f.repo.ReassertBooked(ctx, nil, f.showtime.ID, f.seatIDs[:1], other.ID)

		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Equal(t, booking.ID, *seatState(t, f.showtime.ID, f.seatIDs[0]).BookingID)
	})

	t.Run("ReleaseByBooking inside a transaction", func(t *testing.T) {
		err := NewTxManager(testDB).WithTx(ctx, func(tx pgx.Tx) error {
			n, err := f.repo.ReleaseByBooking(ctx, tx, booking.ID)
			assert.Equal(t, int64(2), n)
			return err
		})

		require.NoError(t, err)
		for _, id := range f.seatIDs {
			assert.Equal(t, model.SeatStateAvailable, seatState(t, f.showtime.ID, id).Status)
		}
	})
}
