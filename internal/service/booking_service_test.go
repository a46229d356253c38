package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	eventMocks "go-gin-cinema-booking/internal/events/mocks"
	"go-gin-cinema-booking/internal/model"
	repoMocks "go-gin-cinema-booking/internal/repository/mocks"
	"go-gin-cinema-booking/internal/service"
	serviceMocks "go-gin-cinema-booking/internal/service/mocks"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingMocks struct {
	tx        *repoMocks.MockTxManager
	showtimes *repoMocks.MockShowtimeRepository
	seats     *repoMocks.MockSeatRepository
	statuses  *repoMocks.MockSeatStatusRepository
	bookings  *repoMocks.MockBookingRepository
	vouchers  *repoMocks.MockVoucherRepository
	ledger    *serviceMocks.MockSeatLedgerService
	payments  *serviceMocks.MockPaymentService
	publisher *eventMocks.MockPublisher
}

func setupBooking(t *testing.T) (service.BookingService, bookingMocks) {
	m := bookingMocks{
		tx:        repoMocks.NewMockTxManager(t),
		showtimes: repoMocks.NewMockShowtimeRepository(t),
		seats:     repoMocks.NewMockSeatRepository(t),
		statuses:  repoMocks.NewMockSeatStatusRepository(t),
		bookings:  repoMocks.NewMockBookingRepository(t),
		vouchers:  repoMocks.NewMockVoucherRepository(t),
		ledger:    serviceMocks.NewMockSeatLedgerService(t),
		payments:  serviceMocks.NewMockPaymentService(t),
		publisher: eventMocks.NewMockPublisher(t),
	}
	svc := service.NewBookingService(m.tx, m.showtimes, m.seats, m.statuses, m.bookings, m.vouchers,
		m.ledger, m.payments, m.publisher,
		service.WithClock(clock),
	)
	return svc, m
}

// runTx 直接以 nil tx 執行 callback
func runTx(m *repoMocks.MockTxManager) {
	m.EXPECT().WithTx(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	}).Once()
}

// returnCreated 回傳傳入的 booking，模擬 RETURNING created_at
func returnCreated(m *repoMocks.MockBookingRepository) *repoMocks.MockBookingRepository_Create_Call {
	return m.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, b *model.Booking) (*model.Booking, error) {
		b.CreatedAt = fixedNow
		b.UpdatedAt = fixedNow
		return b, nil
	})
}

func bookingRequest(seatIDs ...int) model.CreateBookingRequest {
	req := model.CreateBookingRequest{ShowtimeID: 1}
	for _, id := range seatIDs {
		req.Seats = append(req.Seats, model.BookingSeatRequest{SeatID: id})
	}
	return req
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	user := model.Actor{UserID: 7, Role: model.RoleUser}
	expires := fixedNow.Add(3 * time.Minute)

	t.Run("Success", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
		}, nil).Once()
		returnCreated(m.bookings).Once()
		m.ledger.EXPECT().ConfirmBooked(ctx, 1, []int{11}, mock.AnythingOfType("string"), 7).Return(int64(1), nil).Once()

		booking, err := svc.CreateBooking(ctx, user, bookingRequest(11))

		require.NoError(t, err)
		assert.Equal(t, int64(90000), booking.TotalAmount)
		assert.Equal(t, int64(90000), booking.Subtotal)
		assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)
		assert.Equal(t, model.BookingStatusConfirmed, booking.BookingStatus)
		assert.Equal(t, model.PaymentMethodOnline, booking.PaymentMethod)
		assert.Equal(t, []string{"C5"}, booking.SeatLabels())
		assert.NotEmpty(t, booking.ID)
		assert.NotEmpty(t, booking.TransactionID)
		require.NotNil(t, booking.UserID)
		assert.Equal(t, 7, *booking.UserID)
	})

	t.Run("Frozen hold price is charged after the showtime price changes", func(t *testing.T) {
		svc, m := setupBooking(t)

		repriced := testShowtime()
		repriced.Prices.Standard = 120000

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(repriced, nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11, 12}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, expires),
			heldStatus(12, 7, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11, 12}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
			testSeat(12, "C", 6, model.SeatTypeStandard),
		}, nil).Once()
		returnCreated(m.bookings).Once()
		m.ledger.EXPECT().ConfirmBooked(ctx, 1, []int{11, 12}, mock.Anything, 7).Return(int64(2), nil).Once()

		booking, err := svc.CreateBooking(ctx, user, bookingRequest(11, 12))

		require.NoError(t, err)
		assert.Equal(t, int64(180000), booking.TotalAmount)
		for _, s := range booking.Seats {
			assert.Equal(t, int64(90000), s.Price)
		}
	})

	t.Run("Combos and voucher", func(t *testing.T) {
		svc, m := setupBooking(t)

		voucher := &model.Voucher{
			ID:            4,
			Code:          "MOVIE10",
			DiscountType:  model.DiscountTypePercentage,
			DiscountValue: 10,
			MaxDiscount:   15000,
			StartDate:     fixedNow.Add(-time.Hour),
			EndDate:       fixedNow.Add(time.Hour),
			IsActive:      true,
		}

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11, 12}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, expires),
			heldStatus(12, 7, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11, 12}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
			testSeat(12, "C", 6, model.SeatTypeStandard),
		}, nil).Once()
		m.vouchers.EXPECT().FindByCode(ctx, "movie10").Return(voucher, nil).Once()
		returnCreated(m.bookings).Once()
		m.ledger.EXPECT().ConfirmBooked(ctx, 1, []int{11, 12}, mock.Anything, 7).Return(int64(2), nil).Once()

		req := bookingRequest(11, 12)
		req.Combos = []model.ComboItem{{ComboID: 1, Quantity: 1, Price: 20000}}
		req.Voucher = "movie10"

		booking, err := svc.CreateBooking(ctx, user, req)

		require.NoError(t, err)
		assert.Equal(t, int64(200000), booking.Subtotal)
		assert.Equal(t, int64(15000), booking.DiscountAmount)
		assert.Equal(t, int64(185000), booking.TotalAmount)
		assert.Equal(t, "MOVIE10", booking.VoucherCode)
		assert.Empty(t, booking.VoucherMessage)
	})

	t.Run("Unknown voucher is ignored", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
		}, nil).Once()
		m.vouchers.EXPECT().FindByCode(ctx, "NOPE").Return(nil, apperrors.ErrVoucherNotFound).Once()
		returnCreated(m.bookings).Once()
		m.ledger.EXPECT().ConfirmBooked(ctx, 1, []int{11}, mock.Anything, 7).Return(int64(1), nil).Once()

		req := bookingRequest(11)
		req.Voucher = "NOPE"

		booking, err := svc.CreateBooking(ctx, user, req)

		require.NoError(t, err)
		assert.Equal(t, int64(0), booking.DiscountAmount)
		assert.Nil(t, booking.VoucherID)
		assert.Equal(t, service.VoucherReasonNotFound, booking.VoucherMessage)
	})

	t.Run("Failed - lost race compensates", func(t *testing.T) {
		svc, m := setupBooking(t)

		var createdID string
		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11, 12}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, expires),
			heldStatus(12, 7, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11, 12}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
			testSeat(12, "C", 6, model.SeatTypeStandard),
		}, nil).Once()
		returnCreated(m.bookings).Run(func(_ context.Context, b *model.Booking) {
			createdID = b.ID
		}).Once()
		// 只有一個座位成功轉為 booked
		m.ledger.EXPECT().ConfirmBooked(ctx, 1, []int{11, 12}, mock.Anything, 7).Return(int64(1), nil).Once()
		runTx(m.tx)
		m.statuses.EXPECT().ReleaseByBooking(mock.Anything, nil, mock.Anything).Return(int64(1), nil).Once()
		m.bookings.EXPECT().Delete(mock.Anything, nil, mock.Anything).Return(nil).Once()

		booking, err := svc.CreateBooking(ctx, user, bookingRequest(11, 12))

		require.Error(t, err)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, apperrors.ErrBookingRaceLost)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
		m.bookings.AssertCalled(t, "Delete", mock.Anything, nil, createdID)
		m.statuses.AssertCalled(t, "ReleaseByBooking", mock.Anything, nil, createdID)
	})

	t.Run("Failed - confirm error compensates", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
		}, nil).Once()
		returnCreated(m.bookings).Once()
		m.ledger.EXPECT().ConfirmBooked(ctx, 1, []int{11}, mock.Anything, 7).Return(int64(0), errors.New("connection reset")).Once()
		runTx(m.tx)
		m.statuses.EXPECT().ReleaseByBooking(mock.Anything, nil, mock.Anything).Return(int64(0), nil).Once()
		m.bookings.EXPECT().Delete(mock.Anything, nil, mock.Anything).Return(nil).Once()

		_, err := svc.CreateBooking(ctx, user, bookingRequest(11))

		require.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Failed - release error keeps the booking", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11, 12}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, expires),
			heldStatus(12, 7, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11, 12}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
			testSeat(12, "C", 6, model.SeatTypeStandard),
		}, nil).Once()
		returnCreated(m.bookings).Once()
		m.ledger.EXPECT().ConfirmBooked(ctx, 1, []int{11, 12}, mock.Anything, 7).Return(int64(1), nil).Once()
		runTx(m.tx)
		m.statuses.EXPECT().ReleaseByBooking(mock.Anything, nil, mock.Anything).Return(int64(0), errors.New("conn reset")).Once()

		booking, err := svc.CreateBooking(ctx, user, bookingRequest(11, 12))

		assert.Nil(t, booking)
		assert.ErrorIs(t, err, apperrors.ErrBookingRaceLost)
		m.bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed - ErrHoldExpired", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, fixedNow.Add(-time.Second)),
		}, nil).Once()

		_, err := svc.CreateBooking(ctx, user, bookingRequest(11))

		assert.ErrorIs(t, err, apperrors.ErrHoldExpired)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("Failed - held by another user", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11}).Return([]*model.SeatStatus{
			heldStatus(11, 8, 90000, expires),
		}, nil).Once()

		_, err := svc.CreateBooking(ctx, user, bookingRequest(11))

		assert.ErrorIs(t, err, apperrors.ErrHoldExpired)
	})

	t.Run("Failed - ErrSeatsNotHeld", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11, 12}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, expires),
		}, nil).Once()

		_, err := svc.CreateBooking(ctx, user, bookingRequest(11, 12))

		assert.ErrorIs(t, err, apperrors.ErrSeatsNotHeld)
	})

	t.Run("Failed - ErrShowtimeNotBookable", func(t *testing.T) {
		svc, m := setupBooking(t)

		cancelled := testShowtime()
		cancelled.Status = model.ShowtimeStatusCancelled
		m.showtimes.EXPECT().FindByID(ctx, 1).Return(cancelled, nil).Once()

		_, err := svc.CreateBooking(ctx, user, bookingRequest(11))

		assert.ErrorIs(t, err, apperrors.ErrShowtimeNotBookable)
	})

	t.Run("Failed - ErrShowtimeNotFound", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(nil, apperrors.ErrShowtimeNotFound).Once()

		_, err := svc.CreateBooking(ctx, user, bookingRequest(11))

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Failed - cash requires staff", func(t *testing.T) {
		svc, _ := setupBooking(t)

		req := bookingRequest(11)
		req.PaymentMethod = model.PaymentMethodCash

		_, err := svc.CreateBooking(ctx, user, req)

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Failed - invalid combo", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11}).Return([]*model.SeatStatus{
			heldStatus(11, 7, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
		}, nil).Once()

		req := bookingRequest(11)
		req.Combos = []model.ComboItem{{ComboID: 1, Quantity: 0, Price: 20000}}

		_, err := svc.CreateBooking(ctx, user, req)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Employee cash booking for walk-in customer", func(t *testing.T) {
		svc, m := setupBooking(t)
		staff := model.Actor{UserID: 2, Role: model.RoleEmployee}

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11}).Return([]*model.SeatStatus{
			heldStatus(11, 2, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
		}, nil).Once()
		returnCreated(m.bookings).Once()
		m.ledger.EXPECT().ConfirmBooked(ctx, 1, []int{11}, mock.Anything, 2).Return(int64(1), nil).Once()
		m.payments.EXPECT().Reconcile(ctx, mock.MatchedBy(func(e *model.PaymentEvent) bool {
			return e.Success && e.Amount == 90000 && e.OrderCode != ""
		})).RunAndReturn(func(_ context.Context, e *model.PaymentEvent) (*model.Booking, error) {
			return &model.Booking{
				ID:            "paid",
				TransactionID: e.OrderCode,
				TotalAmount:   e.Amount,
				PaymentMethod: model.PaymentMethodCash,
				PaymentStatus: model.PaymentStatusCompleted,
				BookingStatus: model.BookingStatusConfirmed,
			}, nil
		}).Once()

		req := bookingRequest(11)
		req.PaymentMethod = model.PaymentMethodCash
		req.CustomerInfo = &model.CustomerInfo{Name: "Walk-in", Phone: "0900000000"}

		booking, err := svc.CreateBooking(ctx, staff, req)

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusCompleted, booking.PaymentStatus)
	})

	t.Run("Cash reconcile failure returns the pending booking and queues the payment", func(t *testing.T) {
		svc, m := setupBooking(t)
		staff := model.Actor{UserID: 2, Role: model.RoleEmployee}

		m.showtimes.EXPECT().FindByID(ctx, 1).Return(testShowtime(), nil).Once()
		m.statuses.EXPECT().FindBySeats(ctx, 1, []int{11}).Return([]*model.SeatStatus{
			heldStatus(11, 2, 90000, expires),
		}, nil).Once()
		m.seats.EXPECT().FindByIDs(ctx, 3, []int{11}).Return([]*model.Seat{
			testSeat(11, "C", 5, model.SeatTypeStandard),
		}, nil).Once()
		returnCreated(m.bookings).Once()
		m.ledger.EXPECT().ConfirmBooked(ctx, 1, []int{11}, mock.Anything, 2).Return(int64(1), nil).Once()
		m.payments.EXPECT().Reconcile(ctx, mock.Anything).Return(nil, errors.New("tx commit failed")).Once()
		m.payments.EXPECT().Submit(ctx, mock.MatchedBy(func(e *model.PaymentEvent) bool {
			return e.Success && e.Amount == 90000 && e.OrderCode != ""
		})).Return(nil).Once()

		req := bookingRequest(11)
		req.PaymentMethod = model.PaymentMethodCash

		booking, err := svc.CreateBooking(ctx, staff, req)

		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)
		assert.Equal(t, model.PaymentMethodCash, booking.PaymentMethod)
		m.bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
		m.statuses.AssertNotCalled(t, "ReleaseByBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()
	user := model.Actor{UserID: 7, Role: model.RoleUser}

	pending := func() *model.Booking {
		return &model.Booking{
			ID:            "b-1",
			UserID:        intPtr(7),
			ShowtimeID:    1,
			Seats:         []model.BookingSeat{{SeatID: 11, Row: "C", Number: 5, Price: 90000}},
			PaymentStatus: model.PaymentStatusPending,
			BookingStatus: model.BookingStatusConfirmed,
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupBooking(t)

		cancelled := pending()
		cancelled.BookingStatus = model.BookingStatusCancelled

		m.bookings.EXPECT().FindByID(ctx, "b-1").Return(pending(), nil).Once()
		runTx(m.tx)
		m.bookings.EXPECT().Cancel(ctx, nil, "b-1").Return(true, nil).Once()
		m.statuses.EXPECT().ReleaseByBooking(ctx, nil, "b-1").Return(int64(1), nil).Once()
		m.publisher.EXPECT().PublishJSON(ctx, "booking.cancelled", mock.MatchedBy(func(e model.BookingCancelledEvent) bool {
			return e.BookingID == "b-1" && len(e.SeatIDs) == 1 && e.SeatIDs[0] == 11
		})).Return(nil).Once()
		m.bookings.EXPECT().FindByID(ctx, "b-1").Return(cancelled, nil).Once()

		booking, err := svc.CancelBooking(ctx, user, "b-1")

		require.NoError(t, err)
		assert.Equal(t, model.BookingStatusCancelled, booking.BookingStatus)
	})

	t.Run("Failed - paid booking", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.bookings.EXPECT().FindByID(ctx, "b-1").Return(pending(), nil).Once()
		runTx(m.tx)
		m.bookings.EXPECT().Cancel(ctx, nil, "b-1").Return(false, nil).Once()

		_, err := svc.CancelBooking(ctx, user, "b-1")

		assert.ErrorIs(t, err, apperrors.ErrInvalidBookingStatus)
	})

	t.Run("Failed - not owner", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.bookings.EXPECT().FindByID(ctx, "b-1").Return(pending(), nil).Once()

		_, err := svc.CancelBooking(ctx, model.Actor{UserID: 8, Role: model.RoleUser}, "b-1")

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestBookingService_CheckIn(t *testing.T) {
	ctx := context.Background()
	staff := model.Actor{UserID: 2, Role: model.RoleEmployee}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.bookings.EXPECT().CheckIn(ctx, "b-1", fixedNow).Return(true, nil).Once()
		m.bookings.EXPECT().FindByID(ctx, "b-1").Return(&model.Booking{ID: "b-1", CheckedIn: true}, nil).Once()

		booking, err := svc.CheckIn(ctx, staff, "b-1")

		require.NoError(t, err)
		assert.True(t, booking.CheckedIn)
	})

	t.Run("Failed - ErrAlreadyCheckedIn", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.bookings.EXPECT().CheckIn(ctx, "b-1", fixedNow).Return(false, nil).Once()
		m.bookings.EXPECT().FindByID(ctx, "b-1").Return(&model.Booking{
			ID: "b-1", CheckedIn: true, PaymentStatus: model.PaymentStatusCompleted,
		}, nil).Once()

		_, err := svc.CheckIn(ctx, staff, "b-1")

		assert.ErrorIs(t, err, apperrors.ErrAlreadyCheckedIn)
	})

	t.Run("Failed - ErrPaymentNotCompleted", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.bookings.EXPECT().CheckIn(ctx, "b-1", fixedNow).Return(false, nil).Once()
		m.bookings.EXPECT().FindByID(ctx, "b-1").Return(&model.Booking{
			ID: "b-1", PaymentStatus: model.PaymentStatusPending,
		}, nil).Once()

		_, err := svc.CheckIn(ctx, staff, "b-1")

		assert.ErrorIs(t, err, apperrors.ErrPaymentNotCompleted)
	})

	t.Run("Failed - not staff", func(t *testing.T) {
		svc, _ := setupBooking(t)

		_, err := svc.CheckIn(ctx, model.Actor{UserID: 7, Role: model.RoleUser}, "b-1")

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestBookingService_TicketQRCode(t *testing.T) {
	ctx := context.Background()
	user := model.Actor{UserID: 7, Role: model.RoleUser}

	t.Run("Success", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.bookings.EXPECT().FindByID(ctx, "b-1").Return(&model.Booking{
			ID:            "b-1",
			UserID:        intPtr(7),
			PaymentStatus: model.PaymentStatusCompleted,
			QRPayload:     `{"booking_id":"b-1"}`,
		}, nil).Once()

		png, err := svc.TicketQRCode(ctx, user, "b-1")

		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), png[:4])
	})

	t.Run("Failed - unpaid", func(t *testing.T) {
		svc, m := setupBooking(t)

		m.bookings.EXPECT().FindByID(ctx, "b-1").Return(&model.Booking{
			ID:            "b-1",
			UserID:        intPtr(7),
			PaymentStatus: model.PaymentStatusPending,
		}, nil).Once()

		_, err := svc.TicketQRCode(ctx, user, "b-1")

		assert.ErrorIs(t, err, apperrors.ErrPaymentNotCompleted)
	})
}
