package service

import (
	"context"
	"errors"
	"fmt"
	"go-gin-cinema-booking/internal/events"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"
	"go-gin-cinema-booking/pkg/ticketcode"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// 補償動作使用獨立的 context，不受請求取消影響
const compensationTimeout = 10 * time.Second

type BookingService interface {
	// 將已保留的座位、套餐與折扣券轉為訂單
	CreateBooking(ctx context.Context, actor model.Actor, req model.CreateBookingRequest) (*model.Booking, error)
	GetBooking(ctx context.Context, actor model.Actor, id string) (*model.Booking, error)
	ListMyBookings(ctx context.Context, actor model.Actor) ([]*model.Booking, error)
	// 取消尚未付款完成的訂單並釋放座位
	CancelBooking(ctx context.Context, actor model.Actor, id string) (*model.Booking, error)
	CheckIn(ctx context.Context, actor model.Actor, id string) (*model.Booking, error)
	TicketQRCode(ctx context.Context, actor model.Actor, id string) ([]byte, error)
}

type BookingServiceImpl struct {
	txManager            repository.TxManager
	showtimeRepository   repository.ShowtimeRepository
	seatRepository       repository.SeatRepository
	seatStatusRepository repository.SeatStatusRepository
	bookingRepository    repository.BookingRepository
	voucherRepository    repository.VoucherRepository
	ledger               SeatLedgerService
	payments             PaymentService
	publisher            events.Publisher
	opts                 options
}

func NewBookingService(
	txManager repository.TxManager,
	showtimeRepository repository.ShowtimeRepository,
	seatRepository repository.SeatRepository,
	seatStatusRepository repository.SeatStatusRepository,
	bookingRepository repository.BookingRepository,
	voucherRepository repository.VoucherRepository,
	ledger SeatLedgerService,
	payments PaymentService,
	publisher events.Publisher,
	opts ...Option,
) BookingService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &BookingServiceImpl{
		txManager:            txManager,
		showtimeRepository:   showtimeRepository,
		seatRepository:       seatRepository,
		seatStatusRepository: seatStatusRepository,
		bookingRepository:    bookingRepository,
		voucherRepository:    voucherRepository,
		ledger:               ledger,
		payments:             payments,
		publisher:            publisher,
		opts:                 newOptions(opts),
	}
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, actor model.Actor, req model.CreateBookingRequest) (*model.Booking, error) {
	seatIDs := req.SeatIDs()
	if len(seatIDs) == 0 {
		return nil, apperrors.ErrInvalidInput
	}
	if len(seatIDs) > s.opts.maxSeats {
		return nil, apperrors.ErrTooManySeats
	}

	// 員工代客訂位：訂單不綁定使用者帳號
	userID := &actor.UserID
	if req.CustomerInfo != nil {
		if !actor.IsStaff() {
			return nil, apperrors.ErrForbidden
		}
		userID = nil
	}
	method := req.PaymentMethod
	if method == "" {
		method = model.PaymentMethodOnline
	}
	if method == model.PaymentMethodCash && !actor.IsStaff() {
		return nil, apperrors.ErrForbidden
	}

	// 1. 場次必須存在且可訂位
	showtime, err := s.showtimeRepository.FindByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, err
	}
	now := s.opts.now()
	if !showtime.IsBookable(now) {
		return nil, apperrors.ErrShowtimeNotBookable
	}

	// 2. 重新確認每個座位仍由本人保留且未過期
	statuses, err := s.seatStatusRepository.FindBySeats(ctx, showtime.ID, seatIDs)
	if err != nil {
		return nil, err
	}
	if len(statuses) != len(seatIDs) {
		return nil, apperrors.ErrSeatsNotHeld
	}
	frozen := make(map[int]int64, len(statuses))
	for _, st := range statuses {
		if !st.IsActiveHoldBy(actor.UserID, now) {
			return nil, apperrors.ErrHoldExpired
		}
		frozen[st.SeatID] = st.Price
	}

	// 3. 座位快照使用保留當下凍結的價格
	seats, err := s.seatRepository.FindByIDs(ctx, showtime.TheaterID, seatIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]*model.Seat, len(seats))
	for _, seat := range seats {
		byID[seat.ID] = seat
	}
	snapshots := make([]model.BookingSeat, 0, len(seatIDs))
	for _, id := range seatIDs {
		seat, ok := byID[id]
		if !ok {
			return nil, apperrors.ErrSeatNotFound
		}
		snapshots = append(snapshots, model.BookingSeat{
			SeatID: id,
			Row:    seat.RowLabel,
			Number: seat.SeatNumber,
			Type:   seat.Type,
			Price:  frozen[id],
		})
	}

	// 4. 套餐
	combos, err := normalizeCombos(req.Combos)
	if err != nil {
		return nil, err
	}

	// 5. 折扣券無效時不套用，也不視為錯誤
	voucher, voucherMessage, err := s.resolveVoucher(ctx, req.Voucher)
	if err != nil {
		return nil, err
	}
	totals, reason := ComputeTotals(snapshots, combos, voucher, model.VoucherContext{
		Now:      now,
		MovieID:  showtime.MovieID,
		BranchID: showtime.BranchID,
	})
	if reason != "" {
		voucherMessage = reason
	}

	// 6. 建立訂單
	booking := &model.Booking{
		ID:             uuid.NewString(),
		UserID:         userID,
		CustomerInfo:   req.CustomerInfo,
		ShowtimeID:     showtime.ID,
		Seats:          snapshots,
		Combos:         combos,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.Discount,
		TotalAmount:    totals.Total,
		PaymentMethod:  method,
		PaymentStatus:  model.PaymentStatusPending,
		BookingStatus:  model.BookingStatusConfirmed,
		TransactionID:  uuid.NewString(),
	}
	if voucher != nil && totals.Discount > 0 {
		booking.VoucherID = &voucher.ID
		booking.VoucherCode = voucher.Code
	}

	created, err := s.bookingRepository.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	// 7. 座位轉為 booked；筆數不符代表座位已被搶走，刪除剛建立的訂單
	n, err := s.ledger.ConfirmBooked(ctx, showtime.ID, seatIDs, created.ID, actor.UserID)
	if err != nil || n != int64(len(seatIDs)) {
		s.compensate(created.ID, n, len(seatIDs))
		if err != nil {
			return nil, fmt.Errorf("confirm booked seats: %w", err)
		}
		return nil, apperrors.ErrBookingRaceLost
	}

	logger.WithComponent("service").Info("booking created",
		zap.String("booking_id", created.ID),
		zap.Int("showtime_id", showtime.ID),
		zap.Int("seats", len(seatIDs)),
		zap.Int64("total", created.TotalAmount),
	)

	// 現金當場入帳；失敗時訂單與座位已成立，改交給付款 queue 重試
	if method == model.PaymentMethodCash {
		event := &model.PaymentEvent{
			OrderCode:  created.TransactionID,
			Success:    true,
			Amount:     created.TotalAmount,
			ReceivedAt: now,
		}
		paid, err := s.payments.Reconcile(ctx, event)
		if err != nil {
			log := logger.WithComponent("service").With(
				zap.String("operation", "CreateBooking"),
				zap.String("booking_id", created.ID),
			)
			log.Warn("cash payment reconcile failed, queued for retry", zap.Error(err))
			if err := s.payments.Submit(ctx, event); err != nil {
				log.Error("queue cash payment failed", zap.Error(err))
			}
		} else {
			created = paid
		}
	}

	created.VoucherMessage = voucherMessage
	return created, nil
}

// compensate 在同一個 transaction 內釋放座位並刪除訂單；
// 任一步失敗則整筆 rollback，訂單保留並仍指向它的座位
func (s *BookingServiceImpl) compensate(bookingID string, confirmed int64, requested int) {
	ctx, cancel := context.WithTimeout(context.Background(), compensationTimeout)
	defer cancel()

	log := logger.WithComponent("service").With(
		zap.String("operation", "CreateBooking"),
		zap.String("booking_id", bookingID),
		zap.Int64("confirmed", confirmed),
		zap.Int("requested", requested),
	)
	log.Warn("seat confirmation mismatch, rolling back booking")

	err := s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := s.seatStatusRepository.ReleaseByBooking(ctx, tx, bookingID); err != nil {
			return fmt.Errorf("release seats: %w", err)
		}
		if err := s.bookingRepository.Delete(ctx, tx, bookingID); err != nil {
			return fmt.Errorf("delete booking: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("roll back booking failed, booking kept", zap.Error(err))
	}
}

func (s *BookingServiceImpl) resolveVoucher(ctx context.Context, code string) (*model.Voucher, string, error) {
	if code == "" {
		return nil, "", nil
	}
	voucher, err := s.voucherRepository.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrVoucherNotFound) {
			return nil, VoucherReasonNotFound, nil
		}
		return nil, "", err
	}
	return voucher, "", nil
}

func normalizeCombos(items []model.ComboItem) ([]model.ComboItem, error) {
	combos := make([]model.ComboItem, 0, len(items))
	for _, c := range items {
		if c.ComboID <= 0 || c.Quantity <= 0 || c.Price < 0 {
			return nil, apperrors.ErrInvalidInput
		}
		combos = append(combos, c)
	}
	return combos, nil
}

func (s *BookingServiceImpl) authorizedBooking(ctx context.Context, actor model.Actor, id string) (*model.Booking, error) {
	booking, err := s.bookingRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsStaff() && !booking.IsOwnedBy(actor.UserID) {
		return nil, apperrors.ErrForbidden
	}
	return booking, nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, actor model.Actor, id string) (*model.Booking, error) {
	return s.authorizedBooking(ctx, actor, id)
}

func (s *BookingServiceImpl) ListMyBookings(ctx context.Context, actor model.Actor) ([]*model.Booking, error) {
	return s.bookingRepository.ListByUser(ctx, actor.UserID)
}

func (s *BookingServiceImpl) CancelBooking(ctx context.Context, actor model.Actor, id string) (*model.Booking, error) {
	booking, err := s.authorizedBooking(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !booking.BookingStatus.CanTransitionTo(model.BookingStatusCancelled) {
		return nil, apperrors.ErrInvalidBookingStatus
	}

	err = s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		ok, err := s.bookingRepository.Cancel(ctx, tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrInvalidBookingStatus
		}
		_, err = s.seatStatusRepository.ReleaseByBooking(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	event := model.BookingCancelledEvent{
		BookingID:   id,
		ShowtimeID:  booking.ShowtimeID,
		SeatIDs:     booking.SeatIDs(),
		CancelledAt: s.opts.now(),
	}
	if err := s.publisher.PublishJSON(ctx, events.RoutingBookingCancelled, event); err != nil {
		logger.WithComponent("events").Error("publish booking.cancelled failed", zap.String("booking_id", id), zap.Error(err))
	}

	return s.bookingRepository.FindByID(ctx, id)
}

func (s *BookingServiceImpl) CheckIn(ctx context.Context, actor model.Actor, id string) (*model.Booking, error) {
	if !actor.IsStaff() {
		return nil, apperrors.ErrForbidden
	}

	ok, err := s.bookingRepository.CheckIn(ctx, id, s.opts.now())
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ok {
		return booking, nil
	}

	switch {
	case booking.CheckedIn:
		return nil, apperrors.ErrAlreadyCheckedIn
	case booking.PaymentStatus != model.PaymentStatusCompleted:
		return nil, apperrors.ErrPaymentNotCompleted
	default:
		return nil, apperrors.ErrInvalidBookingStatus
	}
}

func (s *BookingServiceImpl) TicketQRCode(ctx context.Context, actor model.Actor, id string) ([]byte, error) {
	booking, err := s.authorizedBooking(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != model.PaymentStatusCompleted || booking.QRPayload == "" {
		return nil, apperrors.ErrPaymentNotCompleted
	}
	return ticketcode.PNG(booking.QRPayload, 256)
}
