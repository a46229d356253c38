package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"go-gin-cinema-booking/internal/events"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/queue"
	"go-gin-cinema-booking/internal/repository"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"
	"go-gin-cinema-booking/pkg/ticketcode"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentService interface {
	// 驗證金流回呼簽章（HMAC-SHA512, hex）
	VerifySignature(body []byte, signature string) error
	// 已驗證的回呼放入 queue，由 worker 非同步處理
	Submit(ctx context.Context, event *model.PaymentEvent) error
	// 依付款結果更新訂單；重送的成功回呼不會重複處理
	Reconcile(ctx context.Context, event *model.PaymentEvent) (*model.Booking, error)
}

type PaymentServiceImpl struct {
	secret               []byte
	paymentQueue         queue.PaymentQueue
	txManager            repository.TxManager
	bookingRepository    repository.BookingRepository
	seatStatusRepository repository.SeatStatusRepository
	publisher            events.Publisher
	opts                 options
}

func NewPaymentService(
	webhookSecret string,
	paymentQueue queue.PaymentQueue,
	txManager repository.TxManager,
	bookingRepository repository.BookingRepository,
	seatStatusRepository repository.SeatStatusRepository,
	publisher events.Publisher,
	opts ...Option,
) PaymentService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &PaymentServiceImpl{
		secret:               []byte(webhookSecret),
		paymentQueue:         paymentQueue,
		txManager:            txManager,
		bookingRepository:    bookingRepository,
		seatStatusRepository: seatStatusRepository,
		publisher:            publisher,
		opts:                 newOptions(opts),
	}
}

// SignPayload 與 VerifySignature 使用相同演算法，供測試與模擬金流使用
func SignPayload(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *PaymentServiceImpl) VerifySignature(body []byte, signature string) error {
	if len(s.secret) == 0 || signature == "" {
		return apperrors.ErrInvalidSignature
	}
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return apperrors.ErrInvalidSignature
	}
	mac := hmac.New(sha512.New, s.secret)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return apperrors.ErrInvalidSignature
	}
	return nil
}

func (s *PaymentServiceImpl) Submit(ctx context.Context, event *model.PaymentEvent) error {
	if event == nil || event.OrderCode == "" {
		return apperrors.ErrInvalidInput
	}
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = s.opts.now()
	}
	return s.paymentQueue.PublishPayment(ctx, event)
}

func (s *PaymentServiceImpl) Reconcile(ctx context.Context, event *model.PaymentEvent) (*model.Booking, error) {
	log := logger.WithComponent("service").With(
		zap.String("operation", "Reconcile"),
		zap.String("order_code", event.OrderCode),
		zap.Bool("success", event.Success),
	)

	booking, err := s.bookingRepository.FindByTransactionID(ctx, event.OrderCode)
	if err != nil {
		return nil, err
	}

	if !event.Success {
		return s.markFailed(ctx, booking, log)
	}

	if booking.PaymentStatus == model.PaymentStatusCompleted {
		log.Info("payment already completed, skipping")
		return booking, nil
	}
	if booking.BookingStatus == model.BookingStatusCancelled {
		return nil, apperrors.ErrInvalidBookingStatus
	}
	if event.Amount > 0 && event.Amount != booking.TotalAmount {
		log.Warn("paid amount mismatch", zap.Int64("paid", event.Amount), zap.Int64("total", booking.TotalAmount))
		return nil, apperrors.ErrAmountMismatch
	}

	now := s.opts.now()
	payload, err := ticketcode.Encode(ticketcode.Payload{
		BookingID:  booking.ID,
		ShowtimeID: booking.ShowtimeID,
		Seats:      booking.SeatLabels(),
		IssuedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	applied := false
	err = s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		ok, err := s.bookingRepository.MarkPaid(ctx, tx, booking.ID, payload, now)
		if err != nil {
			return err
		}
		if !ok {
			// 其他 worker 已處理
			return nil
		}
		applied = true

		seatIDs := booking.SeatIDs()
		n, err := s.seatStatusRepository.ReassertBooked(ctx, tx, booking.ShowtimeID, seatIDs, booking.ID)
		if err != nil {
			return err
		}
		if n != int64(len(seatIDs)) {
			log.Warn("some seats are owned by another booking", zap.Int64("reasserted", n), zap.Int("seats", len(seatIDs)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.bookingRepository.FindByID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	if applied {
		log.Info("payment completed", zap.String("booking_id", booking.ID))
		s.publishConfirmed(ctx, updated, now)
	}

	return updated, nil
}

// markFailed 只更新付款狀態，座位維持原狀
func (s *PaymentServiceImpl) markFailed(ctx context.Context, booking *model.Booking, log *zap.Logger) (*model.Booking, error) {
	if booking.PaymentStatus == model.PaymentStatusCompleted {
		log.Warn("failure callback for completed payment ignored")
		return booking, nil
	}

	changed, err := s.bookingRepository.MarkPaymentFailed(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	if changed {
		log.Info("payment failed", zap.String("booking_id", booking.ID))
	}

	return s.bookingRepository.FindByID(ctx, booking.ID)
}

func (s *PaymentServiceImpl) publishConfirmed(ctx context.Context, booking *model.Booking, at time.Time) {
	event := model.BookingConfirmedEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ShowtimeID:  booking.ShowtimeID,
		SeatLabels:  booking.SeatLabels(),
		TotalAmount: booking.TotalAmount,
		ConfirmedAt: at,
	}
	if err := s.publisher.PublishJSON(ctx, events.RoutingBookingConfirmed, event); err != nil {
		logger.WithComponent("events").Error("publish booking.confirmed failed",
			zap.String("booking_id", booking.ID),
			zap.Error(err),
		)
	}
}
