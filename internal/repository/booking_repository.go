package repository

import (
	"context"
	"fmt"
	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	FindByID(ctx context.Context, id string) (*model.Booking, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Booking, error)
	ListByUser(ctx context.Context, userID int) ([]*model.Booking, error)
	// Delete 實際刪除，僅用於建立訂單失敗時的補償
	Delete(ctx context.Context, tx pgx.Tx, id string) error
	MarkPaymentFailed(ctx context.Context, id string) (bool, error)
	CheckIn(ctx context.Context, id string, at time.Time) (bool, error)

	// Transaction methods (tx 可為 nil)
	MarkPaid(ctx context.Context, tx pgx.Tx, id string, qrPayload string, paidAt time.Time) (bool, error)
	Cancel(ctx context.Context, tx pgx.Tx, id string) (bool, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, user_id, customer_info, showtime_id, seats, combos, voucher_id,
	voucher_code, subtotal, discount_amount, total_amount, payment_method, payment_status,
	booking_status, checked_in, checked_in_at, transaction_id, qr_payload, paid_at,
	created_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.CustomerInfo,
		&b.ShowtimeID,
		&b.Seats,
		&b.Combos,
		&b.VoucherID,
		&b.VoucherCode,
		&b.Subtotal,
		&b.DiscountAmount,
		&b.TotalAmount,
		&b.PaymentMethod,
		&b.PaymentStatus,
		&b.BookingStatus,
		&b.CheckedIn,
		&b.CheckedInAt,
		&b.TransactionID,
		&b.QRPayload,
		&b.PaidAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	query := `
		INSERT INTO bookings (
			id, user_id, customer_info, showtime_id, seats, combos, voucher_id,
			voucher_code, subtotal, discount_amount, total_amount, payment_method,
			payment_status, booking_status, transaction_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		booking.ID,
		booking.UserID,
		booking.CustomerInfo,
		booking.ShowtimeID,
		nonNilSlice(booking.Seats),
		nonNilSlice(booking.Combos),
		booking.VoucherID,
		booking.VoucherCode,
		booking.Subtotal,
		booking.DiscountAmount,
		booking.TotalAmount,
		booking.PaymentMethod,
		booking.PaymentStatus,
		booking.BookingStatus,
		booking.TransactionID,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepositoryImpl) FindByTransactionID(ctx context.Context, transactionID string) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE transaction_id = $1`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepositoryImpl) ListByUser(ctx context.Context, userID int) ([]*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	result, err := pick(r.pool, tx).Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// MarkPaid 已是 completed 時不更新（回傳 false），重送的回呼因此不會重複處理
func (r *BookingRepositoryImpl) MarkPaid(ctx context.Context, tx pgx.Tx, id string, qrPayload string, paidAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET payment_status = $1, booking_status = $2, qr_payload = $3,
		    paid_at = $4, updated_at = $4
		WHERE id = $5 AND payment_status <> $1 AND booking_status <> $6
	`

	result, err := pick(r.pool, tx).Exec(ctx, query,
		model.PaymentStatusCompleted, model.BookingStatusConfirmed, qrPayload,
		paidAt, id, model.BookingStatusCancelled,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark booking paid: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *BookingRepositoryImpl) MarkPaymentFailed(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE bookings
		SET payment_status = $1, updated_at = now()
		WHERE id = $2 AND payment_status = $3
	`

	result, err := r.pool.Exec(ctx, query, model.PaymentStatusFailed, id, model.PaymentStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to mark payment failed: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// Cancel 只能取消尚未付款完成的訂單
func (r *BookingRepositoryImpl) Cancel(ctx context.Context, tx pgx.Tx, id string) (bool, error) {
	query := `
		UPDATE bookings
		SET booking_status = $1, updated_at = now()
		WHERE id = $2
		  AND booking_status IN ($3, $4)
		  AND payment_status <> $5
	`

	result, err := pick(r.pool, tx).Exec(ctx, query,
		model.BookingStatusCancelled, id,
		model.BookingStatusPending, model.BookingStatusConfirmed,
		model.PaymentStatusCompleted,
	)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *BookingRepositoryImpl) CheckIn(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET checked_in = TRUE, checked_in_at = $1, updated_at = $1
		WHERE id = $2 AND checked_in = FALSE AND payment_status = $3
	`

	result, err := r.pool.Exec(ctx, query, at, id, model.PaymentStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to check in booking: %w", err)
	}
	return result.RowsAffected() == 1, nil
}
