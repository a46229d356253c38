package repository

import (
	"context"
	"fmt"
	"go-gin-cinema-booking/internal/model"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HoldParams 單一座位的保留參數
type HoldParams struct {
	ShowtimeID int
	SeatID     int
	UserID     int
	Now        time.Time
	ExpiresAt  time.Time
	Price      int64
}

type SeatStatusRepository interface {
	ListByShowtime(ctx context.Context, showtimeID int) ([]*model.SeatStatus, error)
	FindBySeats(ctx context.Context, showtimeID int, seatIDs []int) ([]*model.SeatStatus, error)

	// Hold 單一語句的條件 upsert；false 代表座位已被他人持有或不可用
	Hold(ctx context.Context, p HoldParams) (bool, error)
	Release(ctx context.Context, showtimeID int, seatIDs []int, holderID int) (int64, error)
	ConfirmBooked(ctx context.Context, showtimeID int, seatIDs []int, bookingID string, holderID int) (int64, error)
	ReclaimExpired(ctx context.Context, now time.Time) (int64, error)

	// Transaction methods (tx 可為 nil)
	ReassertBooked(ctx context.Context, tx pgx.Tx, showtimeID int, seatIDs []int, bookingID string) (int64, error)
	ReleaseByBooking(ctx context.Context, tx pgx.Tx, bookingID string) (int64, error)
}

type SeatStatusRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSeatStatusRepository(pool *pgxpool.Pool) SeatStatusRepository {
	return &SeatStatusRepositoryImpl{
		pool: pool,
	}
}

const seatStatusColumns = `showtime_id, seat_id, status, reserved_by, reserved_at,
	reservation_expires, price, booking_id, updated_at`

func scanSeatStatuses(rows pgx.Rows) ([]*model.SeatStatus, error) {
	defer rows.Close()

	var statuses []*model.SeatStatus
	for rows.Next() {
		var s model.SeatStatus
		err := rows.Scan(
			&s.ShowtimeID,
			&s.SeatID,
			&s.Status,
			&s.ReservedBy,
			&s.ReservedAt,
			&s.ReservationExpires,
			&s.Price,
			&s.BookingID,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}

func (r *SeatStatusRepositoryImpl) ListByShowtime(ctx context.Context, showtimeID int) ([]*model.SeatStatus, error) {
	query := `SELECT ` + seatStatusColumns + ` FROM seat_statuses WHERE showtime_id = $1`

	rows, err := r.pool.Query(ctx, query, showtimeID)
	if err != nil {
		return nil, err
	}
	return scanSeatStatuses(rows)
}

func (r *SeatStatusRepositoryImpl) FindBySeats(ctx context.Context, showtimeID int, seatIDs []int) ([]*model.SeatStatus, error) {
	query := `SELECT ` + seatStatusColumns + ` FROM seat_statuses WHERE showtime_id = $1 AND seat_id = ANY($2)`

	rows, err := r.pool.Query(ctx, query, showtimeID, seatIDs)
	if err != nil {
		return nil, err
	}
	return scanSeatStatuses(rows)
}

// Hold 不存在時新增；存在時只有 available 或已過期的保留才會被覆寫
func (r *SeatStatusRepositoryImpl) Hold(ctx context.Context, p HoldParams) (bool, error) {
	query := `
		INSERT INTO seat_statuses (
			showtime_id, seat_id, status, reserved_by, reserved_at,
			reservation_expires, price, booking_id, updated_at
		)
		VALUES ($1, $2, 'reserved', $3, $4, $5, $6, NULL, $4)
		ON CONFLICT (showtime_id, seat_id) DO UPDATE SET
			status = 'reserved',
			reserved_by = EXCLUDED.reserved_by,
			reserved_at = EXCLUDED.reserved_at,
			reservation_expires = EXCLUDED.reservation_expires,
			price = EXCLUDED.price,
			booking_id = NULL,
			updated_at = EXCLUDED.updated_at
		WHERE seat_statuses.status = 'available'
		   OR (seat_statuses.status IN ('reserved', 'selecting')
		       AND seat_statuses.reservation_expires <= EXCLUDED.reserved_at)
		RETURNING seat_id
	`

	var seatID int
	err := r.pool.QueryRow(ctx, query,
		p.ShowtimeID, p.SeatID, p.UserID, p.Now, p.ExpiresAt, p.Price,
	).Scan(&seatID)

	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to hold seat %d: %w", p.SeatID, err)
	}

	return true, nil
}

func (r *SeatStatusRepositoryImpl) Release(ctx context.Context, showtimeID int, seatIDs []int, holderID int) (int64, error) {
	query := `
		UPDATE seat_statuses
		SET status = 'available', reserved_by = NULL, reserved_at = NULL,
		    reservation_expires = NULL, updated_at = now()
		WHERE showtime_id = $1
		  AND seat_id = ANY($2)
		  AND status IN ('reserved', 'selecting')
		  AND reserved_by = $3
	`

	result, err := r.pool.Exec(ctx, query, showtimeID, seatIDs, holderID)
	if err != nil {
		return 0, fmt.Errorf("failed to release seats: %w", err)
	}
	return result.RowsAffected(), nil
}

// ConfirmBooked 只轉換仍為 reserved 且由 holderID 持有的座位，呼叫端須比對筆數
func (r *SeatStatusRepositoryImpl) ConfirmBooked(ctx context.Context, showtimeID int, seatIDs []int, bookingID string, holderID int) (int64, error) {
	query := `
		UPDATE seat_statuses
		SET status = 'booked', booking_id = $3, reserved_by = NULL,
		    reserved_at = NULL, reservation_expires = NULL, updated_at = now()
		WHERE showtime_id = $1
		  AND seat_id = ANY($2)
		  AND status = 'reserved'
		  AND reserved_by = $4
	`

	result, err := r.pool.Exec(ctx, query, showtimeID, seatIDs, bookingID, holderID)
	if err != nil {
		return 0, fmt.Errorf("failed to confirm booked seats: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *SeatStatusRepositoryImpl) ReclaimExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE seat_statuses
		SET status = 'available', reserved_by = NULL, reserved_at = NULL,
		    reservation_expires = NULL, updated_at = $1
		WHERE status IN ('reserved', 'selecting')
		  AND reservation_expires <= $1
	`

	result, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to reclaim expired holds: %w", err)
	}
	return result.RowsAffected(), nil
}

// ReassertBooked 付款成功後重新確認座位為 booked；已屬於其他訂單的座位不會被覆寫
func (r *SeatStatusRepositoryImpl) ReassertBooked(ctx context.Context, tx pgx.Tx, showtimeID int, seatIDs []int, bookingID string) (int64, error) {
	query := `
		INSERT INTO seat_statuses (showtime_id, seat_id, status, booking_id, updated_at)
		SELECT $1, u.seat_id, 'booked', $3, now()
		FROM unnest($2::int[]) AS u(seat_id)
		ON CONFLICT (showtime_id, seat_id) DO UPDATE SET
			status = 'booked',
			booking_id = EXCLUDED.booking_id,
			reserved_by = NULL,
			reserved_at = NULL,
			reservation_expires = NULL,
			updated_at = EXCLUDED.updated_at
		WHERE seat_statuses.status <> 'booked'
		   OR seat_statuses.booking_id IS NULL
		   OR seat_statuses.booking_id = EXCLUDED.booking_id
	`

	result, err := pick(r.pool, tx).Exec(ctx, query, showtimeID, seatIDs, bookingID)
	if err != nil {
		return 0, fmt.Errorf("failed to reassert booked seats: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *SeatStatusRepositoryImpl) ReleaseByBooking(ctx context.Context, tx pgx.Tx, bookingID string) (int64, error) {
	query := `
		UPDATE seat_statuses
		SET status = 'available', booking_id = NULL, reserved_by = NULL,
		    reserved_at = NULL, reservation_expires = NULL, updated_at = now()
		WHERE booking_id = $1
	`

	result, err := pick(r.pool, tx).Exec(ctx, query, bookingID)
	if err != nil {
		return 0, fmt.Errorf("failed to release booking seats: %w", err)
	}
	return result.RowsAffected(), nil
}
