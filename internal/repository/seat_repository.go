package repository

import (
	"context"
	"fmt"
	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatRepository interface {
	ListActiveByTheater(ctx context.Context, theaterID int) ([]*model.Seat, error)
	FindByIDs(ctx context.Context, theaterID int, ids []int) ([]*model.Seat, error)
	// BulkInsert 重複的 (theater, row, number) 直接略過，回傳實際新增筆數
	BulkInsert(ctx context.Context, theaterID int, seats []*model.Seat) (int64, error)
	Deactivate(ctx context.Context, id int) error
}

type SeatRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSeatRepository(pool *pgxpool.Pool) SeatRepository {
	return &SeatRepositoryImpl{
		pool: pool,
	}
}

const seatColumns = `id, theater_id, row_label, seat_number, seat_type, is_active, pos_x, pos_y, created_at`

func scanSeats(rows pgx.Rows) ([]*model.Seat, error) {
	defer rows.Close()

	var seats []*model.Seat
	for rows.Next() {
		var seat model.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.TheaterID,
			&seat.RowLabel,
			&seat.SeatNumber,
			&seat.Type,
			&seat.IsActive,
			&seat.PosX,
			&seat.PosY,
			&seat.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (r *SeatRepositoryImpl) ListActiveByTheater(ctx context.Context, theaterID int) ([]*model.Seat, error) {
	query := `
		SELECT ` + seatColumns + `
		FROM seats
		WHERE theater_id = $1 AND is_active = TRUE
		ORDER BY pos_y, seat_number
	`

	rows, err := r.pool.Query(ctx, query, theaterID)
	if err != nil {
		return nil, err
	}
	return scanSeats(rows)
}

func (r *SeatRepositoryImpl) FindByIDs(ctx context.Context, theaterID int, ids []int) ([]*model.Seat, error) {
	query := `
		SELECT ` + seatColumns + `
		FROM seats
		WHERE theater_id = $1 AND id = ANY($2)
	`

	rows, err := r.pool.Query(ctx, query, theaterID, ids)
	if err != nil {
		return nil, err
	}
	return scanSeats(rows)
}

func (r *SeatRepositoryImpl) BulkInsert(ctx context.Context, theaterID int, seats []*model.Seat) (int64, error) {
	if len(seats) == 0 {
		return 0, nil
	}

	rowLabels := make([]string, len(seats))
	numbers := make([]int, len(seats))
	types := make([]string, len(seats))
	xs := make([]int, len(seats))
	ys := make([]int, len(seats))
	for i, s := range seats {
		rowLabels[i] = s.RowLabel
		numbers[i] = s.SeatNumber
		types[i] = string(s.Type)
		xs[i] = s.PosX
		ys[i] = s.PosY
	}

	query := `
		INSERT INTO seats (theater_id, row_label, seat_number, seat_type, is_active, pos_x, pos_y)
		SELECT $1, u.row_label, u.seat_number, u.seat_type, TRUE, u.pos_x, u.pos_y
		FROM unnest($2::text[], $3::int[], $4::text[], $5::int[], $6::int[])
			AS u(row_label, seat_number, seat_type, pos_x, pos_y)
		ON CONFLICT (theater_id, row_label, seat_number) DO NOTHING
	`

	result, err := r.pool.Exec(ctx, query, theaterID, rowLabels, numbers, types, xs, ys)
	if err != nil {
		return 0, fmt.Errorf("failed to insert seats: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *SeatRepositoryImpl) Deactivate(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `UPDATE seats SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrSeatNotFound
	}
	return nil
}
