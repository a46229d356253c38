package repository

import (
	"context"
	"fmt"
	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SeatLayoutRepository interface {
	FindByTheaterID(ctx context.Context, theaterID int) (*model.SeatLayout, error)
	Upsert(ctx context.Context, layout *model.SeatLayout) error
}

type SeatLayoutRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewSeatLayoutRepository(pool *pgxpool.Pool) SeatLayoutRepository {
	return &SeatLayoutRepositoryImpl{
		pool: pool,
	}
}

func (r *SeatLayoutRepositoryImpl) FindByTheaterID(ctx context.Context, theaterID int) (*model.SeatLayout, error) {
	query := `
		SELECT theater_id, rows, seats_per_row, row_labels, vip_rows,
		       disabled_seats, couple_seats, aisles
		FROM seat_layouts
		WHERE theater_id = $1
	`

	var layout model.SeatLayout
	err := r.pool.QueryRow(ctx, query, theaterID).Scan(
		&layout.TheaterID,
		&layout.Rows,
		&layout.SeatsPerRow,
		&layout.RowLabels,
		&layout.VIPRows,
		&layout.DisabledSeats,
		&layout.CoupleSeats,
		&layout.Aisles,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrSeatLayoutNotFound
		}
		return nil, err
	}

	return &layout, nil
}

func (r *SeatLayoutRepositoryImpl) Upsert(ctx context.Context, layout *model.SeatLayout) error {
	query := `
		INSERT INTO seat_layouts (
			theater_id, rows, seats_per_row, row_labels, vip_rows,
			disabled_seats, couple_seats, aisles, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (theater_id) DO UPDATE SET
			rows = EXCLUDED.rows,
			seats_per_row = EXCLUDED.seats_per_row,
			row_labels = EXCLUDED.row_labels,
			vip_rows = EXCLUDED.vip_rows,
			disabled_seats = EXCLUDED.disabled_seats,
			couple_seats = EXCLUDED.couple_seats,
			aisles = EXCLUDED.aisles,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		layout.TheaterID,
		layout.Rows,
		layout.SeatsPerRow,
		nonNilStrings(layout.RowLabels),
		nonNilStrings(layout.VIPRows),
		nonNilSlice(layout.DisabledSeats),
		nonNilSlice(layout.CoupleSeats),
		nonNilSlice(layout.Aisles),
	)
	if err != nil {
		return fmt.Errorf("failed to save seat layout: %w", err)
	}

	return nil
}

// NOT NULL 欄位不能寫入 nil slice
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
