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

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *model.Showtime) (*model.Showtime, error)
	FindByID(ctx context.Context, id int) (*model.Showtime, error)
	UpdatePrices(ctx context.Context, id int, prices model.PriceTable) error
	// CompleteEnded 將已結束的 active 場次標記為 completed
	CompleteEnded(ctx context.Context, now time.Time) (int64, error)
}

type ShowtimeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewShowtimeRepository(pool *pgxpool.Pool) ShowtimeRepository {
	return &ShowtimeRepositoryImpl{
		pool: pool,
	}
}

func (r *ShowtimeRepositoryImpl) Create(ctx context.Context, showtime *model.Showtime) (*model.Showtime, error) {
	if !showtime.StartTime.Before(showtime.EndTime) {
		return nil, fmt.Errorf("start time must be before end time: %w", apperrors.ErrInvalidInput)
	}
	if showtime.Status == "" {
		showtime.Status = model.ShowtimeStatusActive
	}

	query := `
		INSERT INTO showtimes (
			movie_id, theater_id, branch_id, start_time, end_time,
			price_standard, price_vip, price_couple, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		showtime.MovieID, showtime.TheaterID, showtime.BranchID,
		showtime.StartTime, showtime.EndTime,
		showtime.Prices.Standard, showtime.Prices.VIP, showtime.Prices.Couple,
		showtime.Status,
	).Scan(&showtime.ID, &showtime.CreatedAt, &showtime.UpdatedAt)

	if err != nil {
		if isPgError(err, pgExclusionViolation) {
			return nil, apperrors.ErrShowtimeOverlap
		}
		return nil, fmt.Errorf("failed to create showtime: %w", err)
	}

	return showtime, nil
}

func (r *ShowtimeRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Showtime, error) {
	query := `
		SELECT id, movie_id, theater_id, branch_id, start_time, end_time,
		       price_standard, price_vip, price_couple, status, created_at, updated_at
		FROM showtimes
		WHERE id = $1
	`

	var s model.Showtime
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.MovieID,
		&s.TheaterID,
		&s.BranchID,
		&s.StartTime,
		&s.EndTime,
		&s.Prices.Standard,
		&s.Prices.VIP,
		&s.Prices.Couple,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrShowtimeNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *ShowtimeRepositoryImpl) UpdatePrices(ctx context.Context, id int, prices model.PriceTable) error {
	query := `
		UPDATE showtimes
		SET price_standard = $1, price_vip = $2, price_couple = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := r.pool.Exec(ctx, query, prices.Standard, prices.VIP, prices.Couple, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrShowtimeNotFound
	}

	return nil
}

func (r *ShowtimeRepositoryImpl) CompleteEnded(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE showtimes
		SET status = $1, updated_at = $2
		WHERE status = $3 AND end_time < $2
	`
	result, err := r.pool.Exec(ctx, query, model.ShowtimeStatusCompleted, now, model.ShowtimeStatusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to complete ended showtimes: %w", err)
	}
	return result.RowsAffected(), nil
}
