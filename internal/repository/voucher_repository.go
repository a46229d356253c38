package repository

import (
	"context"
	"fmt"
	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VoucherRepository interface {
	Create(ctx context.Context, voucher *model.Voucher) (*model.Voucher, error)
	FindByCode(ctx context.Context, code string) (*model.Voucher, error)
}

type VoucherRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewVoucherRepository(pool *pgxpool.Pool) VoucherRepository {
	return &VoucherRepositoryImpl{
		pool: pool,
	}
}

func (r *VoucherRepositoryImpl) Create(ctx context.Context, voucher *model.Voucher) (*model.Voucher, error) {
	query := `
		INSERT INTO vouchers (
			code, discount_type, discount_value, min_purchase, max_discount,
			start_date, end_date, is_active, applicable_movies, applicable_branches
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		strings.ToUpper(voucher.Code),
		voucher.DiscountType,
		voucher.DiscountValue,
		voucher.MinPurchase,
		voucher.MaxDiscount,
		voucher.StartDate,
		voucher.EndDate,
		voucher.IsActive,
		nonNilSlice(voucher.ApplicableMovies),
		nonNilSlice(voucher.ApplicableBranches),
	).Scan(&voucher.ID)

	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, fmt.Errorf("voucher code %q already exists: %w", voucher.Code, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create voucher: %w", err)
	}

	return voucher, nil
}

// FindByCode 不分大小寫
func (r *VoucherRepositoryImpl) FindByCode(ctx context.Context, code string) (*model.Voucher, error) {
	query := `
		SELECT id, code, discount_type, discount_value, min_purchase, max_discount,
		       start_date, end_date, is_active, applicable_movies, applicable_branches
		FROM vouchers
		WHERE code = $1
	`

	var v model.Voucher
	err := r.pool.QueryRow(ctx, query, strings.ToUpper(strings.TrimSpace(code))).Scan(
		&v.ID,
		&v.Code,
		&v.DiscountType,
		&v.DiscountValue,
		&v.MinPurchase,
		&v.MaxDiscount,
		&v.StartDate,
		&v.EndDate,
		&v.IsActive,
		&v.ApplicableMovies,
		&v.ApplicableBranches,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVoucherNotFound
		}
		return nil, err
	}

	return &v, nil
}
