package model

import "time"

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Voucher 折扣券；MaxDiscount 為 0 表示不設上限，適用清單為空表示不限
type Voucher struct {
	ID                 int          `json:"id" db:"id"`
	Code               string       `json:"code" db:"code"`
	DiscountType       DiscountType `json:"discount_type" db:"discount_type"`
	DiscountValue      float64      `json:"discount_value" db:"discount_value"`
	MinPurchase        int64        `json:"min_purchase" db:"min_purchase"`
	MaxDiscount        int64        `json:"max_discount" db:"max_discount"`
	StartDate          time.Time    `json:"start_date" db:"start_date"`
	EndDate            time.Time    `json:"end_date" db:"end_date"`
	IsActive           bool         `json:"is_active" db:"is_active"`
	ApplicableMovies   []int        `json:"applicable_movies" db:"applicable_movies"`
	ApplicableBranches []int        `json:"applicable_branches" db:"applicable_branches"`
}

// VoucherContext 計算折扣所需的訂單資訊
type VoucherContext struct {
	Subtotal int64
	Now      time.Time
	MovieID  int
	BranchID int
}
