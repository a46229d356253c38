package service

import (
	"go-gin-cinema-booking/internal/model"
	"math"
)

// 折扣券未套用的原因
const (
	VoucherReasonNotFound            = "voucher not found"
	VoucherReasonInactive            = "voucher is not active"
	VoucherReasonOutsideValidity     = "voucher is not valid at this time"
	VoucherReasonMovieNotApplicable  = "voucher does not apply to this movie"
	VoucherReasonBranchNotApplicable = "voucher does not apply to this branch"
	VoucherReasonMinPurchase         = "order does not reach the voucher minimum purchase"
)

// PriceSeat 該類型未設定票價（或為 0）時使用一般座位票價
func PriceSeat(prices model.PriceTable, seatType model.SeatType) int64 {
	var price int64
	switch seatType {
	case model.SeatTypeVIP:
		price = prices.VIP
	case model.SeatTypeCouple:
		price = prices.Couple
	default:
		price = prices.Standard
	}
	if price <= 0 {
		return prices.Standard
	}
	return price
}

// EvaluateVoucher 回傳折扣金額；不符合資格時折扣為 0 並附上原因
func EvaluateVoucher(v *model.Voucher, in model.VoucherContext) (int64, string) {
	if v == nil {
		return 0, VoucherReasonNotFound
	}
	if !v.IsActive {
		return 0, VoucherReasonInactive
	}
	if in.Now.Before(v.StartDate) || in.Now.After(v.EndDate) {
		return 0, VoucherReasonOutsideValidity
	}
	if len(v.ApplicableMovies) > 0 && !containsInt(v.ApplicableMovies, in.MovieID) {
		return 0, VoucherReasonMovieNotApplicable
	}
	if len(v.ApplicableBranches) > 0 && !containsInt(v.ApplicableBranches, in.BranchID) {
		return 0, VoucherReasonBranchNotApplicable
	}
	if in.Subtotal < v.MinPurchase {
		return 0, VoucherReasonMinPurchase
	}

	var discount int64
	switch v.DiscountType {
	case model.DiscountTypePercentage:
		discount = int64(math.Floor(float64(in.Subtotal) * v.DiscountValue / 100))
	case model.DiscountTypeFixed:
		discount = int64(math.Floor(v.DiscountValue))
	}

	if v.MaxDiscount > 0 && discount > v.MaxDiscount {
		discount = v.MaxDiscount
	}
	// 折扣不超過小計
	if discount > in.Subtotal {
		discount = in.Subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount, ""
}

// Totals 金額計算結果
type Totals struct {
	SeatsSubtotal  int64
	CombosSubtotal int64
	Subtotal       int64
	Discount       int64
	Total          int64
}

// ComputeTotals 順序固定：座位小計 + 套餐小計 = 小計，折扣以小計計算，總額 = 小計 - 折扣
func ComputeTotals(seats []model.BookingSeat, combos []model.ComboItem, voucher *model.Voucher, in model.VoucherContext) (Totals, string) {
	var t Totals
	for _, s := range seats {
		t.SeatsSubtotal += s.Price
	}
	for _, c := range combos {
		t.CombosSubtotal += int64(c.Quantity) * c.Price
	}
	t.Subtotal = t.SeatsSubtotal + t.CombosSubtotal

	reason := ""
	if voucher != nil {
		in.Subtotal = t.Subtotal
		t.Discount, reason = EvaluateVoucher(voucher, in)
	}
	t.Total = t.Subtotal - t.Discount
	return t, reason
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
