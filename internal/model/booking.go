package model

import "time"

// PaymentStatus 付款狀態
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// BookingStatus 訂單狀態
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	transitions := map[BookingStatus][]BookingStatus{
		BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
		BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
		BookingStatusCancelled: {},
		BookingStatusCompleted: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCash   PaymentMethod = "cash"
)

// BookingSeat 訂位當下的座位快照，價格不再重算
type BookingSeat struct {
	SeatID int      `json:"seat_id"`
	Row    string   `json:"row"`
	Number int      `json:"number"`
	Type   SeatType `json:"type"`
	Price  int64    `json:"price"`
}

func (s BookingSeat) Label() string {
	return SeatLabel(s.Row, s.Number)
}

// ComboItem 套餐明細，單價由呼叫端提供
type ComboItem struct {
	ComboID  int   `json:"combo_id" binding:"required,gt=0"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
	Price    int64 `json:"price" binding:"gte=0"`
}

// CustomerInfo 員工代客訂位時的顧客資料
type CustomerInfo struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
}

// Booking 訂單
type Booking struct {
	ID             string        `json:"id" db:"id"`
	UserID         *int          `json:"user_id,omitempty" db:"user_id"`
	CustomerInfo   *CustomerInfo `json:"customer_info,omitempty" db:"customer_info"`
	ShowtimeID     int           `json:"showtime_id" db:"showtime_id"`
	Seats          []BookingSeat `json:"seats" db:"seats"`
	Combos         []ComboItem   `json:"combos" db:"combos"`
	VoucherID      *int          `json:"voucher_id,omitempty" db:"voucher_id"`
	VoucherCode    string        `json:"voucher_code,omitempty" db:"voucher_code"`
	Subtotal       int64         `json:"subtotal" db:"subtotal"`
	DiscountAmount int64         `json:"discount_amount" db:"discount_amount"`
	TotalAmount    int64         `json:"total_amount" db:"total_amount"`
	PaymentMethod  PaymentMethod `json:"payment_method" db:"payment_method"`
	PaymentStatus  PaymentStatus `json:"payment_status" db:"payment_status"`
	BookingStatus  BookingStatus `json:"booking_status" db:"booking_status"`
	CheckedIn      bool          `json:"checked_in" db:"checked_in"`
	CheckedInAt    *time.Time    `json:"checked_in_at,omitempty" db:"checked_in_at"`
	TransactionID  string        `json:"transaction_id" db:"transaction_id"`
	QRPayload      string        `json:"qr_payload,omitempty" db:"qr_payload"`
	PaidAt         *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" db:"updated_at"`

	// 折扣券未套用時的說明，不寫入資料庫
	VoucherMessage string `json:"voucher_message,omitempty" db:"-"`
}

// SeatIDs 訂單內的座位 id
func (b *Booking) SeatIDs() []int {
	ids := make([]int, len(b.Seats))
	for i, s := range b.Seats {
		ids[i] = s.SeatID
	}
	return ids
}

func (b *Booking) SeatLabels() []string {
	labels := make([]string, len(b.Seats))
	for i, s := range b.Seats {
		labels[i] = s.Label()
	}
	return labels
}

// IsOwnedBy 訂單是否屬於該使用者
func (b *Booking) IsOwnedBy(userID int) bool {
	return b.UserID != nil && *b.UserID == userID
}

type BookingSeatRequest struct {
	SeatID int `json:"seat_id" binding:"required,gt=0"`
}

// CreateBookingRequest 建立訂單請求
type CreateBookingRequest struct {
	ShowtimeID    int                  `json:"showtime_id" binding:"required,gt=0"`
	Seats         []BookingSeatRequest `json:"seats" binding:"required,min=1,dive"`
	Combos        []ComboItem          `json:"combos" binding:"omitempty,dive"`
	Voucher       string               `json:"voucher"`
	CustomerInfo  *CustomerInfo        `json:"customer_info"`
	PaymentMethod PaymentMethod        `json:"payment_method" binding:"omitempty,oneof=online cash"`
}

// SeatIDs 去除重複後的座位 id（保留順序）
func (r *CreateBookingRequest) SeatIDs() []int {
	ids := make([]int, 0, len(r.Seats))
	for _, s := range r.Seats {
		ids = append(ids, s.SeatID)
	}
	return UniqueIDs(ids)
}

type BookingURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// UniqueIDs 去除重複並保留原本順序
func UniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
