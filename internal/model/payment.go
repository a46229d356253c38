package model

import "time"

// PaymentEvent 金流回呼經驗證後的內容；OrderCode 對應 Booking.TransactionID
type PaymentEvent struct {
	OrderCode   string    `json:"order_code" binding:"required"`
	Success     bool      `json:"success"`
	Amount      int64     `json:"amount"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	Description string    `json:"description,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
}

// BookingConfirmedEvent 付款完成後送往 broker 的事件
type BookingConfirmedEvent struct {
	BookingID   string    `json:"booking_id"`
	UserID      *int      `json:"user_id,omitempty"`
	ShowtimeID  int       `json:"showtime_id"`
	SeatLabels  []string  `json:"seat_labels"`
	TotalAmount int64     `json:"total_amount"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// BookingCancelledEvent 訂單取消事件
type BookingCancelledEvent struct {
	BookingID   string    `json:"booking_id"`
	ShowtimeID  int       `json:"showtime_id"`
	SeatIDs     []int     `json:"seat_ids"`
	CancelledAt time.Time `json:"cancelled_at"`
}
