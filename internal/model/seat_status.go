package model

import "time"

// SeatState 場次座位狀態
type SeatState string

const (
	SeatStateAvailable   SeatState = "available"
	SeatStateSelecting   SeatState = "selecting"
	SeatStateReserved    SeatState = "reserved"
	SeatStateBooked      SeatState = "booked"
	SeatStateBlocked     SeatState = "blocked"
	SeatStateMaintenance SeatState = "maintenance"
)

func (s SeatState) IsValid() bool {
	switch s {
	case SeatStateAvailable, SeatStateSelecting, SeatStateReserved,
		SeatStateBooked, SeatStateBlocked, SeatStateMaintenance:
		return true
	}
	return false
}

// IsHold reserved 與 selecting 都屬於暫時保留
func (s SeatState) IsHold() bool {
	return s == SeatStateReserved || s == SeatStateSelecting
}

// SeatStatus (showtime, seat) 的可變狀態；無資料列時視為 available
type SeatStatus struct {
	ShowtimeID         int        `json:"showtime_id" db:"showtime_id"`
	SeatID             int        `json:"seat_id" db:"seat_id"`
	Status             SeatState  `json:"status" db:"status"`
	ReservedBy         *int       `json:"reserved_by,omitempty" db:"reserved_by"`
	ReservedAt         *time.Time `json:"reserved_at,omitempty" db:"reserved_at"`
	ReservationExpires *time.Time `json:"reservation_expires,omitempty" db:"reservation_expires"`
	Price              int64      `json:"price" db:"price"`
	BookingID          *string    `json:"booking_id,omitempty" db:"booking_id"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// IsExpiredHold 保留已過期（到期時間 <= now）
func (s *SeatStatus) IsExpiredHold(now time.Time) bool {
	return s.Status.IsHold() && s.ReservationExpires != nil && !s.ReservationExpires.After(now)
}

// EffectiveState 讀取時的狀態：過期的保留視為 available，與保留的條件寫入同一邊界
func (s *SeatStatus) EffectiveState(now time.Time) SeatState {
	if s.IsExpiredHold(now) {
		return SeatStateAvailable
	}
	return s.Status
}

// IsActiveHoldBy 由 userID 持有且尚未過期
func (s *SeatStatus) IsActiveHoldBy(userID int, now time.Time) bool {
	return s.Status == SeatStateReserved &&
		s.ReservedBy != nil && *s.ReservedBy == userID &&
		s.ReservationExpires != nil && s.ReservationExpires.After(now)
}

// SeatMapEntry 座位圖的一格
type SeatMapEntry struct {
	SeatID     int        `json:"seat_id"`
	Row        string     `json:"row"`
	Number     int        `json:"number"`
	Type       SeatType   `json:"type"`
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Status     SeatState  `json:"status"`
	ReservedBy *int       `json:"reserved_by,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Price      int64      `json:"price"`
}

// HoldReason 保留失敗原因
type HoldReason string

const (
	HoldReasonBooked      HoldReason = "booked"
	HoldReasonHeld        HoldReason = "held"
	HoldReasonUnavailable HoldReason = "unavailable"
	HoldReasonNotFound    HoldReason = "not_found"
)

type HoldResult struct {
	SeatID  int        `json:"seat_id"`
	Success bool       `json:"success"`
	Reason  HoldReason `json:"reason,omitempty"`
	// 成功時的到期時間與凍結價格
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Price     int64      `json:"price,omitempty"`
}

// HoldOutcome 每個座位各自獨立；Partial 代表部分成功
type HoldOutcome struct {
	Results         []HoldResult `json:"results"`
	Partial         bool         `json:"partial"`
	ReleasedSeatIDs []int        `json:"released_seat_ids,omitempty"`
}

// Succeeded 成功保留的座位
func (o *HoldOutcome) Succeeded() []int {
	ids := make([]int, 0, len(o.Results))
	for _, r := range o.Results {
		if r.Success {
			ids = append(ids, r.SeatID)
		}
	}
	return ids
}

func (o *HoldOutcome) AllSucceeded() bool {
	return len(o.Results) > 0 && len(o.Succeeded()) == len(o.Results)
}

// HoldSeatsRequest 保留座位請求
type HoldSeatsRequest struct {
	SeatIDs     []int `json:"seat_ids" binding:"required,min=1,dive,gt=0"`
	AutoRelease bool  `json:"auto_release"`
}

// ReleaseSeatsRequest 釋放座位請求
type ReleaseSeatsRequest struct {
	SeatIDs []int `json:"seat_ids" binding:"required,min=1,dive,gt=0"`
}

type ShowtimeURI struct {
	ID int `uri:"id" binding:"required,gt=0"`
}
