package model

import "time"

// ShowtimeStatus 場次狀態
type ShowtimeStatus string

const (
	ShowtimeStatusActive    ShowtimeStatus = "active"
	ShowtimeStatusCompleted ShowtimeStatus = "completed"
	ShowtimeStatusCancelled ShowtimeStatus = "cancelled"
)

func (s ShowtimeStatus) IsValid() bool {
	switch s {
	case ShowtimeStatusActive, ShowtimeStatusCompleted, ShowtimeStatusCancelled:
		return true
	}
	return false
}

// PriceTable 各座位類型票價；0 表示未設定
type PriceTable struct {
	Standard int64 `json:"standard"`
	VIP      int64 `json:"vip,omitempty"`
	Couple   int64 `json:"couple,omitempty"`
}

// Showtime 場次
type Showtime struct {
	ID        int            `json:"id" db:"id"`
	MovieID   int            `json:"movie_id" db:"movie_id"`
	TheaterID int            `json:"theater_id" db:"theater_id"`
	BranchID  int            `json:"branch_id" db:"branch_id"`
	StartTime time.Time      `json:"start_time" db:"start_time"`
	EndTime   time.Time      `json:"end_time" db:"end_time"`
	Prices    PriceTable     `json:"price"`
	Status    ShowtimeStatus `json:"status" db:"status"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// IsBookable 尚未開演、仍為 active 才可劃位
func (s *Showtime) IsBookable(now time.Time) bool {
	return s.Status == ShowtimeStatusActive && now.Before(s.StartTime) && now.Before(s.EndTime)
}
