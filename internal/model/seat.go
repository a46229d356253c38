package model

import "time"

// SeatType 座位類型
type SeatType string

const (
	SeatTypeStandard SeatType = "standard"
	SeatTypeVIP      SeatType = "vip"
	SeatTypeCouple   SeatType = "couple"
)

func (t SeatType) IsValid() bool {
	switch t {
	case SeatTypeStandard, SeatTypeVIP, SeatTypeCouple:
		return true
	}
	return false
}

// Seat 影廳座位；建立後僅能停用
type Seat struct {
	ID         int       `json:"id" db:"id"`
	TheaterID  int       `json:"theater_id" db:"theater_id"`
	RowLabel   string    `json:"row" db:"row_label"`
	SeatNumber int       `json:"number" db:"seat_number"`
	Type       SeatType  `json:"type" db:"seat_type"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	PosX       int       `json:"x" db:"pos_x"`
	PosY       int       `json:"y" db:"pos_y"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Label 例如 "C5"
func (s *Seat) Label() string {
	return SeatLabel(s.RowLabel, s.SeatNumber)
}
