package model

import (
	"strconv"
)

// SeatRef 以排與號碼指定一個座位
type SeatRef struct {
	Row    string `json:"row"`
	Number int    `json:"number"`
}

// CoupleRange 同一排連續的情侶座區間（含頭尾）
type CoupleRange struct {
	Row       string `json:"row"`
	StartSeat int    `json:"start_seat"`
	EndSeat   int    `json:"end_seat"`
}

// SeatLayout 影廳座位模板，每個影廳一份
type SeatLayout struct {
	TheaterID     int           `json:"theater_id" db:"theater_id"`
	Rows          int           `json:"rows" db:"rows"`
	SeatsPerRow   int           `json:"seats_per_row" db:"seats_per_row"`
	RowLabels     []string      `json:"row_labels" db:"row_labels"`
	VIPRows       []string      `json:"vip_rows" db:"vip_rows"`
	DisabledSeats []SeatRef     `json:"disabled_seats" db:"disabled_seats"`
	CoupleSeats   []CoupleRange `json:"couple_seats" db:"couple_seats"`
	// Aisles 走道位於這些座號之後
	Aisles []int `json:"aisles" db:"aisles"`
}

// RowLabel 取得第 index 排的名稱；未指定時使用 A, B, ... Z, AA, AB ...
func (l *SeatLayout) RowLabel(index int) string {
	if index < len(l.RowLabels) && l.RowLabels[index] != "" {
		return l.RowLabels[index]
	}
	return alphaLabel(index)
}

func alphaLabel(index int) string {
	label := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		label = string(rune('A'+(n-1)%26)) + label
	}
	return label
}

func (l *SeatLayout) isDisabled(row string, number int) bool {
	for _, d := range l.DisabledSeats {
		if d.Row == row && d.Number == number {
			return true
		}
	}
	return false
}

func (l *SeatLayout) isCouple(row string, number int) bool {
	for _, c := range l.CoupleSeats {
		if c.Row == row && number >= c.StartSeat && number <= c.EndSeat {
			return true
		}
	}
	return false
}

func (l *SeatLayout) isVIPRow(row string) bool {
	for _, r := range l.VIPRows {
		if r == row {
			return true
		}
	}
	return false
}

// SeatTypeAt couple 優先於 vip
func (l *SeatLayout) SeatTypeAt(row string, number int) SeatType {
	switch {
	case l.isCouple(row, number):
		return SeatTypeCouple
	case l.isVIPRow(row):
		return SeatTypeVIP
	default:
		return SeatTypeStandard
	}
}

func (l *SeatLayout) aislesBefore(number int) int {
	n := 0
	for _, a := range l.Aisles {
		if a < number {
			n++
		}
	}
	return n
}

// BuildSeats 依模板產生整個影廳的座位（略過停用座位）
func (l *SeatLayout) BuildSeats() []*Seat {
	seats := make([]*Seat, 0, l.Rows*l.SeatsPerRow)
	for i := 0; i < l.Rows; i++ {
		row := l.RowLabel(i)
		for number := 1; number <= l.SeatsPerRow; number++ {
			if l.isDisabled(row, number) {
				continue
			}
			seats = append(seats, &Seat{
				TheaterID:  l.TheaterID,
				RowLabel:   row,
				SeatNumber: number,
				Type:       l.SeatTypeAt(row, number),
				IsActive:   true,
				PosX:       number - 1 + l.aislesBefore(number),
				PosY:       i,
			})
		}
	}
	return seats
}

func SeatLabel(row string, number int) string {
	return row + strconv.Itoa(number)
}
