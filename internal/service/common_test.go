package service_test

import (
	"time"

	"go-gin-cinema-booking/internal/model"
)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func testShowtime() *model.Showtime {
	return &model.Showtime{
		ID:        1,
		MovieID:   10,
		TheaterID: 3,
		BranchID:  2,
		StartTime: fixedNow.Add(2 * time.Hour),
		EndTime:   fixedNow.Add(4 * time.Hour),
		Prices:    model.PriceTable{Standard: 90000, VIP: 120000},
		Status:    model.ShowtimeStatusActive,
	}
}

func testSeat(id int, row string, number int, seatType model.SeatType) *model.Seat {
	return &model.Seat{
		ID:         id,
		TheaterID:  3,
		RowLabel:   row,
		SeatNumber: number,
		Type:       seatType,
		IsActive:   true,
	}
}

func heldStatus(seatID, userID int, price int64, expires time.Time) *model.SeatStatus {
	return &model.SeatStatus{
		ShowtimeID:         1,
		SeatID:             seatID,
		Status:             model.SeatStateReserved,
		ReservedBy:         intPtr(userID),
		ReservedAt:         timePtr(fixedNow.Add(-time.Minute)),
		ReservationExpires: timePtr(expires),
		Price:              price,
	}
}
