package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"go-gin-cinema-booking/internal/model"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSeatMap(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := setupRouter(t)

		r.ledger.EXPECT().GetSeatMap(mock.Anything, 1).Return([]model.SeatMapEntry{
			{SeatID: 11, Row: "A", Number: 1, Type: model.SeatTypeStandard, Status: model.SeatStateAvailable, Price: 90000},
		}, nil).Once()

		w := r.do(http.MethodGet, "/api/v1/showtimes/1/seats", "", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			ShowtimeID int                  `json:"showtime_id"`
			Seats      []model.SeatMapEntry `json:"seats"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 1, body.ShowtimeID)
		assert.Len(t, body.Seats, 1)
	})

	t.Run("Failed - ErrShowtimeNotFound", func(t *testing.T) {
		r := setupRouter(t)

		r.ledger.EXPECT().GetSeatMap(mock.Anything, 9).Return(nil, apperrors.ErrShowtimeNotFound).Once()

		w := r.do(http.MethodGet, "/api/v1/showtimes/9/seats", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"showtime not found"}`, w.Body.String())
	})

	t.Run("Failed - invalid id", func(t *testing.T) {
		r := setupRouter(t)

		w := r.do(http.MethodGet, "/api/v1/showtimes/abc/seats", "", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHoldSeats(t *testing.T) {
	hold := func(success ...bool) *model.HoldOutcome {
		o := &model.HoldOutcome{}
		for i, ok := range success {
			res := model.HoldResult{SeatID: i + 1, Success: ok}
			if !ok {
				res.Reason = model.HoldReasonHeld
			}
			o.Results = append(o.Results, res)
		}
		n := len(o.Succeeded())
		o.Partial = n > 0 && n < len(o.Results)
		return o
	}

	cases := []struct {
		name    string
		outcome *model.HoldOutcome
		want    int
	}{
		{name: "All held", outcome: hold(true, true), want: http.StatusOK},
		{name: "Partial", outcome: hold(true, false), want: http.StatusMultiStatus},
		{name: "None held", outcome: hold(false, false), want: http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(t)
			token := tokenFor(t, 7, model.RoleUser)

			r.ledger.EXPECT().Hold(mock.Anything, 1, []int{1, 2}, 7, false).Return(tc.outcome, nil).Once()

			w := r.do(http.MethodPost, "/api/v1/showtimes/1/hold", token, model.HoldSeatsRequest{SeatIDs: []int{1, 2}})

			assert.Equal(t, tc.want, w.Code)
		})
	}

	t.Run("Auto release flag is forwarded", func(t *testing.T) {
		r := setupRouter(t)
		token := tokenFor(t, 7, model.RoleUser)

		outcome := hold(true, false)
		outcome.ReleasedSeatIDs = []int{1}
		r.ledger.EXPECT().Hold(mock.Anything, 1, []int{1, 2}, 7, true).Return(outcome, nil).Once()

		w := r.do(http.MethodPost, "/api/v1/showtimes/1/hold", token, model.HoldSeatsRequest{SeatIDs: []int{1, 2}, AutoRelease: true})

		assert.Equal(t, http.StatusMultiStatus, w.Code)
		assert.Contains(t, w.Body.String(), `"released_seat_ids":[1]`)
	})

	t.Run("Failed - unauthorized", func(t *testing.T) {
		r := setupRouter(t)

		w := r.do(http.MethodPost, "/api/v1/showtimes/1/hold", "", model.HoldSeatsRequest{SeatIDs: []int{1}})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Failed - invalid JSON", func(t *testing.T) {
		r := setupRouter(t)

		w := r.do(http.MethodPost, "/api/v1/showtimes/1/hold", tokenFor(t, 7, model.RoleUser), InvalidJSON)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - empty seat list", func(t *testing.T) {
		r := setupRouter(t)

		w := r.do(http.MethodPost, "/api/v1/showtimes/1/hold", tokenFor(t, 7, model.RoleUser), model.HoldSeatsRequest{SeatIDs: []int{}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"fields"`)
	})

	t.Run("Failed - ErrShowtimeNotBookable", func(t *testing.T) {
		r := setupRouter(t)

		r.ledger.EXPECT().Hold(mock.Anything, 1, []int{1}, 7, false).Return(nil, apperrors.ErrShowtimeNotBookable).Once()

		w := r.do(http.MethodPost, "/api/v1/showtimes/1/hold", tokenFor(t, 7, model.RoleUser), model.HoldSeatsRequest{SeatIDs: []int{1}})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestReleaseSeats(t *testing.T) {
	r := setupRouter(t)

	r.ledger.EXPECT().Release(mock.Anything, 1, []int{1, 2}, 7).Return(int64(2), nil).Once()

	w := r.do(http.MethodPost, "/api/v1/showtimes/1/release", tokenFor(t, 7, model.RoleUser), model.ReleaseSeatsRequest{SeatIDs: []int{1, 2}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"released":2}`, w.Body.String())
}
