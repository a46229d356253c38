package handler

import (
	"go-gin-cinema-booking/internal/middleware"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	ledger service.SeatLedgerService
}

func NewSeatHandler(ledger service.SeatLedgerService) *SeatHandler {
	return &SeatHandler{ledger: ledger}
}

// RegisterRoutes holdLimit 可為 nil
func (h *SeatHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, holdLimit gin.HandlerFunc) {
	router := r.Group(apiPrefix)
	{
		router.GET("showtimes/:id/seats", h.GetSeatMap)

		hold := []gin.HandlerFunc{auth}
		if holdLimit != nil {
			hold = append(hold, holdLimit)
		}
		hold = append(hold, h.HoldSeats)
		router.POST("showtimes/:id/hold", hold...)
		router.POST("showtimes/:id/release", auth, h.ReleaseSeats)
	}
}

func (h *SeatHandler) GetSeatMap(c *gin.Context) {
	var uri model.ShowtimeURI
	if err := BindUri(c, &uri); err != nil {
		return
	}

	seats, err := h.ledger.GetSeatMap(c, uri.ID)
	if err != nil {
		handleError(c, err, "GetSeatMap")
		return
	}

	handleSuccess(c, gin.H{
		"showtime_id": uri.ID,
		"seats":       seats,
	}, http.StatusOK)
}

func (h *SeatHandler) HoldSeats(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		handleError(c, apperrors.ErrUnauthorized, "HoldSeats")
		return
	}

	var uri model.ShowtimeURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req model.HoldSeatsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	outcome, err := h.ledger.Hold(c, uri.ID, req.SeatIDs, actor.UserID, req.AutoRelease)
	if err != nil {
		handleError(c, err, "HoldSeats")
		return
	}

	// 全部成功 200、部分成功 207、全部失敗 409
	status := http.StatusOK
	switch {
	case outcome.Partial:
		status = http.StatusMultiStatus
	case !outcome.AllSucceeded():
		status = http.StatusConflict
	}
	handleSuccess(c, outcome, status)
}

func (h *SeatHandler) ReleaseSeats(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		handleError(c, apperrors.ErrUnauthorized, "ReleaseSeats")
		return
	}

	var uri model.ShowtimeURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var req model.ReleaseSeatsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	released, err := h.ledger.Release(c, uri.ID, req.SeatIDs, actor.UserID)
	if err != nil {
		handleError(c, err, "ReleaseSeats")
		return
	}

	handleSuccess(c, gin.H{"released": released}, http.StatusOK)
}
