package handler

import (
	"go-gin-cinema-booking/internal/middleware"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service service.BookingService
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	router := r.Group(apiPrefix, auth)
	{
		router.GET("bookings", h.ListMyBookings)
		router.POST("bookings", h.CreateBooking)
		router.GET("bookings/:id", h.GetBooking)
		router.POST("bookings/:id/cancel", h.CancelBooking)
		router.GET("bookings/:id/ticket.png", h.GetTicketQRCode)
		router.POST("bookings/:id/check-in",
			middleware.RequireRole(model.RoleEmployee, model.RoleAdmin),
			h.CheckIn,
		)
	}
}

// bookingRequest 取得 actor 與路徑中的訂單 id；失敗時已寫入回應
func bookingRequest(c *gin.Context, operation string) (model.Actor, string, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		handleError(c, apperrors.ErrUnauthorized, operation)
		return model.Actor{}, "", false
	}
	var uri model.BookingURI
	if err := BindUri(c, &uri); err != nil {
		return model.Actor{}, "", false
	}
	return actor, uri.ID, true
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		handleError(c, apperrors.ErrUnauthorized, "CreateBooking")
		return
	}

	var req model.CreateBookingRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	booking, err := h.service.CreateBooking(c, actor, req)
	if err != nil {
		handleError(c, err, "CreateBooking")
		return
	}

	handleSuccess(c, booking, http.StatusCreated)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	actor, id, ok := bookingRequest(c, "GetBooking")
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(c, actor, id)
	if err != nil {
		handleError(c, err, "GetBooking")
		return
	}

	handleSuccess(c, booking, http.StatusOK)
}

func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		handleError(c, apperrors.ErrUnauthorized, "ListMyBookings")
		return
	}

	bookings, err := h.service.ListMyBookings(c, actor)
	if err != nil {
		handleError(c, err, "ListMyBookings")
		return
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}

	handleSuccess(c, bookings, http.StatusOK)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actor, id, ok := bookingRequest(c, "CancelBooking")
	if !ok {
		return
	}

	booking, err := h.service.CancelBooking(c, actor, id)
	if err != nil {
		handleError(c, err, "CancelBooking")
		return
	}

	handleSuccess(c, booking, http.StatusOK)
}

func (h *BookingHandler) CheckIn(c *gin.Context) {
	actor, id, ok := bookingRequest(c, "CheckIn")
	if !ok {
		return
	}

	booking, err := h.service.CheckIn(c, actor, id)
	if err != nil {
		handleError(c, err, "CheckIn")
		return
	}

	handleSuccess(c, booking, http.StatusOK)
}

func (h *BookingHandler) GetTicketQRCode(c *gin.Context) {
	actor, id, ok := bookingRequest(c, "GetTicketQRCode")
	if !ok {
		return
	}

	png, err := h.service.TicketQRCode(c, actor, id)
	if err != nil {
		handleError(c, err, "GetTicketQRCode")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
