package handler

import (
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	service         service.PaymentService
	signatureHeader string
}

func NewPaymentHandler(service service.PaymentService, signatureHeader string) *PaymentHandler {
	if signatureHeader == "" {
		signatureHeader = "X-Signature"
	}
	return &PaymentHandler{service: service, signatureHeader: signatureHeader}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group(apiPrefix)
	{
		router.POST("payments/webhook", h.Webhook)
	}
}

// Webhook 簽章以原始 body 計算，驗證後才解析內容
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.service.VerifySignature(body, c.GetHeader(h.signatureHeader)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var event model.PaymentEvent
	if err := binding.JSON.BindBody(body, &event); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.Submit(c, &event); err != nil {
		handleError(c, err, "PaymentWebhook")
		return
	}

	handleSuccess(c, gin.H{"status": "accepted"}, http.StatusAccepted)
}
