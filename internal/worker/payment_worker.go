package worker

import (
	"context"
	"errors"
	"go-gin-cinema-booking/internal/queue"
	"go-gin-cinema-booking/internal/service"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"

	"go.uber.org/zap"
)

type PaymentWorker interface {
	// 訂閱付款隊列，ctx 結束時停止
	Start(ctx context.Context) error
}

type PaymentWorkerImpl struct {
	service service.PaymentService
	queue   queue.PaymentQueue
}

func NewPaymentWorker(service service.PaymentService, queue queue.PaymentQueue) PaymentWorker {
	return &PaymentWorkerImpl{
		service: service,
		queue:   queue,
	}
}

func (w *PaymentWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribePayments(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			w.handle(ctx, msg)
		}
	}()
	return nil
}

func (w *PaymentWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	log := logger.WithComponent("worker").With(zap.String("order_code", msg.Data.OrderCode))

	_, err := w.service.Reconcile(ctx, msg.Data)
	if err == nil {
		msg.Ack()
		return
	}

	// 重送也不會成功的錯誤直接丟棄
	if isPermanent(err) {
		log.Warn("payment event dropped", zap.Error(err))
		msg.Nack(false)
		return
	}

	log.Error("payment reconcile failed, requeue", zap.Error(err))
	msg.Nack(true)
}

func isPermanent(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrInvalidState)
}
