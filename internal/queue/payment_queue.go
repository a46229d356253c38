package queue

import (
	"context"
	"go-gin-cinema-booking/internal/model"
)

type Delivery struct {
	Data *model.PaymentEvent
	Ack  func()
	Nack func(requeue bool)
}

type PaymentQueue interface {
	// 發送已驗證的付款事件到隊列
	PublishPayment(ctx context.Context, event *model.PaymentEvent) error
	// 訂閱付款事件
	SubscribePayments(ctx context.Context) (<-chan Delivery, error)
}

// MemoryPaymentQueue 單一程序內使用的 channel 版本
type MemoryPaymentQueue struct {
	ch chan *model.PaymentEvent
}

func NewMemoryPaymentQueue(bufferSize int) PaymentQueue {
	return &MemoryPaymentQueue{
		ch: make(chan *model.PaymentEvent, bufferSize),
	}
}

func (q *MemoryPaymentQueue) PublishPayment(ctx context.Context, event *model.PaymentEvent) error {
	select {
	case q.ch <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryPaymentQueue) SubscribePayments(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: event,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							// 非阻塞放回，滿了就丟棄
							select {
							case q.ch <- event:
							default:
							}
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
