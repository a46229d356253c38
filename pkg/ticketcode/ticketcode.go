// Package ticketcode builds the payload printed on a ticket and renders it as a QR image.
package ticketcode

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/skip2/go-qrcode"
)

// Payload 票券 QR code 內容
type Payload struct {
	BookingID  string    `json:"booking_id"`
	ShowtimeID int       `json:"showtime_id"`
	Seats      []string  `json:"seats"`
	IssuedAt   time.Time `json:"issued_at"`
}

// Encode 產生 QR payload 字串（JSON）
func Encode(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode ticket payload: %w", err)
	}
	return string(raw), nil
}

func Decode(s string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return Payload{}, fmt.Errorf("decode ticket payload: %w", err)
	}
	return p, nil
}

// PNG 將 payload 轉為 QR code 圖片
func PNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(payload, qrcode.Medium, size)
}
