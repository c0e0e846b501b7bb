package events

import "time"

const (
	DefaultTopic = "voucher.events"

	VoucherCreated = "voucher.created"
	VoucherUsed    = "voucher.used"
)

// VoucherCreatedEvent is published after a voucher is stored.
type VoucherCreatedEvent struct {
	VoucherID  int64     `json:"voucher_id"`
	Code       string    `json:"code"`
	Discount   int       `json:"discount"`
	OccurredAt time.Time `json:"occurred_at"`
}

// VoucherUsedEvent is published after a voucher discount is applied.
type VoucherUsedEvent struct {
	VoucherID   int64     `json:"voucher_id"`
	Code        string    `json:"code"`
	Discount    int       `json:"discount"`
	Amount      float64   `json:"amount"`
	FinalAmount float64   `json:"final_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
}
