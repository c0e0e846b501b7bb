package voucher

import (
	"math"
	"strings"

	"github.com/Kilat-Pet-Delivery/service-voucher/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// DefaultMinAmount is the purchase amount a voucher needs to be exceeded before it applies.
	DefaultMinAmount = 100.0

	MinDiscount = 1
	MaxDiscount = 100
	MaxCodeLen  = 64
)

// Voucher is a single-use percentage discount code.
type Voucher struct {
	id       int64
	code     string
	discount int
	used     bool
}

// NormalizeCode returns the canonical form of a voucher code. Every lookup and
// insert goes through it so " SUMMER30" and "SUMMER30" name the same voucher.
func NormalizeCode(code string) string {
	return strings.TrimSpace(code)
}

// NewVoucher validates the input and returns an unsaved voucher. The ID is assigned by storage.
func NewVoucher(code string, discount int) (*Voucher, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, domain.NewValidationError("code", "is required")
	}
	if len(code) > MaxCodeLen {
		return nil, domain.NewValidationError("code", "is too long")
	}
	if discount < MinDiscount || discount > MaxDiscount {
		return nil, domain.NewValidationError("discount", "must be between 1 and 100")
	}
	return &Voucher{code: code, discount: discount}, nil
}

// Reconstruct rebuilds a Voucher from persistence.
func Reconstruct(id int64, code string, discount int, used bool) *Voucher {
	return &Voucher{id: id, code: code, discount: discount, used: used}
}

// Apply computes the final amount for a purchase. The discount is subtracted only when
// amount is strictly greater than minAmount; otherwise amount is returned unchanged.
// NaN and infinite amounts are never discounted.
func (v *Voucher) Apply(amount, minAmount float64) (finalAmount float64, applied bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= minAmount {
		return amount, false
	}
	total := decimal.NewFromFloat(amount)
	off := total.Mul(decimal.NewFromInt(int64(v.discount))).Div(decimal.NewFromInt(100))
	return total.Sub(off).InexactFloat64(), true
}

// MarkUsed consumes the voucher. A voucher can only be consumed once.
func (v *Voucher) MarkUsed() error {
	if v.used {
		return domain.NewConflictError("Voucher already used.")
	}
	v.used = true
	return nil
}

// Getters.
func (v *Voucher) ID() int64     { return v.id }
func (v *Voucher) Code() string  { return v.code }
func (v *Voucher) Discount() int { return v.discount }
func (v *Voucher) IsUsed() bool  { return v.used }
