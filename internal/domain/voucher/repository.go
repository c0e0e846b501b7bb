package voucher

import "context"

// VoucherRepository defines persistence operations for vouchers.
type VoucherRepository interface {
	// GetVoucherByCode returns the voucher with the given code, or nil when none exists.
	GetVoucherByCode(ctx context.Context, code string) (*Voucher, error)

	// CreateVoucher stores a new, unused voucher and returns it with its assigned ID.
	CreateVoucher(ctx context.Context, code string, discount int) (*Voucher, error)

	// UseVoucher marks the voucher as used and returns the updated record.
	UseVoucher(ctx context.Context, code string) (*Voucher, error)
}
