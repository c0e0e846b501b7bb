// Package vouchertest builds randomized vouchers for tests.
package vouchertest

import (
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/domain/voucher"
	"github.com/brianvoe/gofakeit/v7"
)

type attrs struct {
	id       int64
	code     string
	discount int
	used     bool
}

// Option overrides a generated attribute.
type Option func(*attrs)

func WithID(id int64) Option           { return func(a *attrs) { a.id = id } }
func WithCode(code string) Option      { return func(a *attrs) { a.code = code } }
func WithDiscount(discount int) Option { return func(a *attrs) { a.discount = discount } }
func WithUsed(used bool) Option        { return func(a *attrs) { a.used = used } }

// NewVoucher returns an unused voucher with an id in 1..100, a 16 character alphanumeric
// code and a discount in 1..100.
func NewVoucher(opts ...Option) *voucher.Voucher {
	a := attrs{
		id:       int64(gofakeit.Number(1, 100)),
		code:     Code(),
		discount: gofakeit.Number(voucher.MinDiscount, voucher.MaxDiscount),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return voucher.Reconstruct(a.id, a.code, a.discount, a.used)
}

// Code returns a random 16 character alphanumeric voucher code.
func Code() string {
	return gofakeit.Regex("[a-zA-Z0-9]{16}")
}
