package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Kilat-Pet-Delivery/service-voucher/internal/domain"
	voucherDomain "github.com/Kilat-Pet-Delivery/service-voucher/internal/domain/voucher"
	"github.com/Kilat-Pet-Delivery/service-voucher/internal/events"
	"go.uber.org/zap"
)

// CreateVoucherRequest holds data to create a voucher.
type CreateVoucherRequest struct {
	Code     string `json:"code" binding:"required,max=64"`
	Discount int    `json:"discount" binding:"required,min=1,max=100"`
}

// ApplyVoucherRequest holds data to apply a voucher to a purchase.
type ApplyVoucherRequest struct {
	Code   string  `json:"code" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// VoucherDTO is the API response representation of a voucher.
type VoucherDTO struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Discount int    `json:"discount"`
	Used     bool   `json:"used"`
}

// ApplyResultDTO is the outcome of applying a voucher to a purchase amount.
type ApplyResultDTO struct {
	Amount      float64 `json:"amount"`
	Discount    int     `json:"discount"`
	FinalAmount float64 `json:"finalAmount"`
	Applied     bool    `json:"applied"`
}

// EventPublisher publishes voucher lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, data any) error
}

// VoucherServiceOption configures a VoucherService.
type VoucherServiceOption func(*VoucherService)

// WithMinAmount overrides the exclusive purchase threshold above which discounts apply.
func WithMinAmount(minAmount float64) VoucherServiceOption {
	return func(s *VoucherService) { s.minAmount = minAmount }
}

// WithPublisher sets the event publisher.
func WithPublisher(publisher EventPublisher) VoucherServiceOption {
	return func(s *VoucherService) { s.publisher = publisher }
}

// VoucherService handles voucher use cases.
type VoucherService struct {
	repo      voucherDomain.VoucherRepository
	publisher EventPublisher
	minAmount float64
	logger    *zap.Logger
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(repo voucherDomain.VoucherRepository, logger *zap.Logger, opts ...VoucherServiceOption) *VoucherService {
	s := &VoucherService{
		repo:      repo,
		publisher: events.NoopPublisher{},
		minAmount: voucherDomain.DefaultMinAmount,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateVoucher creates a voucher unless one with the same code already exists.
func (s *VoucherService) CreateVoucher(ctx context.Context, code string, discount int) (*VoucherDTO, error) {
	code = voucherDomain.NormalizeCode(code)
	existing, err := s.repo.GetVoucherByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up voucher: %w", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("Voucher already exist.")
	}

	v, err := s.repo.CreateVoucher(ctx, code, discount)
	if err != nil {
		return nil, fmt.Errorf("failed to create voucher: %w", err)
	}

	s.logger.Info("voucher created",
		zap.Int64("voucher_id", v.ID()),
		zap.String("code", v.Code()),
		zap.Int("discount", v.Discount()),
	)
	s.publish(ctx, events.VoucherCreated, v.Code(), events.VoucherCreatedEvent{
		VoucherID:  v.ID(),
		Code:       v.Code(),
		Discount:   v.Discount(),
		OccurredAt: time.Now().UTC(),
	})

	dto := toVoucherDTO(v)
	return &dto, nil
}

// ApplyVoucher computes the discounted amount for a purchase. The voucher is marked used
// only when the discount was actually applied.
func (s *VoucherService) ApplyVoucher(ctx context.Context, code string, amount float64) (*ApplyResultDTO, error) {
	code = voucherDomain.NormalizeCode(code)
	v, err := s.repo.GetVoucherByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up voucher: %w", err)
	}
	if v == nil {
		return nil, domain.NewNotFoundError("Voucher does not exist.")
	}

	finalAmount, applied := v.Apply(amount, s.minAmount)
	result := &ApplyResultDTO{
		Amount:      amount,
		Discount:    v.Discount(),
		FinalAmount: finalAmount,
		Applied:     applied,
	}
	if !applied {
		s.logger.Debug("voucher not applied, amount below threshold",
			zap.String("code", code),
			zap.Float64("amount", amount),
			zap.Float64("min_amount", s.minAmount),
		)
		return result, nil
	}

	if _, err := s.repo.UseVoucher(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to mark voucher used: %w", err)
	}

	s.logger.Info("voucher applied",
		zap.String("code", code),
		zap.Float64("amount", amount),
		zap.Float64("final_amount", finalAmount),
	)
	s.publish(ctx, events.VoucherUsed, v.Code(), events.VoucherUsedEvent{
		VoucherID:   v.ID(),
		Code:        v.Code(),
		Discount:    v.Discount(),
		Amount:      amount,
		FinalAmount: finalAmount,
		OccurredAt:  time.Now().UTC(),
	})

	return result, nil
}

func (s *VoucherService) publish(ctx context.Context, eventType, key string, data any) {
	if err := s.publisher.Publish(ctx, eventType, key, data); err != nil {
		s.logger.Warn("failed to publish voucher event",
			zap.String("type", eventType),
			zap.String("code", key),
			zap.Error(err),
		)
	}
}

func toVoucherDTO(v *voucherDomain.Voucher) VoucherDTO {
	return VoucherDTO{
		ID:       v.ID(),
		Code:     v.Code(),
		Discount: v.Discount(),
		Used:     v.IsUsed(),
	}
}
