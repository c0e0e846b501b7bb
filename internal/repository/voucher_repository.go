package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Kilat-Pet-Delivery/service-voucher/internal/domain"
	voucherDomain "github.com/Kilat-Pet-Delivery/service-voucher/internal/domain/voucher"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoucherModel is the GORM model for the vouchers table.
type VoucherModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Code      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Discount  int       `gorm:"not null;check:discount BETWEEN 1 AND 100"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

// TableName sets the table name.
func (VoucherModel) TableName() string { return "vouchers" }

// GormVoucherRepository implements VoucherRepository using GORM.
type GormVoucherRepository struct {
	db *gorm.DB
}

// NewGormVoucherRepository creates a new GormVoucherRepository.
func NewGormVoucherRepository(db *gorm.DB) *GormVoucherRepository {
	return &GormVoucherRepository{db: db}
}

// GetVoucherByCode returns the voucher with the given code, or nil if there is none.
func (r *GormVoucherRepository) GetVoucherByCode(ctx context.Context, code string) (*voucherDomain.Voucher, error) {
	var model VoucherModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toVoucherDomain(&model), nil
}

// CreateVoucher persists a new voucher.
func (r *GormVoucherRepository) CreateVoucher(ctx context.Context, code string, discount int) (*voucherDomain.Voucher, error) {
	v, err := voucherDomain.NewVoucher(code, discount)
	if err != nil {
		return nil, err
	}

	model := VoucherModel{Code: v.Code(), Discount: v.Discount()}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.NewConflictError("Voucher already exist.")
		}
		return nil, err
	}
	return toVoucherDomain(&model), nil
}

// UseVoucher consumes the voucher. The row is locked for the duration of the
// transaction so two concurrent applications cannot both consume it.
func (r *GormVoucherRepository) UseVoucher(ctx context.Context, code string) (*voucherDomain.Voucher, error) {
	var v *voucherDomain.Voucher
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model VoucherModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("code = ?", code).
			First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("Voucher does not exist.")
			}
			return err
		}

		v = toVoucherDomain(&model)
		if err := v.MarkUsed(); err != nil {
			return err
		}

		return tx.Model(&VoucherModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]any{"used": v.IsUsed(), "updated_at": time.Now().UTC()}).Error
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func toVoucherDomain(m *VoucherModel) *voucherDomain.Voucher {
	return voucherDomain.Reconstruct(m.ID, m.Code, m.Discount, m.Used)
}
