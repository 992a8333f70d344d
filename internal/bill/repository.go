package bill

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=bill

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pds/internal/dbmysql"
)

type BillRepository interface {
	// FetchWhere returns the first bill matching the condition, or nil.
	FetchWhere(ctx context.Context, query string, args ...interface{}) (*dbmysql.Bill, error)
	UpdatePayment(ctx context.Context, bill *dbmysql.Bill) error
}

type billRepo struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepo{db: db}
}

func (r *billRepo) FetchWhere(ctx context.Context, query string, args ...interface{}) (*dbmysql.Bill, error) {
	var bill dbmysql.Bill
	err := r.db.WithContext(ctx).Where(query, args...).First(&bill).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch bill: %w", err)
	}
	return &bill, nil
}

// UpdatePayment writes only the payment columns.
func (r *billRepo) UpdatePayment(ctx context.Context, bill *dbmysql.Bill) error {
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Bill{}).
		Where("id = ?", bill.ID).
		Updates(map[string]interface{}{
			"payment_status": bill.PaymentStatus,
			"payment_type":   bill.PaymentType,
			"paid_at":        bill.PaidAt,
			"updated_at":     bill.UpdatedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("update payment of bill %s: %w", bill.ID, err)
	}
	return nil
}
