package bill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pds/internal/common"
	"pds/internal/dbmysql"
	"pds/internal/logger"
)

type BillService interface {
	Get(ctx context.Context, id uuid.UUID) (*dbmysql.Bill, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paymentType *common.PaymentType, paidAt time.Time) error
}

type billService struct {
	repo BillRepository
	log  *logger.Logger
	now  func() time.Time
}

func NewBillService(repo BillRepository, log *logger.Logger) BillService {
	return &billService{
		repo: repo,
		log:  log.With("service", "BillService"),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *billService) Get(ctx context.Context, id uuid.UUID) (*dbmysql.Bill, error) {
	bill, err := s.repo.FetchWhere(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, common.NewLifecycleError("get-bill", common.ErrNotFound, "bill %s not found", id)
	}
	return bill, nil
}

// MarkPaid settles a bill so the content it belongs to can be archived.
// Paying an already paid bill is a no-op.
func (s *billService) MarkPaid(ctx context.Context, id uuid.UUID, paymentType *common.PaymentType, paidAt time.Time) error {
	if paymentType != nil && !paymentType.IsValid() {
		return common.NewLifecycleError("mark-paid", common.ErrInvalidArgument, "unknown payment type %q", *paymentType)
	}

	bill, err := s.repo.FetchWhere(ctx, "id = ?", id)
	if err != nil {
		return err
	}
	if bill == nil {
		return common.NewLifecycleError("mark-paid", common.ErrNotFound, "bill %s not found", id)
	}
	if bill.Status == common.BillStatusArchived {
		return common.NewLifecycleError("mark-paid", common.ErrInvalidState, "archived bill cannot be paid")
	}
	if bill.IsPaid() {
		return nil
	}

	now := s.now()
	if paidAt.IsZero() {
		paidAt = now
	}
	bill.PaymentStatus = common.PaymentStatusPaid
	bill.PaymentType = paymentType
	bill.PaidAt = &paidAt
	bill.UpdatedAt = &now

	if err := s.repo.UpdatePayment(ctx, bill); err != nil {
		s.log.Error("failed to mark bill paid", "bill_id", id, "error", err)
		return err
	}
	s.log.Info("bill paid", "bill_id", id, "value", bill.Value.String())
	return nil
}
