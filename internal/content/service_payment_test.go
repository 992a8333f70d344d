package content

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pds/internal/bill"
	"pds/internal/common"
	"pds/internal/dbmysql"
	"pds/internal/logger"
)

// afterFetchRepo runs hook once, right after a content is loaded with its bill.
type afterFetchRepo struct {
	ContentRepository
	hook func()
}

func (r *afterFetchRepo) FetchByIDWithBill(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error) {
	c, err := r.ContentRepository.FetchByIDWithBill(ctx, id)
	if r.hook != nil {
		hook := r.hook
		r.hook = nil
		hook()
	}
	return c, err
}

func TestContentService_Edit_KeepsPaymentRecordedDuringEdit(t *testing.T) {
	db := setupSQLiteDB(t)
	log := logger.NewNop()
	ctx := context.Background()

	repo := &afterFetchRepo{ContentRepository: NewContentRepository(db, log)}
	svc := NewContentService(repo, nil, log)
	billSvc := bill.NewBillService(bill.NewBillRepository(db), log)

	model := validCreateModel()
	model.IsFree = false
	model.Bill = &BillModel{Value: decimal.NewFromInt(500), Contact: "@studio"}
	id, err := svc.Create(ctx, model)
	require.NoError(t, err)

	created, err := svc.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, created.Bill)
	billID := created.Bill.ID
	require.False(t, created.Bill.IsPaid())

	card := common.PaymentTypeCard
	paidAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.hook = func() {
		require.NoError(t, billSvc.MarkPaid(ctx, billID, &card, paidAt))
	}

	_, err = svc.Edit(ctx, &EditContentModel{
		ID:              id,
		Title:           "Renamed",
		Type:            created.Type,
		SocialMediaType: created.SocialMediaType,
		ReleaseDate:     created.ReleaseDate,
		Bill:            &BillModel{Value: decimal.NewFromInt(700), Contact: "@studio2"},
	})
	require.NoError(t, err)

	stored, err := billSvc.Get(ctx, billID)
	require.NoError(t, err)
	assert.Equal(t, common.PaymentStatusPaid, stored.PaymentStatus)
	require.NotNil(t, stored.PaidAt)
	assert.True(t, stored.PaidAt.Equal(paidAt))
	require.NotNil(t, stored.PaymentType)
	assert.Equal(t, common.PaymentTypeCard, *stored.PaymentType)
	assert.True(t, stored.Value.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, "studio2", stored.Contact)

	outcome, err := svc.Archive(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, common.TransitionApplied, outcome)
}
