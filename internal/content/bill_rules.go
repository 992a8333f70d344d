package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pds/internal/common"
	"pds/internal/dbmysql"
)

// DeriveInitialPaymentStatus marks free bills as paid. Only used when a bill is created.
func DeriveInitialPaymentStatus(value decimal.Decimal) common.PaymentStatus {
	if value.IsZero() {
		return common.PaymentStatusPaid
	}
	return common.PaymentStatusNotPaid
}

// SanitizeContact drops every '@' from a contact handle.
func SanitizeContact(raw string) string {
	return strings.ReplaceAll(raw, "@", "")
}

// BuildContentBill creates the bill owned by content from the request sub-model.
func BuildContentBill(content *dbmysql.Content, model *BillModel, now time.Time) *dbmysql.Bill {
	contentID := content.ID
	return &dbmysql.Bill{
		ID:            uuid.New(),
		Value:         model.Value,
		Status:        common.BillStatusActive,
		PaymentStatus: DeriveInitialPaymentStatus(model.Value),
		Type:          common.BillTypeContent,
		Comment:       fmt.Sprintf("Created automatically for content with id %s (%s)", content.ID, content.Title),
		Contact:       SanitizeContact(model.Contact),
		ContactName:   model.ContactName,
		ContactType:   model.ContactType,
		BrandID:       content.BrandID,
		ContentID:     &contentID,
		ClientID:      model.ClientID,
		CreatedAt:     now,
	}
}

// applyBillModel updates an attached bill in place. Payment status is left as stored.
func applyBillModel(bill *dbmysql.Bill, model *BillModel, now time.Time) {
	bill.ClientID = model.ClientID
	bill.Contact = SanitizeContact(model.Contact)
	bill.ContactName = model.ContactName
	bill.ContactType = model.ContactType
	bill.Value = model.Value
	bill.UpdatedAt = &now
}

func validateBillModel(op string, model *BillModel) error {
	if model.Value.IsNegative() {
		return common.NewLifecycleError(op, common.ErrInvalidArgument, "bill value must not be negative")
	}
	if model.ContactType != nil && !model.ContactType.IsValid() {
		return common.NewLifecycleError(op, common.ErrInvalidArgument, "unknown contact type %q", *model.ContactType)
	}
	return nil
}
