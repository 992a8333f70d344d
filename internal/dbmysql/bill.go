package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pds/internal/common"
)

type Bill struct {
	ID             uuid.UUID            `gorm:"type:char(36);primaryKey;column:id" json:"id"`
	Value          decimal.Decimal      `gorm:"type:decimal(18,2);not null;column:value" json:"value"`
	Status         common.BillStatus    `gorm:"size:16;not null;column:status" json:"status"`
	PaymentStatus  common.PaymentStatus `gorm:"size:16;not null;column:payment_status" json:"paymentStatus"`
	Type           common.BillType      `gorm:"size:32;not null;column:type" json:"type"`
	PaymentType    *common.PaymentType  `gorm:"size:32;column:payment_type" json:"paymentType,omitempty"`
	Comment        string               `gorm:"type:text;column:comment" json:"comment"`
	Contact        string               `gorm:"type:varchar(300);column:contact" json:"contact"`
	ContactEmail   string               `gorm:"type:varchar(100);column:contact_email" json:"contactEmail,omitempty"`
	ContactName    string               `gorm:"type:varchar(300);column:contact_name" json:"contactName"`
	ContactType    *common.ContactType  `gorm:"size:32;column:contact_type" json:"contactType,omitempty"`
	IsContactAgent bool                 `gorm:"not null;default:false;column:is_contact_agent" json:"isContactAgent"`
	ContractNumber string               `gorm:"type:varchar(50);column:contract_number" json:"contractNumber,omitempty"`
	ContractDate   *time.Time           `gorm:"column:contract_date" json:"contractDate,omitempty"`
	IsNeedPayNds   bool                 `gorm:"not null;default:false;column:is_need_pay_nds" json:"isNeedPayNds"`
	PaidAt         *time.Time           `gorm:"column:paid_at" json:"paidAt,omitempty"`
	BrandID        uuid.UUID            `gorm:"type:char(36);not null;index;column:brand_id" json:"brandId"`
	ContentID      *uuid.UUID           `gorm:"type:char(36);index;column:content_id" json:"contentId,omitempty"`
	ClientID       *uuid.UUID           `gorm:"type:char(36);index;column:client_id" json:"clientId,omitempty"`
	CreatedAt      time.Time            `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt      *time.Time           `gorm:"autoUpdateTime:false;column:updated_at" json:"updatedAt,omitempty"`

	Costs []Cost `gorm:"foreignKey:BillID;references:ID" json:"costs,omitempty"`
}

func (Bill) TableName() string {
	return "bills"
}

func (b *Bill) IsPaid() bool {
	return b.PaymentStatus == common.PaymentStatusPaid
}
