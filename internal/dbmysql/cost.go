package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cost is only loaded as a dependent of a bill so it can be removed with it.
type Cost struct {
	ID        uuid.UUID       `gorm:"type:char(36);primaryKey;column:id" json:"id"`
	Value     decimal.Decimal `gorm:"type:decimal(18,2);not null;column:value" json:"value"`
	Comment   string          `gorm:"type:text;column:comment" json:"comment"`
	BillID    *uuid.UUID      `gorm:"type:char(36);index;column:bill_id" json:"billId,omitempty"`
	BrandID   uuid.UUID       `gorm:"type:char(36);not null;column:brand_id" json:"brandId"`
	CreatedAt time.Time       `gorm:"column:created_at" json:"createdAt"`
}

func (Cost) TableName() string {
	return "costs"
}
