package dbmysql

import (
	"time"

	"github.com/google/uuid"

	"pds/internal/common"
)

// Content owns its optional bill; the join key is bills.content_id.
// BillID mirrors the attached bill's id and is never used to join.
type Content struct {
	ID              uuid.UUID              `gorm:"type:char(36);primaryKey;column:id" json:"id"`
	Title           string                 `gorm:"size:300;not null;column:title" json:"title"`
	Type            common.ContentType     `gorm:"size:32;not null;column:type" json:"type"`
	SocialMediaType common.SocialMediaType `gorm:"size:32;not null;column:social_media_type" json:"socialMediaType"`
	Comment         string                 `gorm:"type:text;column:comment" json:"comment"`
	ReleaseDate     time.Time              `gorm:"type:date;not null;column:release_date" json:"releaseDate"`
	EndDate         *time.Time             `gorm:"type:date;column:end_date" json:"endDate,omitempty"`
	Status          common.ContentStatus   `gorm:"size:16;not null;index;column:status" json:"status"`
	BrandID         uuid.UUID              `gorm:"type:char(36);not null;index;column:brand_id" json:"brandId"`
	PersonID        *uuid.UUID             `gorm:"type:char(36);column:person_id" json:"personId,omitempty"`
	BillID          *uuid.UUID             `gorm:"type:char(36);column:bill_id" json:"billId,omitempty"`
	Version         int64                  `gorm:"not null;default:0;column:version" json:"version"`
	CreatedAt       time.Time              `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       *time.Time             `gorm:"autoUpdateTime:false;column:updated_at" json:"updatedAt,omitempty"`

	Bill *Bill `gorm:"foreignKey:ContentID;references:ID" json:"bill,omitempty"`
}

func (Content) TableName() string {
	return "contents"
}

func (c *Content) IsArchived() bool {
	return c.Status == common.ContentStatusArchived
}
