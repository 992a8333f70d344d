package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pds/internal/common"
)

// BillModel is the bill part of a create/edit request.
type BillModel struct {
	Value       decimal.Decimal
	Contact     string
	ContactName string
	ContactType *common.ContactType
	ClientID    *uuid.UUID
}

type CreateContentModel struct {
	Title           string                 `validate:"required,max=300"`
	Type            common.ContentType     `validate:"required"`
	SocialMediaType common.SocialMediaType `validate:"required"`
	Comment         string
	ReleaseDate     time.Time
	EndDate         *time.Time
	BrandID         uuid.UUID
	PersonID        *uuid.UUID
	IsFree          bool
	Bill            *BillModel
}

type EditContentModel struct {
	ID              uuid.UUID
	Title           string                 `validate:"required,max=300"`
	Type            common.ContentType     `validate:"required"`
	SocialMediaType common.SocialMediaType `validate:"required"`
	Comment         string
	ReleaseDate     time.Time
	EndDate         *time.Time
	// PersonID == uuid.Nil clears the person; nil leaves it cleared as well.
	PersonID *uuid.UUID
	Bill     *BillModel
}

// ListItem is one entry of a brand's content dropdown.
// The item with ID == uuid.Nil stands for "nothing selected".
type ListItem struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	ReleaseDate *time.Time `json:"releaseDate,omitempty"`
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func truncateToDatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := truncateToDate(*t)
	return &d
}
