package content

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pds/internal/common"
	"pds/internal/dbmysql"
	"pds/internal/logger"
)

// ContentRepository is the persistence gateway for contents and the bills they own.
// Fetches return (nil, nil) when the row does not exist.
type ContentRepository interface {
	FetchByID(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error)
	FetchByIDWithBill(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error)
	FetchByIDWithBillAndCosts(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error)
	FetchAll(ctx context.Context) ([]dbmysql.Content, error)
	FetchAllOrderByReleaseDateDesc(ctx context.Context) ([]dbmysql.Content, error)
	FetchAllByBrand(ctx context.Context, brandID uuid.UUID) ([]dbmysql.Content, error)
	Insert(ctx context.Context, content *dbmysql.Content) error
	Update(ctx context.Context, content *dbmysql.Content) error
	FullUpdate(ctx context.Context, content *dbmysql.Content) error
	FullDelete(ctx context.Context, content *dbmysql.Content) error
	FullArchive(ctx context.Context, content *dbmysql.Content) error
}

type contentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentRepository(db *gorm.DB, log *logger.Logger) ContentRepository {
	return &contentRepo{
		db:  db,
		log: log.With("repo", "ContentRepository"),
	}
}

func (r *contentRepo) fetchOne(ctx context.Context, id uuid.UUID, preloads ...string) (*dbmysql.Content, error) {
	q := r.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var content dbmysql.Content
	err := q.First(&content, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch content %s: %w", id, err)
	}
	return &content, nil
}

func (r *contentRepo) FetchByID(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error) {
	return r.fetchOne(ctx, id)
}

func (r *contentRepo) FetchByIDWithBill(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error) {
	return r.fetchOne(ctx, id, "Bill")
}

func (r *contentRepo) FetchByIDWithBillAndCosts(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error) {
	return r.fetchOne(ctx, id, "Bill.Costs")
}

func (r *contentRepo) FetchAll(ctx context.Context) ([]dbmysql.Content, error) {
	var contents []dbmysql.Content
	if err := r.db.WithContext(ctx).Preload("Bill").Find(&contents).Error; err != nil {
		return nil, fmt.Errorf("fetch contents: %w", err)
	}
	return contents, nil
}

func (r *contentRepo) FetchAllOrderByReleaseDateDesc(ctx context.Context) ([]dbmysql.Content, error) {
	var contents []dbmysql.Content
	err := r.db.WithContext(ctx).
		Preload("Bill").
		Order("release_date DESC").
		Find(&contents).Error
	if err != nil {
		return nil, fmt.Errorf("fetch contents by release date: %w", err)
	}
	return contents, nil
}

func (r *contentRepo) FetchAllByBrand(ctx context.Context, brandID uuid.UUID) ([]dbmysql.Content, error) {
	var contents []dbmysql.Content
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("release_date DESC").
		Order("title ASC").
		Find(&contents).Error
	if err != nil {
		return nil, fmt.Errorf("fetch contents of brand %s: %w", brandID, err)
	}
	return contents, nil
}

// Insert stores the content and, when attached, its bill in one transaction.
func (r *contentRepo) Insert(ctx context.Context, content *dbmysql.Content) error {
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(content).Error
	})
	if err != nil {
		return fmt.Errorf("insert content %s: %w", content.ID, err)
	}
	r.log.Debug("content inserted", "content_id", content.ID, "with_bill", content.Bill != nil)
	return nil
}

// Update persists the content row only.
func (r *contentRepo) Update(ctx context.Context, content *dbmysql.Content) error {
	return updateContentRow(r.db.WithContext(ctx), content)
}

// FullUpdate persists the content together with its bill link. A bill that is no
// longer attached keeps its row but loses the reference to the content.
func (r *contentRepo) FullUpdate(ctx context.Context, content *dbmysql.Content) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if content.Bill != nil {
			contentID := content.ID
			billID := content.Bill.ID
			content.Bill.ContentID = &contentID
			content.BillID = &billID

			if err := saveContentBill(tx, content.Bill); err != nil {
				return err
			}
			if err := detachBills(tx.Where("content_id = ? AND id <> ?", content.ID, billID)); err != nil {
				return err
			}
		} else {
			if err := detachBills(tx.Where("content_id = ?", content.ID)); err != nil {
				return err
			}
			content.BillID = nil
		}
		return updateContentRow(tx, content)
	})
	if err != nil {
		return fmt.Errorf("full update content %s: %w", content.ID, err)
	}
	return nil
}

// FullDelete removes the bill's costs, the bill and the content as one unit.
func (r *contentRepo) FullDelete(ctx context.Context, content *dbmysql.Content) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if content.Bill != nil {
			if err := tx.Where("bill_id = ?", content.Bill.ID).Delete(&dbmysql.Cost{}).Error; err != nil {
				return fmt.Errorf("delete costs: %w", err)
			}
			if err := tx.Where("id = ?", content.Bill.ID).Delete(&dbmysql.Bill{}).Error; err != nil {
				return fmt.Errorf("delete bill: %w", err)
			}
		}

		res := tx.Where("id = ? AND version = ?", content.ID, content.Version).Delete(&dbmysql.Content{})
		if res.Error != nil {
			return fmt.Errorf("delete content: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return common.ErrConflict
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("full delete content %s: %w", content.ID, err)
	}
	r.log.Debug("content deleted", "content_id", content.ID)
	return nil
}

// FullArchive stores the archived content and archives its bill.
func (r *contentRepo) FullArchive(ctx context.Context, content *dbmysql.Content) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateContentRow(tx, content); err != nil {
			return err
		}
		if content.Bill == nil {
			return nil
		}
		err := tx.Model(&dbmysql.Bill{}).
			Where("id = ?", content.Bill.ID).
			Updates(map[string]interface{}{
				"status":     common.BillStatusArchived,
				"updated_at": content.UpdatedAt,
			}).Error
		if err != nil {
			return fmt.Errorf("archive bill %s: %w", content.Bill.ID, err)
		}
		content.Bill.Status = common.BillStatusArchived
		content.Bill.UpdatedAt = content.UpdatedAt
		return nil
	})
	if err != nil {
		return fmt.Errorf("full archive content %s: %w", content.ID, err)
	}
	return nil
}

// saveContentBill inserts a newly attached bill. For a stored bill only the columns
// owned by content editing are written, so payment state recorded meanwhile survives.
func saveContentBill(tx *gorm.DB, bill *dbmysql.Bill) error {
	var count int64
	if err := tx.Model(&dbmysql.Bill{}).Where("id = ?", bill.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("look up bill %s: %w", bill.ID, err)
	}
	if count == 0 {
		if err := tx.Omit(clause.Associations).Create(bill).Error; err != nil {
			return fmt.Errorf("create bill %s: %w", bill.ID, err)
		}
		return nil
	}

	err := tx.Model(&dbmysql.Bill{}).
		Where("id = ?", bill.ID).
		Updates(map[string]interface{}{
			"client_id":    bill.ClientID,
			"contact":      bill.Contact,
			"contact_name": bill.ContactName,
			"contact_type": bill.ContactType,
			"value":        bill.Value,
			"content_id":   bill.ContentID,
			"updated_at":   bill.UpdatedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("update bill %s: %w", bill.ID, err)
	}
	return nil
}

func detachBills(q *gorm.DB) error {
	if err := q.Model(&dbmysql.Bill{}).Update("content_id", nil).Error; err != nil {
		return fmt.Errorf("detach bills: %w", err)
	}
	return nil
}

// updateContentRow writes the mutable columns guarded by the version token.
func updateContentRow(db *gorm.DB, content *dbmysql.Content) error {
	prev := content.Version
	res := db.Model(&dbmysql.Content{}).
		Where("id = ? AND version = ?", content.ID, prev).
		Updates(map[string]interface{}{
			"title":             content.Title,
			"type":              content.Type,
			"social_media_type": content.SocialMediaType,
			"comment":           content.Comment,
			"release_date":      content.ReleaseDate,
			"end_date":          content.EndDate,
			"status":            content.Status,
			"person_id":         content.PersonID,
			"bill_id":           content.BillID,
			"updated_at":        content.UpdatedAt,
			"version":           prev + 1,
		})
	if res.Error != nil {
		return fmt.Errorf("update content %s: %w", content.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update content %s: %w", content.ID, common.ErrConflict)
	}
	content.Version = prev + 1
	return nil
}
