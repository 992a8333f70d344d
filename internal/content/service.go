package content

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pds/internal/common"
	"pds/internal/dbmysql"
	"pds/internal/logger"
)

type ContentService interface {
	Get(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error)
	GetAll(ctx context.Context) ([]dbmysql.Content, error)
	GetAllOrderByReleaseDateDesc(ctx context.Context) ([]dbmysql.Content, error)
	Create(ctx context.Context, model *CreateContentModel) (uuid.UUID, error)
	Edit(ctx context.Context, model *EditContentModel) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Archive(ctx context.Context, id uuid.UUID) (common.TransitionOutcome, error)
	Unarchive(ctx context.Context, id uuid.UUID) (common.TransitionOutcome, error)
	GetContentsForListByBrandID(ctx context.Context, brandID uuid.UUID) ([]ListItem, error)
	GetContentsForListByBrandIDWithSelectedValue(ctx context.Context, brandID uuid.UUID, selected *uuid.UUID) ([]ListItem, error)
}

type contentService struct {
	repo  ContentRepository
	cache ListCache
	log   *logger.Logger
	now   func() time.Time
}

func NewContentService(repo ContentRepository, cache ListCache, log *logger.Logger) ContentService {
	if cache == nil {
		cache = noopListCache{}
	}
	return &contentService{
		repo:  repo,
		cache: cache,
		log:   log.With("service", "ContentService"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *contentService) Get(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error) {
	content, err := s.repo.FetchByIDWithBillAndCosts(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, common.NewLifecycleError("get", common.ErrNotFound, "content %s not found", id)
	}
	return content, nil
}

func (s *contentService) GetAll(ctx context.Context) ([]dbmysql.Content, error) {
	return s.repo.FetchAll(ctx)
}

func (s *contentService) GetAllOrderByReleaseDateDesc(ctx context.Context) ([]dbmysql.Content, error) {
	return s.repo.FetchAllOrderByReleaseDateDesc(ctx)
}

func (s *contentService) Create(ctx context.Context, model *CreateContentModel) (uuid.UUID, error) {
	if model == nil {
		return uuid.Nil, common.NewLifecycleError("create", common.ErrInvalidArgument, "request model is empty")
	}
	if err := validateContentFields("create", model, model.Type, model.SocialMediaType, model.ReleaseDate); err != nil {
		return uuid.Nil, err
	}
	if model.BrandID == uuid.Nil {
		return uuid.Nil, common.NewLifecycleError("create", common.ErrInvalidArgument, "brand is required")
	}
	if !model.IsFree {
		if model.Bill == nil {
			return uuid.Nil, common.NewLifecycleError("create", common.ErrInvalidArgument, "bill is required for paid content")
		}
		if err := validateBillModel("create", model.Bill); err != nil {
			return uuid.Nil, err
		}
	}

	now := s.now()
	content := &dbmysql.Content{
		ID:              uuid.New(),
		Title:           model.Title,
		Type:            model.Type,
		SocialMediaType: model.SocialMediaType,
		Comment:         model.Comment,
		ReleaseDate:     truncateToDate(model.ReleaseDate),
		EndDate:         truncateToDatePtr(model.EndDate),
		Status:          common.ContentStatusActive,
		BrandID:         model.BrandID,
		PersonID:        normalizePerson(model.PersonID),
		CreatedAt:       now,
	}

	if !model.IsFree {
		bill := BuildContentBill(content, model.Bill, now)
		content.Bill = bill
		content.BillID = &bill.ID
	}

	if err := s.repo.Insert(ctx, content); err != nil {
		s.log.Error("failed to create content", "brand_id", model.BrandID, "error", err)
		return uuid.Nil, err
	}

	s.invalidateList(ctx, content.BrandID)
	s.log.Info("content created", "content_id", content.ID, "brand_id", content.BrandID, "free", model.IsFree)
	return content.ID, nil
}

func (s *contentService) Edit(ctx context.Context, model *EditContentModel) (uuid.UUID, error) {
	if model == nil {
		return uuid.Nil, common.NewLifecycleError("edit", common.ErrNotFound, "request model is empty")
	}

	content, err := s.repo.FetchByIDWithBill(ctx, model.ID)
	if err != nil {
		return uuid.Nil, err
	}
	if content == nil {
		return uuid.Nil, common.NewLifecycleError("edit", common.ErrNotFound, "content %s not found", model.ID)
	}
	if content.IsArchived() {
		return uuid.Nil, common.NewLifecycleError("edit", common.ErrInvalidState, "archived content cannot be edited")
	}

	if err := validateContentFields("edit", model, model.Type, model.SocialMediaType, model.ReleaseDate); err != nil {
		return uuid.Nil, err
	}
	if model.Bill != nil {
		if err := validateBillModel("edit", model.Bill); err != nil {
			return uuid.Nil, err
		}
	}

	now := s.now()
	content.UpdatedAt = &now
	content.Title = model.Title
	content.Type = model.Type
	content.SocialMediaType = model.SocialMediaType
	content.Comment = model.Comment
	content.ReleaseDate = truncateToDate(model.ReleaseDate)
	content.EndDate = truncateToDatePtr(model.EndDate)
	content.PersonID = normalizePerson(model.PersonID)

	switch {
	case model.Bill != nil && content.Bill != nil:
		applyBillModel(content.Bill, model.Bill, now)
	case model.Bill != nil && content.Bill == nil:
		bill := BuildContentBill(content, model.Bill, now)
		content.Bill = bill
		content.BillID = &bill.ID
	case model.Bill == nil && content.Bill != nil:
		s.log.Info("detaching bill from content", "content_id", content.ID, "bill_id", content.Bill.ID)
		content.Bill = nil
		content.BillID = nil
	}

	if err := s.repo.FullUpdate(ctx, content); err != nil {
		s.log.Error("failed to edit content", "content_id", content.ID, "error", err)
		return uuid.Nil, err
	}

	s.invalidateList(ctx, content.BrandID)
	return content.ID, nil
}

func (s *contentService) Delete(ctx context.Context, id uuid.UUID) error {
	content, err := s.repo.FetchByIDWithBillAndCosts(ctx, id)
	if err != nil {
		return err
	}
	if content == nil {
		return common.NewLifecycleError("delete", common.ErrNotFound, "content %s not found", id)
	}
	if content.IsArchived() {
		return common.NewLifecycleError("delete", common.ErrInvalidState, "archived content cannot be deleted")
	}

	if err := s.repo.FullDelete(ctx, content); err != nil {
		s.log.Error("failed to delete content", "content_id", id, "error", err)
		return err
	}

	s.invalidateList(ctx, content.BrandID)
	s.log.Info("content deleted", "content_id", id)
	return nil
}

// Archive moves active content to the archive when it has no bill or its bill is paid.
// Ineligible content is reported through the outcome, not as an error.
func (s *contentService) Archive(ctx context.Context, id uuid.UUID) (common.TransitionOutcome, error) {
	content, err := s.repo.FetchByIDWithBill(ctx, id)
	if err != nil {
		return "", err
	}
	if content == nil || content.Status != common.ContentStatusActive {
		return common.TransitionSkipped, nil
	}
	if content.Bill != nil && !content.Bill.IsPaid() {
		s.log.Info("archive skipped, bill not paid", "content_id", id, "bill_id", content.Bill.ID)
		return common.TransitionIneligible, nil
	}

	now := s.now()
	content.Status = common.ContentStatusArchived
	content.UpdatedAt = &now
	if err := s.repo.FullArchive(ctx, content); err != nil {
		s.log.Error("failed to archive content", "content_id", id, "error", err)
		return "", err
	}

	s.invalidateList(ctx, content.BrandID)
	return common.TransitionApplied, nil
}

// Unarchive restores archived content. The bill keeps its archived status.
func (s *contentService) Unarchive(ctx context.Context, id uuid.UUID) (common.TransitionOutcome, error) {
	content, err := s.repo.FetchByID(ctx, id)
	if err != nil {
		return "", err
	}
	if content == nil || !content.IsArchived() {
		return common.TransitionSkipped, nil
	}

	now := s.now()
	content.Status = common.ContentStatusActive
	content.UpdatedAt = &now
	if err := s.repo.Update(ctx, content); err != nil {
		s.log.Error("failed to unarchive content", "content_id", id, "error", err)
		return "", err
	}

	s.invalidateList(ctx, content.BrandID)
	return common.TransitionApplied, nil
}

// GetContentsForListByBrandID returns the brand's contents preceded by the empty entry.
func (s *contentService) GetContentsForListByBrandID(ctx context.Context, brandID uuid.UUID) ([]ListItem, error) {
	gen, err := s.cache.Generation(ctx, brandID)
	cacheable := err == nil
	if err != nil {
		s.log.Warn("list cache generation read failed", "brand_id", brandID, "error", err)
	}

	if cacheable {
		items, ok, err := s.cache.Get(ctx, brandID, gen)
		if err != nil {
			s.log.Warn("list cache read failed", "brand_id", brandID, "error", err)
		}
		if ok {
			return withEmptyEntry(items), nil
		}
	}

	contents, err := s.repo.FetchAllByBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	items := toListItems(contents)
	if cacheable {
		if err := s.cache.Set(ctx, brandID, gen, items); err != nil {
			s.log.Warn("list cache write failed", "brand_id", brandID, "error", err)
		}
	}
	return withEmptyEntry(items), nil
}

func (s *contentService) GetContentsForListByBrandIDWithSelectedValue(ctx context.Context, brandID uuid.UUID, selected *uuid.UUID) ([]ListItem, error) {
	items, err := s.GetContentsForListByBrandID(ctx, brandID)
	if err != nil || selected == nil {
		return items, err
	}
	return moveToFront(items, *selected), nil
}

func (s *contentService) invalidateList(ctx context.Context, brandID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, brandID); err != nil {
		s.log.Warn("list cache invalidation failed", "brand_id", brandID, "error", err)
	}
}

func validateContentFields(op string, model interface{}, ct common.ContentType, smt common.SocialMediaType, releaseDate time.Time) error {
	if err := common.ValidateStruct(op, model); err != nil {
		return err
	}
	if !ct.IsValid() {
		return common.NewLifecycleError(op, common.ErrInvalidArgument, "unknown content type %q", ct)
	}
	if !smt.IsValid() {
		return common.NewLifecycleError(op, common.ErrInvalidArgument, "unknown social media type %q", smt)
	}
	if releaseDate.IsZero() {
		return common.NewLifecycleError(op, common.ErrInvalidArgument, "release date is required")
	}
	return nil
}

// normalizePerson treats uuid.Nil as "no person".
func normalizePerson(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	p := *id
	return &p
}
