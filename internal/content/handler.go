package content

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"pds/internal/common"
	"pds/internal/logger"
)

const dateLayout = "2006-01-02"

type billRequest struct {
	Value       decimal.Decimal `json:"value"`
	Contact     string          `json:"contact" validate:"max=300"`
	ContactName string          `json:"contactName" validate:"max=300"`
	ContactType *string         `json:"contactType,omitempty"`
	ClientID    *string         `json:"clientId,omitempty" validate:"omitempty,uuid"`
}

type contentRequest struct {
	Title           string       `json:"title" validate:"required,max=300"`
	Type            string       `json:"type" validate:"required"`
	SocialMediaType string       `json:"socialMediaType" validate:"required"`
	Comment         string       `json:"comment"`
	ReleaseDate     string       `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	EndDate         *string      `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PersonID        *string      `json:"personId,omitempty" validate:"omitempty,uuid"`
	Bill            *billRequest `json:"bill,omitempty"`
}

type createContentRequest struct {
	contentRequest
	BrandID string `json:"brandId" validate:"required,uuid"`
	IsFree  bool   `json:"isFree"`
}

type idResponse struct {
	ID uuid.UUID `json:"id"`
}

type outcomeResponse struct {
	ID      uuid.UUID `json:"id"`
	Outcome string    `json:"outcome"`
}

// Handler exposes ContentService over HTTP.
type Handler struct {
	svc ContentService
	log *logger.Logger
}

func NewHandler(svc ContentService, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log.With("handler", "content")}
}

// RegisterRoutes mounts the content routes on an /api/v1 subrouter.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/contents", h.create).Methods(http.MethodPost)
	r.HandleFunc("/contents", h.list).Methods(http.MethodGet)
	r.HandleFunc("/contents/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/contents/{id}", h.edit).Methods(http.MethodPut)
	r.HandleFunc("/contents/{id}", h.delete).Methods(http.MethodDelete)
	r.HandleFunc("/contents/{id}/archive", h.archive).Methods(http.MethodPost)
	r.HandleFunc("/contents/{id}/unarchive", h.unarchive).Methods(http.MethodPost)
	r.HandleFunc("/brands/{brandID}/contents", h.listByBrand).Methods(http.MethodGet)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createContentRequest
	if err := decode(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	id, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	get := h.svc.GetAll
	if r.URL.Query().Get("order") == "release_date" {
		get = h.svc.GetAllOrderByReleaseDateDesc
	}

	contents, err := get(r.Context())
	if err != nil {
		h.log.Error("failed to list contents", "error", err)
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, contents)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	content, err := h.svc.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, content)
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var req contentRequest
	if err := decode(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}

	if _, err := h.svc.Edit(r.Context(), req.toEditModel(id)); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, idResponse{ID: id})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		common.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) archive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	outcome, err := h.svc.Archive(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, outcomeResponse{ID: id, Outcome: outcome.String()})
}

func (h *Handler) unarchive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	outcome, err := h.svc.Unarchive(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, outcomeResponse{ID: id, Outcome: outcome.String()})
}

func (h *Handler) listByBrand(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathID(r, "brandID")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var selected *uuid.UUID
	if raw := r.URL.Query().Get("selected"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			common.WriteError(w, common.NewLifecycleError("list", common.ErrInvalidArgument, "invalid selected id %q", raw))
			return
		}
		selected = &id
	}

	items, err := h.svc.GetContentsForListByBrandIDWithSelectedValue(r.Context(), brandID, selected)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, items)
}

func decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewLifecycleError("decode", common.ErrInvalidArgument, "malformed request body")
	}
	return common.ValidateStruct("request", dst)
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.NewLifecycleError("request", common.ErrInvalidArgument, "invalid %s %q", name, raw)
	}
	return id, nil
}

func parseOptionalID(raw *string) *uuid.UUID {
	if raw == nil {
		return nil
	}
	id := uuid.MustParse(*raw)
	return &id
}

func parseOptionalDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	d, _ := time.Parse(dateLayout, *raw)
	return &d
}

// toModel converts a validated request; ids and dates are already known to parse.
func (req *createContentRequest) toModel() *CreateContentModel {
	releaseDate, _ := time.Parse(dateLayout, req.ReleaseDate)
	return &CreateContentModel{
		Title:           req.Title,
		Type:            common.ParseContentType(req.Type),
		SocialMediaType: common.ParseSocialMediaType(req.SocialMediaType),
		Comment:         req.Comment,
		ReleaseDate:     releaseDate,
		EndDate:         parseOptionalDate(req.EndDate),
		BrandID:         uuid.MustParse(req.BrandID),
		PersonID:        parseOptionalID(req.PersonID),
		IsFree:          req.IsFree,
		Bill:            req.Bill.toModel(),
	}
}

func (req *contentRequest) toEditModel(id uuid.UUID) *EditContentModel {
	releaseDate, _ := time.Parse(dateLayout, req.ReleaseDate)
	return &EditContentModel{
		ID:              id,
		Title:           req.Title,
		Type:            common.ParseContentType(req.Type),
		SocialMediaType: common.ParseSocialMediaType(req.SocialMediaType),
		Comment:         req.Comment,
		ReleaseDate:     releaseDate,
		EndDate:         parseOptionalDate(req.EndDate),
		PersonID:        parseOptionalID(req.PersonID),
		Bill:            req.Bill.toModel(),
	}
}

func (req *billRequest) toModel() *BillModel {
	if req == nil {
		return nil
	}
	model := &BillModel{
		Value:       req.Value,
		Contact:     req.Contact,
		ContactName: req.ContactName,
		ClientID:    parseOptionalID(req.ClientID),
	}
	if req.ContactType != nil {
		ct := common.ContactType(*req.ContactType)
		model.ContactType = &ct
	}
	return model
}
