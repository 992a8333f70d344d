package bill

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"pds/internal/common"
	"pds/internal/logger"
)

type payRequest struct {
	PaymentType *string `json:"paymentType,omitempty"`
	PaidAt      *string `json:"paidAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type Handler struct {
	svc BillService
	log *logger.Logger
}

func NewHandler(svc BillService, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log.With("handler", "bill")}
}

// RegisterRoutes mounts the bill routes on an /api/v1 subrouter.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/bills/{id}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/bills/{id}/pay", h.pay).Methods(http.MethodPost)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := billID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	bill, err := h.svc.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, bill)
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	id, err := billID(r)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	// an empty body means "paid now, type unknown"
	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		common.WriteError(w, common.NewLifecycleError("decode", common.ErrInvalidArgument, "malformed request body"))
		return
	}
	if err := common.ValidateStruct("request", &req); err != nil {
		common.WriteError(w, err)
		return
	}

	var paymentType *common.PaymentType
	if req.PaymentType != nil {
		pt := common.PaymentType(*req.PaymentType)
		paymentType = &pt
	}
	var paidAt time.Time
	if req.PaidAt != nil {
		paidAt, _ = time.Parse(time.RFC3339, *req.PaidAt)
		paidAt = paidAt.UTC()
	}

	if err := h.svc.MarkPaid(r.Context(), id, paymentType, paidAt); err != nil {
		h.log.Warn("mark paid rejected", "bill_id", id, "error", err)
		common.WriteError(w, err)
		return
	}

	bill, err := h.svc.Get(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, bill)
}

func billID(r *http.Request) (uuid.UUID, error) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.NewLifecycleError("request", common.ErrInvalidArgument, "invalid bill id %q", raw)
	}
	return id, nil
}
