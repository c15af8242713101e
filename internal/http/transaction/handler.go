package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/auth"
	"github.com/MrJamesThe3rd/finny-ledger/internal/transaction"
	"github.com/MrJamesThe3rd/finny-ledger/internal/uow"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type recurrenceRequest struct {
	Frequency transaction.Frequency `json:"frequency"`
	Until     *time.Time            `json:"until,omitempty"`
}

func (r *recurrenceRequest) toDomain() *transaction.Recurrence {
	if r == nil {
		return nil
	}

	return &transaction.Recurrence{Frequency: r.Frequency, Until: r.Until}
}

type createTransactionRequest struct {
	AccountID   uuid.UUID          `json:"account_id"`
	CategoryID  *uuid.UUID         `json:"category_id,omitempty"`
	Amount      decimal.Decimal    `json:"amount"`
	Kind        transaction.Kind   `json:"kind"`
	Description string             `json:"description"`
	Date        time.Time          `json:"date"`
	Recurrence  *recurrenceRequest `json:"recurrence,omitempty"`
	Attachments []string           `json:"attachments,omitempty"`
}

func (req createTransactionRequest) validate() error {
	if req.AccountID == uuid.Nil {
		return errors.New("account_id is required")
	}

	if err := validateAmount(req.Amount); err != nil {
		return err
	}

	if req.Date.IsZero() {
		return errors.New("date is required")
	}

	if !req.Kind.Valid() {
		return errors.New("invalid kind")
	}

	if req.Recurrence != nil && !req.Recurrence.Frequency.Valid() {
		return errors.New("invalid recurrence frequency")
	}

	return nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), auth.OwnerID(r.Context()), transaction.CreateParams{
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Kind:        req.Kind,
		Description: req.Description,
		Date:        req.Date,
		Recurrence:  req.Recurrence.toDomain(),
		Attachments: req.Attachments,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("account_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid account_id", http.StatusBadRequest)
			return
		}

		filter.AccountID = &id
	}

	if s := q.Get("kind"); s != "" {
		filter.Kind = new(transaction.Kind(s))
	}

	if s := q.Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := q.Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	txs, err := h.svc.List(r.Context(), auth.OwnerID(r.Context()), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id, auth.OwnerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

type updateTransactionRequest struct {
	AccountID   *uuid.UUID         `json:"account_id,omitempty"`
	CategoryID  *uuid.UUID         `json:"category_id,omitempty"`
	Amount      *decimal.Decimal   `json:"amount,omitempty"`
	Kind        *transaction.Kind  `json:"kind,omitempty"`
	Description *string            `json:"description,omitempty"`
	Date        *time.Time         `json:"date,omitempty"`
	Recurrence  *recurrenceRequest `json:"recurrence,omitempty"`
	Attachments []string           `json:"attachments,omitempty"`
}

func (req updateTransactionRequest) validate() error {
	if req.Amount != nil {
		if err := validateAmount(*req.Amount); err != nil {
			return err
		}
	}

	if req.Date != nil && req.Date.IsZero() {
		return errors.New("date must not be empty")
	}

	if req.Kind != nil && !req.Kind.Valid() {
		return errors.New("invalid kind")
	}

	if req.Recurrence != nil && !req.Recurrence.Frequency.Valid() {
		return errors.New("invalid recurrence frequency")
	}

	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("amount must be positive")
	}

	if !amount.Equal(amount.Round(account.MoneyScale)) {
		return fmt.Errorf("amount supports at most %d decimal places", account.MoneyScale)
	}

	return nil
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := req.validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Update(r.Context(), id, auth.OwnerID(r.Context()), transaction.UpdateParams{
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Kind:        req.Kind,
		Description: req.Description,
		Date:        req.Date,
		Recurrence:  req.Recurrence.toDomain(),
		Attachments: req.Attachments,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Delete(r.Context(), id, auth.OwnerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteResponse{Success: res.Success})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transaction.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	case errors.Is(err, transaction.ErrAccountNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, uow.ErrConflict):
		http.Error(w, "account was modified concurrently, retry the request", http.StatusConflict)
	default:
		slog.Error("transaction request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
