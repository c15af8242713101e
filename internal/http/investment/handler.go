package investment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finny-ledger/internal/http/auth"
	"github.com/MrJamesThe3rd/finny-ledger/internal/investment"
)

type Handler struct {
	svc *investment.Service
}

func NewHandler(svc *investment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type investmentResponse struct {
	ID               uuid.UUID        `json:"id"`
	AccountID        uuid.UUID        `json:"account_id"`
	Name             string           `json:"name"`
	InitialValue     decimal.Decimal  `json:"initial_value"`
	CurrentValue     decimal.Decimal  `json:"current_value"`
	AcquisitionDate  *time.Time       `json:"acquisition_date,omitempty"`
	AbsoluteReturn   decimal.Decimal  `json:"absolute_return"`
	PercentageReturn decimal.Decimal  `json:"percentage_return"`
	AnnualizedReturn *decimal.Decimal `json:"annualized_return"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(inv *investment.Investment) investmentResponse {
	return investmentResponse{
		ID:               inv.ID,
		AccountID:        inv.AccountID,
		Name:             inv.Name,
		InitialValue:     inv.InitialValue,
		CurrentValue:     inv.CurrentValue,
		AcquisitionDate:  inv.AcquisitionDate,
		AbsoluteReturn:   inv.Performance.AbsoluteReturn,
		PercentageReturn: inv.Performance.PercentageReturn,
		AnnualizedReturn: inv.Performance.AnnualizedReturn,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}

type createInvestmentRequest struct {
	AccountID       uuid.UUID       `json:"account_id"`
	Name            string          `json:"name"`
	InitialValue    decimal.Decimal `json:"initial_value"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	AcquisitionDate *time.Time      `json:"acquisition_date,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.AccountID == uuid.Nil || req.Name == "" {
		http.Error(w, "account_id and name are required", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Create(r.Context(), auth.OwnerID(r.Context()), investment.CreateParams{
		AccountID:       req.AccountID,
		Name:            req.Name,
		InitialValue:    req.InitialValue,
		CurrentValue:    req.CurrentValue,
		AcquisitionDate: req.AcquisitionDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.List(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]investmentResponse, len(invs))
	for i, inv := range invs {
		resp[i] = toResponse(inv)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Get(r.Context(), id, auth.OwnerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

type updateInvestmentRequest struct {
	AccountID       *uuid.UUID       `json:"account_id,omitempty"`
	Name            *string          `json:"name,omitempty"`
	InitialValue    *decimal.Decimal `json:"initial_value,omitempty"`
	CurrentValue    *decimal.Decimal `json:"current_value,omitempty"`
	AcquisitionDate *time.Time       `json:"acquisition_date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Update(r.Context(), id, auth.OwnerID(r.Context()), investment.UpdateParams{
		AccountID:       req.AccountID,
		Name:            req.Name,
		InitialValue:    req.InitialValue,
		CurrentValue:    req.CurrentValue,
		AcquisitionDate: req.AcquisitionDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id, auth.OwnerID(r.Context())); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, investment.ErrNotFound):
		http.Error(w, "investment not found", http.StatusNotFound)
	case errors.Is(err, investment.ErrAccountNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	default:
		slog.Error("investment request failed", "error", err)
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
