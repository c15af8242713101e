package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finny-ledger/internal/account"
	"github.com/MrJamesThe3rd/finny-ledger/internal/http/auth"
	"github.com/MrJamesThe3rd/finny-ledger/internal/uow"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/reconcile", h.reconcile)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type accountResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Type           account.Type    `json:"type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Balance        decimal.Decimal `json:"balance"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(acc *account.Account) accountResponse {
	return accountResponse{
		ID:             acc.ID,
		Name:           acc.Name,
		Type:           acc.Type,
		OpeningBalance: acc.OpeningBalance,
		Balance:        acc.Balance,
		Active:         acc.Active,
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.UpdatedAt,
	}
}

type createAccountRequest struct {
	Name           string          `json:"name"`
	Type           account.Type    `json:"type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" || !req.Type.Valid() {
		http.Error(w, "name and a valid type are required", http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Create(r.Context(), auth.OwnerID(r.Context()), account.CreateParams{
		Name:           req.Name,
		Type:           req.Type,
		OpeningBalance: req.OpeningBalance,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(acc))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accs, err := h.svc.List(r.Context(), auth.OwnerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]accountResponse, len(accs))
	for i, acc := range accs {
		resp[i] = toResponse(acc)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Get(r.Context(), id, auth.OwnerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(acc))
}

// There is no balance field; only the ledger writes it.
type updateAccountRequest struct {
	Name   *string       `json:"name,omitempty"`
	Type   *account.Type `json:"type,omitempty"`
	Active *bool         `json:"active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Type != nil && !req.Type.Valid() {
		http.Error(w, "invalid type", http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Update(r.Context(), id, auth.OwnerID(r.Context()), account.UpdateParams{
		Name:   req.Name,
		Type:   req.Type,
		Active: req.Active,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(acc))
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

type reconciliationResponse struct {
	AccountID  uuid.UUID       `json:"account_id"`
	Balance    decimal.Decimal `json:"balance"`
	Expected   decimal.Decimal `json:"expected"`
	Drift      decimal.Decimal `json:"drift"`
	Consistent bool            `json:"consistent"`
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	rec, err := h.svc.Reconcile(r.Context(), id, auth.OwnerID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reconciliationResponse{
		AccountID:  rec.AccountID,
		Balance:    rec.Balance,
		Expected:   rec.Expected,
		Drift:      rec.Drift,
		Consistent: rec.Consistent,
	})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, account.ErrNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	case errors.Is(err, account.ErrHasTransactions):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, uow.ErrConflict):
		http.Error(w, "account was modified concurrently, retry the request", http.StatusConflict)
	default:
		slog.Error("account request failed", "error", err)
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
