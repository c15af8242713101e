package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/finny-ledger/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID           `json:"id"`
	AccountID   uuid.UUID           `json:"account_id"`
	CategoryID  *uuid.UUID          `json:"category_id,omitempty"`
	Amount      decimal.Decimal     `json:"amount"`
	Kind        transaction.Kind    `json:"kind"`
	Description string              `json:"description"`
	Date        time.Time           `json:"date"`
	Recurrence  *recurrenceResponse `json:"recurrence,omitempty"`
	Attachments []string            `json:"attachments"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at,omitempty"`
}

type recurrenceResponse struct {
	Frequency transaction.Frequency `json:"frequency"`
	Until     *time.Time            `json:"until,omitempty"`
}

type deleteResponse struct {
	Success bool `json:"success"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:          tx.ID,
		AccountID:   tx.AccountID,
		CategoryID:  tx.CategoryID,
		Amount:      tx.Amount,
		Kind:        tx.Kind,
		Description: tx.Description,
		Date:        tx.Date,
		Attachments: tx.Attachments,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}

	if resp.Attachments == nil {
		resp.Attachments = []string{}
	}

	if tx.Recurrence != nil {
		resp.Recurrence = &recurrenceResponse{
			Frequency: tx.Recurrence.Frequency,
			Until:     tx.Recurrence.Until,
		}
	}

	return resp
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
