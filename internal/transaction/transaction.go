package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind is the direction of a transaction's money movement.
type Kind string

const (
	KindIncome     Kind = "income"
	KindExpense    Kind = "expense"
	KindInvestment Kind = "investment"
)

// Frequency is how often a recurring transaction repeats.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Recurrence describes a repeating transaction. A nil Until repeats forever.
type Recurrence struct {
	Frequency Frequency
	Until     *time.Time
}

// Transaction is a single money movement against an account.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	AccountID   uuid.UUID
	CategoryID  *uuid.UUID
	Amount      decimal.Decimal // Always positive; the sign comes from Kind
	Kind        Kind
	Description string
	Date        time.Time
	Recurrence  *Recurrence
	Attachments []string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Signed returns the amount with the sign implied by kind: positive for income,
// negative for expense. Investment transactions are balance-neutral and yield zero.
func Signed(kind Kind, amount decimal.Decimal) decimal.Decimal {
	switch kind {
	case KindIncome:
		return amount
	case KindExpense:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// Signed returns the transaction's effect on its account balance.
func (t *Transaction) Signed() decimal.Decimal {
	return Signed(t.Kind, t.Amount)
}

func (k Kind) Valid() bool {
	switch k {
	case KindIncome, KindExpense, KindInvestment:
		return true
	default:
		return false
	}
}

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	default:
		return false
	}
}
