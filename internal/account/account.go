package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the kind of account.
type Type string

const (
	TypeChecking   Type = "checking"
	TypeSavings    Type = "savings"
	TypeInvestment Type = "investment"
	TypeCredit     Type = "credit"
)

// MoneyScale is the number of decimal places every stored money column keeps.
// Amounts are rounded to it before they take part in balance arithmetic.
const MoneyScale int32 = 4

// Account is a user-owned container of money.
//
// Balance is a derived cache of OpeningBalance plus the signed amounts of every
// transaction referencing the account. Only the transaction service writes it.
type Account struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Name           string
	Type           Type
	OpeningBalance decimal.Decimal
	Balance        decimal.Decimal
	Active         bool
	Version        int64 // Bumped on every balance write
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Reconciliation compares the cached balance against the balance implied by the
// account's transactions.
type Reconciliation struct {
	AccountID  uuid.UUID
	Balance    decimal.Decimal
	Expected   decimal.Decimal
	Drift      decimal.Decimal
	Consistent bool
}

func (t Type) Valid() bool {
	switch t {
	case TypeChecking, TypeSavings, TypeInvestment, TypeCredit:
		return true
	default:
		return false
	}
}
