package investment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment is a position held through an account. Performance is derived from
// InitialValue, CurrentValue and AcquisitionDate and is recomputed on every write.
type Investment struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	AccountID       uuid.UUID
	Name            string
	InitialValue    decimal.Decimal
	CurrentValue    decimal.Decimal
	AcquisitionDate *time.Time
	Performance     Performance
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
