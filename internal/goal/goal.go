package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a savings target. Progress and IsCompleted are derived from
// TargetAmount and CurrentAmount and are recomputed on every write.
type Goal struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Progress      decimal.Decimal // 0-100
	IsCompleted   bool
	TargetDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
