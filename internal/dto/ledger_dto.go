package dto

import "github.com/shopspring/decimal"

// ─── Ledgers ─────────────────────────────────────────────────────────────────
// time is optional. When given it is truncated to the minute, otherwise the
// server stamps the current minute.

type CreatePenaltyRequest struct {
	WorkerID    string          `json:"worker_id"   validate:"required"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"      validate:"gt=0"`
	Time        string          `json:"time"`
}

type CreateBonusRequest struct {
	WorkerID string          `json:"worker_id" validate:"required"`
	Amount   decimal.Decimal `json:"amount"    validate:"gt=0"`
	Time     string          `json:"time"`
}
