package model

import "github.com/shopspring/decimal"

// Penalty is a disciplinary deduction recorded against a worker.
type Penalty struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Time        string          `json:"time"`
}

// Bonus is an extra payment recorded for a worker.
type Bonus struct {
	ID       string          `json:"id"`
	WorkerID string          `json:"worker_id"`
	Amount   decimal.Decimal `json:"amount"`
	Time     string          `json:"time"`
}
