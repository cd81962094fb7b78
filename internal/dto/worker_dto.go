package dto

import (
	"rebowork/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Workers ─────────────────────────────────────────────────────────────────

// CreateWorkerRequest — id may be omitted, the server then assigns one.
type CreateWorkerRequest struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"                   validate:"required"`
	LastName             string           `json:"lastName"               validate:"required"`
	Age                  int              `json:"age"                    validate:"gt=0,lte=50"`
	Position             string           `json:"position"               validate:"required"`
	HoursToWork          string           `json:"hours_to_work"          validate:"required"`
	MonthlySalary        decimal.Decimal  `json:"monthly_salary"         validate:"gt=0"`
	StatusWorking        model.WorkStatus `json:"status_working"         validate:"required,oneof=working not_working"`
	MonthlyWorkedMinutes int              `json:"monthly_worked_minutes" validate:"min=0"`
	QRCodeText           string           `json:"qr_code_text"           validate:"required"`
}

// UpdateWorkerRequest patches profile fields only. Work status and worked
// minutes belong to the attendance recorder.
type UpdateWorkerRequest struct {
	Name          *string          `json:"name"           validate:"omitempty,min=1"`
	LastName      *string          `json:"lastName"       validate:"omitempty,min=1"`
	Age           *int             `json:"age"            validate:"omitempty,gt=0,lte=50"`
	Position      *string          `json:"position"       validate:"omitempty,min=1"`
	HoursToWork   *string          `json:"hours_to_work"  validate:"omitempty,min=1"`
	MonthlySalary *decimal.Decimal `json:"monthly_salary" validate:"omitempty,gt=0"`
	QRCodeText    *string          `json:"qr_code_text"   validate:"omitempty,min=1"`
}
