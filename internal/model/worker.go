package model

import "github.com/shopspring/decimal"

// WorkStatus is a worker's attendance state.
type WorkStatus string

const (
	StatusWorking    WorkStatus = "working"
	StatusNotWorking WorkStatus = "not_working"
)

// Worker is an employee tracked by the attendance scanner.
// MonthlyWorkedMinutes only grows; monthly resets happen outside this service.
type Worker struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	LastName             string          `json:"lastName"`
	Age                  int             `json:"age"`
	Position             string          `json:"position"`
	HoursToWork          string          `json:"hours_to_work"`
	MonthlySalary        decimal.Decimal `json:"monthly_salary"`
	StatusWorking        WorkStatus      `json:"status_working"`
	MonthlyWorkedMinutes int             `json:"monthly_worked_minutes"`
	QRCodeText           string          `json:"qr_code_text"`
	CreatedAt            string          `json:"created_at"`
}

// FullName is the display name recorded on completed tasks.
func (w Worker) FullName() string {
	return w.Name + " " + w.LastName
}
