package model

// ScanType is the declared direction of an attendance scan.
type ScanType string

const (
	ScanEnter ScanType = "enter"
	ScanExit  ScanType = "exit"
)

// TargetStatus is the work status a scan of this type moves a worker into.
func (s ScanType) TargetStatus() WorkStatus {
	if s == ScanEnter {
		return StatusWorking
	}
	return StatusNotWorking
}

// History is one accepted attendance scan. Never modified after it is written.
type History struct {
	ID            string   `json:"id"`
	WorkerID      string   `json:"worker_id"`
	WorkPlaceName string   `json:"work_place_name"`
	ScanTime      string   `json:"scan_time"`
	StatusType    ScanType `json:"status_type"`
	QRCodeText    string   `json:"qr_code_text,omitempty"`
}
