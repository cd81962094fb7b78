package dto

import "rebowork/internal/model"

// ─── Attendance ──────────────────────────────────────────────────────────────

// CreateHistoryRequest is one scanner event. The worker is identified by id,
// by QR code text, or both. scan_time defaults to the server clock.
type CreateHistoryRequest struct {
	WorkerID      string         `json:"worker_id"       validate:"required_without=QRCodeText"`
	QRCodeText    string         `json:"qr_code_text"    validate:"required_without=WorkerID"`
	WorkPlaceName string         `json:"work_place_name" validate:"required"`
	ScanTime      string         `json:"scan_time"`
	StatusType    model.ScanType `json:"status_type"     validate:"required,oneof=enter exit"`
}
