package service

import "errors"

// Error categories. Every domain error below wraps exactly one of them so
// the transport layer can map outcomes with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

type domainError struct {
	kind error
	msg  string
}

func (e *domainError) Error() string { return e.msg }
func (e *domainError) Unwrap() error { return e.kind }

var (
	ErrWorkerNotFound  = &domainError{ErrNotFound, "worker not found"}
	ErrHistoryNotFound = &domainError{ErrNotFound, "history not found"}
	ErrPenaltyNotFound = &domainError{ErrNotFound, "penalty not found"}
	ErrBonusNotFound   = &domainError{ErrNotFound, "bonus not found"}
	ErrTaskNotFound    = &domainError{ErrNotFound, "task not found"}
	ErrUserNotFound    = &domainError{ErrNotFound, "user not found"}

	// ErrDuplicateScan rejects a scan that would move a worker into the
	// state they are already in (double check-in, exit while not working).
	ErrDuplicateScan = &domainError{ErrConflict, "scan rejected: worker is already in that state"}
	ErrUsernameTaken = &domainError{ErrConflict, "username already in use"}
	ErrQRCodeTaken   = &domainError{ErrConflict, "qr_code_text already assigned to another worker"}

	ErrInvalidScanTime   = &domainError{ErrValidation, "scan_time is not a valid ISO-8601 timestamp"}
	ErrInvalidRole       = &domainError{ErrValidation, "status_index is not a known role"}
	ErrInvalidLedgerTime = &domainError{ErrValidation, "time is not a valid ISO-8601 timestamp"}

	ErrInvalidCredentials = &domainError{ErrUnauthorized, "invalid username or password"}
	ErrInvalidRefresh     = &domainError{ErrUnauthorized, "refresh token invalid or expired"}
)
