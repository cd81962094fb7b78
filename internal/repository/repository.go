// Package repository exposes one repository per entity collection. Each
// operation is a full load → scan → (mutate → save) pass over the
// collection document in the configured store backend.
package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrQRCodeInUse is returned when a worker write would give two workers
	// the same QR code text.
	ErrQRCodeInUse = errors.New("qr code already assigned")
)

// indexOf returns the position of the first item matching pred, or -1.
func indexOf[T any](items []T, pred func(T) bool) int {
	for i, it := range items {
		if pred(it) {
			return i
		}
	}
	return -1
}

// filter returns the items matching pred; never nil.
func filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
