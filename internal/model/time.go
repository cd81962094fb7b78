package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Salaries and amounts travel as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	// TimestampLayout is the ISO-8601 form used for stored timestamps,
	// e.g. 2024-01-01T09:00:00.000Z.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
	// MinuteLayout is used for penalty and bonus times.
	MinuteLayout = "2006-01-02T15:04"
)

var scanLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var ErrBadTimestamp = errors.New("unrecognised timestamp")

// ParseTimestamp accepts RFC 3339 and zone-less ISO-8601 date-times down to
// minute precision. Zone-less values are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range scanLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadTimestamp
}

func FormatTimestamp(t time.Time) string { return t.UTC().Format(TimestampLayout) }

func FormatMinute(t time.Time) string { return t.UTC().Format(MinuteLayout) }
