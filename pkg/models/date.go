package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the DD/MM/YYYY layout purchase and expense dates are stored in.
const DateLayout = "02/01/2006"

// parseLayout also accepts single-digit days and months ("1/6/2024").
const parseLayout = "2/1/2006"

// ErrInvalidDate is returned for dates that are not DD/MM/YYYY.
var ErrInvalidDate = errors.New("invalid date")

// ParseDate parses a DD/MM/YYYY date as midnight in loc. A nil loc means local time.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidDate)
	}
	t, err := time.ParseInLocation(parseLayout, cleaned, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate formats t as DD/MM/YYYY.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
