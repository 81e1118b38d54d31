package ledger

import (
	"fmt"
	"regexp"
	"time"

	"github.com/smartpark/sims-api/internal/domain"
)

const dayLayout = "2006-01-02"

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseMovementDate parses a movement date from a request body. Accepts a bare
// calendar day (YYYY-MM-DD) or a full RFC 3339 timestamp.
func ParseMovementDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	if t, err := time.ParseInLocation(dayLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// DayRange resolves a strict YYYY-MM-DD string to the half-open interval
// [00:00, 24:00) of that calendar day. Anything else is ErrInvalidInput.
func DayRange(date string) (from, to time.Time, err error) {
	if !dayPattern.MatchString(date) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid date format", domain.ErrInvalidInput)
	}
	from, err = time.ParseInLocation(dayLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid date format", domain.ErrInvalidInput)
	}
	return from, from.Add(24 * time.Hour), nil
}
