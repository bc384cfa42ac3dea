package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISOFormat is the canonical date format used for stored balance dates.
const ISOFormat = "2006-01-02"

// Parts holds the numeric components of a parsed date string.
type Parts struct {
	Year  int
	Month int
	Day   int
}

// ParseParts splits a flexible date string into year/month/day.
// Slash-separated input is read as M/D/Y, hyphen-separated as Y-M-D.
// Two-digit years are mapped into the 2000s. Returns nil if the string
// does not have at least three numeric parts or any component is zero.
func ParseParts(s string) *Parts {
	s = strings.TrimSpace(s)
	var fields []string
	slashed := strings.Contains(s, "/")
	if slashed {
		fields = strings.Split(s, "/")
	} else {
		fields = strings.Split(s, "-")
	}
	if len(fields) < 3 {
		return nil
	}

	nums := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return nil
		}
		nums[i] = n
	}

	var p Parts
	if slashed {
		p = Parts{Year: nums[2], Month: nums[0], Day: nums[1]}
	} else {
		p = Parts{Year: nums[0], Month: nums[1], Day: nums[2]}
	}
	if p.Year < 100 {
		p.Year += 2000
	}
	if p.Year == 0 || p.Month == 0 || p.Day == 0 {
		return nil
	}
	return &p
}

// Canonicalize converts a flexible date string to ISO "YYYY-MM-DD" form.
// Unparsable input is returned trimmed but otherwise unchanged, so a bulk
// import can carry the original value through rather than failing the row.
func Canonicalize(s string) string {
	p := ParseParts(s)
	if p == nil {
		return strings.TrimSpace(s)
	}
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
}

// ToTimestamp returns milliseconds since epoch at UTC midnight of the parsed
// date, or 0 when the string is unparsable.
func ToTimestamp(s string) int64 {
	p := ParseParts(s)
	if p == nil {
		return 0
	}
	return time.Date(p.Year, time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC).UnixMilli()
}

// DisplayMDY formats a canonical date in the M/D/YY display form used by
// ledger export. Unparsable input is returned trimmed.
func DisplayMDY(s string) string {
	p := ParseParts(s)
	if p == nil {
		return strings.TrimSpace(s)
	}
	return fmt.Sprintf("%d/%d/%02d", p.Month, p.Day, p.Year%100)
}

// MonthStarts returns the first-of-month sequence spanning min to max,
// stepping one calendar month at a time. Every intervening month is present
// even when no data point falls on it. Used as a chart x-axis tick set.
func MonthStarts(min, max time.Time) []time.Time {
	if max.Before(min) {
		return nil
	}
	cur := time.Date(min.Year(), min.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(max.Year(), max.Month(), 1, 0, 0, 0, 0, time.UTC)
	var ticks []time.Time
	for !cur.After(end) {
		ticks = append(ticks, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return ticks
}
