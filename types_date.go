package finance

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a timezone-less calendar day.
//
// Transaction dates have day-level granularity only; every grouping
// (month keys, calendar heat-maps, year-to-date sums) derives from this
// single value so there is no room for timezone drift.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// DaysInMonth returns the number of days in the date's month.
func (d Date) DaysInMonth() int { return NewDate(d.y, d.m+1, 0).Day() }

// MonthKey returns the calendar-month key of the date.
func (d Date) MonthKey() MonthKey { return MonthKey(d.time().Format("2006-01")) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		// Tolerate full timestamps from older exports, keeping the calendar day only.
		on, err = time.Parse(time.RFC3339, str)
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*d = Date{}
		return nil
	}
	on, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date in data file: %w", err)
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	// The zero date renders as the empty string so optional dates survive
	// a round trip.
	var str string
	if !d.IsZero() {
		str = d.String()
	}
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshal/unmarshaler type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// MonthKey identifies a calendar month as a "YYYY-MM" string.
//
// Budgets are keyed by it, and monthly rollups match transactions by
// string prefix on the transaction date, which is exact because both
// sides use the same ISO-8601 rendering.
type MonthKey string

// NewMonthKey returns the key for a given year and month.
func NewMonthKey(year int, month time.Month) MonthKey {
	return NewDate(year, month, 1).MonthKey()
}

// ParseMonthKey parses a "YYYY-MM" string.
func ParseMonthKey(str string) (MonthKey, error) {
	on, err := time.Parse("2006-01", strings.TrimSpace(str))
	if err != nil {
		return "", fmt.Errorf("invalid month %q want format \"YYYY-MM\": %w", str, err)
	}
	return NewMonthKey(on.Year(), on.Month()), nil
}

// Contains reports whether the given day falls within the month.
func (m MonthKey) Contains(d Date) bool {
	return strings.HasPrefix(d.String(), string(m))
}

// First returns the first day of the month.
func (m MonthKey) First() Date {
	on, err := time.Parse("2006-01", string(m))
	if err != nil {
		return Date{}
	}
	return NewDate(on.Year(), on.Month(), 1)
}

func (m MonthKey) String() string { return string(m) }
