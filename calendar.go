// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides immutable value types for calendar arithmetic:
// month-of-year and ISO-8601 week-of-year values and inclusive date
// periods, together with the conversions between them. All arithmetic is
// over the proleptic Gregorian calendar and is independent of locale and
// platform configuration. Weeks run Monday to Sunday and week numbering
// follows ISO-8601: week 1 of a year is the week containing that year's
// first Thursday.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidArgument is returned when a value is structurally well formed
	// but violates an invariant, such as a month outside 1-12, a week number
	// outside the valid range for its year, or a period whose end precedes
	// its start.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFormat is returned when a textual value cannot be parsed.
	ErrFormat = errors.New("invalid format")
)

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 28 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 29 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
	months          = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// Month as an int.
type Month time.Month

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %q: %w", val, ErrFormat)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d: %w", n, ErrInvalidArgument)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) == 0 {
		return 0, fmt.Errorf("invalid month: %q: %w", val, ErrFormat)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %q: %w", val, ErrFormat)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	} else if errors.Is(err, ErrInvalidArgument) {
		return err
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

func (m Month) String() string {
	return time.Month(m).String()
}
