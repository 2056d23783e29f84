// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date represents a single proleptic Gregorian calendar date with a year,
// month and day and no time of day. The zero value is not a valid date;
// use NewDate, DateFromTime or Parse. Date is comparable and two dates are
// equal iff their year, month and day are equal.
type Date struct {
	year  int
	month Month
	day   int
}

// NewDate returns the Date for the given year, month and day. It returns
// an error wrapping ErrInvalidArgument if month is outside 1-12 or day is
// outside the number of days in that month for that year.
func NewDate(year int, month Month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("invalid month: %d: %w", month, ErrInvalidArgument)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("invalid day for %v %v: %d: %w", month, year, day, ErrInvalidArgument)
	}
	return Date{year: year, month: month, day: day}, nil
}

// DateFromTime returns the calendar date of the given instant interpreted
// in the given location. A nil location means UTC.
func DateFromTime(when time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := when.In(loc).Date()
	return Date{year: y, month: Month(m), day: d}
}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Parse parses a date in the format '2006-01-02'. A value that is not of
// that shape returns an error wrapping ErrFormat; a well formed value with
// an out of range month or day returns an error wrapping ErrInvalidArgument.
func (d *Date) Parse(val string) error {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected '2006-01-02': %w", val, ErrFormat)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", parts[0], ErrFormat)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", parts[1], ErrFormat)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", parts[2], ErrFormat)
	}
	nd, err := NewDate(year, Month(month), day)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// Tomorrow returns the date of the next day, rolling over month and year
// boundaries.
func (d Date) Tomorrow() Date {
	if d.month == 12 && d.day == 31 {
		return Date{year: d.year + 1, month: 1, day: 1}
	}
	if d.day >= daysInMonthForYear(d.year)[d.month-1] {
		return Date{year: d.year, month: d.month + 1, day: 1}
	}
	return Date{year: d.year, month: d.month, day: d.day + 1}
}

// Yesterday returns the date of the previous day, rolling over month and
// year boundaries.
func (d Date) Yesterday() Date {
	if d.month == 1 && d.day == 1 {
		return Date{year: d.year - 1, month: 12, day: 31}
	}
	if d.day <= 1 {
		return Date{year: d.year, month: d.month - 1, day: daysInMonthForYear(d.year)[d.month-2]}
	}
	return Date{year: d.year, month: d.month, day: d.day - 1}
}

// DayNumber returns the number of days between this date and Jan 1 1970,
// negative for earlier dates. It is defined for all proleptic Gregorian
// dates, including years before 1.
func (d Date) DayNumber() int {
	y := d.year
	if d.month <= 2 {
		y--
	}
	era := y
	if y < 0 {
		era = y - 399
	}
	era /= 400
	yoe := y - era*400
	mp := int(d.month) + 9
	if d.month > 2 {
		mp = int(d.month) - 3
	}
	doy := (153*mp+2)/5 + d.day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// DateFromDayNumber is the inverse of DayNumber.
func DateFromDayNumber(n int) Date {
	z := n + 719468
	era := z
	if z < 0 {
		era = z - 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp - 9
	if mp < 10 {
		month = mp + 3
	}
	if month <= 2 {
		y++
	}
	return Date{year: y, month: Month(month), day: day}
}

// AddDays returns the date n days after (or before, for negative n) this
// date.
func (d Date) AddDays(n int) Date {
	return DateFromDayNumber(d.DayNumber() + n)
}

// DaysBetween returns the number of days from a to b, negative if b is
// before a.
func DaysBetween(a, b Date) int {
	return b.DayNumber() - a.DayNumber()
}

// ISOWeekday returns the ISO-8601 day of the week, Monday == 1 through
// Sunday == 7.
func (d Date) ISOWeekday() int {
	wd := (d.DayNumber() + 3) % 7
	if wd < 0 {
		wd += 7
	}
	return wd + 1
}

// DayOfYear returns the day of the year as 1-365 for non-leap years and
// 1-366 for leap years.
func (d Date) DayOfYear() int {
	if IsLeap(d.year) {
		return dayOfYearLeap[d.month-1] + d.day
	}
	return dayOfYear[d.month-1] + d.day
}

// Time returns the first instant (00:00:00.000) of the date in the given
// location. A nil location means UTC.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, loc)
}

func (d Date) endOfDay(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, time.Month(d.month), d.day, 23, 59, 59, int(999*time.Millisecond), loc)
}

// Compare returns -1 if d is before d2, 0 if they are equal and 1 if d is
// after d2.
func (d Date) Compare(d2 Date) int {
	if d.year != d2.year {
		if d.year < d2.year {
			return -1
		}
		return 1
	}
	if d.month != d2.month {
		if d.month < d2.month {
			return -1
		}
		return 1
	}
	if d.day != d2.day {
		if d.day < d2.day {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if d is strictly before d2.
func (d Date) Before(d2 Date) bool {
	return d.Compare(d2) < 0
}

// After returns true if d is strictly after d2.
func (d Date) After(d2 Date) bool {
	return d.Compare(d2) > 0
}

// DateList represents a list of Date values, it can be sorted and searched
// using the slices package.
type DateList []Date

func (dl DateList) Contains(d Date) bool {
	for _, dd := range dl {
		if dd == d {
			return true
		}
	}
	return false
}

func (dl DateList) String() string {
	var out strings.Builder
	for i, d := range dl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}
