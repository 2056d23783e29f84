// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// MonthYear represents a calendar month in a given year. It is immutable
// and comparable: two values are equal iff their month and year are equal,
// and a MonthYear can be used directly as a map key.
type MonthYear struct {
	year  int
	month Month
}

// NewMonthYear returns the MonthYear for the given month and year. It
// returns an error wrapping ErrInvalidArgument if month is outside 1-12.
func NewMonthYear(month Month, year int) (MonthYear, error) {
	if month < 1 || month > 12 {
		return MonthYear{}, fmt.Errorf("invalid month: %d: %w", month, ErrInvalidArgument)
	}
	return MonthYear{year: year, month: month}, nil
}

// MonthYearFromTime returns the MonthYear containing the given instant
// interpreted in the given location. A nil location means UTC.
func MonthYearFromTime(when time.Time, loc *time.Location) MonthYear {
	d := DateFromTime(when, loc)
	return MonthYear{year: d.year, month: d.month}
}

// MonthYearOfDate returns the MonthYear containing the given date.
func MonthYearOfDate(d Date) MonthYear {
	return MonthYear{year: d.year, month: d.month}
}

// Year returns the year.
func (my MonthYear) Year() int { return my.year }

// Month returns the month.
func (my MonthYear) Month() Month { return my.month }

// Next returns the following month, rolling the year over the
// December to January boundary.
func (my MonthYear) Next() MonthYear {
	if my.month == 12 {
		return MonthYear{year: my.year + 1, month: 1}
	}
	return MonthYear{year: my.year, month: my.month + 1}
}

// Previous returns the preceding month, rolling the year over the
// January to December boundary.
func (my MonthYear) Previous() MonthYear {
	if my.month == 1 {
		return MonthYear{year: my.year - 1, month: 12}
	}
	return MonthYear{year: my.year, month: my.month - 1}
}

// FirstDate returns the first day of the month.
func (my MonthYear) FirstDate() Date {
	return Date{year: my.year, month: my.month, day: 1}
}

// LastDate returns the last day of the month, taking leap years into
// account for February.
func (my MonthYear) LastDate() Date {
	return Date{year: my.year, month: my.month, day: DaysInMonth(my.year, my.month)}
}

// FirstInstant returns the first moment (00:00:00.000) of the month in UTC.
func (my MonthYear) FirstInstant() time.Time {
	return my.FirstDate().Time(time.UTC)
}

// LastInstant returns the last moment (23:59:59.999) of the month in UTC.
func (my MonthYear) LastInstant() time.Time {
	return my.LastDate().endOfDay(time.UTC)
}

// Period returns the period spanning the entire month.
func (my MonthYear) Period() Period {
	return Period{from: my.FirstDate(), to: my.LastDate()}
}

// Compare returns -1 if my is before my2, 0 if they are equal and 1 if my
// is after my2. The order is year-major, month-minor.
func (my MonthYear) Compare(my2 MonthYear) int {
	if my.year != my2.year {
		if my.year < my2.year {
			return -1
		}
		return 1
	}
	if my.month != my2.month {
		if my.month < my2.month {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if my is strictly before my2.
func (my MonthYear) Before(my2 MonthYear) bool {
	return my.Compare(my2) < 0
}

// After returns true if my is strictly after my2.
func (my MonthYear) After(my2 MonthYear) bool {
	return my.Compare(my2) > 0
}

func (my MonthYear) String() string {
	return fmt.Sprintf("%04d-%02d", my.year, my.month)
}

// Parse parses a month and year in the format '2006-01'.
func (my *MonthYear) Parse(val string) error {
	parts := strings.Split(val, "-")
	if len(parts) != 2 {
		return fmt.Errorf("invalid month year %q, expected '2006-01': %w", val, ErrFormat)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", parts[0], ErrFormat)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", parts[1], ErrFormat)
	}
	nmy, err := NewMonthYear(Month(month), year)
	if err != nil {
		return err
	}
	*my = nmy
	return nil
}

// MonthYearsBetween returns the ordered sequence of months starting at the
// month containing start whose last instant falls before end. A month that
// only partially overlaps end is excluded; use Period.MonthYears for an
// inclusive decomposition.
func MonthYearsBetween(start, end time.Time) MonthYearList {
	var myl MonthYearList
	cur := MonthYearFromTime(start, time.UTC)
	for cur.LastInstant().Before(end) {
		myl = append(myl, cur)
		cur = cur.Next()
	}
	return myl
}

// DistinctMonthYears returns the months containing the given instants,
// preserving first-seen order and removing duplicates. A nil location
// means UTC.
func DistinctMonthYears(instants []time.Time, loc *time.Location) MonthYearList {
	myl := make(MonthYearList, 0, len(instants))
	seen := map[MonthYear]struct{}{}
	for _, when := range instants {
		my := MonthYearFromTime(when, loc)
		if _, ok := seen[my]; ok {
			continue
		}
		myl = append(myl, my)
		seen[my] = struct{}{}
	}
	return slices.Clip(myl)
}

// MonthYearList represents a list of MonthYear values.
type MonthYearList []MonthYear

func (myl MonthYearList) Contains(my MonthYear) bool {
	for _, m := range myl {
		if m == my {
			return true
		}
	}
	return false
}

// Sort sorts the list in ascending order.
func (myl MonthYearList) Sort() {
	slices.SortFunc(myl, MonthYear.Compare)
}

func (myl MonthYearList) String() string {
	var out strings.Builder
	for i, m := range myl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(m.String())
	}
	return out.String()
}
