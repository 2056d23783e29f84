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

// WeeksInYear returns the number of ISO-8601 weeks in the given year, 52
// or 53. A year has 53 weeks iff its January 1 falls on a Thursday, or it
// is a leap year and January 1 falls on a Wednesday.
func WeeksInYear(year int) int {
	jan1 := Date{year: year, month: 1, day: 1}.ISOWeekday()
	if jan1 == 4 || (IsLeap(year) && jan1 == 3) {
		return 53
	}
	return 52
}

// weekOfDate returns the ISO-8601 week-year and week number containing the
// given date, using the Thursday rule: week 1 of a year is the week
// containing that year's first Thursday. The week-year differs from the
// calendar year for dates in very late December (week 1 of the next year)
// and very early January (week 52/53 of the previous year).
func weekOfDate(d Date) (year, week int) {
	week = (d.DayOfYear() - d.ISOWeekday() + 10) / 7
	if week < 1 {
		return d.year - 1, WeeksInYear(d.year - 1)
	}
	if week > WeeksInYear(d.year) {
		return d.year + 1, 1
	}
	return d.year, week
}

// weekStart returns the Monday on which the given week of the given
// week-year begins. Week 1 is the week containing January 4.
func weekStart(year, week int) Date {
	jan4 := Date{year: year, month: 1, day: 4}
	monday := jan4.AddDays(1 - jan4.ISOWeekday())
	return monday.AddDays(7 * (week - 1))
}

// WeekOfYear represents an ISO-8601 week: a Monday to Sunday span
// identified by a week number and a week-year. It is immutable and
// comparable: two values are equal iff their week and week-year are equal,
// and a WeekOfYear can be used directly as a map key.
type WeekOfYear struct {
	year int
	week int
}

// NewWeekOfYear returns the WeekOfYear with the given week number and
// week-year. It returns an error wrapping ErrInvalidArgument if week is
// outside 1 to WeeksInYear(year).
func NewWeekOfYear(week, year int) (WeekOfYear, error) {
	if n := WeeksInYear(year); week < 1 || week > n {
		return WeekOfYear{}, fmt.Errorf("invalid week for year %d: %d, expected 1-%d: %w", year, week, n, ErrInvalidArgument)
	}
	return WeekOfYear{year: year, week: week}, nil
}

// WeekOfYearFromTime returns the week containing the given instant in UTC.
func WeekOfYearFromTime(when time.Time) WeekOfYear {
	return WeekOfYearFromDate(DateFromTime(when, time.UTC))
}

// WeekOfYearFromDate returns the week containing the given date.
func WeekOfYearFromDate(d Date) WeekOfYear {
	year, week := weekOfDate(d)
	return WeekOfYear{year: year, week: week}
}

// Year returns the ISO-8601 week-year, which may differ from the calendar
// year of the week's days at year boundaries.
func (wy WeekOfYear) Year() int { return wy.year }

// Week returns the week number, 1-52 or 1-53 depending on the week-year.
func (wy WeekOfYear) Week() int { return wy.week }

// AddWeeks returns the week n weeks after (or before, for negative n) this
// week. The result is always Monday-anchored and its week number and
// week-year are recomputed from the new anchor date.
func (wy WeekOfYear) AddWeeks(n int) WeekOfYear {
	return WeekOfYearFromDate(wy.FirstDay().AddDays(7 * n))
}

// NextWeek returns the following week.
func (wy WeekOfYear) NextWeek() WeekOfYear {
	return wy.AddWeeks(1)
}

// PreviousWeek returns the preceding week.
func (wy WeekOfYear) PreviousWeek() WeekOfYear {
	return wy.AddWeeks(-1)
}

// NextWeeks returns the inclusive sequence of this week and the n
// following weeks, n+1 entries in total.
func (wy WeekOfYear) NextWeeks(n int) WeekOfYearList {
	wyl := make(WeekOfYearList, 0, n+1)
	wyl = append(wyl, wy)
	for i := 0; i < n; i++ {
		wy = wy.NextWeek()
		wyl = append(wyl, wy)
	}
	return wyl
}

// FirstDay returns the Monday on which the week begins.
func (wy WeekOfYear) FirstDay() Date {
	return weekStart(wy.year, wy.week)
}

// LastDay returns the Sunday on which the week ends, 6 days after FirstDay.
func (wy WeekOfYear) LastDay() Date {
	return wy.FirstDay().AddDays(6)
}

// FirstInstant returns the week's first moment, Monday 00:00:00.000 UTC.
func (wy WeekOfYear) FirstInstant() time.Time {
	return wy.FirstDay().Time(time.UTC)
}

// LastInstant returns the week's last moment, Sunday 23:59:59.999 UTC.
func (wy WeekOfYear) LastInstant() time.Time {
	return wy.LastDay().endOfDay(time.UTC)
}

// MonthYears returns the one or two months touched by the week's 7 days,
// in chronological order. There are two only when the week straddles a
// month boundary.
func (wy WeekOfYear) MonthYears() MonthYearList {
	first := MonthYearOfDate(wy.FirstDay())
	last := MonthYearOfDate(wy.LastDay())
	if first == last {
		return MonthYearList{first}
	}
	return MonthYearList{first, last}
}

// Period returns the period spanning the week's Monday through Sunday.
func (wy WeekOfYear) Period() Period {
	return Period{from: wy.FirstDay(), to: wy.LastDay()}
}

// Compare returns -1 if wy is before wy2, 0 if they are equal and 1 if wy
// is after wy2. The order is week-year-major, week-minor.
func (wy WeekOfYear) Compare(wy2 WeekOfYear) int {
	if wy.year != wy2.year {
		if wy.year < wy2.year {
			return -1
		}
		return 1
	}
	if wy.week != wy2.week {
		if wy.week < wy2.week {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if wy is strictly before wy2.
func (wy WeekOfYear) Before(wy2 WeekOfYear) bool {
	return wy.Compare(wy2) < 0
}

// After returns true if wy is strictly after wy2.
func (wy WeekOfYear) After(wy2 WeekOfYear) bool {
	return wy.Compare(wy2) > 0
}

func (wy WeekOfYear) String() string {
	return fmt.Sprintf("week %d of %d", wy.week, wy.year)
}

// Parse parses a week in the ISO-8601 format '2006-W02'.
func (wy *WeekOfYear) Parse(val string) error {
	parts := strings.Split(val, "-W")
	if len(parts) != 2 {
		return fmt.Errorf("invalid week %q, expected '2006-W02': %w", val, ErrFormat)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", parts[0], ErrFormat)
	}
	week, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid week number %q: %w", parts[1], ErrFormat)
	}
	nwy, err := NewWeekOfYear(week, year)
	if err != nil {
		return err
	}
	*wy = nwy
	return nil
}

// WeekOfYearsBetween returns the ordered sequence of weeks starting at the
// week containing start whose last instant falls before end. A week that
// only partially overlaps end is excluded; use Period.WeekOfYears for an
// inclusive decomposition.
func WeekOfYearsBetween(start, end time.Time) WeekOfYearList {
	var wyl WeekOfYearList
	cur := WeekOfYearFromTime(start)
	for cur.LastInstant().Before(end) {
		wyl = append(wyl, cur)
		cur = cur.NextWeek()
	}
	return wyl
}

// LastInstantOfWeek returns 23:59:59 UTC of the Sunday of the week
// containing the given instant, ie. the latest such instant still inside
// the same week.
func LastInstantOfWeek(when time.Time) time.Time {
	last := WeekOfYearFromTime(when).LastDay()
	return time.Date(last.year, time.Month(last.month), last.day, 23, 59, 59, 0, time.UTC)
}

// WeekOfYearList represents a list of WeekOfYear values.
type WeekOfYearList []WeekOfYear

func (wyl WeekOfYearList) Contains(wy WeekOfYear) bool {
	for _, w := range wyl {
		if w == wy {
			return true
		}
	}
	return false
}

// Sort sorts the list in ascending order.
func (wyl WeekOfYearList) Sort() {
	slices.SortFunc(wyl, WeekOfYear.Compare)
}

func (wyl WeekOfYearList) String() string {
	var out strings.Builder
	for i, w := range wyl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(w.String())
	}
	return out.String()
}
