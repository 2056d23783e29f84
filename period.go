// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"cloudeng.io/errors"
)

// Period represents an inclusive date interval [from, to]. It is immutable
// and never empty: from is always on or before to, so every period spans
// at least one day. Period is comparable and two periods are equal iff
// both endpoints are equal.
type Period struct {
	from Date
	to   Date
}

// NewPeriod returns the period spanning from through to inclusive. It
// returns an error wrapping ErrInvalidArgument if from is after to.
func NewPeriod(from, to Date) (Period, error) {
	if from.After(to) {
		return Period{}, fmt.Errorf("from %v is after to %v: %w", from, to, ErrInvalidArgument)
	}
	return Period{from: from, to: to}, nil
}

// NewPeriodFromTimes returns the period spanning the calendar dates of the
// two instants interpreted in the given location. A nil location means
// UTC.
func NewPeriodFromTimes(start, end time.Time, loc *time.Location) (Period, error) {
	return NewPeriod(DateFromTime(start, loc), DateFromTime(end, loc))
}

// From returns the first date of the period.
func (p Period) From() Date { return p.from }

// To returns the last date of the period.
func (p Period) To() Date { return p.to }

// Contains returns true if the given date falls within the period,
// inclusive of both endpoints.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.from) && !d.After(p.to)
}

// ContainsPeriod returns true if every day of p2 falls within p.
func (p Period) ContainsPeriod(p2 Period) bool {
	return !p.from.After(p2.from) && !p.to.Before(p2.to)
}

// Overlaps returns true if the two periods share at least one day.
// It is symmetric: p.Overlaps(p2) == p2.Overlaps(p).
func (p Period) Overlaps(p2 Period) bool {
	return !p.from.After(p2.to) && !p2.from.After(p.to)
}

// Days returns the number of days in the period, inclusive of both
// endpoints; it is always at least 1.
func (p Period) Days() int {
	return DaysBetween(p.from, p.to) + 1
}

// Dates returns an iterator that yields each date in the period in order.
func (p Period) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for td := p.from; !td.After(p.to); td = td.Tomorrow() {
			if !yield(td) {
				return
			}
		}
	}
}

// Months returns an iterator that yields each month touched by the period
// in order, from the month containing From through the month containing To
// inclusive. It always yields at least one month.
func (p Period) Months() iter.Seq[MonthYear] {
	last := MonthYearOfDate(p.to)
	return func(yield func(MonthYear) bool) {
		for cur := MonthYearOfDate(p.from); ; cur = cur.Next() {
			if !yield(cur) {
				return
			}
			if cur == last {
				return
			}
		}
	}
}

// Weeks returns an iterator that yields each ISO week touched by the
// period in order, from the week containing From through the week
// containing To inclusive, stepping Monday to Monday. It always yields at
// least one week.
func (p Period) Weeks() iter.Seq[WeekOfYear] {
	last := WeekOfYearFromDate(p.to)
	return func(yield func(WeekOfYear) bool) {
		for cur := WeekOfYearFromDate(p.from); ; cur = cur.NextWeek() {
			if !yield(cur) {
				return
			}
			if cur == last {
				return
			}
		}
	}
}

// MonthYears returns the ordered, deduplicated months touched by any day
// of the period. The result is never empty.
func (p Period) MonthYears() MonthYearList {
	var myl MonthYearList
	for my := range p.Months() {
		myl = append(myl, my)
	}
	return myl
}

// WeekOfYears returns the ordered, deduplicated ISO weeks touched by any
// day of the period. The result is never empty.
func (p Period) WeekOfYears() WeekOfYearList {
	var wyl WeekOfYearList
	for wy := range p.Weeks() {
		wyl = append(wyl, wy)
	}
	return wyl
}

// InMonthYear returns true if the given month is one of the months touched
// by the period.
func (p Period) InMonthYear(my MonthYear) bool {
	first := MonthYearOfDate(p.from)
	last := MonthYearOfDate(p.to)
	return my.Compare(first) >= 0 && my.Compare(last) <= 0
}

// InWeekOfYear returns true if the given week is one of the weeks touched
// by the period.
func (p Period) InWeekOfYear(wy WeekOfYear) bool {
	first := WeekOfYearFromDate(p.from)
	last := WeekOfYearFromDate(p.to)
	return wy.Compare(first) >= 0 && wy.Compare(last) <= 0
}

func (p Period) String() string {
	return fmt.Sprintf("%s - %s", p.from, p.to)
}

// Parse parses a period in the format '2006-01-02:2006-01-03'. The from
// date must be on or before the to date.
func (p *Period) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>': %w", val, ErrFormat)
	}
	var from, to Date
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	np, err := NewPeriod(from, to)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// PeriodList represents a list of Period values.
type PeriodList []Period

// Parse parses a list of periods in the format expected by Period.Parse.
// The parsed list is without duplicates. All malformed entries are
// reported, not just the first.
func (pl *PeriodList) Parse(vals []string) error {
	if len(vals) == 0 {
		return nil
	}
	ps := make(PeriodList, 0, len(vals))
	seen := map[Period]struct{}{}
	errs := errors.M{}
	for _, val := range vals {
		var p Period
		if err := p.Parse(val); err != nil {
			errs.Append(err)
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		ps = append(ps, p)
		seen[p] = struct{}{}
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*pl = ps
	return nil
}

// Sort sorts the list by from date and then by to date.
func (pl PeriodList) Sort() {
	slices.SortFunc(pl, func(a, b Period) int {
		if c := a.from.Compare(b.from); c != 0 {
			return c
		}
		return a.to.Compare(b.to)
	})
}

// Merge returns a new list in which overlapping and consecutive periods
// are coalesced. The list is assumed to be sorted.
func (pl PeriodList) Merge() PeriodList {
	if len(pl) == 0 {
		return pl
	}
	merged := make(PeriodList, 0, len(pl))
	from := pl[0].from
	to := pl[0].to
	for i := 1; i < len(pl); i++ {
		cur := pl[i]
		if cur.from.DayNumber() <= to.DayNumber()+1 {
			if cur.to.After(to) {
				to = cur.to
			}
			continue
		}
		merged = append(merged, Period{from: from, to: to})
		from = cur.from
		to = cur.to
	}
	return slices.Clip(append(merged, Period{from: from, to: to}))
}
