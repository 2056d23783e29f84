// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"iter"

	"cloudeng.io/algo/container/heap"
)

// BoundaryKind identifies the kind of calendar boundary a Boundary marks.
type BoundaryKind int

const (
	// MonthStart marks the first day of a month.
	MonthStart BoundaryKind = iota
	// WeekStart marks the Monday of an ISO week.
	WeekStart
)

func (k BoundaryKind) String() string {
	switch k {
	case MonthStart:
		return "month start"
	case WeekStart:
		return "week start"
	default:
		return fmt.Sprintf("boundary kind %d", int(k))
	}
}

// Boundary is a calendar boundary, a month or week start, falling within
// a period.
type Boundary struct {
	Date Date
	Kind BoundaryKind
}

func (b Boundary) String() string {
	return fmt.Sprintf("%s: %s", b.Date, b.Kind)
}

// boundaryKey orders boundaries chronologically with month starts ahead of
// week starts on a shared day.
func boundaryKey(b Boundary) int64 {
	return int64(b.Date.DayNumber())*2 + int64(b.Kind)
}

// Boundaries returns an iterator that yields, in chronological order, every
// month start and week start that falls within the period. The two streams
// are merged as they are generated; when a month and a week start on the
// same day the month boundary is yielded first.
func (p Period) Boundaries() iter.Seq[Boundary] {
	return func(yield func(Boundary) bool) {
		firstMonth := MonthYearOfDate(p.from).FirstDate()
		if firstMonth.Before(p.from) {
			firstMonth = MonthYearOfDate(p.from).Next().FirstDate()
		}
		firstWeek := WeekOfYearFromDate(p.from).FirstDay()
		if firstWeek.Before(p.from) {
			firstWeek = firstWeek.AddDays(7)
		}
		h := heap.NewMin(heap.WithSliceCap[int64, Boundary](2))
		for _, b := range []Boundary{
			{Date: firstMonth, Kind: MonthStart},
			{Date: firstWeek, Kind: WeekStart},
		} {
			if p.Contains(b.Date) {
				h.Push(boundaryKey(b), b)
			}
		}
		for h.Len() > 0 {
			_, b := h.Pop()
			if !yield(b) {
				return
			}
			next := b
			switch b.Kind {
			case MonthStart:
				next.Date = MonthYearOfDate(b.Date).Next().FirstDate()
			case WeekStart:
				next.Date = b.Date.AddDays(7)
			}
			if p.Contains(next.Date) {
				h.Push(boundaryKey(next), next)
			}
		}
	}
}
