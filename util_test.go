// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"time"

	"cloudeng.io/calendar"
)

func newDate(y, m, d int) calendar.Date {
	date, err := calendar.NewDate(y, calendar.Month(m), d)
	if err != nil {
		panic(err)
	}
	return date
}

func parseDate(val string) calendar.Date {
	var d calendar.Date
	if err := d.Parse(val); err != nil {
		panic(err)
	}
	return d
}

func newMonthYear(m, y int) calendar.MonthYear {
	my, err := calendar.NewMonthYear(calendar.Month(m), y)
	if err != nil {
		panic(err)
	}
	return my
}

func newWeekOfYear(w, y int) calendar.WeekOfYear {
	wy, err := calendar.NewWeekOfYear(w, y)
	if err != nil {
		panic(err)
	}
	return wy
}

func newPeriod(from, to string) calendar.Period {
	p, err := calendar.NewPeriod(parseDate(from), parseDate(to))
	if err != nil {
		panic(err)
	}
	return p
}

func newMonthYearList(mys ...calendar.MonthYear) calendar.MonthYearList {
	r := make(calendar.MonthYearList, len(mys))
	copy(r, mys)
	return r
}

func newWeekOfYearList(wys ...calendar.WeekOfYear) calendar.WeekOfYearList {
	r := make(calendar.WeekOfYearList, len(wys))
	copy(r, wys)
	return r
}

func utc(y, m, d, hour int) time.Time {
	return time.Date(y, time.Month(m), d, hour, 0, 0, 0, time.UTC)
}
