// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"cloudeng.io/calendar"
)

func TestNewMonthYear(t *testing.T) {
	my, err := calendar.NewMonthYear(3, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := my.Month(), calendar.Month(3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := my.Year(), 2024; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, m := range []int{0, 13, -1} {
		if _, err := calendar.NewMonthYear(calendar.Month(m), 2024); !errors.Is(err, calendar.ErrInvalidArgument) {
			t.Errorf("%v: got %v, want %v", m, err, calendar.ErrInvalidArgument)
		}
	}
}

func TestMonthYearStepping(t *testing.T) {
	for _, tc := range []struct {
		my   calendar.MonthYear
		next calendar.MonthYear
	}{
		{newMonthYear(1, 2024), newMonthYear(2, 2024)},
		{newMonthYear(11, 2024), newMonthYear(12, 2024)},
		{newMonthYear(12, 2024), newMonthYear(1, 2025)},
		{newMonthYear(12, -1), newMonthYear(1, 0)},
	} {
		if got, want := tc.my.Next(), tc.next; got != want {
			t.Errorf("%v: got %v, want %v", tc.my, got, want)
		}
		if got, want := tc.next.Previous(), tc.my; got != want {
			t.Errorf("%v: got %v, want %v", tc.next, got, want)
		}
	}
}

func TestMonthYearInstants(t *testing.T) {
	ms := int(999 * time.Millisecond)
	for _, tc := range []struct {
		my    calendar.MonthYear
		first time.Time
		last  time.Time
	}{
		{newMonthYear(1, 2024),
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 31, 23, 59, 59, ms, time.UTC)},
		{newMonthYear(2, 2024),
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 2, 29, 23, 59, 59, ms, time.UTC)},
		{newMonthYear(2, 2023),
			time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2023, 2, 28, 23, 59, 59, ms, time.UTC)},
		{newMonthYear(12, 2024),
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 12, 31, 23, 59, 59, ms, time.UTC)},
	} {
		if got, want := tc.my.FirstInstant(), tc.first; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.my, got, want)
		}
		if got, want := tc.my.LastInstant(), tc.last; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.my, got, want)
		}
	}
}

func TestMonthYearOrdering(t *testing.T) {
	for _, tc := range []struct {
		a, b   calendar.MonthYear
		before bool
	}{
		{newMonthYear(1, 2024), newMonthYear(2, 2024), true},
		{newMonthYear(12, 2023), newMonthYear(1, 2024), true},
		{newMonthYear(3, 2024), newMonthYear(3, 2024), false},
		{newMonthYear(6, 2025), newMonthYear(7, 2024), false},
	} {
		if got, want := tc.a.Before(tc.b), tc.before; got != want {
			t.Errorf("%v < %v: got %v, want %v", tc.a, tc.b, got, want)
		}
		if tc.a != tc.b {
			if got, want := tc.b.After(tc.a), tc.before; got != want {
				t.Errorf("%v > %v: got %v, want %v", tc.b, tc.a, got, want)
			}
		}
	}

	myl := newMonthYearList(newMonthYear(3, 2024), newMonthYear(12, 2023), newMonthYear(1, 2024))
	myl.Sort()
	want := newMonthYearList(newMonthYear(12, 2023), newMonthYear(1, 2024), newMonthYear(3, 2024))
	if !reflect.DeepEqual(myl, want) {
		t.Errorf("got %v, want %v", myl, want)
	}
}

func TestMonthYearParse(t *testing.T) {
	for _, tc := range []struct {
		input string
		my    calendar.MonthYear
	}{
		{"2024-03", newMonthYear(3, 2024)},
		{"2024-12", newMonthYear(12, 2024)},
		{"0001-01", newMonthYear(1, 1)},
	} {
		var my calendar.MonthYear
		if err := my.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := my, tc.my; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		var rt calendar.MonthYear
		if err := rt.Parse(my.String()); err != nil {
			t.Errorf("%v: %v", my, err)
		}
		if got, want := rt, my; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []struct {
		input string
		err   error
	}{
		{"2024", calendar.ErrFormat},
		{"2024-03-01", calendar.ErrFormat},
		{"xx-03", calendar.ErrFormat},
		{"2024-13", calendar.ErrInvalidArgument},
		{"2024-00", calendar.ErrInvalidArgument},
	} {
		var my calendar.MonthYear
		err := my.Parse(tc.input)
		if err == nil {
			t.Errorf("%q: expected error", tc.input)
			continue
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%q: got %v, want %v", tc.input, err, tc.err)
		}
	}
}

func TestMonthYearFromTime(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	for _, tc := range []struct {
		when time.Time
		loc  *time.Location
		my   calendar.MonthYear
	}{
		{utc(2024, 3, 15, 12), nil, newMonthYear(3, 2024)},
		{utc(2024, 3, 31, 23), nil, newMonthYear(3, 2024)},
		{utc(2024, 3, 31, 23), tokyo, newMonthYear(4, 2024)},
	} {
		if got, want := calendar.MonthYearFromTime(tc.when, tc.loc), tc.my; got != want {
			t.Errorf("%v in %v: got %v, want %v", tc.when, tc.loc, got, want)
		}
	}
}

func TestMonthYearsBetween(t *testing.T) {
	for _, tc := range []struct {
		start, end time.Time
		months     calendar.MonthYearList
	}{
		// March only partially precedes the end instant and is excluded.
		{utc(2024, 1, 10, 0), utc(2024, 3, 15, 0),
			newMonthYearList(newMonthYear(1, 2024), newMonthYear(2, 2024))},
		// The end instant is within the start month.
		{utc(2024, 1, 10, 0), utc(2024, 1, 20, 0), nil},
		// December to February spans the year boundary.
		{utc(2023, 12, 1, 0), utc(2024, 2, 15, 0),
			newMonthYearList(newMonthYear(12, 2023), newMonthYear(1, 2024))},
	} {
		if got, want := calendar.MonthYearsBetween(tc.start, tc.end), tc.months; !reflect.DeepEqual(got, want) {
			t.Errorf("%v..%v: got %v, want %v", tc.start, tc.end, got, want)
		}
	}
}

func TestDistinctMonthYears(t *testing.T) {
	instants := []time.Time{
		utc(2024, 1, 5, 0),
		utc(2024, 3, 2, 0),
		utc(2024, 1, 20, 0),
		utc(2024, 3, 3, 0),
		utc(2023, 12, 31, 0),
	}
	got := calendar.DistinctMonthYears(instants, nil)
	want := newMonthYearList(newMonthYear(1, 2024), newMonthYear(3, 2024), newMonthYear(12, 2023))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := calendar.DistinctMonthYears(nil, nil); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestMonthYearPeriod(t *testing.T) {
	p := newMonthYear(2, 2024).Period()
	if got, want := p.From(), newDate(2024, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.To(), newDate(2024, 2, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Days(), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
