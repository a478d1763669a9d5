package holiday

import "time"

// monthDay encodes a date as month*100+day, giving every possible month/day
// combination a distinct ordinal (Jan 1 = 101, Feb 29 = 229, Dec 31 = 1231).
func monthDay(t time.Time) int {
	return int(t.Month())*100 + t.Day()
}

// InRange reports whether the holiday falls inside the inclusive range
// [start, end].
//
// Non-recurring holidays compare full calendar dates. Recurring holidays
// compare month and day only, treating the calendar as cyclic: a range such
// as Dec 20 - Jan 10 wraps the year boundary and matches both a Dec 25 and a
// Jan 5 holiday. A range covering a full year or more matches every
// recurring holiday. Feb 29 participates as an ordinary point on the cycle,
// so leap-day holidays never fault here.
func (h Holiday) InRange(start, end time.Time) bool {
	if !h.IsRecurring {
		return !h.HolidayDate.Before(start) && !h.HolidayDate.After(end)
	}

	// A full cycle contains every month/day
	if !end.AddDate(-1, 0, 0).Before(start) {
		return true
	}

	hd := monthDay(h.HolidayDate)
	s := monthDay(start)
	e := monthDay(end)

	if s <= e {
		return hd >= s && hd <= e
	}
	// Arc wraps the year boundary
	return hd >= s || hd <= e
}

// ProjectToYear pins the holiday's month/day onto the given year at
// midnight UTC. A Feb 29 holiday degrades to Feb 28 in non-leap years.
func (h Holiday) ProjectToYear(year int) time.Time {
	month := h.HolidayDate.Month()
	day := h.HolidayDate.Day()
	if month == time.February && day == 29 && !isLeapYear(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
