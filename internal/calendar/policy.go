// Package calendar decides which calendar days count as working days under
// a layered inclusion/exclusion policy, and provides the day-walking
// arithmetic the timeline layout is built on.
package calendar

import (
	"errors"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
)

// ErrCalendarExhausted is returned when a forward walk cannot find enough
// working days within its scan limit. This only happens with pathological
// configs that exclude every day; the cap is a deliberate guard against an
// unbounded walk.
var ErrCalendarExhausted = errors.New("calendar exhausted: no working day within scan limit")

// scanSlack bounds forward walks: a walk looking for n working days gives
// up after 4n+scanSlack calendar days.
const scanSlack = 366

// IsWorkingDay applies the policy layers in priority order: exact-date
// exclusion wins over exact-date inclusion, which wins over the weekday
// rule; everything else is a working day.
func IsWorkingDay(date time.Time, cfg domain.CalendarConfig) bool {
	key := domain.FormatDate(date)
	if cfg.ExcludeDates[key] {
		return false
	}
	if cfg.IncludeDates[key] {
		return true
	}
	return !cfg.ExcludeWeekdays[date.Weekday()]
}

// CountWorkingDays counts working days in [start, end], both ends
// inclusive. An empty range (end before start) counts zero. When the config
// carries no date exceptions the count is computed arithmetically from the
// weekly pattern; otherwise the range is enumerated.
func CountWorkingDays(start, end time.Time, cfg domain.CalendarConfig) int {
	first, last := domain.DayOf(start), domain.DayOf(end)
	if last.Before(first) {
		return 0
	}
	if !cfg.HasDateExceptions() {
		return countByWeekPattern(first, last, cfg)
	}
	count := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, cfg) {
			count++
		}
	}
	return count
}

// countByWeekPattern exploits that the weekday rule repeats every 7 days:
// whole weeks contribute a fixed count, the remainder is enumerated.
func countByWeekPattern(first, last time.Time, cfg domain.CalendarConfig) int {
	totalDays := domain.DaysBetween(first, last) + 1
	workingPerWeek := 7 - len(cfg.ExcludeWeekdays)

	fullWeeks := totalDays / 7
	count := fullWeeks * workingPerWeek
	for d := first.AddDate(0, 0, fullWeeks*7); !d.After(last); d = d.AddDate(0, 0, 1) {
		if !cfg.ExcludeWeekdays[d.Weekday()] {
			count++
		}
	}
	return count
}

// WorkingDayScale returns every working day in [start, end] in order, both
// ends inclusive. An empty range yields an empty scale.
func WorkingDayScale(start, end time.Time, cfg domain.CalendarConfig) []time.Time {
	first, last := domain.DayOf(start), domain.DayOf(end)
	var scale []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, cfg) {
			scale = append(scale, d)
		}
	}
	return scale
}

// AddWorkingDays walks forward from start, scanning at start+1, until n
// working days have been passed, and returns the n-th one. n <= 0 returns
// start unchanged. The walk is capped; an all-excluded calendar yields
// ErrCalendarExhausted instead of hanging.
func AddWorkingDays(start time.Time, n int, cfg domain.CalendarConfig) (time.Time, error) {
	d := domain.DayOf(start)
	if n <= 0 {
		return d, nil
	}
	limit := 4*n + scanSlack
	passed := 0
	for i := 0; i < limit; i++ {
		d = d.AddDate(0, 0, 1)
		if IsWorkingDay(d, cfg) {
			passed++
			if passed == n {
				return d, nil
			}
		}
	}
	return time.Time{}, ErrCalendarExhausted
}

// NextWorkingDay returns the first working day at or after start, with the
// same scan cap as AddWorkingDays.
func NextWorkingDay(start time.Time, cfg domain.CalendarConfig) (time.Time, error) {
	d := domain.DayOf(start)
	for i := 0; i < scanSlack; i++ {
		if IsWorkingDay(d, cfg) {
			return d, nil
		}
		d = d.AddDate(0, 0, 1)
	}
	return time.Time{}, ErrCalendarExhausted
}

// WeekStart returns the start of date's week per the configured first
// weekday (Sunday or Monday).
func WeekStart(date time.Time, weekStartsOn time.Weekday) time.Time {
	d := domain.DayOf(date)
	diff := int(d.Weekday()) - int(weekStartsOn)
	if diff < 0 {
		diff += 7
	}
	return d.AddDate(0, 0, -diff)
}
