package domain

import "time"

// CalendarConfig layers the rules that decide which calendar days count as
// working days. Exact-date exclusions take precedence over exact-date
// inclusions, which take precedence over the weekday rule.
type CalendarConfig struct {
	// ExcludeWeekdays marks whole weekdays as non-working (e.g. weekends).
	ExcludeWeekdays map[time.Weekday]bool
	// IncludeDates forces specific days (YYYY-MM-DD) to be working even if
	// their weekday is excluded.
	IncludeDates map[string]bool
	// ExcludeDates forces specific days (YYYY-MM-DD) to be non-working.
	// Wins over IncludeDates.
	ExcludeDates map[string]bool
}

// DefaultCalendarConfig excludes weekends and carries no date exceptions.
func DefaultCalendarConfig() CalendarConfig {
	return CalendarConfig{
		ExcludeWeekdays: map[time.Weekday]bool{
			time.Saturday: true,
			time.Sunday:   true,
		},
		IncludeDates: map[string]bool{},
		ExcludeDates: map[string]bool{},
	}
}

// Clone returns a deep copy.
func (c CalendarConfig) Clone() CalendarConfig {
	out := CalendarConfig{
		ExcludeWeekdays: make(map[time.Weekday]bool, len(c.ExcludeWeekdays)),
		IncludeDates:    make(map[string]bool, len(c.IncludeDates)),
		ExcludeDates:    make(map[string]bool, len(c.ExcludeDates)),
	}
	for k := range c.ExcludeWeekdays {
		out.ExcludeWeekdays[k] = true
	}
	for k := range c.IncludeDates {
		out.IncludeDates[k] = true
	}
	for k := range c.ExcludeDates {
		out.ExcludeDates[k] = true
	}
	return out
}

// HasDateExceptions reports whether any exact-date rules are present.
func (c CalendarConfig) HasDateExceptions() bool {
	return len(c.IncludeDates) > 0 || len(c.ExcludeDates) > 0
}

// IsDefault reports whether the config equals DefaultCalendarConfig.
func (c CalendarConfig) IsDefault() bool {
	if c.HasDateExceptions() || len(c.ExcludeWeekdays) != 2 {
		return false
	}
	return c.ExcludeWeekdays[time.Saturday] && c.ExcludeWeekdays[time.Sunday]
}
