package calendar

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Chilos/project-gantt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCountWorkingDays_FastPathMatchesEnumeration property-tests that the
// weekly-pattern arithmetic agrees with day-by-day enumeration for random
// windows and weekday exclusion sets.
func TestCountWorkingDays_FastPathMatchesEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 300; trial++ {
		cfg := domain.CalendarConfig{
			ExcludeWeekdays: map[time.Weekday]bool{},
			IncludeDates:    map[string]bool{},
			ExcludeDates:    map[string]bool{},
		}
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if rng.Intn(3) == 0 {
				cfg.ExcludeWeekdays[wd] = true
			}
		}

		start := domain.Date(2024, time.January, 1).AddDate(0, 0, rng.Intn(400))
		end := start.AddDate(0, 0, rng.Intn(60))

		want := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if IsWorkingDay(d, cfg) {
				want++
			}
		}

		got := CountWorkingDays(start, end, cfg)
		assert.Equal(t, want, got,
			"trial %d: window %s..%s, %d weekdays excluded",
			trial, domain.FormatDate(start), domain.FormatDate(end), len(cfg.ExcludeWeekdays))
	}
}

// TestAddWorkingDays_AgreesWithScale cross-checks the forward walk against
// the generated scale: the n-th working day after start is scale[n] of the
// scale starting at start+1.
func TestAddWorkingDays_AgreesWithScale(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		cfg := domain.DefaultCalendarConfig()
		if rng.Intn(2) == 0 {
			cfg.ExcludeDates[domain.FormatDate(domain.Date(2024, time.March, 1).AddDate(0, 0, rng.Intn(30)))] = true
		}

		start := domain.Date(2024, time.March, 1).AddDate(0, 0, rng.Intn(10))
		n := rng.Intn(15) + 1

		got, err := AddWorkingDays(start, n, cfg)
		require.NoError(t, err)

		scale := WorkingDayScale(start.AddDate(0, 0, 1), start.AddDate(0, 0, 120), cfg)
		require.GreaterOrEqual(t, len(scale), n)
		assert.Equal(t, scale[n-1], got, "trial %d", trial)
	}
}
