package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	for _, valid := range []string{"", "daily", "weekly", "monthly", "yearly"} {
		f, err := ParseFrequency(valid)
		require.NoError(t, err)
		assert.Equal(t, Frequency(valid), f)
	}

	for _, invalid := range []string{"biweekly", "Monthly", "quarterly", "every day"} {
		_, err := ParseFrequency(invalid)
		assert.Error(t, err, "frequency %q should be rejected", invalid)
	}
}

func TestAnnualMultiplier(t *testing.T) {
	assert.Equal(t, 365.0, FrequencyDaily.AnnualMultiplier())
	assert.Equal(t, 52.0, FrequencyWeekly.AnnualMultiplier())
	assert.Equal(t, 12.0, FrequencyMonthly.AnnualMultiplier())
	assert.Equal(t, 1.0, FrequencyYearly.AnnualMultiplier())
	assert.Equal(t, 1.0, FrequencyNone.AnnualMultiplier())
}

func TestMonthKey(t *testing.T) {
	e := Expense{Date: time.Date(2025, time.October, 31, 23, 59, 0, 0, time.UTC)}
	assert.Equal(t, "2025-10", e.MonthKey())
}

func TestMonthKeyNormalizesToUTC(t *testing.T) {
	// 2025-11-01T03:00:00+05:00 is still October in UTC; the month must
	// not follow the client offset.
	d, err := time.Parse(time.RFC3339, "2025-11-01T03:00:00+05:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-10", Expense{Date: d}.MonthKey())

	// And the other direction across the boundary.
	d, err = time.Parse(time.RFC3339, "2025-10-31T22:00:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-11", Expense{Date: d}.MonthKey())
}

func TestDefaultCategories(t *testing.T) {
	require.Len(t, DefaultCategories, 9)

	seen := make(map[string]bool)
	for _, c := range DefaultCategories {
		assert.False(t, seen[c.Name], "duplicate default category %q", c.Name)
		seen[c.Name] = true
		assert.Regexp(t, `^#[0-9A-Fa-f]{6}$`, c.Color)
	}
	assert.True(t, seen["Other"])
}
