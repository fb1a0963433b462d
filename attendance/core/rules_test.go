package core

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tapacademy.com/attendance/attendance/model"
)

var testLoc = time.FixedZone("UTC+10", 10*60*60)

func at(h, m, s int) time.Time {
	return time.Date(2025, 3, 4, h, m, s, 0, testLoc)
}

func TestCheckInStatus(t *testing.T) {
	rules := DefaultRules(testLoc)

	tests := []struct {
		name     string
		now      time.Time
		expected model.Status
	}{
		{name: "Early morning", now: at(7, 0, 0), expected: model.StatusPresent},
		{name: "One second before cutoff", now: at(9, 59, 59), expected: model.StatusPresent},
		{name: "Exactly at cutoff", now: at(10, 0, 0), expected: model.StatusPresent},
		{name: "Sub-second past cutoff", now: at(10, 0, 0).Add(time.Millisecond), expected: model.StatusLate},
		{name: "One second past cutoff", now: at(10, 0, 1), expected: model.StatusLate},
		{name: "Afternoon", now: at(15, 30, 0), expected: model.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rules.CheckInStatus(tt.now))
		})
	}
}

func TestCheckInStatusUsesRulesZone(t *testing.T) {
	rules := DefaultRules(testLoc)

	// 23:30 UTC on the 3rd is 09:30 on the 4th at UTC+10
	now := time.Date(2025, 3, 3, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, model.StatusPresent, rules.CheckInStatus(now))
	assert.Equal(t, "2025-03-04", rules.Today(now))
}

func TestCheckInStatusOnDSTDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	rules := DefaultRules(ny)

	tests := []struct {
		name     string
		now      time.Time
		expected model.Status
	}{
		{name: "Spring forward before cutoff", now: time.Date(2025, 3, 9, 9, 59, 59, 0, ny), expected: model.StatusPresent},
		{name: "Spring forward at cutoff", now: time.Date(2025, 3, 9, 10, 0, 0, 0, ny), expected: model.StatusPresent},
		{name: "Spring forward after cutoff", now: time.Date(2025, 3, 9, 10, 30, 0, 0, ny), expected: model.StatusLate},
		{name: "Fall back before cutoff", now: time.Date(2025, 11, 2, 9, 30, 0, 0, ny), expected: model.StatusPresent},
		{name: "Fall back at cutoff", now: time.Date(2025, 11, 2, 10, 0, 0, 0, ny), expected: model.StatusPresent},
		{name: "Fall back after cutoff", now: time.Date(2025, 11, 2, 10, 0, 1, 0, ny), expected: model.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rules.CheckInStatus(tt.now))
		})
	}

	limit := rules.LateLimit(time.Date(2025, 11, 2, 8, 0, 0, 0, ny))
	assert.Equal(t, time.Date(2025, 11, 2, 10, 0, 0, 0, ny), limit)
	assert.Equal(t, 10, limit.In(ny).Hour())
}

func TestCheckOutStatus(t *testing.T) {
	rules := DefaultRules(testLoc)

	tests := []struct {
		name     string
		current  model.Status
		worked   time.Duration
		expected model.Status
	}{
		{name: "Present full day", current: model.StatusPresent, worked: 8 * time.Hour, expected: model.StatusPresent},
		{name: "Late full day stays late", current: model.StatusLate, worked: 6 * time.Hour, expected: model.StatusLate},
		{name: "Exactly threshold", current: model.StatusPresent, worked: 4 * time.Hour, expected: model.StatusPresent},
		{name: "Just under threshold", current: model.StatusPresent, worked: 4*time.Hour - time.Second, expected: model.StatusHalfDay},
		{name: "Late short day becomes half day", current: model.StatusLate, worked: time.Hour + 55*time.Minute, expected: model.StatusHalfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rules.CheckOutStatus(tt.current, tt.worked))
		})
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		name     string
		worked   time.Duration
		expected float64
	}{
		{name: "Four and a half hours", worked: 4*time.Hour + 30*time.Minute, expected: 4.5},
		{name: "Zero", worked: 0, expected: 0},
		{name: "Rounds up", worked: time.Hour + 59*time.Minute + 59*time.Second, expected: 2.0},
		{name: "Rounds down", worked: 20 * time.Minute, expected: 0.33},
		{name: "Forty minutes", worked: 40 * time.Minute, expected: 0.67},
		{name: "Half rounds away from zero", worked: 18 * time.Second, expected: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundHours(tt.worked), 1e-9)
		})
	}
}
