package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspire-tracker/internal/logger"
)

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("08:30")
	require.NoError(t, err)
	assert.Equal(t, "0 30 8 * * *", spec)

	for _, bad := range []string{"", "8", "24:00", "12:60", "ab:cd"} {
		_, err := buildDailySpec(bad)
		assert.Error(t, err, bad)
	}
}

func TestBuildIntervalSpec(t *testing.T) {
	spec, err := buildIntervalSpec(5 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "@every 18000s", spec)

	spec, err = buildIntervalSpec(time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "@every 1s", spec)

	_, err = buildIntervalSpec(0)
	assert.Error(t, err)
}

func TestSchedulerService_ScheduleReports(t *testing.T) {
	s := NewSchedulerService(time.UTC, logger.Nop())

	_, err := s.ScheduleReports("07:15", 0, func() {})
	require.NoError(t, err)
	_, err = s.ScheduleReports("bogus", time.Hour, func() {})
	require.NoError(t, err, "interval wins over the daily time")
	_, err = s.ScheduleReports("bogus", 0, func() {})
	assert.Error(t, err)

	s.Start()
	s.Stop()
}
