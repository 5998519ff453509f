package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusActive))
	assert.True(t, IsTerminal(StatusShipped))
	assert.True(t, IsTerminal(StatusKilled))
}

func TestApplyShipBeforeTarget(t *testing.T) {
	target := date(2026, 9, 15)
	now := date(2026, 9, 10)

	result := ApplyShip(&target, now)

	assert.Equal(t, StatusShipped, result.NewStatus)
	assert.Equal(t, now, result.CompletedAt)
	require.NotNil(t, result.ShippedEarly)
	assert.True(t, *result.ShippedEarly)
}

func TestApplyShipOnTargetDateCountsAsEarly(t *testing.T) {
	target := date(2026, 9, 15)
	result := ApplyShip(&target, date(2026, 9, 15))
	require.NotNil(t, result.ShippedEarly)
	assert.True(t, *result.ShippedEarly)
}

func TestApplyShipAfterTarget(t *testing.T) {
	target := date(2026, 9, 15)
	result := ApplyShip(&target, date(2026, 9, 20))
	require.NotNil(t, result.ShippedEarly)
	assert.False(t, *result.ShippedEarly)
}

func TestApplyShipWithoutTarget(t *testing.T) {
	result := ApplyShip(nil, date(2026, 9, 20))
	assert.Nil(t, result.ShippedEarly)
}

func TestApplyKill(t *testing.T) {
	now := date(2026, 9, 20)
	result := ApplyKill(now)

	assert.Equal(t, StatusKilled, result.NewStatus)
	assert.Equal(t, now, result.CompletedAt)
	assert.Nil(t, result.ShippedEarly)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusActive, InitialStatus())
}

func TestDaysRemaining(t *testing.T) {
	target := date(2026, 9, 15)

	days, ok := DaysRemaining(&target, date(2026, 9, 10))
	require.True(t, ok)
	assert.Equal(t, 5, days)

	days, ok = DaysRemaining(&target, date(2026, 9, 20))
	require.True(t, ok)
	assert.Equal(t, -5, days)

	_, ok = DaysRemaining(nil, date(2026, 9, 10))
	assert.False(t, ok)
}
