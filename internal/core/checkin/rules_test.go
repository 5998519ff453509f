package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEnergy(t *testing.T) {
	assert.True(t, ValidEnergy(EnergyHigh))
	assert.True(t, ValidEnergy(EnergyMedium))
	assert.True(t, ValidEnergy(EnergyLow))
	assert.False(t, ValidEnergy("extreme"))
	assert.False(t, ValidEnergy(""))
}

func TestValidBlocker(t *testing.T) {
	assert.True(t, ValidBlocker(BlockerNone))
	assert.True(t, ValidBlocker(BlockerSelfDecision))
	assert.True(t, ValidBlocker(BlockerExternal))
	assert.False(t, ValidBlocker("me_decision"))
}

func TestCanConclude(t *testing.T) {
	tests := []struct {
		name      string
		current   MissionStatus
		requested MissionStatus
		wantErr   bool
	}{
		{"pending to shipped", StatusPending, StatusShipped, false},
		{"pending to blocked", StatusPending, StatusBlocked, false},
		{"pending to deferred", StatusPending, StatusDeferred, false},
		{"pending to pending rejected", StatusPending, StatusPending, true},
		{"pending to unknown rejected", StatusPending, "done", true},
		{"shipped is terminal", StatusShipped, StatusBlocked, true},
		{"blocked is terminal", StatusBlocked, StatusShipped, true},
		{"deferred is terminal", StatusDeferred, StatusShipped, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanConclude(tt.current, tt.requested)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsConcluded(t *testing.T) {
	assert.False(t, IsConcluded(StatusPending))
	assert.False(t, IsConcluded(""))
	assert.True(t, IsConcluded(StatusShipped))
	assert.True(t, IsConcluded(StatusBlocked))
	assert.True(t, IsConcluded(StatusDeferred))
}
