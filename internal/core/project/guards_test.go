package project

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAddProject(t *testing.T) {
	assert.True(t, CanAddProject(0))
	assert.True(t, CanAddProject(1))
	assert.True(t, CanAddProject(2))
	assert.False(t, CanAddProject(3))
	assert.False(t, CanAddProject(4))
}

func TestCheckCapUnderCap(t *testing.T) {
	assert.NoError(t, CheckCap(nil))
	assert.NoError(t, CheckCap([]string{"API rewrite", "Launch deck"}))
}

func TestCheckCapAtCapCarriesActiveNames(t *testing.T) {
	names := []string{"API rewrite", "Launch deck", "Hiring loop"}
	err := CheckCap(names)
	require.Error(t, err)

	var capErr *CapExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, names, capErr.ActiveNames)
	for _, name := range names {
		assert.Contains(t, capErr.Error(), name)
	}
}

func TestIsCapExceeded(t *testing.T) {
	err := CheckCap([]string{"a", "b", "c"})
	assert.True(t, IsCapExceeded(err))
	assert.True(t, IsCapExceeded(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsCapExceeded(errors.New("other")))
	assert.False(t, IsCapExceeded(nil))
}
