package protocol

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func start(t *testing.T) *Machine {
	t.Helper()
	m := New()
	require.NoError(t, m.Start())
	return m
}

func advanceToSimplify(t *testing.T, m *Machine, now time.Time) {
	t.Helper()
	require.NoError(t, m.Externalize("Choose pricing model", "Fear of losing early customers"))
	_, err := m.ArmConstraint(now)
	require.NoError(t, err)
}

func TestStartLeavesIdle(t *testing.T) {
	m := New()
	assert.Equal(t, StateIdle, m.State())
	require.NoError(t, m.Start())
	assert.Equal(t, StateExternalize, m.State())
}

func TestStartTwiceFails(t *testing.T) {
	m := start(t)
	err := m.Start()
	assert.True(t, IsValidation(err))
	assert.Equal(t, StateExternalize, m.State())
}

func TestExternalizeRequiresBothInputs(t *testing.T) {
	m := start(t)

	err := m.Externalize("", "fear of failing")
	require.True(t, IsValidation(err))
	assert.Equal(t, StateExternalize, m.State(), "invalid input must not advance the machine")

	err = m.Externalize("pick a vendor", "   ")
	require.True(t, IsValidation(err))
	assert.Equal(t, StateExternalize, m.State())

	require.NoError(t, m.Externalize("pick a vendor", "fear of lock-in"))
	assert.Equal(t, StateConstraint, m.State())
}

func TestArmConstraintRecordsDeadline(t *testing.T) {
	m := start(t)
	require.NoError(t, m.Externalize("pick a vendor", "fear of lock-in"))

	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	deadline, err := m.ArmConstraint(now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(20*time.Minute), deadline)
	assert.Equal(t, StateSimplify, m.State())
}

func TestSimplifyRequiresBothOptions(t *testing.T) {
	m := start(t)
	advanceToSimplify(t, m, time.Now())

	_, err := m.Simplify("", "Build it in-house")
	require.True(t, IsValidation(err))
	assert.Equal(t, StateSimplify, m.State())

	result, err := m.Simplify("Buy the SaaS", "Build it in-house")
	require.NoError(t, err)
	assert.False(t, result.AutoSelected)
	assert.Equal(t, StateCommit, m.State())
}

func TestSimplifyIdenticalOptionsCoinFlip(t *testing.T) {
	// Deterministic flip: always pick option A.
	m := NewWithFlip(func() bool { return true })
	require.NoError(t, m.Start())
	advanceToSimplify(t, m, time.Now())

	result, err := m.Simplify("Ship now", "ship now ")
	require.NoError(t, err)
	require.True(t, result.AutoSelected)
	assert.Equal(t, "Ship now", result.Winner, "the winning option text is recorded verbatim")
}

func TestSimplifyIdenticalOptionsCoinFlipOtherSide(t *testing.T) {
	m := NewWithFlip(func() bool { return false })
	require.NoError(t, m.Start())
	advanceToSimplify(t, m, time.Now())

	result, err := m.Simplify("Ship now", "ship now ")
	require.NoError(t, err)
	require.True(t, result.AutoSelected)
	assert.Equal(t, "ship now ", result.Winner)
}

func TestCommitProducesDraft(t *testing.T) {
	m := start(t)
	armed := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	require.NoError(t, m.Externalize("Choose pricing model", "Fear of losing early customers"))
	_, err := m.ArmConstraint(armed)
	require.NoError(t, err)
	_, err = m.Simplify("Flat monthly fee", "Usage-based pricing")
	require.NoError(t, err)

	draft, err := m.Commit("B", "Usage tracks value delivered", armed.Add(12*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, "Choose pricing model → Usage-based pricing", draft.Decision)
	assert.Equal(t, "Usage-based pricing", draft.Chosen)
	assert.Equal(t, 12, draft.ElapsedMinutes)
	assert.True(t, draft.MadeUnderParalysis)
	assert.False(t, draft.CoinFlipped)
	assert.Equal(t, StateDone, m.State())
}

func TestCommitRequiresRationale(t *testing.T) {
	m := start(t)
	now := time.Now()
	advanceToSimplify(t, m, now)
	_, err := m.Simplify("A path", "B path")
	require.NoError(t, err)

	_, err = m.Commit("A", "  ", now)
	require.True(t, IsValidation(err))
	assert.Equal(t, StateCommit, m.State(), "missing rationale must not advance the machine")

	_, err = m.Commit("", "solid reasoning", now)
	require.True(t, IsValidation(err))
	assert.Equal(t, StateCommit, m.State())

	_, err = m.Commit("C", "solid reasoning", now)
	require.True(t, IsValidation(err))

	draft, err := m.Commit("a", "solid reasoning", now)
	require.NoError(t, err)
	assert.Equal(t, "A path", draft.Chosen)
}

func TestCommitAfterCoinFlipIgnoresChoice(t *testing.T) {
	m := NewWithFlip(func() bool { return false })
	require.NoError(t, m.Start())
	now := time.Now()
	advanceToSimplify(t, m, now)
	result, err := m.Simplify("ship it", "Ship it")
	require.NoError(t, err)
	require.True(t, result.AutoSelected)

	draft, err := m.Commit("", "coin decided, moving on", now.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "Ship it", draft.Chosen)
	assert.True(t, draft.CoinFlipped)
}

func TestElapsedNeverNegative(t *testing.T) {
	m := start(t)
	armed := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	require.NoError(t, m.Externalize("d", "f"))
	_, err := m.ArmConstraint(armed)
	require.NoError(t, err)
	_, err = m.Simplify("x", "y")
	require.NoError(t, err)

	draft, err := m.Commit("A", "r", armed.Add(-time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 0, draft.ElapsedMinutes)
}

func TestCancelDiscardsStepData(t *testing.T) {
	m := start(t)
	advanceToSimplify(t, m, time.Now())

	require.NoError(t, m.Cancel())
	assert.Equal(t, StateIdle, m.State())

	// A cancelled invocation can be restarted from scratch.
	require.NoError(t, m.Start())
	err := m.Externalize("", "")
	assert.True(t, IsValidation(err))
}

func TestCancelAfterDoneFails(t *testing.T) {
	m := start(t)
	now := time.Now()
	advanceToSimplify(t, m, now)
	_, err := m.Simplify("x", "y")
	require.NoError(t, err)
	_, err = m.Commit("A", "done is done", now)
	require.NoError(t, err)

	err = m.Cancel()
	assert.True(t, IsValidation(err))
}

func TestStepsOutOfOrderFail(t *testing.T) {
	m := New()

	err := m.Externalize("d", "f")
	assert.True(t, IsValidation(err))

	_, err = m.ArmConstraint(time.Now())
	assert.True(t, IsValidation(err))

	_, err = m.Simplify("a", "b")
	assert.True(t, IsValidation(err))

	_, err = m.Commit("A", "r", time.Now())
	assert.True(t, IsValidation(err))
}
