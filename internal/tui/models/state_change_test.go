package models

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/stepview/internal/stepview"
)

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{})
}

func states(v *stepview.View) []stepview.State {
	var out []stepview.State
	for _, s := range v.Steps() {
		out = append(out, s.State)
	}
	return out
}

func newChanger(t *testing.T) (*stepview.View, *StateChanger) {
	t.Helper()
	v := demoPages[PageStateChange].build(stepview.WithLogger(quietLogger()))
	c, err := NewStateChanger(v)
	require.NoError(t, err)
	return v, c
}

const (
	nc  = stepview.NotCompleted
	cur = stepview.Current
	cmp = stepview.Completed
)

func TestStateChangerStartsOnFirstStep(t *testing.T) {
	v, c := newChanger(t)

	assert.Equal(t, 0, c.Index())
	assert.Equal(t, nc, c.Saved())
	assert.False(t, c.CanPrev())
	assert.True(t, c.CanNext())
	assert.Equal(t, []stepview.State{cur, nc, nc, nc, nc}, states(v))
}

func TestStateChangerRestoresSavedState(t *testing.T) {
	v, c := newChanger(t)

	require.NoError(t, c.Next())
	assert.Equal(t, []stepview.State{nc, cur, nc, nc, nc}, states(v))

	assert.Equal(t, cmp, c.Toggle())
	require.NoError(t, c.Next())
	assert.Equal(t, []stepview.State{nc, cmp, cur, nc, nc}, states(v))

	require.NoError(t, c.Prev())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, cmp, c.Saved(), "the state step 1 had is remembered")
	assert.Equal(t, []stepview.State{nc, cur, nc, nc, nc}, states(v))
}

func TestStateChangerStopsAtEnds(t *testing.T) {
	v, c := newChanger(t)

	require.NoError(t, c.Prev())
	assert.Equal(t, 0, c.Index())

	for range 10 {
		require.NoError(t, c.Next())
	}
	assert.Equal(t, 4, c.Index())
	assert.False(t, c.CanNext())
	assert.Equal(t, []stepview.State{nc, nc, nc, nc, cur}, states(v))
}

func TestStateChangerToggleLabel(t *testing.T) {
	_, c := newChanger(t)

	assert.Equal(t, "Mark completed", c.ToggleLabel())
	c.Toggle()
	assert.Equal(t, "Mark not completed", c.ToggleLabel())
	c.Toggle()
	assert.Equal(t, nc, c.Saved())
}

func TestNewStateChangerNeedsSteps(t *testing.T) {
	_, err := NewStateChanger(stepview.NewHorizontal(stepview.WithLogger(quietLogger())))
	assert.ErrorIs(t, err, stepview.ErrStepsUnset)
}
