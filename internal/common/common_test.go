package common

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer(t *testing.T) {
	timer := NewNamedTimer("suppression")
	time.Sleep(time.Millisecond)
	d := timer.Stop()

	assert.Positive(t, d)
	assert.Equal(t, d, timer.Duration())
	assert.Equal(t, "suppression", timer.Name())
	assert.True(t, strings.HasPrefix(timer.String(), "suppression: "))

	unnamed := NewTimer()
	unnamed.Stop()
	assert.Empty(t, unnamed.Name())
}

func TestTrialsStats(t *testing.T) {
	trials := NewTrials("sparse")
	trials.Add(10 * time.Millisecond)
	trials.Add(20 * time.Millisecond)
	trials.Add(30 * time.Millisecond)

	require.Equal(t, 3, trials.N())
	assert.InDelta(t, float64(20*time.Millisecond), float64(trials.Mean()), float64(time.Microsecond))
	assert.InDelta(t, float64(10*time.Millisecond), float64(trials.StdDev()), float64(50*time.Microsecond))
	assert.Contains(t, trials.String(), "sparse: mean")
}

func TestTrialsEmpty(t *testing.T) {
	trials := NewTrials("empty")
	assert.Equal(t, time.Duration(0), trials.Mean())
	assert.Equal(t, time.Duration(0), trials.StdDev())
}

func TestSpeedup(t *testing.T) {
	naive := NewTrials("naive")
	naive.Add(100 * time.Millisecond)
	sparse := NewTrials("sparse")
	sparse.Add(10 * time.Millisecond)

	assert.InDelta(t, 10.0, Speedup(naive, sparse), 1e-9)
	assert.Zero(t, Speedup(naive, NewTrials("none")))
}
