package common

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Trials accumulates repeated timing measurements for one implementation and
// summarizes them.
type Trials struct {
	name    string
	seconds []float64
}

// NewTrials creates an empty trial set with the given name.
func NewTrials(name string) *Trials {
	return &Trials{name: name}
}

// Add records one measurement.
func (t *Trials) Add(d time.Duration) {
	t.seconds = append(t.seconds, d.Seconds())
}

// N returns the number of recorded measurements.
func (t *Trials) N() int { return len(t.seconds) }

// Name returns the trial-set name.
func (t *Trials) Name() string { return t.name }

// Mean returns the mean duration over all measurements.
func (t *Trials) Mean() time.Duration {
	if len(t.seconds) == 0 {
		return 0
	}
	return secondsToDuration(stat.Mean(t.seconds, nil))
}

// StdDev returns the standard deviation of the measurements. It is zero when
// fewer than two measurements were recorded.
func (t *Trials) StdDev() time.Duration {
	if len(t.seconds) < 2 {
		return 0
	}
	return secondsToDuration(stat.StdDev(t.seconds, nil))
}

// String returns a one-line summary of the trial set.
func (t *Trials) String() string {
	return fmt.Sprintf("%s: mean %v ± %v over %d runs", t.name, t.Mean(), t.StdDev(), t.N())
}

// Speedup returns baseline mean divided by candidate mean, or 0 when the
// candidate mean is zero.
func Speedup(baseline, candidate *Trials) float64 {
	c := candidate.Mean()
	if c == 0 {
		return 0
	}
	return float64(baseline.Mean()) / float64(c)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
