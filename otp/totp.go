package otp

import (
	"fmt"
	"time"
)

// Clock supplies the current time as seconds since the Unix epoch.
// Passing a fixed Clock makes time-based codes deterministic in tests.
type Clock func() float64

// SystemClock reads the system wall clock.
func SystemClock() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// Counter derives the HOTP counter for a point in time: the number
// of whole time steps elapsed since the epoch, using truncating
// division. For any t in [n*timeStep, (n+1)*timeStep) the counter is
// exactly n; the code changes only at the instant a window opens.
func Counter(t float64, timeStep int64) (int64, error) {
	if timeStep <= 0 {
		return 0, fmt.Errorf("%w: time step %d", ErrInvalidArgument, timeStep)
	}
	if t < 0 {
		return 0, fmt.Errorf("%w: negative time %v", ErrInvalidArgument, t)
	}

	return int64(t / float64(timeStep)), nil
}

// Counter derives the HOTP counter for the time using the
// generator's time step.
func (g *Generator) Counter(t float64) (int64, error) {
	return Counter(t, g.timeStep)
}

// TOTP generates the Time-based One-Time Password for the time,
// given in seconds since the Unix epoch.
//
// https://datatracker.ietf.org/doc/html/rfc6238#section-4
func (g *Generator) TOTP(t float64) (string, error) {
	counter, err := g.Counter(t)
	if err != nil {
		return "", err
	}

	return g.HOTP(counter)
}

// Current generates the TOTP code for the clock's current time.
// A nil clock reads the system wall clock.
func (g *Generator) Current(clock Clock) (string, error) {
	if clock == nil {
		clock = SystemClock
	}

	return g.TOTP(clock())
}
