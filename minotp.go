// Package minotp provides convenience helpers for generating
// One-Time Passwords from Base32 secrets.
package minotp

import (
	"time"

	"github.com/tim-projects/minotp/otp"
)

// Code returns the current TOTP code for a Base32 secret using the
// default settings: 30 second step, 6 digits, SHA1.
func Code(secret string) (string, error) {
	return CodeAt(secret, otp.SystemClock(), otp.Config{})
}

// CodeAt returns the TOTP code for a Base32 secret at the specified
// time in seconds.
func CodeAt(secret string, t float64, cfg otp.Config) (string, error) {
	gen, err := otp.NewGeneratorFromBase32(secret, cfg)
	if err != nil {
		return "", err
	}

	return gen.TOTP(t)
}

// TimeToNext calculates the time in millis until the next OTP refresh
// using the default time step.
func TimeToNext() int64 {
	return TimeToNextPer(otp.DefaultTimeStep)
}

// TimeToNextPer calculates the time in millis until the next OTP
// refresh using the provided time step in seconds.
func TimeToNextPer(step int64) int64 {
	var p int64 = step * 1000

	return p - (time.Now().UnixMilli() % p)
}
