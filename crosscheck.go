package minotp

import (
	"fmt"

	refotp "github.com/pquerna/otp"
	refhotp "github.com/pquerna/otp/hotp"

	"github.com/tim-projects/minotp/otp"
)

// crossCheckSecrets are the Base32 secrets swept by CrossCheck.
var crossCheckSecrets = []string{"", "AYYY", "LMAO"}

// CrossCheck compares this module's HOTP output against the
// independent github.com/pquerna/otp implementation for counters
// near every power-of-two boundary from 2^10 up to 2^62, and
// returns the first mismatch as an error.
func CrossCheck() error {
	for exp := 62; exp >= 10; exp-- {
		start := int64(1)<<uint(exp) - 1024
		stop := start + 2048

		if err := CrossCheckRange(crossCheckSecrets, start, stop); err != nil {
			return err
		}
	}

	return nil
}

// CrossCheckRange compares codes for every counter in [start, stop)
// for each of the Base32 secrets.
func CrossCheckRange(secrets []string, start, stop int64) error {
	opts := refhotp.ValidateOpts{
		Digits:    refotp.DigitsSix,
		Algorithm: refotp.AlgorithmSHA1,
	}

	for _, secret := range secrets {
		gen, err := otp.NewGeneratorFromBase32(secret, otp.Config{})
		if err != nil {
			return err
		}

		for counter := stop - 1; counter >= start; counter-- {
			mine, err := gen.HOTP(counter)
			if err != nil {
				return err
			}

			theirs, err := refhotp.GenerateCodeCustom(secret, uint64(counter), opts)
			if err != nil {
				return fmt.Errorf("reference hotp for secret %q: %w", secret, err)
			}

			if mine != theirs {
				return fmt.Errorf("hotp mismatch for secret %q counter %d: %s != %s",
					secret, counter, mine, theirs)
			}
		}
	}

	return nil
}
