package otp

import (
	"fmt"
	"hash"
)

// Defaults applied by NewGenerator for zero-valued Config fields.
const (
	DefaultTimeStep int64 = 30 // The default TOTP refresh interval in seconds
	DefaultDigits   int   = 6
)

// Config holds the optional generator settings. The zero value
// selects the RFC defaults: a 30 second time step, 6 digits, SHA1.
type Config struct {
	// TimeStep is the number of seconds each counter value remains valid.
	TimeStep int64
	// Digits is the output code length. Values above the natural
	// decimal width of the truncated value are zero-padded.
	Digits int
	// Digest selects the HMAC hash algorithm.
	Digest Digest
}

// Generator derives One-Time Passwords from a shared secret key.
//
// A Generator is immutable after construction and every generation
// call is a pure function of its explicit inputs, so it is safe for
// concurrent use without locks.
type Generator struct {
	key      []byte
	timeStep int64
	digits   int
	digest   Digest
	newHash  func() hash.Hash
}

// NewGenerator creates a Generator for the raw key bytes.
//
// The key may be any length; HMAC pads or hashes it internally. The
// digest is resolved to its hash constructor here so that a bad
// algorithm surfaces at construction rather than on first use.
func NewGenerator(key []byte, cfg Config) (*Generator, error) {
	if cfg.TimeStep == 0 {
		cfg.TimeStep = DefaultTimeStep
	}
	if cfg.Digits == 0 {
		cfg.Digits = DefaultDigits
	}

	if cfg.TimeStep < 0 {
		return nil, fmt.Errorf("%w: time step %d", ErrInvalidArgument, cfg.TimeStep)
	}
	if cfg.Digits < 1 {
		return nil, fmt.Errorf("%w: digits %d", ErrInvalidArgument, cfg.Digits)
	}

	newHash, err := cfg.Digest.hashFunc()
	if err != nil {
		return nil, err
	}

	return &Generator{
		key:      append([]byte(nil), key...),
		timeStep: cfg.TimeStep,
		digits:   cfg.Digits,
		digest:   cfg.Digest,
		newHash:  newHash,
	}, nil
}

// NewGeneratorFromBase32 creates a Generator from a Base32 secret.
func NewGeneratorFromBase32(secret string, cfg Config) (*Generator, error) {
	key, err := Decode(secret)
	if err != nil {
		return nil, err
	}

	return NewGenerator(key, cfg)
}

// TimeStep returns the seconds per counter window.
func (g *Generator) TimeStep() int64 {
	return g.timeStep
}

// Digits returns the character/digit length of the OTP.
func (g *Generator) Digits() int {
	return g.digits
}

// Digest returns the configured hash algorithm.
func (g *Generator) Digest() Digest {
	return g.digest
}
