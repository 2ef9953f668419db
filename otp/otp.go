// Package otp provides functionality for generating HOTP (RFC 4226)
// and TOTP (RFC 6238) One-Time Passwords.
package otp

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrDecode indicates a malformed Base32 secret.
	ErrDecode = errors.New("otp: malformed base32 secret")
	// ErrInvalidArgument indicates a negative time or counter,
	// or a non-positive time step or digit count.
	ErrInvalidArgument = errors.New("otp: invalid argument")
	// ErrUnsupportedDigest indicates a digest algorithm outside
	// the supported set.
	ErrUnsupportedDigest = errors.New("otp: unsupported digest")
)

// Digest identifies a supported HMAC hash algorithm. Every supported
// digest produces at least the 20 bytes dynamic truncation requires.
type Digest int

const (
	// DigestSHA1 is the RFC 4226 default.
	DigestSHA1 Digest = iota
	DigestSHA256
	DigestSHA512
	DigestSHA3_256
	DigestSHA3_512
)

// String returns the conventional name of the digest.
func (d Digest) String() string {
	switch d {
	case DigestSHA1:
		return "SHA1"
	case DigestSHA256:
		return "SHA256"
	case DigestSHA512:
		return "SHA512"
	case DigestSHA3_256:
		return "SHA3-256"
	case DigestSHA3_512:
		return "SHA3-512"
	default:
		return fmt.Sprintf("Digest(%d)", int(d))
	}
}

// hashFunc maps the digest to its hash constructor.
//
// Codes from differing algorithms are mutually incompatible, so an
// unknown digest is an error here rather than a fallback to SHA1.
func (d Digest) hashFunc() (func() hash.Hash, error) {
	switch d {
	case DigestSHA1:
		return sha1.New, nil
	case DigestSHA256:
		return sha256.New, nil
	case DigestSHA512:
		return sha512.New, nil
	case DigestSHA3_256:
		return sha3.New256, nil
	case DigestSHA3_512:
		return sha3.New512, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedDigest, d)
	}
}

// ParseDigest converts a digest name to its Digest value.
// Names are case-insensitive and the dash before the size is optional.
func ParseDigest(name string) (Digest, error) {
	switch strings.ToUpper(name) {
	case "SHA1", "SHA-1":
		return DigestSHA1, nil
	case "SHA256", "SHA-256":
		return DigestSHA256, nil
	case "SHA512", "SHA-512":
		return DigestSHA512, nil
	case "SHA3-256", "SHA3256":
		return DigestSHA3_256, nil
	case "SHA3-512", "SHA3512":
		return DigestSHA3_512, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedDigest, name)
	}
}
