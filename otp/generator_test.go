package otp

import (
	"errors"
	"testing"
)

func TestNewGeneratorDefaults(t *testing.T) {
	gen, err := NewGenerator([]byte("12345678901234567890"), Config{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	if gen.TimeStep() != 30 {
		t.Errorf("TimeStep() = %d, want 30", gen.TimeStep())
	}
	if gen.Digits() != 6 {
		t.Errorf("Digits() = %d, want 6", gen.Digits())
	}
	if gen.Digest() != DigestSHA1 {
		t.Errorf("Digest() = %v, want SHA1", gen.Digest())
	}
}

func TestNewGeneratorInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "negative time step",
			cfg:     Config{TimeStep: -30},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "negative digits",
			cfg:     Config{Digits: -6},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "unknown digest",
			cfg:     Config{Digest: Digest(42)},
			wantErr: ErrUnsupportedDigest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGenerator([]byte("key"), tc.cfg)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewGenerator error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewGeneratorFromBase32(t *testing.T) {
	fromRaw, err := NewGenerator([]byte("foo"), Config{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	fromB32, err := NewGeneratorFromBase32("mzxw6", Config{})
	if err != nil {
		t.Fatalf("NewGeneratorFromBase32: %v", err)
	}

	rawCode, err := fromRaw.HOTP(7)
	if err != nil {
		t.Fatalf("HOTP: %v", err)
	}
	b32Code, err := fromB32.HOTP(7)
	if err != nil {
		t.Fatalf("HOTP: %v", err)
	}

	if rawCode != b32Code {
		t.Errorf("codes differ for the same decoded key: %s != %s", rawCode, b32Code)
	}

	if _, err := NewGeneratorFromBase32("not-base32!!", Config{}); !errors.Is(err, ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

// The generator copies the key at construction, so mutating the
// caller's slice must not change subsequent codes.
func TestNewGeneratorCopiesKey(t *testing.T) {
	key := []byte("12345678901234567890")

	gen, err := NewGenerator(key, Config{})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	before, err := gen.HOTP(0)
	if err != nil {
		t.Fatalf("HOTP: %v", err)
	}

	for i := range key {
		key[i] = 0
	}

	after, err := gen.HOTP(0)
	if err != nil {
		t.Fatalf("HOTP: %v", err)
	}

	if before != after {
		t.Errorf("code changed after caller mutated the key: %s != %s", before, after)
	}
}

func TestParseDigest(t *testing.T) {
	tests := []struct {
		in      string
		want    Digest
		wantErr bool
	}{
		{in: "SHA1", want: DigestSHA1},
		{in: "sha1", want: DigestSHA1},
		{in: "SHA-256", want: DigestSHA256},
		{in: "sha512", want: DigestSHA512},
		{in: "SHA3-256", want: DigestSHA3_256},
		{in: "sha3-512", want: DigestSHA3_512},
		{in: "md5", wantErr: true},
		{in: "sha42", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDigest(tc.in)

			if tc.wantErr {
				if !errors.Is(err, ErrUnsupportedDigest) {
					t.Errorf("ParseDigest(%q) error = %v, want ErrUnsupportedDigest", tc.in, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseDigest(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDigest(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
