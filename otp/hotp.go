package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// HOTP generates the HMAC-based One-Time Password for a counter.
//
//	HOTP(K,C) = Truncate(HMAC(K,C))
//
// https://datatracker.ietf.org/doc/html/rfc4226#section-5
func (g *Generator) HOTP(counter int64) (string, error) {
	if counter < 0 {
		return "", fmt.Errorf("%w: negative counter %d", ErrInvalidArgument, counter)
	}

	return g.reduce(truncate(g.hmacSum(uint64(counter)))), nil
}

// hmacSum hashes the counter with the secret key and the configured algo.
func (g *Generator) hmacSum(counter uint64) []byte {
	var msg []byte = make([]byte, 8)

	// Encode the counter in big endian
	binary.BigEndian.PutUint64(msg, counter)

	mac := hmac.New(g.newHash, g.key)
	mac.Write(msg)

	return mac.Sum(nil)
}

// truncate extracts a 31-bit integer from the HMAC result using
// RFC 4226 dynamic truncation.
//
// https://datatracker.ietf.org/doc/html/rfc4226#section-5.4
func truncate(sum []byte) uint32 {
	// Use the low-order 4 bits of the final byte as an offset.
	offset := sum[len(sum)-1] & 0x0f

	// Read the 4-byte "dynamic binary code" at the offset
	// and mask off its leftmost bit.
	return binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff
}

// reduce converts the truncated value to base-10 digits: render as
// decimal, left-pad with zeroes to the configured width, then keep
// the rightmost digits. Both steps matter for interop; widths above
// ten digits pad, widths below drop the most significant digits.
func (g *Generator) reduce(code uint32) string {
	var digits string = strconv.FormatUint(uint64(code), 10)

	if pad := g.digits - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	return digits[len(digits)-g.digits:]
}
