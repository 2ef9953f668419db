package otp

import (
	"encoding/base32"
	"fmt"
	"strings"
)

// Decode converts an RFC 4648 Base32 secret into raw key bytes.
//
// The input is case-insensitive and trailing '=' padding may be
// omitted; the string is re-padded to a multiple of 8 characters
// before decoding. The decoded bytes are used directly as the HMAC
// key with no further interpretation.
func Decode(secret string) ([]byte, error) {
	var normalized string = strings.ToUpper(secret)
	normalized += strings.Repeat("=", (8-len(normalized)%8)%8)

	key, err := base32.StdEncoding.DecodeString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return key, nil
}
