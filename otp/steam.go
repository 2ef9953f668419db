package otp

import "strings"

// steamAlphabet is the character set used by Steam Guard codes.
const steamAlphabet string = "23456789BCDFGHJKMNPQRTVWXY"

// Steam generates the code for the time rendered over the Steam
// Guard alphabet instead of decimal digits. Steam itself uses
// 5-character codes; set Config.Digits accordingly.
func (g *Generator) Steam(t float64) (string, error) {
	counter, err := g.Counter(t)
	if err != nil {
		return "", err
	}

	var code uint32 = truncate(g.hmacSum(uint64(counter)))

	var builder strings.Builder

	for i := 0; i < g.digits; i++ {
		builder.WriteByte(steamAlphabet[code%uint32(len(steamAlphabet))])

		code /= uint32(len(steamAlphabet))
	}

	return builder.String(), nil
}
