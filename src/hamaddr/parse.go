package hamaddr

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// ParseEUI48 parses 6 hex octets separated by ':' or '-', or with no separator at all.
func ParseEUI48(s string) (EUI48, error) {
	var e EUI48
	if err := parseOctets(e[:], s); err != nil {
		return EUI48{}, err
	}
	return e, nil
}

// ParseEUI64 parses 8 hex octets separated by ':' or '-', or with no separator at all.
func ParseEUI64(s string) (EUI64, error) {
	var e EUI64
	if err := parseOctets(e[:], s); err != nil {
		return EUI64{}, err
	}
	return e, nil
}

func parseOctets(dst []byte, s string) error {
	invalid := ErrInvalidEUI{Input: s, Width: len(dst)}
	x := strings.TrimSpace(s)
	for _, sep := range []string{":", "-"} {
		if !strings.Contains(x, sep) {
			continue
		}
		parts := strings.Split(x, sep)
		if len(parts) != len(dst) {
			return invalid
		}
		for _, p := range parts {
			if len(p) != 2 {
				return invalid
			}
		}
		x = strings.Join(parts, "")
		break
	}
	if len(x) != 2*len(dst) {
		return invalid
	}
	if _, err := hex.Decode(dst, []byte(x)); err != nil {
		return invalid
	}
	return nil
}

// ParseHam64 parses the form produced by HamAddr.Ham64String.
// It must be 4 groups of 4 hex digits separated by '-'
func ParseHam64(s string) (HamAddr, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != numQuads {
		return 0, ErrInvalidHam64{Input: s}
	}
	return parseQuads(s, parts)
}

// ParseHex parses the form produced by HamAddr.HexString.
// It must be 1 to 4 groups of 4 hex digits separated by ':'.
// Groups fill the address from the most significant quad,
// so zero quads dropped from between non-zero quads are not recovered.
func ParseHex(s string) (HamAddr, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > numQuads {
		return 0, ErrInvalidHam64{Input: s}
	}
	return parseQuads(s, parts)
}

func parseQuads(s string, parts []string) (HamAddr, error) {
	var addr HamAddr
	for i, p := range parts {
		if len(p) != 4 {
			return 0, ErrInvalidHam64{Input: s}
		}
		q, err := strconv.ParseUint(p, 16, 16)
		if err != nil {
			return 0, ErrInvalidHam64{Input: s}
		}
		addr |= HamAddr(q) << (48 - 16*i)
	}
	return addr, nil
}

// Parse accepts a ham64 string, a hex string or a call sign.
// Neither ':' nor a 19 character string can appear in a call sign, so the forms do not overlap.
func Parse(s string) (HamAddr, error) {
	x := strings.TrimSpace(s)
	switch {
	case len(x) == 19 && strings.Count(x, "-") == 3:
		return ParseHam64(x)
	case strings.Contains(x, ":"):
		return ParseHex(x)
	default:
		return ParseCallsign(x)
	}
}
