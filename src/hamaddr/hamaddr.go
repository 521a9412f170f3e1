// Package hamaddr converts between amateur radio call signs, ARNCE HamAddrs
// and IEEE EUI-48/EUI-64 hardware addresses.
package hamaddr

import (
	"encoding/binary"
	"fmt"
	"strings"

	"go.arnce.org/hamaddr/src/internal/octets"
)

const (
	// Alphabet is the ordered set of characters allowed in a call sign.
	// A character's value is its 1-based position in Alphabet, 0 means no character.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789/-\\^"
	// MaxCallsignLen is the longest call sign which fits in a HamAddr.
	MaxCallsignLen = 12

	radix        = 40
	charsPerQuad = 3
	numQuads     = 4

	// eui64Mask covers the bits which do not fit in an EUI-64.
	eui64Mask = 0x0000_0000_0000_0007
	// eui48Mask covers the bits which do not fit in an EUI-48.
	eui48Mask = 0x0000_0000_0007_FFFF
)

// HamAddr is an ARNCE encoded address.
// It holds 4 big-endian 16 bit quads, each encoding up to 3 call sign characters in base 40.
// A zero quad holds no characters.
type HamAddr uint64

// ParseCallsign encodes a call sign into a HamAddr.
// The call sign is case insensitive, and must be at most MaxCallsignLen bytes of characters from Alphabet.
func ParseCallsign(callsign string) (HamAddr, error) {
	upper := strings.ToUpper(callsign)
	for _, c := range upper {
		if !strings.ContainsRune(Alphabet, c) {
			return 0, ErrInvalidCharacter{Char: c, Callsign: callsign}
		}
	}
	// The limit is on the input bytes, not the folded characters.
	// Folding only ever shrinks an accepted call sign, so upper fits too.
	if len(callsign) > MaxCallsignLen {
		return 0, ErrTooLong{Callsign: callsign}
	}
	var addr HamAddr
	for i := 0; i < numQuads; i++ {
		begin := min(i*charsPerQuad, len(upper))
		end := min(begin+charsPerQuad, len(upper))
		addr = addr<<16 | HamAddr(encodeQuad(upper[begin:end]))
	}
	return addr, nil
}

// encodeQuad packs up to 3 characters, most significant first.
// The arithmetic is 16 bit, and wraps for chunks that do not fit.
func encodeQuad(chunk string) uint16 {
	var quad uint16
	m := uint16(radix * radix)
	for i := 0; i < len(chunk); i++ {
		quad += m * charValue(chunk[i])
		m /= radix
	}
	return quad
}

func charValue(c byte) uint16 {
	return uint16(strings.IndexByte(Alphabet, c) + 1)
}

// Callsign decodes the call sign held in a.
// Every HamAddr decodes to some string. Zero digits produce no character, wherever they appear.
func (a HamAddr) Callsign() string {
	sb := strings.Builder{}
	for _, q := range a.Quads() {
		digits := [charsPerQuad]uint16{
			(q / (radix * radix)) % radix,
			(q / radix) % radix,
			q % radix,
		}
		for _, d := range digits {
			if d != 0 {
				sb.WriteByte(Alphabet[d-1])
			}
		}
	}
	return sb.String()
}

// Quads returns the 4 quads of a, most significant first.
func (a HamAddr) Quads() [numQuads]uint16 {
	return [numQuads]uint16{
		uint16(a >> 48),
		uint16(a >> 32),
		uint16(a >> 16),
		uint16(a),
	}
}

// String implements fmt.Stringer by returning the call sign.
func (a HamAddr) String() string {
	return a.Callsign()
}

// HexString returns the non-zero quads as uppercase hex, separated by ':'
func (a HamAddr) HexString() string {
	parts := make([]string, 0, numQuads)
	for _, q := range a.Quads() {
		if q != 0 {
			parts = append(parts, fmt.Sprintf("%04X", q))
		}
	}
	return strings.Join(parts, ":")
}

// Ham64String returns all 4 quads as uppercase hex, separated by '-'
func (a HamAddr) Ham64String() string {
	parts := make([]string, 0, numQuads)
	for _, q := range a.Quads() {
		parts = append(parts, fmt.Sprintf("%04X", q))
	}
	return strings.Join(parts, "-")
}

// MarshalText uses the ham64 form, which holds every HamAddr exactly.
func (a HamAddr) MarshalText() ([]byte, error) {
	return []byte(a.Ham64String()), nil
}

// UnmarshalText accepts anything Parse does.
func (a *HamAddr) UnmarshalText(x []byte) error {
	y, err := Parse(string(x))
	if err != nil {
		return err
	}
	*a = y
	return nil
}

// IsZero returns true if a is the zero value for the HamAddr type
func (a HamAddr) IsZero() bool {
	return a == 0
}

// FitsEUI64 returns true if a.EUI64 will succeed.
func (a HamAddr) FitsEUI64() bool {
	return a&eui64Mask == 0
}

// FitsEUI48 returns true if a.EUI48 will succeed.
func (a HamAddr) FitsEUI48() bool {
	return a&eui48Mask == 0
}

// EUI64 returns the locally administered EUI64 encoding a.
// Addresses which also fit in an EUI48 are laid out the way RFC 4291 embeds an EUI48.
// If the low 3 bits of a are set, an ErrAddrTooLarge is returned.
func (a HamAddr) EUI64() (EUI64, error) {
	if !a.FitsEUI64() {
		return EUI64{}, ErrAddrTooLarge{Addr: a, Target: EUI64Target}
	}
	compact := a.FitsEUI48()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(a))
	i := 7
	if compact {
		i = 5
	}
	first := buf[i]
	buf[i] = 0
	octets.RotateRight(buf[:], 1)
	buf[0] = (first & 0b1111_1000) | localBit
	if compact {
		octets.RotateRight(buf[3:], 2)
		buf[3], buf[4] = 0xFF, 0xFE
	}
	return EUI64(buf), nil
}

// EUI48 returns the locally administered EUI48 encoding a.
// If any of the low 19 bits of a are set, an ErrAddrTooLarge is returned.
func (a HamAddr) EUI48() (EUI48, error) {
	if !a.FitsEUI48() {
		return EUI48{}, ErrAddrTooLarge{Addr: a, Target: EUI48Target}
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(a))
	var e EUI48
	copy(e[:], buf[:6])
	octets.RotateRight(e[:], 1)
	e[0] = (e[0] & 0b1111_1000) | localBit
	return e, nil
}
