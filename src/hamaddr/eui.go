package hamaddr

import (
	"encoding/binary"
	"fmt"
	"net"

	"go.arnce.org/hamaddr/src/internal/octets"
)

const (
	// localBit is the IEEE local administration bit in the first octet.
	localBit = 0b0000_0010
	// groupBit is the IEEE group (multicast) bit in the first octet.
	groupBit = 0b0000_0001
)

// EUI48 is an IEEE EUI-48 hardware address, such as an Ethernet MAC address.
type EUI48 [6]byte

// NewEUI48 creates an EUI48 from 6 octets.
func NewEUI48(x [6]byte) EUI48 {
	return EUI48(x)
}

// String returns the octets as lowercase hex, separated by ':'
func (e EUI48) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		e[0], e[1], e[2], e[3], e[4], e[5])
}

func (e EUI48) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EUI48) UnmarshalText(x []byte) error {
	y, err := ParseEUI48(string(x))
	if err != nil {
		return err
	}
	*e = y
	return nil
}

// IsZero returns true if e is the zero value for the EUI48 type
func (e EUI48) IsZero() bool {
	return e == EUI48{}
}

// IsLocal returns true if the local administration bit is set.
func (e EUI48) IsLocal() bool {
	return e[0]&localBit != 0
}

// IsGroup returns true if the group (multicast) bit is set.
func (e EUI48) IsGroup() bool {
	return e[0]&groupBit != 0
}

// HardwareAddr returns a copy of e as a net.HardwareAddr
func (e EUI48) HardwareAddr() net.HardwareAddr {
	return append(net.HardwareAddr{}, e[:]...)
}

// EUI64 returns the RFC 4291 (Appendix A) embedding of e.
// It is always defined.
func (e EUI48) EUI64() EUI64 {
	var y EUI64
	copy(y[:3], e[:3])
	y[3], y[4] = 0xFF, 0xFE
	copy(y[5:], e[3:])
	return y
}

// HamAddr returns the HamAddr that e encodes.
// Every EUI48 decodes to some HamAddr.
func (e EUI48) HamAddr() HamAddr {
	var buf [8]byte
	copy(buf[:6], e[:])
	buf[0] &^= localBit
	octets.RotateLeft(buf[:6], 1)
	return HamAddr(binary.BigEndian.Uint64(buf[:]))
}

// EUI64 is an IEEE EUI-64 hardware address, such as an IPv6 interface identifier.
type EUI64 [8]byte

// NewEUI64 creates an EUI64 from 8 octets.
func NewEUI64(x [8]byte) EUI64 {
	return EUI64(x)
}

// EUI64FromEUI48 is the same as e.EUI64()
func EUI64FromEUI48(e EUI48) EUI64 {
	return e.EUI64()
}

// String returns the octets as lowercase hex, separated by ':'
func (e EUI64) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x:%02x:%02x",
		e[0], e[1], e[2], e[3], e[4], e[5], e[6], e[7])
}

func (e EUI64) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EUI64) UnmarshalText(x []byte) error {
	y, err := ParseEUI64(string(x))
	if err != nil {
		return err
	}
	*e = y
	return nil
}

// IsZero returns true if e is the zero value for the EUI64 type
func (e EUI64) IsZero() bool {
	return e == EUI64{}
}

// IsLocal returns true if the local administration bit is set.
func (e EUI64) IsLocal() bool {
	return e[0]&localBit != 0
}

// IsGroup returns true if the group (multicast) bit is set.
func (e EUI64) IsGroup() bool {
	return e[0]&groupBit != 0
}

// HasEUI48Marker returns true if octets 3 and 4 are FF FE,
// meaning e has the shape of an EUI-48 embedded per RFC 4291.
func (e EUI64) HasEUI48Marker() bool {
	return e[3] == 0xFF && e[4] == 0xFE
}

// HardwareAddr returns a copy of e as a net.HardwareAddr
func (e EUI64) HardwareAddr() net.HardwareAddr {
	return append(net.HardwareAddr{}, e[:]...)
}

// HamAddr returns the HamAddr that e encodes.
// Every EUI64 decodes to some HamAddr.
func (e EUI64) HamAddr() HamAddr {
	buf := e
	buf[0] &^= localBit
	if buf.HasEUI48Marker() {
		octets.RotateLeft(buf[3:], 2)
		buf[6], buf[7] = 0, 0
		octets.RotateLeft(buf[:6], 1)
	} else {
		octets.RotateLeft(buf[:], 1)
	}
	return HamAddr(binary.BigEndian.Uint64(buf[:]))
}

// EUIFromHardwareAddr converts a 6 or 8 byte net.HardwareAddr.
// Exactly one of the returned pointers is non-nil when err is nil.
func EUIFromHardwareAddr(hw net.HardwareAddr) (*EUI48, *EUI64, error) {
	switch len(hw) {
	case len(EUI48{}):
		var e EUI48
		copy(e[:], hw)
		return &e, nil, nil
	case len(EUI64{}):
		var e EUI64
		copy(e[:], hw)
		return nil, &e, nil
	default:
		return nil, nil, ErrInvalidEUI{Input: hw.String()}
	}
}
