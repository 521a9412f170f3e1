package hamaddr

import (
	"errors"
	"fmt"
)

// Target names the hardware address form a HamAddr was being converted to.
type Target int

const (
	EUI48Target Target = 48
	EUI64Target Target = 64
)

func (t Target) String() string {
	switch t {
	case EUI48Target:
		return "EUI-48"
	case EUI64Target:
		return "EUI-64"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

type ErrInvalidCharacter struct {
	Char     rune
	Callsign string
}

func (e ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("callsign %q contains bad character %q", e.Callsign, e.Char)
}

func IsErrInvalidCharacter(err error) bool {
	return errors.As(err, &ErrInvalidCharacter{})
}

type ErrTooLong struct {
	Callsign string
}

func (e ErrTooLong) Error() string {
	return fmt.Sprintf("callsign %q is too long. len=%d, max=%d", e.Callsign, len(e.Callsign), MaxCallsignLen)
}

func IsErrTooLong(err error) bool {
	return errors.As(err, &ErrTooLong{})
}

// ErrAddrTooLarge is returned when the low bits of a HamAddr are in use,
// and there is no room for them in the Target.
type ErrAddrTooLarge struct {
	Addr   HamAddr
	Target Target
}

func (e ErrAddrTooLarge) Error() string {
	return fmt.Sprintf("address %s too large for %v", e.Addr.Ham64String(), e.Target)
}

func IsErrAddrTooLarge(err error) bool {
	return errors.As(err, &ErrAddrTooLarge{})
}

// ErrInvalidEUI is returned for input that does not hold an EUI.
// Width is the expected number of octets, or 0 if either width would do.
type ErrInvalidEUI struct {
	Input string
	Width int
}

func (e ErrInvalidEUI) Error() string {
	if e.Width == 0 {
		return fmt.Sprintf("%q is not an EUI-48 or EUI-64 address", e.Input)
	}
	return fmt.Sprintf("%q is not an EUI-%d address", e.Input, e.Width*8)
}

func IsErrInvalidEUI(err error) bool {
	return errors.As(err, &ErrInvalidEUI{})
}

type ErrInvalidHam64 struct {
	Input string
}

func (e ErrInvalidHam64) Error() string {
	return fmt.Sprintf("%q is not a ham64 address", e.Input)
}

func IsErrInvalidHam64(err error) bool {
	return errors.As(err, &ErrInvalidHam64{})
}
