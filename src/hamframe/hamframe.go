// Package hamframe reads the call signs carried in the MAC addresses of Ethernet frames.
package hamframe

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"

	"go.arnce.org/hamaddr/src/hamaddr"
)

// Endpoint is one end of a frame.
// Callsign is empty unless MAC is a locally administered unicast address.
type Endpoint struct {
	MAC      hamaddr.EUI48
	Addr     hamaddr.HamAddr
	Callsign string
}

func NewEndpoint(mac hamaddr.EUI48) Endpoint {
	ep := Endpoint{MAC: mac}
	if mac.IsLocal() && !mac.IsGroup() {
		ep.Addr = mac.HamAddr()
		ep.Callsign = ep.Addr.Callsign()
	}
	return ep
}

// HasCallsign returns true if the endpoint's MAC could have been made from a call sign
func (ep Endpoint) HasCallsign() bool {
	return ep.Callsign != ""
}

type Frame struct {
	Src       Endpoint
	Dst       Endpoint
	EtherType layers.EthernetType
	// VLAN is the 802.1Q VLAN identifier, or 0 for untagged frames.
	VLAN    uint16
	Payload []byte
}

// Decode parses an Ethernet II frame.
func Decode(data []byte) (*Frame, error) {
	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet,
		gopacket.DecodeOptions{NoCopy: true, Lazy: true})
	ethLayer := packet.Layer(layers.LayerTypeEthernet)
	if ethLayer == nil {
		if errLayer := packet.ErrorLayer(); errLayer != nil {
			return nil, errors.Wrap(errLayer.Error(), "decoding ethernet frame")
		}
		return nil, errors.Errorf("no ethernet layer in %d bytes", len(data))
	}
	eth := ethLayer.(*layers.Ethernet)
	src, _, err := hamaddr.EUIFromHardwareAddr(eth.SrcMAC)
	if err != nil {
		return nil, err
	}
	dst, _, err := hamaddr.EUIFromHardwareAddr(eth.DstMAC)
	if err != nil {
		return nil, err
	}
	f := &Frame{
		Src:       NewEndpoint(*src),
		Dst:       NewEndpoint(*dst),
		EtherType: eth.EthernetType,
		Payload:   eth.Payload,
	}
	if f.EtherType == layers.EthernetTypeDot1Q {
		if vlan, ok := packet.Layer(layers.LayerTypeDot1Q).(*layers.Dot1Q); ok {
			f.EtherType = vlan.Type
			f.VLAN = vlan.VLANIdentifier
			f.Payload = vlan.Payload
		}
	}
	return f, nil
}

// DecodeHex parses a hex dump of a frame.
// Whitespace and ':' between octets are ignored.
func DecodeHex(s string) (*Frame, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ':' {
			return -1
		}
		return r
	}, s)
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding hex")
	}
	return Decode(data)
}

// Build creates a frame from src to dst.
// Both addresses must fit in an EUI48.
// Frames shorter than the Ethernet minimum are padded with zeros.
func Build(src, dst hamaddr.HamAddr, et layers.EthernetType, payload []byte) ([]byte, error) {
	srcMAC, err := src.EUI48()
	if err != nil {
		return nil, err
	}
	dstMAC, err := dst.EUI48()
	if err != nil {
		return nil, err
	}
	eth := &layers.Ethernet{
		SrcMAC:       srcMAC.HardwareAddr(),
		DstMAC:       dstMAC.HardwareAddr(),
		EthernetType: et,
	}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, gopacket.Payload(payload)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
