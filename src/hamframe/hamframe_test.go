package hamframe

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/require"

	"go.arnce.org/hamaddr/src/hamaddr"
)

func TestBuildDecode(t *testing.T) {
	src := mustParse(t, "KZ2X-1")
	dst := mustParse(t, "N6DRC")
	data, err := Build(src, dst, layers.EthernetTypeIPv6, []byte("hello"))
	require.NoError(t, err)
	require.Len(t, data, 60)

	f, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, "KZ2X-1", f.Src.Callsign)
	require.Equal(t, "N6DRC", f.Dst.Callsign)
	require.Equal(t, "02:48:ed:9c:0c:00", f.Src.MAC.String())
	require.Equal(t, src, f.Src.Addr)
	require.Equal(t, layers.EthernetTypeIPv6, f.EtherType)
	require.Zero(t, f.VLAN)
	require.True(t, bytes.HasPrefix(f.Payload, []byte("hello")))
}

func TestBuildTooLarge(t *testing.T) {
	_, err := Build(mustParse(t, "VI2BMARC50"), mustParse(t, "N6DRC"), layers.EthernetTypeIPv6, nil)
	require.True(t, hamaddr.IsErrAddrTooLarge(err))
}

func TestDecodeHex(t *testing.T) {
	const frame = "02:5c:ac:70:f8:00 02:48:ed:9c:0c:00 86dd\n" + "6000"
	f, err := DecodeHex(frame)
	require.NoError(t, err)
	require.Equal(t, "N6DRC", f.Dst.Callsign)
	require.Equal(t, "KZ2X-1", f.Src.Callsign)
	require.Equal(t, layers.EthernetTypeIPv6, f.EtherType)
	require.Equal(t, []byte{0x60, 0x00}, f.Payload)
}

func TestDecodeNotLocal(t *testing.T) {
	f, err := DecodeHex("ffffffffffff 001122334455 0800")
	require.NoError(t, err)
	require.False(t, f.Dst.HasCallsign())
	require.False(t, f.Src.HasCallsign())
	require.True(t, f.Src.Addr.IsZero())
	require.Equal(t, layers.EthernetTypeIPv4, f.EtherType)

	// locally administered, but a group address
	f, err = DecodeHex("034800000000 001122334455 0800")
	require.NoError(t, err)
	require.False(t, f.Dst.HasCallsign())
}

func TestDecodeVLAN(t *testing.T) {
	srcMAC, err := mustParse(t, "KZ2X-1").EUI48()
	require.NoError(t, err)
	dstMAC, err := mustParse(t, "AC2OI").EUI48()
	require.NoError(t, err)
	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true},
		&layers.Ethernet{
			SrcMAC:       srcMAC.HardwareAddr(),
			DstMAC:       dstMAC.HardwareAddr(),
			EthernetType: layers.EthernetTypeDot1Q,
		},
		&layers.Dot1Q{
			VLANIdentifier: 17,
			Type:           layers.EthernetTypeIPv6,
		},
		gopacket.Payload([]byte("hi")),
	))

	f, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, "AC2OI", f.Dst.Callsign)
	require.Equal(t, uint16(17), f.VLAN)
	require.Equal(t, layers.EthernetTypeIPv6, f.EtherType)
	require.True(t, bytes.HasPrefix(f.Payload, []byte("hi")))
}

func TestDecodeErrors(t *testing.T) {
	_, err := DecodeHex("ffff")
	require.Error(t, err)
	_, err = DecodeHex("zz")
	require.Error(t, err)
	_, err = Decode(nil)
	require.Error(t, err)
}

func TestDecodeHexMatchesBuild(t *testing.T) {
	data, err := Build(mustParse(t, "NA1SS"), mustParse(t, "WB3KUZ-1"), layers.EthernetTypeIPv6, nil)
	require.NoError(t, err)
	f, err := DecodeHex(hex.EncodeToString(data))
	require.NoError(t, err)
	require.Equal(t, "NA1SS", f.Src.Callsign)
	require.Equal(t, "WB3KUZ-1", f.Dst.Callsign)
}

func mustParse(t testing.TB, callsign string) hamaddr.HamAddr {
	addr, err := hamaddr.ParseCallsign(callsign)
	require.NoError(t, err)
	return addr
}
