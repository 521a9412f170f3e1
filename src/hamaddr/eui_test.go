package hamaddr

import (
	"math/rand"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEUI64FromEUI48(t *testing.T) {
	eui48 := NewEUI48([6]byte{1, 2, 3, 4, 5, 6})
	eui64 := EUI64FromEUI48(eui48)
	require.Equal(t, EUI64{1, 2, 3, 0xFF, 0xFE, 4, 5, 6}, eui64)
	require.True(t, eui64.HasEUI48Marker())
}

func TestEUIString(t *testing.T) {
	require.Equal(t, "01:02:03:04:05:06", NewEUI48([6]byte{1, 2, 3, 4, 5, 6}).String())
	require.Equal(t, "01:02:03:04:05:06:77:88", NewEUI64([8]byte{1, 2, 3, 4, 5, 6, 0x77, 0x88}).String())
	require.Equal(t, "ab:cd:ef:00:00:00", EUI48{0xAB, 0xCD, 0xEF}.String())
}

func TestEUIToHamAddr(t *testing.T) {
	require.Equal(t, HamAddr(0x0203_0405_0601_0000), NewEUI48([6]byte{1, 2, 3, 4, 5, 6}).HamAddr())
	require.Equal(t, HamAddr(0x0203_0405_0601_0000), NewEUI64([8]byte{1, 2, 3, 0xFF, 0xFE, 4, 5, 6}).HamAddr())
	require.Equal(t, HamAddr(0x0203_0405_0607_0801), NewEUI64([8]byte{1, 2, 3, 4, 5, 6, 7, 8}).HamAddr())
	// the local bit is dropped
	require.Equal(t, HamAddr(0x0203_0405_0601_0000), NewEUI48([6]byte{3, 2, 3, 4, 5, 6}).HamAddr())
}

func TestEUI48PromotionCommutes(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	const N = 1000
	for i := 0; i < N; i++ {
		var eui48 EUI48
		rng.Read(eui48[:])
		eui64 := eui48.EUI64()
		require.Equal(t, eui48[:3], eui64[:3])
		require.Equal(t, []byte{0xFF, 0xFE}, eui64[3:5])
		require.Equal(t, eui48[3:], eui64[5:])
		require.Equal(t, eui48.HamAddr(), eui64.HamAddr())
	}
}

func TestLocalEUIRoundTrip(t *testing.T) {
	// a locally administered EUI with no low bits in use comes back unchanged
	rng := rand.New(rand.NewSource(1))
	const N = 1000
	for i := 0; i < N; i++ {
		var eui48 EUI48
		rng.Read(eui48[:])
		eui48[0] = eui48[0]&0b1111_1000 | localBit
		eui48b, err := eui48.HamAddr().EUI48()
		require.NoError(t, err)
		require.Equal(t, eui48, eui48b)
	}
}

func TestEUIText(t *testing.T) {
	eui48 := EUI48{0x02, 0x48, 0xED, 0x9C, 0x0C, 0x00}
	data, err := eui48.MarshalText()
	require.NoError(t, err)
	var eui48b EUI48
	require.NoError(t, eui48b.UnmarshalText(data))
	require.Equal(t, eui48, eui48b)

	eui64 := eui48.EUI64()
	data, err = eui64.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "02:48:ed:ff:fe:9c:0c:00", string(data))
	var eui64b EUI64
	require.NoError(t, eui64b.UnmarshalText(data))
	require.Equal(t, eui64, eui64b)

	require.Error(t, eui64b.UnmarshalText([]byte("02:48:ed:9c:0c:00")))
}

func TestEUIHardwareAddr(t *testing.T) {
	eui48 := EUI48{0x02, 0x48, 0xED, 0x9C, 0x0C, 0x00}
	hw := eui48.HardwareAddr()
	require.Equal(t, "02:48:ed:9c:0c:00", hw.String())
	hw[0] = 0xFF
	require.Equal(t, byte(0x02), eui48[0])

	e48, e64, err := EUIFromHardwareAddr(eui48.HardwareAddr())
	require.NoError(t, err)
	require.Nil(t, e64)
	require.Equal(t, eui48, *e48)

	e48, e64, err = EUIFromHardwareAddr(eui48.EUI64().HardwareAddr())
	require.NoError(t, err)
	require.Nil(t, e48)
	require.Equal(t, eui48.EUI64(), *e64)

	_, _, err = EUIFromHardwareAddr(net.HardwareAddr{1, 2, 3})
	require.True(t, IsErrInvalidEUI(err))
}

func TestEUIFlags(t *testing.T) {
	require.True(t, EUI48{0x03}.IsGroup())
	require.True(t, EUI48{0x03}.IsLocal())
	require.False(t, EUI48{0x00}.IsLocal())
	require.True(t, EUI48{}.IsZero())
	require.True(t, EUI64{}.IsZero())
	require.False(t, EUI64{0x01}.IsZero())
	require.True(t, EUI64{0x01}.IsGroup())
}
