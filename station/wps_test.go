package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWpsDeviceType(t *testing.T) {
	encoded, err := parseWpsDeviceType("1-0050F204-5")
	require.NoError(t, err)
	assert.Equal(t, [8]byte{0x00, 0x01, 0x00, 0x50, 0xf2, 0x04, 0x00, 0x05}, encoded)

	encoded, err = parseWpsDeviceType("10-0050F204-12")
	require.NoError(t, err)
	assert.Equal(t, [8]byte{0x00, 0x0a, 0x00, 0x50, 0xf2, 0x04, 0x00, 0x0c}, encoded)
}

func TestParseWpsDeviceTypeMalformed(t *testing.T) {
	for _, deviceType := range []string{
		"",
		"1-0050F204",
		"123-0050F204-5",
		"1-0050F2-5",
		"1-0050F2040-5",
		"1-ZZZZZZZZ-5",
		"a-0050F204-5",
	} {
		_, err := parseWpsDeviceType(deviceType)
		assert.Error(t, err, "device type %q", deviceType)
	}
}

func TestParseWpsConfigMethods(t *testing.T) {
	mask, err := parseWpsConfigMethods("display push_button")
	require.NoError(t, err)
	assert.Equal(t, WpsMethodDisplay|WpsMethodPushButton, mask)

	mask, err = parseWpsConfigMethods("physical_display virtual_push_button keypad")
	require.NoError(t, err)
	assert.Equal(t, WpsMethodPhyDisplay|WpsMethodVirtPushButton|WpsMethodKeypad, mask)

	mask, err = parseWpsConfigMethods("")
	require.NoError(t, err)
	assert.Equal(t, uint16(0), mask)
}

func TestParseWpsConfigMethodsUnknownToken(t *testing.T) {
	_, err := parseWpsConfigMethods("display telepathy")
	assert.Error(t, err)
}

func TestSetWpsDeviceType(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	require.True(t, control.SetWpsDeviceType("1-0050F204-5"))

	require.Len(t, iface.deviceTypes, 1)
	assert.Equal(t, [8]byte{0x00, 0x01, 0x00, 0x50, 0xf2, 0x04, 0x00, 0x05}, iface.deviceTypes[0])
}

func TestSetWpsDeviceTypeMalformedSkipsSupplicant(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	assert.False(t, control.SetWpsDeviceType("99-ZZZZZZZZ-1"))
	assert.Empty(t, iface.calls)
}

func TestSetWpsConfigMethods(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	require.True(t, control.SetWpsConfigMethods("display push_button"))

	require.Len(t, iface.configMethods, 1)
	assert.Equal(t, uint16(0x0088), iface.configMethods[0])
}

func TestSetWpsConfigMethodsUnknownTokenSkipsSupplicant(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	assert.False(t, control.SetWpsConfigMethods("display telepathy"))
	assert.Empty(t, iface.calls)
}

func TestSetWpsIdentity(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	assert.True(t, control.SetWpsDeviceName("stationd"))
	assert.True(t, control.SetWpsManufacturer("Station Land"))
	assert.True(t, control.SetWpsModelName("Station"))
	assert.True(t, control.SetWpsModelNumber("1"))
	assert.True(t, control.SetWpsSerialNumber("0001"))

	assert.Equal(t, []string{
		"setWpsDeviceName",
		"setWpsManufacturer",
		"setWpsModelName",
		"setWpsModelNumber",
		"setWpsSerialNumber",
	}, iface.calls)
	assert.Equal(t, []string{"stationd"}, iface.deviceNames)
}

func TestStartWpsRegistrar(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	require.True(t, control.StartWpsRegistrar("aa:bb:cc:dd:ee:ff", "12345670"))

	assert.Equal(t, [][6]byte{{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}}, iface.peers)
	assert.Equal(t, []string{"12345670"}, iface.pins)
}

func TestStartWpsRegistrarBadPeerSkipsSupplicant(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	assert.False(t, control.StartWpsRegistrar("not-a-mac", "12345670"))
	assert.Empty(t, iface.calls)
}

func TestStartWpsPbc(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	require.True(t, control.StartWpsPbc("aa:bb:cc:dd:ee:ff"))
	assert.Equal(t, []string{"startWpsPbc"}, iface.calls)
}

func TestStartWpsPinKeypad(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	require.True(t, control.StartWpsPinKeypad("12345670"))
	assert.Equal(t, []string{"12345670"}, iface.pins)
}

func TestStartWpsPinDisplay(t *testing.T) {
	iface := newFakeIface()
	iface.pin = "49226874"
	control, _ := newBoundControl(t, iface)

	assert.Equal(t, "49226874", control.StartWpsPinDisplay("aa:bb:cc:dd:ee:ff"))
}

func TestStartWpsPinDisplayRejected(t *testing.T) {
	iface := newFakeIface()
	iface.pin = "49226874"
	iface.rejectOn["startWpsPinDisplay"] = Status{Code: StatusFailureUnknown}
	control, _ := newBoundControl(t, iface)

	assert.Empty(t, control.StartWpsPinDisplay("aa:bb:cc:dd:ee:ff"))
}

func TestCancelWps(t *testing.T) {
	iface := newFakeIface()
	control, _ := newBoundControl(t, iface)

	require.True(t, control.CancelWps())
	assert.Equal(t, []string{"cancelWps"}, iface.calls)
}
