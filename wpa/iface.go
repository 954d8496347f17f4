package wpa

import (
	"fmt"
	"net"
	"strings"

	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
	"github.com/stationland/stationd/station"
)

// check Iface compliance to its interface during compile time
var _ station.StaIface = (*Iface)(nil)

// Iface is one station-mode interface object of the supplicant.
type Iface struct {
	conn *dbus.Conn
	log  Logger
	obj  dbus.BusObject
}

// call performs one method call on the interface object and splits the
// outcome into logical status and transport error.
func (i *Iface) call(method string, args ...interface{}) (station.Status, error) {
	return callStatus(i.obj.Call(method, 0, args...).Err)
}

func (i *Iface) setProperty(prop string, value interface{}) (station.Status, error) {
	return callStatus(i.obj.SetProperty(prop, dbus.MakeVariant(value)))
}

func (i *Iface) Name() (string, station.Status, error) {
	v, err := i.obj.GetProperty(ifaceInterface + ".Ifname")
	status, err := callStatus(err)
	if err != nil || status.Code != station.StatusSuccess {
		return "", status, err
	}

	name, _ := v.Value().(string)

	return name, status, nil
}

func (i *Iface) MacAddress() ([6]byte, station.Status, error) {
	var mac [6]byte

	v, err := i.obj.GetProperty(ifaceInterface + ".MACAddress")
	status, err := callStatus(err)
	if err != nil || status.Code != station.StatusSuccess {
		return mac, status, err
	}

	raw, ok := v.Value().([]byte)
	if !ok || len(raw) != len(mac) {
		return mac, station.Status{}, errors.Errorf("could not convert MAC address: %v", v)
	}

	copy(mac[:], raw)

	return mac, status, nil
}

func (i *Iface) AddNetwork() (station.StaNetwork, station.Status, error) {
	var path dbus.ObjectPath

	err := i.obj.Call(ifaceInterface+".AddNetwork", 0, map[string]interface{}{}).Store(&path)
	status, err := callStatus(err)
	if err != nil || status.Code != station.StatusSuccess {
		return nil, status, err
	}

	return i.network(path), status, nil
}

func (i *Iface) RemoveNetwork(id int) (station.Status, error) {
	return i.call(ifaceInterface+".RemoveNetwork", i.networkPath(id))
}

func (i *Iface) GetNetwork(id int) (station.StaNetwork, station.Status, error) {
	path := i.networkPath(id)

	// Probe the object so an unknown id surfaces here rather than on the
	// first profile operation.
	_, err := i.conn.Object(busName, path).GetProperty(networkInterface + ".Enabled")
	status, err := callStatus(err)
	if err != nil || status.Code != station.StatusSuccess {
		return nil, status, err
	}

	return i.network(path), status, nil
}

func (i *Iface) ListNetworks() ([]int, station.Status, error) {
	v, err := i.obj.GetProperty(ifaceInterface + ".Networks")
	status, err := callStatus(err)
	if err != nil || status.Code != station.StatusSuccess {
		return nil, status, err
	}

	paths, ok := v.Value().([]dbus.ObjectPath)
	if !ok {
		return nil, station.Status{}, errors.Errorf("could not convert network list: %v", v)
	}

	var ids []int

	for _, path := range paths {
		id, err := networkID(path)
		if err != nil {
			i.log.Warnf("Skipping network with unparsable path %v", path)
			continue
		}

		ids = append(ids, id)
	}

	return ids, status, nil
}

func (i *Iface) Disconnect() (station.Status, error) {
	return i.call(ifaceInterface + ".Disconnect")
}

func (i *Iface) Reconnect() (station.Status, error) {
	return i.call(ifaceInterface + ".Reconnect")
}

func (i *Iface) Reassociate() (station.Status, error) {
	return i.call(ifaceInterface + ".Reassociate")
}

func (i *Iface) SetPowerSave(enable bool) (station.Status, error) {
	return i.call(ifaceInterface+".SetPowerSave", enable)
}

func (i *Iface) SetCountryCode(code [2]byte) (station.Status, error) {
	return i.setProperty(ifaceInterface+".Country", string(code[:]))
}

func (i *Iface) SetBtCoexistenceMode(mode station.BtCoexMode) (station.Status, error) {
	var name string

	switch mode {
	case station.BtCoexModeEnabled:
		name = "enabled"
	case station.BtCoexModeDisabled:
		name = "disabled"
	default:
		name = "sense"
	}

	return i.call(ifaceInterface+".SetBtCoexistenceMode", name)
}

func (i *Iface) SetBtCoexistenceScanModeEnabled(enable bool) (station.Status, error) {
	return i.call(ifaceInterface+".SetBtCoexistenceScanMode", enable)
}

func (i *Iface) SetSuspendModeEnabled(enable bool) (station.Status, error) {
	return i.call(ifaceInterface+".SetSuspendMode", enable)
}

func (i *Iface) SetExternalSim(useExternalSim bool) (station.Status, error) {
	return i.call(ifaceInterface+".SetExternalSim", useExternalSim)
}

func (i *Iface) SetWpsDeviceName(name string) (station.Status, error) {
	return i.setProperty(wpsInterface+".DeviceName", name)
}

func (i *Iface) SetWpsDeviceType(deviceType [8]byte) (station.Status, error) {
	return i.setProperty(wpsInterface+".DeviceType", deviceType[:])
}

func (i *Iface) SetWpsManufacturer(manufacturer string) (station.Status, error) {
	return i.setProperty(wpsInterface+".Manufacturer", manufacturer)
}

func (i *Iface) SetWpsModelName(modelName string) (station.Status, error) {
	return i.setProperty(wpsInterface+".ModelName", modelName)
}

func (i *Iface) SetWpsModelNumber(modelNumber string) (station.Status, error) {
	return i.setProperty(wpsInterface+".ModelNumber", modelNumber)
}

func (i *Iface) SetWpsSerialNumber(serialNumber string) (station.Status, error) {
	return i.setProperty(wpsInterface+".SerialNumber", serialNumber)
}

func (i *Iface) SetWpsConfigMethods(methods uint16) (station.Status, error) {
	// The daemon takes the methods as a token list, not as the mask the
	// provisioning protocol encodes.
	return i.setProperty(wpsInterface+".ConfigMethods", wpsMethodNames(methods))
}

func (i *Iface) StartWpsRegistrar(bssid [6]byte, pin string) (station.Status, error) {
	return i.call(wpsInterface+".Start", map[string]interface{}{
		"Role":  "registrar",
		"Type":  "pin",
		"Pin":   pin,
		"Bssid": bssid[:],
	})
}

func (i *Iface) StartWpsPbc(bssid [6]byte) (station.Status, error) {
	return i.call(wpsInterface+".Start", map[string]interface{}{
		"Role":  "enrollee",
		"Type":  "pbc",
		"Bssid": bssid[:],
	})
}

func (i *Iface) StartWpsPinKeypad(pin string) (station.Status, error) {
	return i.call(wpsInterface+".Start", map[string]interface{}{
		"Role": "enrollee",
		"Type": "pin",
		"Pin":  pin,
	})
}

func (i *Iface) StartWpsPinDisplay(bssid [6]byte) (string, station.Status, error) {
	var output map[string]dbus.Variant

	err := i.obj.Call(wpsInterface+".Start", 0, map[string]interface{}{
		"Role":  "enrollee",
		"Type":  "pin",
		"Bssid": bssid[:],
	}).Store(&output)
	status, err := callStatus(err)
	if err != nil || status.Code != station.StatusSuccess {
		return "", status, err
	}

	pin, _ := output["Pin"].Value().(string)
	if pin == "" {
		return "", station.Status{Code: station.StatusFailureUnknown, Message: "no pin generated"}, nil
	}

	return pin, status, nil
}

func (i *Iface) CancelWps() (station.Status, error) {
	return i.call(wpsInterface + ".Cancel")
}

func (i *Iface) InitiateTdlsDiscover(macAddress [6]byte) (station.Status, error) {
	return i.call(ifaceInterface+".TDLSDiscover", macString(macAddress))
}

func (i *Iface) InitiateTdlsSetup(macAddress [6]byte) (station.Status, error) {
	return i.call(ifaceInterface+".TDLSSetup", macString(macAddress))
}

func (i *Iface) InitiateTdlsTeardown(macAddress [6]byte) (station.Status, error) {
	return i.call(ifaceInterface+".TDLSTeardown", macString(macAddress))
}

func (i *Iface) InitiateAnqpQuery(macAddress [6]byte, infoElements []uint16, hs20SubTypes []uint32) (station.Status, error) {
	return i.call(ifaceInterface+".ANQPGet", map[string]interface{}{
		"addr":     macString(macAddress),
		"ids":      infoElements,
		"hs20_ids": hs20SubTypes,
	})
}

func (i *Iface) InitiateHs20IconQuery(macAddress [6]byte, fileName string) (station.Status, error) {
	return i.call(ifaceInterface+".HS20GetIcon", macString(macAddress), fileName)
}

func (i *Iface) StartRxFilter() (station.Status, error) {
	return i.call(ifaceInterface + ".StartRxFilter")
}

func (i *Iface) StopRxFilter() (station.Status, error) {
	return i.call(ifaceInterface + ".StopRxFilter")
}

func (i *Iface) AddRxFilter(filterType station.RxFilterType) (station.Status, error) {
	return i.call(ifaceInterface+".AddRxFilter", rxFilterName(filterType))
}

func (i *Iface) RemoveRxFilter(filterType station.RxFilterType) (station.Status, error) {
	return i.call(ifaceInterface+".RemoveRxFilter", rxFilterName(filterType))
}

func (i *Iface) network(path dbus.ObjectPath) *Network {
	return &Network{
		conn:  i.conn,
		log:   i.log,
		iface: i.obj,
		obj:   i.conn.Object(busName, path),
	}
}

func (i *Iface) networkPath(id int) dbus.ObjectPath {
	return dbus.ObjectPath(fmt.Sprintf("%s/Networks/%d", i.obj.Path(), id))
}

func macString(mac [6]byte) string {
	return net.HardwareAddr(mac[:]).String()
}

func rxFilterName(filterType station.RxFilterType) string {
	if filterType == station.RxFilterV6Multicast {
		return "ipv6_multicast"
	}

	return "ipv4_multicast"
}

// wpsMethodNames renders a config method mask back into the daemon's token
// list form. Composite methods are matched first so their bits are not
// reported twice.
func wpsMethodNames(methods uint16) string {
	ordered := []struct {
		bits uint16
		name string
	}{
		{station.WpsMethodVirtDisplay, "virtual_display"},
		{station.WpsMethodPhyDisplay, "physical_display"},
		{station.WpsMethodVirtPushButton, "virtual_push_button"},
		{station.WpsMethodPhyPushButton, "physical_push_button"},
		{station.WpsMethodP2ps, "p2ps"},
		{station.WpsMethodKeypad, "keypad"},
		{station.WpsMethodPushButton, "push_button"},
		{station.WpsMethodNfcInterface, "nfc_interface"},
		{station.WpsMethodIntNfcToken, "int_nfc_token"},
		{station.WpsMethodExtNfcToken, "ext_nfc_token"},
		{station.WpsMethodDisplay, "display"},
		{station.WpsMethodLabel, "label"},
		{station.WpsMethodEthernet, "ethernet"},
		{station.WpsMethodUsba, "usba"},
	}

	var names []string

	for _, method := range ordered {
		if methods&method.bits == method.bits && method.bits != 0 {
			names = append(names, method.name)
			methods &^= method.bits
		}
	}

	return strings.Join(names, " ")
}
