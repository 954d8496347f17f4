package wpa

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/stationland/stationd/station"
)

// check Network compliance to its interface during compile time
var _ station.StaNetwork = (*Network)(nil)

// Network is one network profile object of the supplicant. Profile metadata
// that the daemon has no field for, like the configuration key, travels as
// JSON inside the profile's id_str.
type Network struct {
	conn  *dbus.Conn
	log   Logger
	iface dbus.BusObject
	obj   dbus.BusObject
}

func (n *Network) String() string {
	return string(n.obj.Path())
}

func (n *Network) SaveConfiguration(config *station.NetworkConfig) bool {
	extras := map[string]string{
		station.ExtraConfigKey: config.ConfigKey(),
	}

	idStr, err := json.Marshal(extras)
	if err != nil {
		n.log.Errorf("Could not encode profile metadata: %v", err)
		return false
	}

	keyMgmt := config.KeyMgmt
	if keyMgmt == "" {
		keyMgmt = "NONE"
	}

	props := map[string]interface{}{
		"ssid":     quote(config.SSID),
		"key_mgmt": keyMgmt,
		"id_str":   quote(string(idStr)),
	}

	if config.BSSID != "" {
		props["bssid"] = config.BSSID
	}

	err = n.obj.SetProperty(networkInterface+".Properties", dbus.MakeVariant(props))
	if err != nil {
		n.log.Errorf("Could not save configuration %v: %v", config.ConfigKey(), err)
		return false
	}

	return true
}

func (n *Network) LoadConfiguration(config *station.NetworkConfig, extras map[string]string) bool {
	v, err := n.obj.GetProperty(networkInterface + ".Properties")
	if err != nil {
		n.log.Errorf("Could not load configuration of %v: %v", n, err)
		return false
	}

	props, ok := v.Value().(map[string]dbus.Variant)
	if !ok {
		n.log.Errorf("Could not convert configuration of %v", n)
		return false
	}

	id, err := networkID(n.obj.Path())
	if err != nil {
		n.log.Errorf("Could not determine network id of %v: %v", n, err)
		return false
	}

	config.ID = id

	if v, ok := props["ssid"]; ok {
		if ssid, ok := v.Value().(string); ok {
			config.SSID = unquote(ssid)
		}
	}

	if v, ok := props["key_mgmt"]; ok {
		config.KeyMgmt, _ = v.Value().(string)
	}

	if v, ok := props["bssid"]; ok {
		config.BSSID, _ = v.Value().(string)
	}

	if v, ok := props["id_str"]; ok {
		if idStr, ok := v.Value().(string); ok && idStr != "" {
			err := json.Unmarshal([]byte(unquote(idStr)), &extras)
			if err != nil {
				n.log.Warnf("Could not decode profile metadata of %v: %v", n, err)
			}
		}
	}

	return true
}

func (n *Network) Select() bool {
	call := n.iface.Call(ifaceInterface+".SelectNetwork", 0, n.obj.Path())
	if call.Err != nil {
		n.log.Errorf("Could not select network %v: %v", n, call.Err)
		return false
	}

	return true
}

func (n *Network) SetBssid(bssid string) bool {
	err := n.obj.SetProperty(networkInterface+".Properties", dbus.MakeVariant(map[string]interface{}{
		"bssid": bssid,
	}))
	if err != nil {
		n.log.Errorf("Could not set bssid on network %v: %v", n, err)
		return false
	}

	return true
}

func (n *Network) WpsNfcConfigurationToken() string {
	var token []byte

	err := n.iface.Call(wpsInterface+".GetNFCConfigurationToken", 0, n.obj.Path()).Store(&token)
	if err != nil {
		n.log.Errorf("Could not get WPS NFC configuration token of %v: %v", n, err)
		return ""
	}

	return hex.EncodeToString(token)
}

// quote wraps a value in the double quotes the daemon's string-typed profile
// fields expect.
func quote(value string) string {
	return "\"" + value + "\""
}

func unquote(value string) string {
	if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
		return value[1 : len(value)-1]
	}

	return value
}
