package station

import (
	"net"

	"github.com/go-errors/errors"
)

// macToBytes parses a "XX:XX:XX:XX:XX:XX" address into its 6 byte form.
func macToBytes(macStr string) ([6]byte, error) {
	var mac [6]byte

	parsed, err := net.ParseMAC(macStr)
	if err != nil || len(parsed) != len(mac) {
		return mac, errors.Errorf("invalid MAC address %v", macStr)
	}

	copy(mac[:], parsed)

	return mac, nil
}

func macToString(mac [6]byte) string {
	return net.HardwareAddr(mac[:]).String()
}

// Name returns the name of the station interface, or an empty string if the
// call fails.
func (s *Control) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var name string

	ok := s.invoke("getName", func(iface StaIface) (Status, error) {
		got, status, err := iface.Name()
		if err == nil && status.Code == StatusSuccess {
			name = got
		}
		return status, err
	})
	if !ok {
		return ""
	}

	return name
}

// MacAddress returns the MAC address of the station interface, or an empty
// string if the call fails.
func (s *Control) MacAddress() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var mac string

	ok := s.invoke("getMacAddress", func(iface StaIface) (Status, error) {
		got, status, err := iface.MacAddress()
		if err == nil && status.Code == StatusSuccess {
			mac = macToString(got)
		}
		return status, err
	})
	if !ok {
		return ""
	}

	return mac
}

// Disconnect triggers a disconnection from the currently connected network.
func (s *Control) Disconnect() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("disconnect", func(iface StaIface) (Status, error) {
		return iface.Disconnect()
	})
}

// Reconnect triggers a reconnection if the interface is disconnected.
func (s *Control) Reconnect() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("reconnect", func(iface StaIface) (Status, error) {
		return iface.Reconnect()
	})
}

// Reassociate triggers a reassociation even if the interface is connected.
func (s *Control) Reassociate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("reassociate", func(iface StaIface) (Status, error) {
		return iface.Reassociate()
	})
}

// SetPowerSave enables or disables power save mode.
func (s *Control) SetPowerSave(enable bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setPowerSave", func(iface StaIface) (Status, error) {
		return iface.SetPowerSave(enable)
	})
}

// SetCountryCode sets the regulatory country code, a 2 character ASCII string
// like "US" or "CA".
func (s *Control) SetCountryCode(codeStr string) bool {
	if len(codeStr) != 2 {
		s.log.Errorf("Invalid country code %v", codeStr)
		return false
	}

	var code [2]byte
	copy(code[:], codeStr)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setCountryCode", func(iface StaIface) (Status, error) {
		return iface.SetCountryCode(code)
	})
}

// SetBtCoexistenceMode sets how the supplicant arbitrates between Wifi and
// Bluetooth.
func (s *Control) SetBtCoexistenceMode(mode BtCoexMode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setBtCoexistenceMode", func(iface StaIface) (Status, error) {
		return iface.SetBtCoexistenceMode(mode)
	})
}

// SetBtCoexistenceScanModeEnabled enables or disables Bluetooth coexistence
// during scans.
func (s *Control) SetBtCoexistenceScanModeEnabled(enable bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setBtCoexistenceScanModeEnabled", func(iface StaIface) (Status, error) {
		return iface.SetBtCoexistenceScanModeEnabled(enable)
	})
}

// SetSuspendModeEnabled enables or disables suspend mode optimizations.
func (s *Control) SetSuspendModeEnabled(enable bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setSuspendModeEnabled", func(iface StaIface) (Status, error) {
		return iface.SetSuspendModeEnabled(enable)
	})
}

// SetExternalSim sets whether to use an external SIM for SIM/USIM processing.
func (s *Control) SetExternalSim(useExternalSim bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setExternalSim", func(iface StaIface) (Status, error) {
		return iface.SetExternalSim(useExternalSim)
	})
}

// InitiateTdlsDiscover starts TDLS discovery with the given peer.
func (s *Control) InitiateTdlsDiscover(macAddress string) bool {
	mac, err := macToBytes(macAddress)
	if err != nil {
		s.log.Errorf("Could not parse peer address: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("initiateTdlsDiscover", func(iface StaIface) (Status, error) {
		return iface.InitiateTdlsDiscover(mac)
	})
}

// InitiateTdlsSetup starts TDLS setup with the given peer.
func (s *Control) InitiateTdlsSetup(macAddress string) bool {
	mac, err := macToBytes(macAddress)
	if err != nil {
		s.log.Errorf("Could not parse peer address: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("initiateTdlsSetup", func(iface StaIface) (Status, error) {
		return iface.InitiateTdlsSetup(mac)
	})
}

// InitiateTdlsTeardown tears down the TDLS link with the given peer.
func (s *Control) InitiateTdlsTeardown(macAddress string) bool {
	mac, err := macToBytes(macAddress)
	if err != nil {
		s.log.Errorf("Could not parse peer address: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("initiateTdlsTeardown", func(iface StaIface) (Status, error) {
		return iface.InitiateTdlsTeardown(mac)
	})
}

// InitiateAnqpQuery requests the given ANQP elements and HS2.0 subtypes from
// the access point with the given bssid.
func (s *Control) InitiateAnqpQuery(bssid string, infoElements []uint16, hs20SubTypes []uint32) bool {
	mac, err := macToBytes(bssid)
	if err != nil {
		s.log.Errorf("Could not parse bssid: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("initiateAnqpQuery", func(iface StaIface) (Status, error) {
		return iface.InitiateAnqpQuery(mac, infoElements, hs20SubTypes)
	})
}

// InitiateHs20IconQuery requests the named HS2.0 icon from the access point
// with the given bssid.
func (s *Control) InitiateHs20IconQuery(bssid string, fileName string) bool {
	mac, err := macToBytes(bssid)
	if err != nil {
		s.log.Errorf("Could not parse bssid: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("initiateHs20IconQuery", func(iface StaIface) (Status, error) {
		return iface.InitiateHs20IconQuery(mac, fileName)
	})
}

// StartRxFilter starts using the previously added receive filters.
func (s *Control) StartRxFilter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("startRxFilter", func(iface StaIface) (Status, error) {
		return iface.StartRxFilter()
	})
}

// StopRxFilter stops using the previously added receive filters.
func (s *Control) StopRxFilter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("stopRxFilter", func(iface StaIface) (Status, error) {
		return iface.StopRxFilter()
	})
}

// AddRxFilter adds a multicast receive filter.
func (s *Control) AddRxFilter(filterType RxFilterType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("addRxFilter", func(iface StaIface) (Status, error) {
		return iface.AddRxFilter(filterType)
	})
}

// RemoveRxFilter removes a multicast receive filter.
func (s *Control) RemoveRxFilter(filterType RxFilterType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("removeRxFilter", func(iface StaIface) (Status, error) {
		return iface.RemoveRxFilter(filterType)
	})
}
