package station

import (
	"encoding/binary"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
)

// WPS config method bits, matching the Wifi Protected Setup specification.
const (
	WpsMethodUsba           uint16 = 0x0001
	WpsMethodEthernet       uint16 = 0x0002
	WpsMethodLabel          uint16 = 0x0004
	WpsMethodDisplay        uint16 = 0x0008
	WpsMethodExtNfcToken    uint16 = 0x0010
	WpsMethodIntNfcToken    uint16 = 0x0020
	WpsMethodNfcInterface   uint16 = 0x0040
	WpsMethodPushButton     uint16 = 0x0080
	WpsMethodKeypad         uint16 = 0x0100
	WpsMethodVirtPushButton uint16 = 0x0280
	WpsMethodPhyPushButton  uint16 = 0x0480
	WpsMethodP2ps           uint16 = 0x1000
	WpsMethodVirtDisplay    uint16 = 0x2008
	WpsMethodPhyDisplay     uint16 = 0x4008
)

// wpsConfigMethods is the closed token table for SetWpsConfigMethods. A token
// outside this table is a caller contract violation.
var wpsConfigMethods = map[string]uint16{
	"usba":                 WpsMethodUsba,
	"ethernet":             WpsMethodEthernet,
	"label":                WpsMethodLabel,
	"display":              WpsMethodDisplay,
	"ext_nfc_token":        WpsMethodExtNfcToken,
	"int_nfc_token":        WpsMethodIntNfcToken,
	"nfc_interface":        WpsMethodNfcInterface,
	"push_button":          WpsMethodPushButton,
	"keypad":               WpsMethodKeypad,
	"virtual_push_button":  WpsMethodVirtPushButton,
	"physical_push_button": WpsMethodPhyPushButton,
	"p2ps":                 WpsMethodP2ps,
	"virtual_display":      WpsMethodVirtDisplay,
	"physical_display":     WpsMethodPhyDisplay,
}

// wpsDeviceTypePattern matches device type strings like "1-0050F204-5",
// category and subcategory in decimal and the OUI as 8 hex characters.
var wpsDeviceTypePattern = regexp.MustCompile(`^([0-9]{1,2})-([0-9a-fA-F]{8})-([0-9]{1,2})$`)

// parseWpsDeviceType encodes a device type string into the 8 octet wire form:
// big-endian category, OUI, big-endian subcategory.
func parseWpsDeviceType(deviceType string) ([8]byte, error) {
	var encoded [8]byte

	match := wpsDeviceTypePattern.FindStringSubmatch(deviceType)
	if match == nil {
		return encoded, errors.Errorf("malformed WPS device type %v", deviceType)
	}

	category, err := strconv.ParseUint(match[1], 10, 16)
	if err != nil {
		return encoded, errors.Errorf("could not parse category: %v", err)
	}

	oui, err := hex.DecodeString(match[2])
	if err != nil {
		return encoded, errors.Errorf("could not parse OUI: %v", err)
	}

	subCategory, err := strconv.ParseUint(match[3], 10, 16)
	if err != nil {
		return encoded, errors.Errorf("could not parse subcategory: %v", err)
	}

	binary.BigEndian.PutUint16(encoded[0:2], uint16(category))
	copy(encoded[2:6], oui)
	binary.BigEndian.PutUint16(encoded[6:8], uint16(subCategory))

	return encoded, nil
}

// parseWpsConfigMethods folds a whitespace separated method list into its
// bitmask. An unknown token fails the whole parse.
func parseWpsConfigMethods(methods string) (uint16, error) {
	var mask uint16

	for _, token := range strings.Fields(methods) {
		bits, ok := wpsConfigMethods[token]
		if !ok {
			return 0, errors.Errorf("invalid WPS config method %v", token)
		}

		mask |= bits
	}

	return mask, nil
}

// SetWpsDeviceType sets the WPS device type from its string form
// "<category>-<OUI>-<subcategory>". Malformed input fails before any call to
// the supplicant.
func (s *Control) SetWpsDeviceType(deviceType string) bool {
	encoded, err := parseWpsDeviceType(deviceType)
	if err != nil {
		s.log.Errorf("Could not parse WPS device type: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setWpsDeviceType", func(iface StaIface) (Status, error) {
		return iface.SetWpsDeviceType(encoded)
	})
}

// SetWpsConfigMethods sets the supported WPS config methods from a whitespace
// separated token list. An unrecognized token fails before any call to the
// supplicant.
func (s *Control) SetWpsConfigMethods(methods string) bool {
	mask, err := parseWpsConfigMethods(methods)
	if err != nil {
		s.log.Errorf("Could not parse WPS config methods: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setWpsConfigMethods", func(iface StaIface) (Status, error) {
		return iface.SetWpsConfigMethods(mask)
	})
}

// SetWpsDeviceName sets the WPS device name.
func (s *Control) SetWpsDeviceName(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setWpsDeviceName", func(iface StaIface) (Status, error) {
		return iface.SetWpsDeviceName(name)
	})
}

// SetWpsManufacturer sets the WPS manufacturer.
func (s *Control) SetWpsManufacturer(manufacturer string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setWpsManufacturer", func(iface StaIface) (Status, error) {
		return iface.SetWpsManufacturer(manufacturer)
	})
}

// SetWpsModelName sets the WPS model name.
func (s *Control) SetWpsModelName(modelName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setWpsModelName", func(iface StaIface) (Status, error) {
		return iface.SetWpsModelName(modelName)
	})
}

// SetWpsModelNumber sets the WPS model number.
func (s *Control) SetWpsModelNumber(modelNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setWpsModelNumber", func(iface StaIface) (Status, error) {
		return iface.SetWpsModelNumber(modelNumber)
	})
}

// SetWpsSerialNumber sets the WPS serial number.
func (s *Control) SetWpsSerialNumber(serialNumber string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("setWpsSerialNumber", func(iface StaIface) (Status, error) {
		return iface.SetWpsSerialNumber(serialNumber)
	})
}

// StartWpsRegistrar starts a WPS pin registrar exchange with the given peer.
func (s *Control) StartWpsRegistrar(bssid string, pin string) bool {
	peer, err := macToBytes(bssid)
	if err != nil {
		s.log.Errorf("Could not parse peer address: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("startWpsRegistrar", func(iface StaIface) (Status, error) {
		return iface.StartWpsRegistrar(peer, pin)
	})
}

// StartWpsPbc starts a WPS push-button exchange with the given peer.
func (s *Control) StartWpsPbc(bssid string) bool {
	peer, err := macToBytes(bssid)
	if err != nil {
		s.log.Errorf("Could not parse peer address: %v", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("startWpsPbc", func(iface StaIface) (Status, error) {
		return iface.StartWpsPbc(peer)
	})
}

// StartWpsPinKeypad starts a WPS pin keypad exchange with the given pin.
func (s *Control) StartWpsPinKeypad(pin string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("startWpsPinKeypad", func(iface StaIface) (Status, error) {
		return iface.StartWpsPinKeypad(pin)
	})
}

// StartWpsPinDisplay starts a WPS pin display exchange with the given peer and
// returns the pin generated by the supplicant, or an empty string on failure.
func (s *Control) StartWpsPinDisplay(bssid string) string {
	peer, err := macToBytes(bssid)
	if err != nil {
		s.log.Errorf("Could not parse peer address: %v", err)
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var pin string

	ok := s.invoke("startWpsPinDisplay", func(iface StaIface) (Status, error) {
		generated, status, err := iface.StartWpsPinDisplay(peer)
		if err == nil && status.Code == StatusSuccess {
			pin = generated
		}
		return status, err
	})
	if !ok {
		return ""
	}

	return pin
}

// CancelWps aborts any ongoing WPS exchange.
func (s *Control) CancelWps() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.invoke("cancelWps", func(iface StaIface) (Status, error) {
		return iface.CancelWps()
	})
}
