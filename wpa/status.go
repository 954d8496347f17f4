package wpa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/stationland/stationd/station"
)

const (
	busName          = "fi.w1.wpa_supplicant1"
	objectPath       = "/fi/w1/wpa_supplicant1"
	rootInterface    = "fi.w1.wpa_supplicant1"
	ifaceInterface   = "fi.w1.wpa_supplicant1.Interface"
	wpsInterface     = "fi.w1.wpa_supplicant1.Interface.WPS"
	networkInterface = "fi.w1.wpa_supplicant1.Network"
)

// transportErrorNames are the bus-level error replies that mean the daemon is
// gone rather than that it rejected the call.
var transportErrorNames = map[string]bool{
	"org.freedesktop.DBus.Error.NoReply":        true,
	"org.freedesktop.DBus.Error.Disconnected":   true,
	"org.freedesktop.DBus.Error.ServiceUnknown": true,
	"org.freedesktop.DBus.Error.NameHasNoOwner": true,
	"org.freedesktop.DBus.Error.Timeout":        true,
	"org.freedesktop.DBus.Error.TimedOut":       true,
}

// statusCodes maps the supplicant's error reply names to result codes.
var statusCodes = map[string]station.StatusCode{
	rootInterface + ".UnknownError":      station.StatusFailureUnknown,
	rootInterface + ".InvalidArgs":       station.StatusFailureArgsInvalid,
	rootInterface + ".InterfaceUnknown":  station.StatusFailureIfaceUnknown,
	rootInterface + ".InterfaceExists":   station.StatusFailureIfaceExists,
	rootInterface + ".InterfaceDisabled": station.StatusFailureIfaceDisabled,
	rootInterface + ".NotConnected":      station.StatusFailureIfaceNotDisconnected,
	rootInterface + ".NetworkUnknown":    station.StatusFailureNetworkUnknown,
}

// callStatus splits a call outcome into the logical status of the reply and a
// transport error. A nil, nil-error result has status SUCCESS; a daemon error
// reply becomes a non-success status; anything else means the connection to
// the daemon is unusable.
func callStatus(err error) (station.Status, error) {
	if err == nil {
		return station.Status{Code: station.StatusSuccess}, nil
	}

	dbusErr, ok := err.(dbus.Error)
	if !ok {
		return station.Status{}, err
	}

	if transportErrorNames[dbusErr.Name] {
		return station.Status{}, err
	}

	code, ok := statusCodes[dbusErr.Name]
	if !ok {
		code = station.StatusFailureUnknown
	}

	return station.Status{Code: code, Message: errorMessage(dbusErr)}, nil
}

func errorMessage(err dbus.Error) string {
	if len(err.Body) == 0 {
		return err.Name
	}

	if message, ok := err.Body[0].(string); ok {
		return message
	}

	return fmt.Sprintf("%v", err.Body[0])
}

// networkID extracts the numeric network id from an object path like
// ".../Interfaces/0/Networks/3".
func networkID(path dbus.ObjectPath) (int, error) {
	parts := strings.Split(string(path), "/")
	return strconv.Atoi(parts[len(parts)-1])
}
