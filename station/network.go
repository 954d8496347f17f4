package station

import "fmt"

// InvalidNetworkID marks the absence of a configured network.
const InvalidNetworkID = -1

// ExtraConfigKey is the metadata key under which the configuration key of a
// profile is stored in the supplicant alongside the network itself.
const ExtraConfigKey = "configKey"

// IPAssignment selects how a network obtains its address.
type IPAssignment int

const (
	IPAssignmentUnspecified IPAssignment = iota
	IPAssignmentDHCP
	IPAssignmentStatic
)

// ProxySettings selects the proxy behavior of a network.
type ProxySettings int

const (
	ProxyUnspecified ProxySettings = iota
	ProxyNone
	ProxyStatic
	ProxyPAC
)

// NetworkConfig is the externally visible representation of one network
// profile. The supplicant never persists the addressing fields; the loader
// applies their defaults.
type NetworkConfig struct {
	// ID is the caller-assigned identifier of the profile, independent of
	// any id the supplicant assigns to its own network object.
	ID int

	SSID    string
	KeyMgmt string

	// BSSID pins the association attempt to one access point. Empty means
	// any access point of the network.
	BSSID string

	IPAssignment  IPAssignment
	ProxySettings ProxySettings
}

// ConfigKey derives the string that identifies the profile's logical network,
// independent of ID.
func (c *NetworkConfig) ConfigKey() string {
	return fmt.Sprintf("%s-%s", c.SSID, c.KeyMgmt)
}
