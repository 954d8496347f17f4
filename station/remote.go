package station

// IfaceType classifies an interface published by the supplicant.
type IfaceType int

const (
	IfaceTypeSta IfaceType = iota
	IfaceTypeAP
	IfaceTypeP2P
)

// IfaceInfo describes one interface entry returned by Supplicant.ListInterfaces.
type IfaceInfo struct {
	Type IfaceType
	Name string
}

// BtCoexMode controls how the supplicant arbitrates between Wifi and Bluetooth.
type BtCoexMode int

const (
	BtCoexModeEnabled BtCoexMode = iota
	BtCoexModeDisabled
	BtCoexModeSense
)

// RxFilterType identifies a multicast receive filter.
type RxFilterType int

const (
	RxFilterV4Multicast RxFilterType = iota
	RxFilterV6Multicast
)

// ServiceRegistry is the platform service registry through which the
// supplicant publishes itself. Implementations must deliver the availability
// and death callbacks on their own goroutine, never from within the
// registering call itself.
type ServiceRegistry interface {
	// LinkToDeath registers a callback that fires when the registry itself
	// becomes unusable, for example when the underlying bus connection
	// closes.
	LinkToDeath(cb func()) error

	// RegisterForAvailability registers a callback that fires whenever the
	// supplicant service becomes available, including immediately after
	// registration if it is already running.
	RegisterForAvailability(cb func()) error

	// Supplicant binds the top-level supplicant service handle.
	Supplicant() (Supplicant, error)
}

// Supplicant is the bound top-level daemon handle.
type Supplicant interface {
	ListInterfaces() ([]IfaceInfo, Status, error)
	GetInterface(info IfaceInfo) (StaIface, Status, error)
}

// StaIface is the supplicant's station-mode interface handle. Every method
// performs one blocking round trip to the daemon. A returned error indicates a
// transport failure and means the daemon connection is no longer usable; a
// non-success Status means the daemon rejected the call but is still alive.
type StaIface interface {
	Name() (string, Status, error)
	MacAddress() ([6]byte, Status, error)

	AddNetwork() (StaNetwork, Status, error)
	RemoveNetwork(id int) (Status, error)
	GetNetwork(id int) (StaNetwork, Status, error)
	ListNetworks() ([]int, Status, error)

	Disconnect() (Status, error)
	Reconnect() (Status, error)
	Reassociate() (Status, error)

	SetPowerSave(enable bool) (Status, error)
	SetCountryCode(code [2]byte) (Status, error)
	SetBtCoexistenceMode(mode BtCoexMode) (Status, error)
	SetBtCoexistenceScanModeEnabled(enable bool) (Status, error)
	SetSuspendModeEnabled(enable bool) (Status, error)
	SetExternalSim(useExternalSim bool) (Status, error)

	SetWpsDeviceName(name string) (Status, error)
	SetWpsDeviceType(deviceType [8]byte) (Status, error)
	SetWpsManufacturer(manufacturer string) (Status, error)
	SetWpsModelName(modelName string) (Status, error)
	SetWpsModelNumber(modelNumber string) (Status, error)
	SetWpsSerialNumber(serialNumber string) (Status, error)
	SetWpsConfigMethods(methods uint16) (Status, error)
	StartWpsRegistrar(bssid [6]byte, pin string) (Status, error)
	StartWpsPbc(bssid [6]byte) (Status, error)
	StartWpsPinKeypad(pin string) (Status, error)
	StartWpsPinDisplay(bssid [6]byte) (string, Status, error)
	CancelWps() (Status, error)

	InitiateTdlsDiscover(macAddress [6]byte) (Status, error)
	InitiateTdlsSetup(macAddress [6]byte) (Status, error)
	InitiateTdlsTeardown(macAddress [6]byte) (Status, error)

	InitiateAnqpQuery(macAddress [6]byte, infoElements []uint16, hs20SubTypes []uint32) (Status, error)
	InitiateHs20IconQuery(macAddress [6]byte, fileName string) (Status, error)

	StartRxFilter() (Status, error)
	StopRxFilter() (Status, error)
	AddRxFilter(filterType RxFilterType) (Status, error)
	RemoveRxFilter(filterType RxFilterType) (Status, error)
}

// StaNetwork is one network profile object held by the supplicant. The
// field-by-field configuration transfer lives behind this interface;
// LoadConfiguration fills config, including its ID, and the extras stored
// alongside it.
type StaNetwork interface {
	SaveConfiguration(config *NetworkConfig) bool
	LoadConfiguration(config *NetworkConfig, extras map[string]string) bool
	Select() bool
	SetBssid(bssid string) bool
	WpsNfcConfigurationToken() string
}
