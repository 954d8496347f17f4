package station

import (
	"errors"
	"sort"
)

var errTransport = errors.New("transport failure")

type fakeRegistry struct {
	linkErr       error
	registerErr   error
	supplicantErr error

	supplicant Supplicant

	died          func()
	available     func()
	registrations int
}

var _ ServiceRegistry = (*fakeRegistry)(nil)

func (r *fakeRegistry) LinkToDeath(cb func()) error {
	if r.linkErr != nil {
		return r.linkErr
	}

	r.died = cb

	return nil
}

func (r *fakeRegistry) RegisterForAvailability(cb func()) error {
	if r.registerErr != nil {
		return r.registerErr
	}

	r.available = cb
	r.registrations++

	return nil
}

func (r *fakeRegistry) Supplicant() (Supplicant, error) {
	if r.supplicantErr != nil {
		return nil, r.supplicantErr
	}

	return r.supplicant, nil
}

type fakeSupplicant struct {
	infos      []IfaceInfo
	listStatus Status
	listErr    error

	iface     StaIface
	getStatus Status
	getErr    error
}

var _ Supplicant = (*fakeSupplicant)(nil)

func (s *fakeSupplicant) ListInterfaces() ([]IfaceInfo, Status, error) {
	return s.infos, s.listStatus, s.listErr
}

func (s *fakeSupplicant) GetInterface(info IfaceInfo) (StaIface, Status, error) {
	return s.iface, s.getStatus, s.getErr
}

// fakeIface scripts the station interface: every call is recorded by name and
// can be made to fail logically (rejectOn) or at the transport level (failOn).
type fakeIface struct {
	calls    []string
	rejectOn map[string]Status
	failOn   map[string]bool
	hooks    map[string]func()

	networks     map[int]*fakeNetwork
	networkSetup func(*fakeNetwork)
	nextID       int
	removedIDs   []int

	pin string

	deviceTypes   [][8]byte
	configMethods []uint16
	deviceNames   []string
	countryCodes  [][2]byte
	peers         [][6]byte
	pins          []string
	anqpElements  []uint16
	anqpSubTypes  []uint32
	iconFiles     []string
	rxFilters     []RxFilterType
	coexModes     []BtCoexMode
}

var _ StaIface = (*fakeIface)(nil)

func newFakeIface() *fakeIface {
	return &fakeIface{
		rejectOn: make(map[string]Status),
		failOn:   make(map[string]bool),
		hooks:    make(map[string]func()),
		networks: make(map[int]*fakeNetwork),
	}
}

func (f *fakeIface) result(method string) (Status, error) {
	f.calls = append(f.calls, method)

	if hook, ok := f.hooks[method]; ok {
		hook()
	}

	if f.failOn[method] {
		return Status{}, errTransport
	}

	if status, ok := f.rejectOn[method]; ok {
		return status, nil
	}

	return Status{Code: StatusSuccess}, nil
}

func (f *fakeIface) addExistingNetwork(network *fakeNetwork) {
	f.networks[network.id] = network
	if network.id >= f.nextID {
		f.nextID = network.id + 1
	}
}

func (f *fakeIface) Name() (string, Status, error) {
	status, err := f.result("getName")
	return "wlan0", status, err
}

func (f *fakeIface) MacAddress() ([6]byte, Status, error) {
	status, err := f.result("getMacAddress")
	return [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, status, err
}

func (f *fakeIface) AddNetwork() (StaNetwork, Status, error) {
	status, err := f.result("addNetwork")
	if err != nil || status.Code != StatusSuccess {
		return nil, status, err
	}

	network := &fakeNetwork{id: f.nextID}
	if f.networkSetup != nil {
		f.networkSetup(network)
	}
	f.networks[f.nextID] = network
	f.nextID++

	return network, status, nil
}

func (f *fakeIface) RemoveNetwork(id int) (Status, error) {
	status, err := f.result("removeNetwork")
	if err != nil || status.Code != StatusSuccess {
		return status, err
	}

	f.removedIDs = append(f.removedIDs, id)
	delete(f.networks, id)

	return status, nil
}

func (f *fakeIface) GetNetwork(id int) (StaNetwork, Status, error) {
	status, err := f.result("getNetwork")
	if err != nil || status.Code != StatusSuccess {
		return nil, status, err
	}

	network, ok := f.networks[id]
	if !ok {
		return nil, Status{Code: StatusFailureNetworkUnknown}, nil
	}

	return network, status, nil
}

func (f *fakeIface) ListNetworks() ([]int, Status, error) {
	status, err := f.result("listNetworks")
	if err != nil || status.Code != StatusSuccess {
		return nil, status, err
	}

	var ids []int
	for id := range f.networks {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids, status, nil
}

func (f *fakeIface) Disconnect() (Status, error) {
	return f.result("disconnect")
}

func (f *fakeIface) Reconnect() (Status, error) {
	return f.result("reconnect")
}

func (f *fakeIface) Reassociate() (Status, error) {
	return f.result("reassociate")
}

func (f *fakeIface) SetPowerSave(enable bool) (Status, error) {
	return f.result("setPowerSave")
}

func (f *fakeIface) SetCountryCode(code [2]byte) (Status, error) {
	f.countryCodes = append(f.countryCodes, code)
	return f.result("setCountryCode")
}

func (f *fakeIface) SetBtCoexistenceMode(mode BtCoexMode) (Status, error) {
	f.coexModes = append(f.coexModes, mode)
	return f.result("setBtCoexistenceMode")
}

func (f *fakeIface) SetBtCoexistenceScanModeEnabled(enable bool) (Status, error) {
	return f.result("setBtCoexistenceScanModeEnabled")
}

func (f *fakeIface) SetSuspendModeEnabled(enable bool) (Status, error) {
	return f.result("setSuspendModeEnabled")
}

func (f *fakeIface) SetExternalSim(useExternalSim bool) (Status, error) {
	return f.result("setExternalSim")
}

func (f *fakeIface) SetWpsDeviceName(name string) (Status, error) {
	f.deviceNames = append(f.deviceNames, name)
	return f.result("setWpsDeviceName")
}

func (f *fakeIface) SetWpsDeviceType(deviceType [8]byte) (Status, error) {
	f.deviceTypes = append(f.deviceTypes, deviceType)
	return f.result("setWpsDeviceType")
}

func (f *fakeIface) SetWpsManufacturer(manufacturer string) (Status, error) {
	return f.result("setWpsManufacturer")
}

func (f *fakeIface) SetWpsModelName(modelName string) (Status, error) {
	return f.result("setWpsModelName")
}

func (f *fakeIface) SetWpsModelNumber(modelNumber string) (Status, error) {
	return f.result("setWpsModelNumber")
}

func (f *fakeIface) SetWpsSerialNumber(serialNumber string) (Status, error) {
	return f.result("setWpsSerialNumber")
}

func (f *fakeIface) SetWpsConfigMethods(methods uint16) (Status, error) {
	f.configMethods = append(f.configMethods, methods)
	return f.result("setWpsConfigMethods")
}

func (f *fakeIface) StartWpsRegistrar(bssid [6]byte, pin string) (Status, error) {
	f.peers = append(f.peers, bssid)
	f.pins = append(f.pins, pin)
	return f.result("startWpsRegistrar")
}

func (f *fakeIface) StartWpsPbc(bssid [6]byte) (Status, error) {
	f.peers = append(f.peers, bssid)
	return f.result("startWpsPbc")
}

func (f *fakeIface) StartWpsPinKeypad(pin string) (Status, error) {
	f.pins = append(f.pins, pin)
	return f.result("startWpsPinKeypad")
}

func (f *fakeIface) StartWpsPinDisplay(bssid [6]byte) (string, Status, error) {
	f.peers = append(f.peers, bssid)
	status, err := f.result("startWpsPinDisplay")
	return f.pin, status, err
}

func (f *fakeIface) CancelWps() (Status, error) {
	return f.result("cancelWps")
}

func (f *fakeIface) InitiateTdlsDiscover(macAddress [6]byte) (Status, error) {
	f.peers = append(f.peers, macAddress)
	return f.result("initiateTdlsDiscover")
}

func (f *fakeIface) InitiateTdlsSetup(macAddress [6]byte) (Status, error) {
	f.peers = append(f.peers, macAddress)
	return f.result("initiateTdlsSetup")
}

func (f *fakeIface) InitiateTdlsTeardown(macAddress [6]byte) (Status, error) {
	f.peers = append(f.peers, macAddress)
	return f.result("initiateTdlsTeardown")
}

func (f *fakeIface) InitiateAnqpQuery(macAddress [6]byte, infoElements []uint16, hs20SubTypes []uint32) (Status, error) {
	f.peers = append(f.peers, macAddress)
	f.anqpElements = append(f.anqpElements, infoElements...)
	f.anqpSubTypes = append(f.anqpSubTypes, hs20SubTypes...)
	return f.result("initiateAnqpQuery")
}

func (f *fakeIface) InitiateHs20IconQuery(macAddress [6]byte, fileName string) (Status, error) {
	f.peers = append(f.peers, macAddress)
	f.iconFiles = append(f.iconFiles, fileName)
	return f.result("initiateHs20IconQuery")
}

func (f *fakeIface) StartRxFilter() (Status, error) {
	return f.result("startRxFilter")
}

func (f *fakeIface) StopRxFilter() (Status, error) {
	return f.result("stopRxFilter")
}

func (f *fakeIface) AddRxFilter(filterType RxFilterType) (Status, error) {
	f.rxFilters = append(f.rxFilters, filterType)
	return f.result("addRxFilter")
}

func (f *fakeIface) RemoveRxFilter(filterType RxFilterType) (Status, error) {
	f.rxFilters = append(f.rxFilters, filterType)
	return f.result("removeRxFilter")
}

type fakeNetwork struct {
	id int

	ssid      string
	keyMgmt   string
	configKey string
	token     string

	saveFails     bool
	loadFails     bool
	selectFails   bool
	setBssidFails bool

	saved   *NetworkConfig
	selects int
	bssids  []string
}

var _ StaNetwork = (*fakeNetwork)(nil)

func (n *fakeNetwork) SaveConfiguration(config *NetworkConfig) bool {
	if n.saveFails {
		return false
	}

	n.saved = config
	n.ssid = config.SSID
	n.keyMgmt = config.KeyMgmt
	n.configKey = config.ConfigKey()

	return true
}

func (n *fakeNetwork) LoadConfiguration(config *NetworkConfig, extras map[string]string) bool {
	if n.loadFails {
		return false
	}

	config.ID = n.id
	config.SSID = n.ssid
	config.KeyMgmt = n.keyMgmt
	extras[ExtraConfigKey] = n.configKey

	return true
}

func (n *fakeNetwork) Select() bool {
	n.selects++
	return !n.selectFails
}

func (n *fakeNetwork) SetBssid(bssid string) bool {
	if n.setBssidFails {
		return false
	}

	n.bssids = append(n.bssids, bssid)

	return true
}

func (n *fakeNetwork) WpsNfcConfigurationToken() string {
	return n.token
}
