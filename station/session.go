package station

// ConnectToNetwork adds the provided network configuration to the supplicant
// and initiates a connection to it:
//
//  1. Triggers a disconnect (if shouldDisconnect is set).
//  2. Removes any existing network from the supplicant.
//  3. Adds a new network and saves the configuration into it.
//  4. Selects the new network for the next association attempt.
//
// The session is reset before the first step, so a failed connect never
// leaves a stale session behind.
func (s *Control) ConnectToNetwork(config *NetworkConfig, shouldDisconnect bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.connectLocked(config, shouldDisconnect)
}

func (s *Control) connectLocked(config *NetworkConfig, shouldDisconnect bool) bool {
	s.currentNetwork = nil
	s.currentNetworkID = InvalidNetworkID

	s.log.Debugf("Connecting to network %v (disconnect %v)", config.ConfigKey(), shouldDisconnect)

	if shouldDisconnect && !s.invoke("disconnect", func(iface StaIface) (Status, error) {
		return iface.Disconnect()
	}) {
		s.log.Errorf("Could not trigger disconnect")
		return false
	}

	if !s.removeAllNetworksLocked() {
		s.log.Errorf("Could not remove existing networks")
		return false
	}

	network := s.addNetworkLocked(config)
	if network == nil {
		s.log.Errorf("Could not add network configuration %v", config.ConfigKey())
		return false
	}

	if !network.Select() {
		s.log.Errorf("Could not select network configuration %v", config.ConfigKey())
		return false
	}

	s.currentNetwork = network
	s.currentNetworkID = config.ID

	return true
}

// RoamToNetwork points the already configured network at a new access point
// and triggers a reassociation. If the provided configuration does not match
// the current session, this degrades to a fresh connection attempt instead.
func (s *Control) RoamToNetwork(config *NetworkConfig) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentNetworkID != config.ID || s.currentNetwork == nil {
		s.log.Warnf("Cannot roam to a different network, initiating new connection (current network %v)", s.currentNetworkID)
		return s.connectLocked(config, false)
	}

	s.log.Debugf("Roaming to network %v (bssid %v)", config.ConfigKey(), config.BSSID)

	if !s.currentNetwork.SetBssid(config.BSSID) {
		s.log.Errorf("Could not set new bssid on network %v", config.ConfigKey())
		return false
	}

	if !s.invoke("reassociate", func(iface StaIface) (Status, error) {
		return iface.Reassociate()
	}) {
		s.log.Errorf("Could not trigger reassociate")
		return false
	}

	return true
}

// RemoveAllNetworks removes every network from the supplicant. The first
// failed removal aborts; already removed networks are not restored.
func (s *Control) RemoveAllNetworks() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeAllNetworksLocked()
}

func (s *Control) removeAllNetworksLocked() bool {
	ids, ok := s.listNetworksLocked()
	if !ok {
		s.log.Errorf("Could not list networks for removal")
		return false
	}

	for _, id := range ids {
		if !s.removeNetworkLocked(id) {
			s.log.Errorf("Could not remove network %v", id)
			return false
		}
	}

	return true
}

// SetCurrentNetworkBssid updates the association target of the current
// session, if one exists.
func (s *Control) SetCurrentNetworkBssid(bssid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentNetwork == nil {
		return false
	}

	return s.currentNetwork.SetBssid(bssid)
}

// CurrentNetworkWpsNfcToken returns the WPS NFC configuration token of the
// current session, or an empty string if there is none.
func (s *Control) CurrentNetworkWpsNfcToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentNetwork == nil {
		return ""
	}

	return s.currentNetwork.WpsNfcConfigurationToken()
}

// CurrentNetworkID returns the caller-assigned identifier of the current
// session, or InvalidNetworkID.
func (s *Control) CurrentNetworkID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentNetworkID
}

// addNetworkLocked creates a new network object and saves the configuration
// into it. A network that could not be saved is left behind for the next
// removeAllNetworks to collect.
func (s *Control) addNetworkLocked(config *NetworkConfig) StaNetwork {
	var network StaNetwork

	ok := s.invoke("addNetwork", func(iface StaIface) (Status, error) {
		added, status, err := iface.AddNetwork()
		if err == nil && status.Code == StatusSuccess {
			network = added
		}
		return status, err
	})
	if !ok || network == nil {
		return nil
	}

	if !network.SaveConfiguration(config) {
		s.log.Errorf("Could not save configuration %v", config.ConfigKey())
		return nil
	}

	return network
}

func (s *Control) listNetworksLocked() ([]int, bool) {
	var ids []int

	ok := s.invoke("listNetworks", func(iface StaIface) (Status, error) {
		listed, status, err := iface.ListNetworks()
		if err == nil && status.Code == StatusSuccess {
			ids = listed
		}
		return status, err
	})
	if !ok {
		return nil, false
	}

	return ids, true
}

func (s *Control) getNetworkLocked(id int) StaNetwork {
	var network StaNetwork

	ok := s.invoke("getNetwork", func(iface StaIface) (Status, error) {
		got, status, err := iface.GetNetwork(id)
		if err == nil && status.Code == StatusSuccess {
			network = got
		}
		return status, err
	})
	if !ok {
		return nil
	}

	return network
}

func (s *Control) removeNetworkLocked(id int) bool {
	return s.invoke("removeNetwork", func(iface StaIface) (Status, error) {
		return iface.RemoveNetwork(id)
	})
}
