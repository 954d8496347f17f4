package station

// LoadNetworks reads every network profile the supplicant has kept, keyed by
// configuration key, together with the extras stored alongside each profile
// keyed by identifier. Profiles sharing a configuration key are treated as
// supplicant-side duplicates: the later one wins and the earlier one is
// removed from the supplicant. Any enumeration or load failure aborts the
// whole operation without returning a partial result.
func (s *Control) LoadNetworks() (map[string]*NetworkConfig, map[int]map[string]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, ok := s.listNetworksLocked()
	if !ok {
		s.log.Errorf("Could not list networks")
		return nil, nil, false
	}

	configs := make(map[string]*NetworkConfig)
	extras := make(map[int]map[string]string)

	for _, id := range ids {
		network := s.getNetworkLocked(id)
		if network == nil {
			s.log.Errorf("Could not get network with id %v", id)
			return nil, nil, false
		}

		config := &NetworkConfig{}
		extra := make(map[string]string)

		if !network.LoadConfiguration(config, extra) {
			s.log.Errorf("Could not load configuration for network with id %v", id)
			return nil, nil, false
		}

		// The supplicant does not persist the addressing fields.
		config.IPAssignment = IPAssignmentDHCP
		config.ProxySettings = ProxyNone

		extras[id] = extra

		configKey := extra[ExtraConfigKey]
		if duplicate, ok := configs[configKey]; ok {
			// The network is already known, overwrite the duplicate entry.
			s.log.Infof("Replacing duplicate network %v", duplicate.ID)
			s.removeNetworkLocked(duplicate.ID)
			delete(extras, duplicate.ID)
		}
		configs[configKey] = config
	}

	return configs, extras, true
}
