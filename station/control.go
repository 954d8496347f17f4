package station

import (
	"sync"
)

// Control manages the lifecycle of the connection to the supplicant daemon and
// issues commands to its station-mode interface. All public operations
// serialize on one lock covering the service handles and the network session.
type Control struct {
	mu sync.Mutex

	getRegistry func() (ServiceRegistry, error)

	// registry survives supplicant restarts and is only dropped when the
	// registry link itself reports death.
	registry   ServiceRegistry
	supplicant Supplicant
	iface      StaIface

	// Currently configured network in the supplicant and its caller-assigned
	// identifier. Either both are set or neither is.
	currentNetwork   StaNetwork
	currentNetworkID int

	log Logger
}

type Config struct {
	// Registry acquires a handle to the service registry through which the
	// supplicant publishes itself.
	Registry func() (ServiceRegistry, error)
	Logger   Logger
}

func New(config *Config) *Control {
	control := &Control{
		getRegistry:      config.Registry,
		currentNetworkID: InvalidNetworkID,
	}

	if config.Logger != nil {
		control.log = config.Logger
	} else {
		control.log = noopLogger{}
	}

	return control
}

// Initialize registers for notification about the supplicant service, which
// triggers binding of the station interface once the service comes up. It is
// idempotent while the registry link is alive; after a registry death the next
// call registers anew.
func (s *Control) Initialize() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.supplicant = nil
	s.iface = nil

	if s.registry != nil {
		// An availability registration is already in place.
		return true
	}

	registry, err := s.getRegistry()
	if err != nil {
		s.log.Errorf("Could not get service registry: %v", err)
		return false
	}

	err = registry.LinkToDeath(s.registryDied)
	if err != nil {
		s.log.Errorf("Could not link death notification on service registry: %v", err)
		s.serviceDiedLocked()
		return false
	}

	err = registry.RegisterForAvailability(s.serviceAvailable)
	if err != nil {
		s.log.Errorf("Could not register for supplicant availability: %v", err)
		return false
	}

	s.registry = registry

	return true
}

// IsInitializationComplete reports whether the station interface is bound.
// Purely observational; operations gate on the handle under their own lock.
func (s *Control) IsInitializationComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.iface != nil
}

// serviceAvailable fires once the supplicant publishes itself, including
// right after registration if it was already running.
func (s *Control) serviceAvailable() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registry == nil {
		// The registry died before the notification got delivered.
		return
	}

	if !s.bindSupplicantLocked() || !s.bindIfaceLocked() {
		s.log.Errorf("Could not bind supplicant interfaces")
		s.serviceDiedLocked()
		return
	}

	s.log.Infof("Completed initialization of supplicant interfaces")
}

// registryDied fires when the registry link itself reports death. Unlike a
// supplicant death this also drops the registry, so a future Initialize
// registers a new availability notification.
func (s *Control) registryDied() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Errorf("Service registry died")

	s.serviceDiedLocked()
	s.registry = nil
}

func (s *Control) bindSupplicantLocked() bool {
	supplicant, err := s.registry.Supplicant()
	if err != nil {
		s.log.Errorf("Could not get supplicant service: %v", err)
		return false
	}

	s.supplicant = supplicant

	return true
}

func (s *Control) bindIfaceLocked() bool {
	infos, status, err := s.supplicant.ListInterfaces()
	if err != nil {
		s.log.Errorf("Could not list supplicant interfaces: %v", err)
		return false
	}
	if status.Code != StatusSuccess {
		s.log.Errorf("Listing supplicant interfaces failed: %v", status)
		return false
	}

	for _, info := range infos {
		if info.Type != IfaceTypeSta {
			continue
		}

		iface, status, err := s.supplicant.GetInterface(info)
		if err != nil {
			s.log.Errorf("Could not get interface %v: %v", info.Name, err)
			return false
		}
		if status.Code != StatusSuccess {
			s.log.Errorf("Getting interface %v failed: %v", info.Name, status)
			return false
		}

		s.iface = iface

		return true
	}

	s.log.Errorf("Got no station interface from supplicant")

	return false
}

// serviceDiedLocked invalidates the supplicant handles so every subsequent
// operation short-circuits locally until the next availability notification
// rebinds them. The caller must hold s.mu.
func (s *Control) serviceDiedLocked() {
	s.supplicant = nil
	s.iface = nil
}

// invoke runs one remote call against the station interface, translating the
// three failure modes: an absent handle fails locally, a transport error
// invalidates the handles, and a non-success status is logged with the handles
// kept. The caller must hold s.mu.
func (s *Control) invoke(method string, call func(StaIface) (Status, error)) bool {
	if s.iface == nil {
		s.log.Errorf("Cannot call %v, not connected to supplicant", method)
		return false
	}

	status, err := call(s.iface)
	if err != nil {
		s.log.Errorf("Lost supplicant connection during %v: %v", method, err)
		s.serviceDiedLocked()
		return false
	}

	if status.Code != StatusSuccess {
		s.log.Errorf("%v failed: %v", method, status)
		return false
	}

	return true
}
