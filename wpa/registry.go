package wpa

import (
	"sync"

	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
	"github.com/stationland/stationd/station"
)

// check Registry compliance to its interface during compile time
var _ station.ServiceRegistry = (*Registry)(nil)

type Config struct {
	// Address of the bus to connect to. Empty means the system bus, which
	// is where wpa_supplicant publishes itself.
	Address string
	Logger  Logger
}

// Registry watches the message bus for the supplicant's well-known name.
// Availability and death callbacks are delivered from the signal goroutine,
// never from within the registering call.
type Registry struct {
	conn *dbus.Conn
	log  Logger

	mu   sync.Mutex
	died func()
}

func NewRegistry(config *Config) (*Registry, error) {
	registry := &Registry{}

	if config.Logger != nil {
		registry.log = config.Logger
	} else {
		registry.log = noopLogger{}
	}

	var conn *dbus.Conn
	var err error

	if config.Address != "" {
		conn, err = dbus.Connect(config.Address)
	} else {
		conn, err = dbus.SystemBus()
	}
	if err != nil {
		return nil, errors.Errorf("could not connect to bus: %v", err)
	}

	registry.conn = conn

	return registry, nil
}

func (r *Registry) LinkToDeath(cb func()) error {
	if !r.conn.Connected() {
		return errors.Errorf("bus connection is closed")
	}

	r.mu.Lock()
	r.died = cb
	r.mu.Unlock()

	return nil
}

func (r *Registry) RegisterForAvailability(cb func()) error {
	call := r.conn.BusObject().AddMatchSignal("org.freedesktop.DBus", "NameOwnerChanged", dbus.WithMatchArg(0, busName))
	if call.Err != nil {
		return errors.Errorf("could not add signal match: %v", call.Err)
	}

	signals := make(chan *dbus.Signal, 16)
	r.conn.Signal(signals)

	go r.watch(signals, cb)

	// The supplicant may already be up, in which case no owner change will
	// ever fire.
	var hasOwner bool
	err := r.conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, busName).Store(&hasOwner)
	if err != nil {
		return errors.Errorf("could not check for running supplicant: %v", err)
	}
	if hasOwner {
		go cb()
	}

	return nil
}

func (r *Registry) Supplicant() (station.Supplicant, error) {
	if !r.conn.Connected() {
		return nil, errors.Errorf("bus connection is closed")
	}

	return &Supplicant{
		conn: r.conn,
		log:  r.log,
		obj:  r.conn.Object(busName, objectPath),
	}, nil
}

func (r *Registry) Close() error {
	return r.conn.Close()
}

func (r *Registry) watch(signals chan *dbus.Signal, available func()) {
	for signal := range signals {
		if signal.Name != "org.freedesktop.DBus.NameOwnerChanged" || len(signal.Body) != 3 {
			continue
		}

		name, _ := signal.Body[0].(string)
		if name != busName {
			continue
		}

		newOwner, _ := signal.Body[2].(string)
		if newOwner != "" {
			r.log.Infof("Supplicant appeared on the bus as %v", newOwner)
			available()
		} else {
			r.log.Warnf("Supplicant left the bus")
		}
	}

	// The signal channel closes when the bus connection goes away.
	r.mu.Lock()
	died := r.died
	r.mu.Unlock()

	if died != nil {
		died()
	}
}
