package wpa

import (
	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
	"github.com/stationland/stationd/station"
)

// check Supplicant compliance to its interface during compile time
var _ station.Supplicant = (*Supplicant)(nil)

// Supplicant is the top-level daemon object on the bus.
type Supplicant struct {
	conn *dbus.Conn
	log  Logger
	obj  dbus.BusObject
}

func (s *Supplicant) ListInterfaces() ([]station.IfaceInfo, station.Status, error) {
	v, err := s.obj.GetProperty(rootInterface + ".Interfaces")
	status, err := callStatus(err)
	if err != nil {
		return nil, station.Status{}, err
	}
	if status.Code != station.StatusSuccess {
		return nil, status, nil
	}

	paths, ok := v.Value().([]dbus.ObjectPath)
	if !ok {
		return nil, station.Status{}, errors.Errorf("could not convert interface list: %v", v)
	}

	var infos []station.IfaceInfo

	for _, path := range paths {
		obj := s.conn.Object(busName, path)

		v, err := obj.GetProperty(ifaceInterface + ".Ifname")
		status, err := callStatus(err)
		if err != nil {
			return nil, station.Status{}, err
		}
		if status.Code != station.StatusSuccess {
			return nil, status, nil
		}

		name, _ := v.Value().(string)

		infos = append(infos, station.IfaceInfo{
			Type: s.ifaceType(obj),
			Name: name,
		})
	}

	return infos, station.Status{Code: station.StatusSuccess}, nil
}

func (s *Supplicant) GetInterface(info station.IfaceInfo) (station.StaIface, station.Status, error) {
	var path dbus.ObjectPath

	err := s.obj.Call(rootInterface+".GetInterface", 0, info.Name).Store(&path)
	status, err := callStatus(err)
	if err != nil {
		return nil, station.Status{}, err
	}
	if status.Code != station.StatusSuccess {
		return nil, status, nil
	}

	return &Iface{
		conn: s.conn,
		log:  s.log,
		obj:  s.conn.Object(busName, path),
	}, status, nil
}

// ifaceType classifies an interface by its mode. Daemons that do not expose
// the property are taken to run in station mode.
func (s *Supplicant) ifaceType(obj dbus.BusObject) station.IfaceType {
	v, err := obj.GetProperty(ifaceInterface + ".Mode")
	if err != nil {
		return station.IfaceTypeSta
	}

	switch mode, _ := v.Value().(string); mode {
	case "ap":
		return station.IfaceTypeAP
	case "p2p-go", "p2p-client":
		return station.IfaceTypeP2P
	default:
		return station.IfaceTypeSta
	}
}
