package api

import (
	"net"
	"net/http"

	"github.com/go-errors/errors"
	"github.com/gorilla/mux"
	"github.com/stationland/stationd/statlog"
	"github.com/stationland/stationd/station"
)

type Config struct {
	Station *station.Control
	StatLog *statlog.StatLog
	Log     Logger
}

type Api struct {
	station *station.Control
	statLog *statlog.StatLog
	router  *mux.Router
	log     Logger
}

func New(config *Config) *Api {
	api := &Api{
		station: config.Station,
		statLog: config.StatLog,
		router:  mux.NewRouter(),
	}

	if config.Log != nil {
		api.log = config.Log
	} else {
		api.log = noopLogger{}
	}

	api.router.Handle("/api/v1/status", api.handleGetStatus()).Methods(http.MethodGet)

	api.router.Handle("/api/v1/networks", api.handleGetNetworks()).Methods(http.MethodGet)
	api.router.Handle("/api/v1/networks", api.handlePostNetworks()).Methods(http.MethodPost)
	api.router.Handle("/api/v1/networks", api.handleDeleteNetworks()).Methods(http.MethodDelete)
	api.router.Handle("/api/v1/roam", api.handlePostRoam()).Methods(http.MethodPost)

	api.router.Handle("/api/v1/wps/pbc", api.handlePostWpsPbc()).Methods(http.MethodPost)
	api.router.Handle("/api/v1/wps/registrar", api.handlePostWpsRegistrar()).Methods(http.MethodPost)
	api.router.Handle("/api/v1/wps/pin-keypad", api.handlePostWpsPinKeypad()).Methods(http.MethodPost)
	api.router.Handle("/api/v1/wps/pin-display", api.handlePostWpsPinDisplay()).Methods(http.MethodPost)
	api.router.Handle("/api/v1/wps", api.handleDeleteWps()).Methods(http.MethodDelete)

	return api
}

func (a *Api) Serve(l net.Listener) error {
	err := http.Serve(l, a.router)
	if err != nil {
		return errors.Errorf("Unable to serve api: %v", err)
	}

	return nil
}

// Handler exposes the router, mainly for tests.
func (a *Api) Handler() http.Handler {
	return a.router
}
