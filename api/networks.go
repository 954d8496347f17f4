package api

import (
	"encoding/json"
	"net/http"

	"github.com/stationland/stationd/station"
)

type networkRequest struct {
	ID         int    `json:"id"`
	SSID       string `json:"ssid"`
	KeyMgmt    string `json:"keyMgmt"`
	BSSID      string `json:"bssid,omitempty"`
	Disconnect bool   `json:"disconnect,omitempty"`
}

func (r *networkRequest) config() *station.NetworkConfig {
	return &station.NetworkConfig{
		ID:      r.ID,
		SSID:    r.SSID,
		KeyMgmt: r.KeyMgmt,
		BSSID:   r.BSSID,
	}
}

type networkResponse struct {
	ID        int               `json:"id"`
	ConfigKey string            `json:"configKey"`
	SSID      string            `json:"ssid"`
	KeyMgmt   string            `json:"keyMgmt"`
	Extras    map[string]string `json:"extras,omitempty"`
}

func (a *Api) handleGetNetworks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		configs, extras, ok := a.station.LoadNetworks()
		if !ok {
			a.errorResponse(w, "could not load networks", http.StatusBadGateway)
			return
		}

		res := []*networkResponse{}

		for configKey, config := range configs {
			res = append(res, &networkResponse{
				ID:        config.ID,
				ConfigKey: configKey,
				SSID:      config.SSID,
				KeyMgmt:   config.KeyMgmt,
				Extras:    extras[config.ID],
			})
		}

		a.jsonResponse(w, res, http.StatusOK)
	}
}

func (a *Api) handlePostNetworks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req networkRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			a.errorResponse(w, "could not parse request", http.StatusBadRequest)
			return
		}

		if !a.station.ConnectToNetwork(req.config(), req.Disconnect) {
			a.errorResponse(w, "could not connect to network", http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *Api) handlePostRoam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req networkRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			a.errorResponse(w, "could not parse request", http.StatusBadRequest)
			return
		}

		if !a.station.RoamToNetwork(req.config()) {
			a.errorResponse(w, "could not roam to network", http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *Api) handleDeleteNetworks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !a.station.RemoveAllNetworks() {
			a.errorResponse(w, "could not remove networks", http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
