package api

import (
	"net/http"

	"github.com/stationland/stationd/station"
)

type getStatusResponse struct {
	Ready            bool     `json:"ready"`
	CurrentNetworkID *int     `json:"currentNetworkId,omitempty"`
	RecentLog        []string `json:"recentLog,omitempty"`
}

func (a *Api) handleGetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := &getStatusResponse{
			Ready: a.station.IsInitializationComplete(),
		}

		if id := a.station.CurrentNetworkID(); id != station.InvalidNetworkID {
			res.CurrentNetworkID = &id
		}

		if a.statLog != nil {
			res.RecentLog = a.statLog.Lines()
		}

		a.jsonResponse(w, res, http.StatusOK)
	}
}
