package api

import (
	"encoding/json"
	"net/http"
)

type wpsRequest struct {
	Bssid string `json:"bssid,omitempty"`
	Pin   string `json:"pin,omitempty"`
}

type wpsPinResponse struct {
	Pin string `json:"pin"`
}

func (a *Api) wpsRequest(w http.ResponseWriter, r *http.Request) (*wpsRequest, bool) {
	var req wpsRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		a.errorResponse(w, "could not parse request", http.StatusBadRequest)
		return nil, false
	}

	return &req, true
}

func (a *Api) handlePostWpsPbc() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := a.wpsRequest(w, r)
		if !ok {
			return
		}

		if !a.station.StartWpsPbc(req.Bssid) {
			a.errorResponse(w, "could not start push-button provisioning", http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *Api) handlePostWpsRegistrar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := a.wpsRequest(w, r)
		if !ok {
			return
		}

		if !a.station.StartWpsRegistrar(req.Bssid, req.Pin) {
			a.errorResponse(w, "could not start registrar provisioning", http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *Api) handlePostWpsPinKeypad() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := a.wpsRequest(w, r)
		if !ok {
			return
		}

		if !a.station.StartWpsPinKeypad(req.Pin) {
			a.errorResponse(w, "could not start pin keypad provisioning", http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *Api) handlePostWpsPinDisplay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := a.wpsRequest(w, r)
		if !ok {
			return
		}

		pin := a.station.StartWpsPinDisplay(req.Bssid)
		if pin == "" {
			a.errorResponse(w, "could not start pin display provisioning", http.StatusBadGateway)
			return
		}

		a.jsonResponse(w, &wpsPinResponse{Pin: pin}, http.StatusOK)
	}
}

func (a *Api) handleDeleteWps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !a.station.CancelWps() {
			a.errorResponse(w, "could not cancel provisioning", http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
