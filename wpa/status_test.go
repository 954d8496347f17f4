package wpa

import (
	"testing"

	"github.com/go-errors/errors"
	"github.com/godbus/dbus/v5"
	"github.com/stationland/stationd/station"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallStatusSuccess(t *testing.T) {
	status, err := callStatus(nil)
	require.NoError(t, err)
	assert.Equal(t, station.StatusSuccess, status.Code)
}

func TestCallStatusDaemonReply(t *testing.T) {
	tests := []struct {
		name string
		code station.StatusCode
	}{
		{rootInterface + ".UnknownError", station.StatusFailureUnknown},
		{rootInterface + ".InvalidArgs", station.StatusFailureArgsInvalid},
		{rootInterface + ".InterfaceUnknown", station.StatusFailureIfaceUnknown},
		{rootInterface + ".InterfaceExists", station.StatusFailureIfaceExists},
		{rootInterface + ".InterfaceDisabled", station.StatusFailureIfaceDisabled},
		{rootInterface + ".NotConnected", station.StatusFailureIfaceNotDisconnected},
		{rootInterface + ".NetworkUnknown", station.StatusFailureNetworkUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := callStatus(dbus.Error{
				Name: tt.name,
				Body: []interface{}{"rejected"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.code, status.Code)
			assert.Equal(t, "rejected", status.Message)
		})
	}
}

func TestCallStatusUnrecognizedDaemonReply(t *testing.T) {
	status, err := callStatus(dbus.Error{Name: rootInterface + ".Mystery"})
	require.NoError(t, err)
	assert.Equal(t, station.StatusFailureUnknown, status.Code)
	assert.Equal(t, rootInterface+".Mystery", status.Message)
}

func TestCallStatusTransportFailure(t *testing.T) {
	for name := range transportErrorNames {
		_, err := callStatus(dbus.Error{Name: name})
		assert.Error(t, err, "error name %v", name)
	}
}

func TestCallStatusNonBusError(t *testing.T) {
	_, err := callStatus(errors.Errorf("connection reset"))
	assert.Error(t, err)
}

func TestNetworkID(t *testing.T) {
	id, err := networkID(dbus.ObjectPath(objectPath + "/Interfaces/0/Networks/3"))
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	_, err = networkID(dbus.ObjectPath(objectPath))
	assert.Error(t, err)
}
