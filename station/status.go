package station

import "fmt"

// StatusCode is the result code the supplicant attaches to every reply.
type StatusCode int

const (
	StatusSuccess StatusCode = iota
	StatusFailureUnknown
	StatusFailureArgsInvalid
	StatusFailureIfaceInvalid
	StatusFailureIfaceUnknown
	StatusFailureIfaceExists
	StatusFailureIfaceDisabled
	StatusFailureIfaceNotDisconnected
	StatusFailureNetworkInvalid
	StatusFailureNetworkUnknown
)

func (c StatusCode) String() string {
	switch c {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailureUnknown:
		return "FAILURE_UNKNOWN"
	case StatusFailureArgsInvalid:
		return "FAILURE_ARGS_INVALID"
	case StatusFailureIfaceInvalid:
		return "FAILURE_IFACE_INVALID"
	case StatusFailureIfaceUnknown:
		return "FAILURE_IFACE_UNKNOWN"
	case StatusFailureIfaceExists:
		return "FAILURE_IFACE_EXISTS"
	case StatusFailureIfaceDisabled:
		return "FAILURE_IFACE_DISABLED"
	case StatusFailureIfaceNotDisconnected:
		return "FAILURE_IFACE_NOT_DISCONNECTED"
	case StatusFailureNetworkInvalid:
		return "FAILURE_NETWORK_INVALID"
	case StatusFailureNetworkUnknown:
		return "FAILURE_NETWORK_UNKNOWN"
	default:
		return "UNKNOWN_CODE"
	}
}

// Status is the logical outcome of a supplicant call. A non-success code means
// the daemon processed the call and rejected it; transport failures are
// reported separately as errors.
type Status struct {
	Code    StatusCode
	Message string
}

func (s Status) String() string {
	if s.Message == "" {
		return s.Code.String()
	}

	return fmt.Sprintf("%v (%v)", s.Code, s.Message)
}
