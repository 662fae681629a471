package contract

// ConnState mirrors the classic driver ready states so the readiness gate can
// report a stable number.
type ConnState int

const (
	ConnDisconnected  ConnState = 0
	ConnConnected     ConnState = 1
	ConnConnecting    ConnState = 2
	ConnDisconnecting ConnState = 3
)

func (s ConnState) String() string {
	switch s {
	case ConnConnected:
		return "connected"
	case ConnConnecting:
		return "connecting"
	case ConnDisconnecting:
		return "disconnecting"
	default:
		return "disconnected"
	}
}

// IReadiness reports whether the document store can serve requests.
type IReadiness interface {
	State() ConnState
}
