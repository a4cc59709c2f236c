package wallet

type ConnectedMsg struct {
	Session Session
}

// DisconnectedMsg has a nil Err when the user disconnected.
type DisconnectedMsg struct {
	Err error
}

type ErrorMsg struct {
	Err error
}
