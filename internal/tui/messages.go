package tui

// storeChangedMsg reports that the shared state changed. At most one is
// pending at a time.
type storeChangedMsg struct{}

// opDoneMsg is the result of a remote game operation.
type opDoneMsg struct {
	notice string
	err    error
}

// sharedMsg carries the share token of the focused game.
type sharedMsg struct {
	token   string
	err     error
	copyErr error
}

// loggedOutMsg ends the program after the session was revoked.
type loggedOutMsg struct {
	err error
}
