package dashboard

type syncKind int

const (
	syncIdle syncKind = iota
	syncLoading
	syncFailed
)

// SyncState is the remote load state: Idle, Loading, or Failed with a
// message. The zero value is Idle. A Loading state never carries an error.
type SyncState struct {
	kind syncKind
	msg  string
}

func Idle() SyncState    { return SyncState{kind: syncIdle} }
func Loading() SyncState { return SyncState{kind: syncLoading} }

func Failed(err error) SyncState {
	msg := "unknown error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return SyncState{kind: syncFailed, msg: msg}
}

func (s SyncState) IsIdle() bool    { return s.kind == syncIdle }
func (s SyncState) IsLoading() bool { return s.kind == syncLoading }
func (s SyncState) IsFailed() bool  { return s.kind == syncFailed }

// Err returns the failure message when the state is Failed.
func (s SyncState) Err() (string, bool) {
	if s.kind != syncFailed {
		return "", false
	}
	return s.msg, true
}

func (s SyncState) String() string {
	switch s.kind {
	case syncLoading:
		return "loading"
	case syncFailed:
		return "failed: " + s.msg
	default:
		return "idle"
	}
}
