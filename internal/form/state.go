package form

// State is the lifecycle position of a [RecordForm].
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateSubmitting
	StateNavigated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateNavigated:
		return "navigated"
	}
	return "unknown"
}

// Mode tells whether a form creates a new record or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}
