package viewstate

// State enumerates the mutually exclusive UI states a view model exposes.
// Exactly one is active at a time; transitions happen only through the view
// model's load operations.
type State int

const (
	// StateIdle is the initial state before any load has been requested.
	StateIdle State = iota

	// StateLoading covers the initial load and every refresh.
	StateLoading

	// StateLoadingMore covers an incremental page load on top of data that is
	// already showing.
	StateLoadingMore

	// StateSuccess means the most recent load completed and records are
	// available (possibly zero of them).
	StateSuccess

	// StateError means the most recent load failed; ErrorMessage holds a
	// human-readable description.
	StateError
)

// String returns the state name for logs and test output.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoadingMore:
		return "loading-more"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
