package view

// LoadState is the per-collection loading state a view exposes to its
// renderer: idle until the first Load, loading while a fetch is in
// flight, then ready or error. Error is retryable, a later Load moves
// back through loading.
type LoadState int

const (
	StateIdle LoadState = iota
	StateLoading
	StateReady
	StateError
)

func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}
