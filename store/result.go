package store

// SaveOutcome distinguishes the three durability levels of a save: the
// backend persisted the write, only the local fallback captured it, or
// neither path succeeded. A fallen-back save is still durable somewhere;
// callers needing backend confirmation must check for SavePersisted.
type SaveOutcome int

const (
	SaveFailed SaveOutcome = iota
	SavePersisted
	SaveFellBack
)

// Durable reports whether the write survived on at least one path
func (o SaveOutcome) Durable() bool {
	return o != SaveFailed
}

func (o SaveOutcome) String() string {
	switch o {
	case SavePersisted:
		return "persisted"
	case SaveFellBack:
		return "fell-back-locally"
	default:
		return "failed"
	}
}

// MutationResult reports a record mutation whose side effects (image
// releases) are best-effort: the primary operation can succeed while some
// side effects fail, and callers can assert on the degraded outcome.
type MutationResult struct {
	PrimaryOK        bool
	Outcome          SaveOutcome
	SideEffectErrors []error
}
