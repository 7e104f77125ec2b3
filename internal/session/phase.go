package session

// Phase is the controller's observable state.
type Phase int

const (
	// PhaseLoading — the catalog is being loaded (or has not been asked
	// for yet).
	PhaseLoading Phase = iota

	// PhaseFailed — the catalog load failed; recoverable via Load.
	PhaseFailed

	// PhaseReady — a current card is available for study.
	PhaseReady

	// PhaseCompleted — the catalog loaded but the active filters yield no
	// cards. Relaxing a filter transitions back to Ready.
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseReady:
		return "ready"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}
