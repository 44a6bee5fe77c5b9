package enums

// Status is the state of a journey option or one of its parts.
type Status int

const (
	StatusUnknown Status = iota
	StatusAccordingToPlan
	StatusCancelled
	StatusChanged
	StatusTransferNotPossible
	StatusDelayed
	StatusNew
	StatusNotOptimal
	StatusNotPossible
	StatusPlanChanged
)

func (s Status) String() string {
	switch s {
	case StatusAccordingToPlan:
		return "VOLGENS-PLAN"
	case StatusCancelled:
		return "GEANNULEERD"
	case StatusChanged:
		return "GEWIJZIGD"
	case StatusTransferNotPossible:
		return "OVERSTAP-NIET-MOGELIJK"
	case StatusDelayed:
		return "VERTRAAGD"
	case StatusNew:
		return "NIEUW"
	case StatusNotOptimal:
		return "NIET-OPTIMAAL"
	case StatusNotPossible:
		return "NIET-MOGELIJK"
	case StatusPlanChanged:
		// sic, the service spells it this way
		return "PLAN-GEWIJZGD"
	default:
		return "Unknown"
	}
}

func ParseStatus(code string) Status {
	for s := StatusAccordingToPlan; s <= StatusPlanChanged; s++ {
		if s.String() == code {
			return s
		}
	}
	return StatusUnknown
}

// Disrupted reports whether the status means the traveller has to act.
func (s Status) Disrupted() bool {
	switch s {
	case StatusCancelled, StatusTransferNotPossible, StatusNotPossible:
		return true
	default:
		return false
	}
}
