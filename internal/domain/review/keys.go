package review

// Op is a scheduler operation requested by an input event.
type Op int

const (
	OpNone Op = iota
	OpReveal
	OpRate
)

// Action is the operation a key press maps to.
type Action struct {
	Op     Op
	Rating Rating // set when Op == OpRate
}

// HandleKey maps a key name to an operation without touching the state:
// space reveals in question mode, digits 1-4 rate in answer mode, and every
// key is ignored once the session is completed.
func HandleKey(key string, s State) Action {
	if s.Phase() != InProgress {
		return Action{}
	}

	switch key {
	case " ", "space":
		if s.Mode == ModeQuestion {
			return Action{Op: OpReveal}
		}
	case "1", "2", "3", "4":
		if s.Mode == ModeAnswer {
			return Action{Op: OpRate, Rating: Rating(key[0] - '0')}
		}
	}
	return Action{}
}

// Apply runs the action against s.
func (s State) Apply(a Action) (State, bool) {
	switch a.Op {
	case OpReveal:
		return s.Reveal()
	case OpRate:
		return s.Rate(a.Rating)
	default:
		return s, false
	}
}
