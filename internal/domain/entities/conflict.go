package entities

// Conflict is raised when a stored translation and an incoming one differ for
// the same original and language.
type Conflict struct {
	Original string
	Language string
	Old      string
	New      string
}

// DecisionKind tells a merger what to do with a Conflict.
type DecisionKind int

const (
	DecisionUseNew DecisionKind = iota
	DecisionUseOld
	DecisionSkip
	DecisionReplace
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionUseNew:
		return "use_new"
	case DecisionUseOld:
		return "use_old"
	case DecisionSkip:
		return "skip"
	case DecisionReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Decision is a resolver's answer to a Conflict. Value is only meaningful for
// DecisionReplace.
type Decision struct {
	Kind  DecisionKind
	Value string
}

func UseNew() Decision { return Decision{Kind: DecisionUseNew} }

func UseOld() Decision { return Decision{Kind: DecisionUseOld} }

func Skip() Decision { return Decision{Kind: DecisionSkip} }

// Replace returns a decision that stores value instead of either side.
func Replace(value string) Decision { return Decision{Kind: DecisionReplace, Value: value} }

// Apply returns the value the decision selects for c, and false when the
// decision is Skip.
func (d Decision) Apply(c Conflict) (string, bool) {
	switch d.Kind {
	case DecisionUseNew:
		return c.New, true
	case DecisionUseOld:
		return c.Old, true
	case DecisionReplace:
		return d.Value, true
	default:
		return "", false
	}
}
