package stepview

import (
	"fmt"
	"strings"
)

// State is the completion state of a single step.
type State int

const (
	NotCompleted State = iota // zero value; default for new steps
	Current
	Completed
)

// String returns the lower-case name used in config files and flags.
func (s State) String() string {
	switch s {
	case NotCompleted:
		return "not_completed"
	case Current:
		return "current"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ParseState maps a state name to a State. Matching is case-insensitive and
// accepts '-' in place of '_'.
func ParseState(s string) (State, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "", "not_completed", "notcompleted", "pending":
		return NotCompleted, nil
	case "current", "active":
		return Current, nil
	case "completed", "done":
		return Completed, nil
	default:
		return NotCompleted, fmt.Errorf("unknown step state %q", s)
	}
}

// Step is one entry of the indicator: a label and its state.
type Step struct {
	Name  string
	State State
}

// NewStep returns a not-completed step.
func NewStep(name string) Step {
	return Step{Name: name, State: NotCompleted}
}

// NewStepWithState returns a step in the given state.
func NewStepWithState(name string, state State) Step {
	return Step{Name: name, State: state}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
