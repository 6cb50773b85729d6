package models

import (
	"fmt"

	"github.com/Dallionking/stepview/internal/stepview"
)

// StateChanger moves the current marker along a view's steps. The state a
// step had before it became current is remembered and restored when the
// marker leaves it, and can be toggled while the step is current.
type StateChanger struct {
	view  *stepview.View
	index int
	saved stepview.State
}

// NewStateChanger marks step 0 current. Its saved state starts as
// not completed.
func NewStateChanger(v *stepview.View) (*StateChanger, error) {
	if err := v.SetStepState(stepview.Current, 0); err != nil {
		return nil, fmt.Errorf("starting state changer: %w", err)
	}
	return &StateChanger{view: v, saved: stepview.NotCompleted}, nil
}

// Index is the position of the current step.
func (s *StateChanger) Index() int { return s.index }

// Saved is the state the current step returns to when the marker moves on.
func (s *StateChanger) Saved() stepview.State { return s.saved }

// CanPrev reports whether the marker can move back.
func (s *StateChanger) CanPrev() bool { return s.index != 0 }

// CanNext reports whether the marker can move forward.
func (s *StateChanger) CanNext() bool { return s.index != len(s.view.Steps())-1 }

// Prev moves the marker one step back.
func (s *StateChanger) Prev() error {
	if !s.CanPrev() {
		return nil
	}
	return s.move(-1)
}

// Next moves the marker one step forward.
func (s *StateChanger) Next() error {
	if !s.CanNext() {
		return nil
	}
	return s.move(1)
}

func (s *StateChanger) move(delta int) error {
	if err := s.view.SetStepState(s.saved, s.index); err != nil {
		return err
	}
	s.index += delta
	step, err := s.view.Step(s.index)
	if err != nil {
		return err
	}
	s.saved = step.State
	return s.view.SetStepState(stepview.Current, s.index)
}

// Toggle flips the saved state between completed and not completed.
func (s *StateChanger) Toggle() stepview.State {
	if s.saved == stepview.NotCompleted {
		s.saved = stepview.Completed
	} else {
		s.saved = stepview.NotCompleted
	}
	return s.saved
}

// ToggleLabel is the caption of the toggle action for the saved state.
func (s *StateChanger) ToggleLabel() string {
	if s.saved == stepview.NotCompleted {
		return "Mark completed"
	}
	return "Mark not completed"
}
