package models

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition marks a rejected status change so callers can
// answer with a validation error instead of a server failure
var ErrInvalidTransition = errors.New("invalid status transition")

// Status tracks the handling state of an inquiry or contact submission
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusContacted  Status = "contacted"
	StatusScheduled  Status = "scheduled"
	StatusQuoted     Status = "quoted"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Priority ranks how urgently a submission should be handled
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// statusTransitions maps each status to the states it may move to.
// Cancelled is reachable from any state, including completed; the
// forward flow itself never leaves completed or cancelled.
var statusTransitions = map[Status][]Status{
	StatusNew:        {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusContacted, StatusScheduled, StatusQuoted, StatusCancelled},
	StatusContacted:  {StatusCompleted, StatusCancelled},
	StatusScheduled:  {StatusCompleted, StatusCancelled},
	StatusQuoted:     {StatusCompleted, StatusCancelled},
	StatusCompleted:  {StatusCancelled},
	StatusCancelled:  {StatusCancelled},
}

// IsValid reports whether s is a known status value
func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns a descriptive error when the move is not allowed
func (s Status) ValidateTransition(next Status) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: cannot move from %q to %q", ErrInvalidTransition, s, next)
	}
	return nil
}

// IsValid reports whether p is a known priority value
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
