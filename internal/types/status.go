package types

import (
	ierr "github.com/adminboard/adminboard/internal/errors"
)

// Status is the lifecycle state of a dashboard record. The capitalised
// values mirror what the dashboard UI renders in its status badges.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) String() string {
	return string(s)
}

// Validate rejects anything outside the Active/Inactive pair. The empty
// string is valid so callers can treat it as "not provided".
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusInactive, "":
		return nil
	default:
		return ierr.NewError("invalid status").
			WithHintf("Status must be %s or %s", StatusActive, StatusInactive).
			Mark(ierr.ErrValidation)
	}
}
