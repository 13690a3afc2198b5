package world

import (
	"errors"
	"fmt"
)

// ErrMissingCollaborator is matched by every MissingCollaboratorError.
var ErrMissingCollaborator = errors.New("missing collaborator")

// MissingCollaboratorError reports a location that was wired without
// something it needs, e.g. an action factory while it holds visible items.
type MissingCollaboratorError struct {
	LocationID   string
	Collaborator string
}

func (e *MissingCollaboratorError) Error() string {
	return fmt.Sprintf("location %q: %s is not set", e.LocationID, e.Collaborator)
}

func (e *MissingCollaboratorError) Is(target error) bool {
	return target == ErrMissingCollaborator
}
