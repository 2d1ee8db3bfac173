package loader

import "github.com/pkg/errors"

var (
	// ErrUnknownResource is returned by Registry.Lookup for an undeclared name.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrTornDown is returned by Session.Run when results arrived after Teardown and were dropped.
	ErrTornDown = errors.New("session torn down")

	// ErrAlreadyStarted is returned when Run is called twice on one session.
	ErrAlreadyStarted = errors.New("session already started")
)

// FailureMessage is what end users see for any load failure.
const FailureMessage = "Failed to load content. Please try again."

/*
PublicMessage maps any load error to the single user-facing message.
Timeout, HTTP, network and decode failures are all reported the same way;
the distinction only matters in logs.
*/
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	return FailureMessage
}
