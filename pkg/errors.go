package gitrelease

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

var (
	// ErrInvalidVersion is returned for operator input that is neither a
	// shorthand nor a literal "X.Y.Z" version.
	ErrInvalidVersion = eris.New("invalid version")
	// ErrMalformedTag is returned when a describe result has non-numeric
	// version components.
	ErrMalformedTag = eris.New("malformed version tag")
	// ErrInputClosed is returned by prompters when the input source ends
	// before an answer was accepted.
	ErrInputClosed = eris.New("input closed")
	// ErrInterrupted is returned by prompters when the operator aborts a
	// prompt (Ctrl-C on a terminal).
	ErrInterrupted = eris.New("interrupted")
)

// CommandError describes a failed git invocation.
type CommandError struct {
	Args     []string
	Dir      string
	ExitCode int
	Output   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s failed", strings.Join(e.Args, " "))
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" (exit %d)", e.ExitCode)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }
