package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/AlecAivazis/survey.v1"
	"gopkg.in/AlecAivazis/survey.v1/terminal"

	gitrelease "github.com/bcomnes/gitrelease/pkg"
)

// Survey asks questions with survey on a terminal.
type Survey struct {
	stdio terminal.Stdio
	in    *lineReader
}

var _ gitrelease.Prompter = (*Survey)(nil)

// NewSurvey returns a Survey prompter on the given terminal.
func NewSurvey(stdio terminal.Stdio) *Survey {
	return &Survey{stdio: stdio, in: newLineReader(stdio.In)}
}

// NewTerminal returns a Survey prompter on the process stdio.
func NewTerminal() *Survey {
	return NewSurvey(terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
}

// Ask reads in raw mode, where Ctrl-C arrives as input rather than as a
// signal, so ctx is not consulted.
func (s *Survey) Ask(ctx context.Context, message string, validate func(string) error) (string, error) {
	var validator survey.Validator
	if validate != nil {
		validator = func(ans interface{}) error {
			str, _ := ans.(string)
			return validate(strings.TrimSpace(str))
		}
	}
	var answer string
	err := survey.AskOne(&survey.Input{Message: message}, &answer, validator,
		survey.WithStdio(s.stdio.In, s.stdio.Out, s.stdio.Err))
	return strings.TrimSpace(answer), translate(err)
}

// Lines reads the changelog in cooked mode. survey's Multiline only stops
// at two consecutive empty lines, so it is not used here.
func (s *Survey) Lines(ctx context.Context, message string) (string, error) {
	fmt.Fprintf(s.stdio.Out, "? %s\n", message)
	fmt.Fprintln(s.stdio.Out, "  Enter your commit message. End with an empty line:")
	return s.in.collect(ctx)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case err == terminal.InterruptErr:
		return gitrelease.ErrInterrupted
	case errors.Cause(err) == io.EOF:
		return gitrelease.ErrInputClosed
	}
	return err
}
