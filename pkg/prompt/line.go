// Package prompt implements gitrelease.Prompter for plain streams and for
// interactive terminals.
package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	gitrelease "github.com/bcomnes/gitrelease/pkg"
)

var rejectColor = color.New(color.FgRed)

// Line reads answers one line at a time from any reader. It is used when
// stdin is not a terminal and in tests.
type Line struct {
	in  *lineReader
	out io.Writer
}

var _ gitrelease.Prompter = (*Line)(nil)

// NewLine returns a Line prompter reading from in and writing prompts to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: newLineReader(in), out: out}
}

// Ask prints message and reads a trimmed answer. Rejected answers are
// reported and asked again until one passes, the input ends or ctx is done.
func (l *Line) Ask(ctx context.Context, message string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(l.out, "%s ", message)
		answer, err := l.in.readLine(ctx)
		if err != nil {
			fmt.Fprintln(l.out)
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if validate == nil {
			return answer, nil
		}
		if err := validate(answer); err != nil {
			rejectColor.Fprintf(l.out, "Invalid input: %v\n", err)
			continue
		}
		return answer, nil
	}
}

// Lines prints message and collects lines up to the first empty one.
func (l *Line) Lines(ctx context.Context, message string) (string, error) {
	fmt.Fprintln(l.out, message)
	fmt.Fprintln(l.out, "Enter your commit message. End with an empty line:")
	return l.in.collect(ctx)
}
