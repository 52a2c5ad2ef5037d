package prompt

import (
	"bufio"
	"context"
	"io"
	"strings"

	gitrelease "github.com/bcomnes/gitrelease/pkg"
)

type lineResult struct {
	line string
	err  error
}

// lineReader reads operator lines without outliving its context. A read
// abandoned on cancellation stays pending and is collected by the next
// call, so the underlying reader is never read concurrently.
type lineReader struct {
	in      *bufio.Reader
	pending chan lineResult
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{in: bufio.NewReader(in)}
}

// readLine returns the next line without its terminator, ErrInputClosed at
// the end of input and ErrInterrupted once ctx is done.
func (r *lineReader) readLine(ctx context.Context) (string, error) {
	if r.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := gitrelease.ReadLine(r.in)
			ch <- lineResult{line, err}
		}()
		r.pending = ch
	}
	select {
	case res := <-r.pending:
		r.pending = nil
		return res.line, res.err
	case <-ctx.Done():
		return "", gitrelease.ErrInterrupted
	}
}

// collect reads lines up to the first empty one or the end of input.
func (r *lineReader) collect(ctx context.Context) (string, error) {
	var lines []string
	for {
		line, err := r.readLine(ctx)
		if err == gitrelease.ErrInputClosed {
			break
		}
		if err != nil {
			return strings.Join(lines, "\n"), err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
