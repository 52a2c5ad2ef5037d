package gitrelease

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// CollectChangelog reads lines from r until the first empty line or the end
// of input and joins them with "\n". The result is empty when the first line
// is blank or r has nothing to read.
func CollectChangelog(r io.Reader) (string, error) {
	return CollectChangelogFrom(bufio.NewReader(r))
}

// CollectChangelogFrom is CollectChangelog over a reader shared with other
// prompts. It never reads past the terminating line.
func CollectChangelogFrom(br *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return strings.Join(lines, "\n"), errors.Wrap(err, "reading changelog")
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err == io.EOF {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

// ReadLine reads one line from br without its line terminator. It returns
// ErrInputClosed when br is exhausted before any byte of the line was read.
func ReadLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", ErrInputClosed
		}
		err = nil
	}
	if err != nil {
		return "", errors.Wrap(err, "reading input")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
