package gitrelease

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Git is the version-control collaborator used by a release run.
// Every call operates on one repository and blocks until git exits.
type Git interface {
	// Describe returns the raw `git describe --tags` output.
	Describe(ctx context.Context) (string, error)
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Tag(ctx context.Context, name string) error
	Push(ctx context.Context, remote, ref string) error
}

// ExecGit runs the git binary in Dir.
type ExecGit struct {
	Dir string
}

// NewExecGit returns an ExecGit bound to dir.
func NewExecGit(dir string) *ExecGit {
	return &ExecGit{Dir: dir}
}

// CheckGit verifies that git is available on the system.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errors.New("git is not available on the system")
	}
	return nil
}

func (g *ExecGit) Describe(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "describe", "--tags")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (g *ExecGit) AddAll(ctx context.Context) error {
	_, err := g.run(ctx, "add", ".")
	return err
}

func (g *ExecGit) Commit(ctx context.Context, message string) error {
	_, err := g.run(ctx, "commit", "-m", message)
	return err
}

func (g *ExecGit) Tag(ctx context.Context, name string) error {
	_, err := g.run(ctx, "tag", name)
	return err
}

func (g *ExecGit) Push(ctx context.Context, remote, ref string) error {
	_, err := g.run(ctx, "push", remote, ref)
	return err
}

// run executes git with args and returns its stdout. On failure the error
// is a *CommandError carrying stderr.
func (g *ExecGit) run(ctx context.Context, args ...string) (string, error) {
	logger := LoggerFrom(ctx)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugw("running git", "args", args, "dir", g.Dir)
	if err := cmd.Run(); err != nil {
		cerr := &CommandError{
			Args:   append([]string{"git"}, args...),
			Dir:    g.Dir,
			Output: stderr.String(),
			Err:    err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr.ExitCode = exitErr.ExitCode()
		}
		logger.Debugw("git failed", "args", args, "exit", cerr.ExitCode, "stderr", strings.TrimSpace(cerr.Output))
		return stdout.String(), cerr
	}
	return stdout.String(), nil
}

// DryRunGit reads through to Git but only records mutating calls.
type DryRunGit struct {
	Git Git
	// Calls holds one line per suppressed call, e.g. "git tag v1.2.0".
	Calls []string
}

func (d *DryRunGit) Describe(ctx context.Context) (string, error) {
	return d.Git.Describe(ctx)
}

func (d *DryRunGit) AddAll(ctx context.Context) error {
	return d.record(ctx, "git", "add", ".")
}

func (d *DryRunGit) Commit(ctx context.Context, message string) error {
	return d.record(ctx, "git", "commit", "-m", message)
}

func (d *DryRunGit) Tag(ctx context.Context, name string) error {
	return d.record(ctx, "git", "tag", name)
}

func (d *DryRunGit) Push(ctx context.Context, remote, ref string) error {
	return d.record(ctx, "git", "push", remote, ref)
}

func (d *DryRunGit) record(ctx context.Context, args ...string) error {
	LoggerFrom(ctx).Infow("dry run: skipping", "args", args[1:])
	d.Calls = append(d.Calls, strings.Join(args, " "))
	return nil
}
