package gitrelease

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Prompter asks the operator for input.
type Prompter interface {
	// Ask shows message and returns the answer. When validate is non-nil a
	// rejected answer is reported and the question asked again, with no
	// limit on attempts. A prompt blocked on input returns ErrInterrupted
	// once ctx is done.
	Ask(ctx context.Context, message string, validate func(string) error) (string, error)
	// Lines collects free text until the first empty line or end of input.
	Lines(ctx context.Context, message string) (string, error)
}

// State is a step of a release run.
type State int

const (
	Start State = iota
	Suggesting
	SelectingVersion
	CollectingChangelog
	Confirming
	Committing
	Done
	Cancelled
	Failed
)

var stateNames = [...]string{"start", "suggesting", "selecting-version", "collecting-changelog",
	"confirming", "committing", "done", "cancelled", "failed"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// ReleaseMeta describes the outcome of a release run.
type ReleaseMeta struct {
	OldVersion string // Version found in the latest tag, "0.0.0" without tags.
	NewVersion string // Version chosen by the operator, without "v".
	Tag        string
	Remote     string
	Branch     string
	Changelog  string
	State      State
	// Applied lists the commit steps that completed, in order. After a
	// failure it tells what must be undone by hand.
	Applied []string
}

// CommitMessage renders the release commit message.
func CommitMessage(version, changes string) string {
	return fmt.Sprintf("Release v%s\n\n%s", version, changes)
}

// Releaser runs one interactive release.
type Releaser struct {
	Git      Git
	Prompter Prompter
	Out      io.Writer
	Remote   string
	Branch   string
	// BumpFiles get their first semantic version replaced with the new
	// version before everything is staged.
	BumpFiles []string
	// Fs holds BumpFiles; nil means the OS filesystem.
	Fs afero.Fs
	// DryRun only changes the closing message; pass a DryRunGit as Git and
	// a copy-on-write Fs to keep the repository untouched.
	DryRun bool
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

// Run walks the release from reading the current tag to pushing the new
// one. It returns with State Cancelled when the operator declines, and with
// State Failed and an error naming the step when a git command fails; no
// step after a failed one is attempted.
func (r *Releaser) Run(ctx context.Context) (ReleaseMeta, error) {
	logger := LoggerFrom(ctx)
	meta := ReleaseMeta{Remote: r.Remote, Branch: r.Branch, State: Start}
	enter := func(s State) {
		meta.State = s
		logger.Debugw("release state", "state", s.String())
	}
	fail := func(err error) (ReleaseMeta, error) {
		enter(Failed)
		return meta, err
	}

	current := Zero
	raw, err := r.Git.Describe(ctx)
	switch {
	case err != nil && ctx.Err() != nil:
		return fail(ctx.Err())
	case err != nil:
		logger.Debugw("no tag found, starting from zero", "error", err)
	default:
		if current, err = ParseDescribe(raw); err != nil {
			return fail(err)
		}
	}
	meta.OldVersion = current.String()

	enter(Suggesting)
	candidates := Suggest(current)
	fmt.Fprintf(r.Out, "Current version: %s\n", current.Tag())
	fmt.Fprintf(r.Out, "Suggested versions:\n  %s. Major version: %s\n  %s. Minor version: %s\n  %s. Patch version: %s\n",
		Shorthands[0], candidates.Major(), Shorthands[1], candidates.Minor(), Shorthands[2], candidates.Patch())

	enter(SelectingVersion)
	answer, err := r.Prompter.Ask(ctx,
		fmt.Sprintf("Enter the new version (default is %s):", candidates[indexOf(DefaultShorthand)]),
		ValidateSelection(candidates),
	)
	if err != nil {
		return fail(err)
	}
	if meta.NewVersion, err = ResolveVersion(answer, candidates); err != nil {
		return fail(err)
	}
	meta.Tag = TagName(meta.NewVersion)
	if !isNewer(meta.NewVersion, meta.OldVersion) {
		warnColor.Fprintf(r.Out, "Warning: %s is not newer than the current version %s\n", meta.NewVersion, meta.OldVersion)
	}

	enter(CollectingChangelog)
	if meta.Changelog, err = r.Prompter.Lines(ctx, "Enter the changes (plain text code changelog without empty lines or double spacing):"); err != nil {
		return fail(err)
	}

	enter(Confirming)
	fmt.Fprintf(r.Out, "\nUploading version %s with the following changes:\n%s\n", meta.NewVersion, meta.Changelog)
	confirm, err := r.Prompter.Ask(ctx, "Confirm commit and push? (y/n):", nil)
	if err != nil {
		return fail(err)
	}
	if !strings.EqualFold(strings.TrimSpace(confirm), "y") {
		enter(Cancelled)
		fmt.Fprintln(r.Out, "Commit canceled.")
		return meta, nil
	}

	enter(Committing)
	for _, step := range r.commitSteps(meta) {
		if err := step.run(ctx); err != nil {
			logger.Errorw("release step failed", "step", step.name, "applied", meta.Applied, "error", err)
			return fail(errors.Wrapf(err, "release aborted at %q (already applied: %s)", step.name, describeApplied(meta.Applied)))
		}
		meta.Applied = append(meta.Applied, step.name)
	}

	enter(Done)
	if r.DryRun {
		fmt.Fprintf(r.Out, "Dry run complete, version %s was not released.\n", meta.NewVersion)
		return meta, nil
	}
	successColor.Fprintf(r.Out, "Version %s uploaded successfully!\n", meta.NewVersion)
	return meta, nil
}

type commitStep struct {
	name string
	run  func(ctx context.Context) error
}

func (r *Releaser) commitSteps(meta ReleaseMeta) []commitStep {
	fs := r.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	var steps []commitStep
	for _, path := range r.BumpFiles {
		steps = append(steps, commitStep{"bump " + path, func(ctx context.Context) error {
			old, err := BumpFile(fs, path, meta.NewVersion)
			if err == nil {
				LoggerFrom(ctx).Infow("bumped version in file", "file", path, "from", old, "to", meta.NewVersion)
			}
			return err
		}})
	}
	return append(steps, []commitStep{
		{"stage", func(ctx context.Context) error { return r.Git.AddAll(ctx) }},
		{"commit", func(ctx context.Context) error { return r.Git.Commit(ctx, CommitMessage(meta.NewVersion, meta.Changelog)) }},
		{"tag " + meta.Tag, func(ctx context.Context) error { return r.Git.Tag(ctx, meta.Tag) }},
		{"push " + meta.Branch, func(ctx context.Context) error { return r.Git.Push(ctx, meta.Remote, meta.Branch) }},
		{"push " + meta.Tag, func(ctx context.Context) error { return r.Git.Push(ctx, meta.Remote, meta.Tag) }},
	}...)
}

func describeApplied(applied []string) string {
	if len(applied) == 0 {
		return "nothing"
	}
	return strings.Join(applied, ", ")
}

func indexOf(shorthand string) int {
	for i, s := range Shorthands {
		if s == shorthand {
			return i
		}
	}
	return 0
}
