package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	gitrelease "github.com/bcomnes/gitrelease/pkg"
	"github.com/bcomnes/gitrelease/pkg/prompt"
)

type options struct {
	dir       string
	remote    string
	branch    string
	logLevel  string
	dryRun    bool
	plain     bool
	bumpFiles []string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "gitrelease [flags]",
		Short: "Tag, commit and push the next release of a git repository",
		Long: `Reads the latest tag, suggests the next major, minor and patch versions, asks for a changelog,
and after confirmation stages all changes, commits them as "Release v<version>", tags the commit
with "v<version>" and pushes the branch and the tag.

Answer the version question with 1 (major), 2 (minor, the default) or 3 (patch), or type an
explicit version like 1.2.3.`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "C", ".", "Repository directory")
	cmd.Flags().StringVar(&opts.remote, "remote", "", `Remote to push to (default "origin", or remote in `+gitrelease.ConfigFileName+`)`)
	cmd.Flags().StringVar(&opts.branch, "branch", "", "Branch to push (default: the current branch, else \"main\")")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (or set $"+gitrelease.LogLevelEnvName+")")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be committed, tagged and pushed without changing anything")
	cmd.Flags().StringArrayVar(&opts.bumpFiles, "bump-file", nil, "File whose first version is rewritten to the new version before committing (repeatable, relative to the repository root)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Use line-based prompts even on a terminal")

	cmd.SetVersionTemplate("gitrelease CLI version {{.Version}}\n")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	if err := gitrelease.CheckGit(); err != nil {
		return err
	}
	repo, err := gitrelease.OpenRepository(opts.dir)
	if err != nil {
		return err
	}

	cfg, err := gitrelease.LoadConfig(afero.NewOsFs(), repo.Root)
	if err != nil {
		return err
	}
	if opts.remote != "" {
		cfg.Remote = opts.remote
	}
	if opts.branch != "" {
		cfg.Branch = opts.branch
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if len(opts.bumpFiles) > 0 {
		cfg.BumpFiles = opts.bumpFiles
	}
	if cfg.Branch == "" {
		cfg.Branch = repo.BranchOr(gitrelease.DefaultBranch)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := gitrelease.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	ctx := gitrelease.WithLogger(cmd.Context(), logger)
	logger.Debugw("repository", "root", repo.Root, "remote", cfg.Remote, "branch", cfg.Branch)

	var git gitrelease.Git = gitrelease.NewExecGit(repo.Root)
	var dry *gitrelease.DryRunGit
	fs := afero.NewOsFs()
	if opts.dryRun {
		dry = &gitrelease.DryRunGit{Git: git}
		git = dry
		// Bumped files land in memory and are discarded on exit.
		fs = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(fs), afero.NewMemMapFs())
	}

	out := cmd.OutOrStdout()
	r := &gitrelease.Releaser{
		Git:       git,
		Prompter:  newPrompter(cmd.InOrStdin(), out, opts.plain),
		Out:       out,
		Remote:    cfg.Remote,
		Branch:    cfg.Branch,
		BumpFiles: resolvePaths(repo.Root, cfg.BumpFiles),
		Fs:        fs,
		DryRun:    opts.dryRun,
	}
	meta, err := r.Run(ctx)
	if err != nil {
		return err
	}

	if dry != nil && meta.State == gitrelease.Done {
		fmt.Fprintln(out, "Commands that would run:")
		for _, c := range dry.Calls {
			fmt.Fprintf(out, "  %s\n", c)
		}
	}
	return nil
}

func resolvePaths(root string, paths []string) []string {
	resolved := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		resolved = append(resolved, p)
	}
	return resolved
}

// newPrompter uses survey when stdin is an interactive terminal.
func newPrompter(in io.Reader, out io.Writer, plain bool) gitrelease.Prompter {
	if !plain && in == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		return prompt.NewTerminal()
	}
	return prompt.NewLine(in, out)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if errors.Is(err, gitrelease.ErrInterrupted) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "Interrupted.")
		os.Exit(130)
	}
	if err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
