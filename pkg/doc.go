// Package gitrelease provides the building blocks of an interactive git release.
//
// It provides functionalities for:
//   - Parsing the output of `git describe --tags` into a version triple, falling back to 0.0.0
//     when the repository has no tags yet.
//   - Suggesting the next major, minor and patch versions, and resolving the operator's answer
//     (a shorthand "1", "2", "3" or a literal "X.Y.Z") into the version to release.
//   - Collecting a changelog that ends at the first empty line.
//   - Staging everything, committing with "Release v<version>" plus the changelog, tagging the
//     commit with "v<version>" and pushing branch and tag, stopping at the first git failure.
//
// The git binary is reached through the Git interface; ExecGit runs it in an explicit repository
// directory and DryRunGit records what would have changed. Questions are asked through a Prompter,
// see the prompt subpackage for line-based and terminal implementations.
//
// Usage Example:
//
//	import (
//	    "context"
//	    "log"
//	    "os"
//
//	    gitrelease "github.com/bcomnes/gitrelease/pkg"
//	    "github.com/bcomnes/gitrelease/pkg/prompt"
//	)
//
//	func main() {
//	    r := &gitrelease.Releaser{
//	        Git:      gitrelease.NewExecGit("."),
//	        Prompter: prompt.NewLine(os.Stdin, os.Stdout),
//	        Out:      os.Stdout,
//	        Remote:   "origin",
//	        Branch:   "main",
//	    }
//	    if _, err := r.Run(context.Background()); err != nil {
//	        log.Fatalf("release failed: %v", err)
//	    }
//	}
package gitrelease
