// Package main implements the gitrelease CLI tool.
//
// The gitrelease tool releases the git repository it is run in. It reads the latest
// tag with "git describe --tags", suggests the next major, minor and patch versions,
// asks which one to release and collects a changelog. After confirmation it stages all
// changes, commits them with the message "Release v<version>" followed by the changelog,
// tags the commit with "v<version>" and pushes the branch and the tag.
//
// Command Usage:
//
//	gitrelease [flags]
//
// Flags:
//
//	-C, --dir:     Repository directory. (Defaults to ".")
//	--remote:      Remote to push to. (Defaults to "origin")
//	--branch:      Branch to push. (Defaults to the current branch, else "main")
//	--bump-file:   File whose first semantic version is rewritten to the new version
//	               before committing. May be used multiple times. Versions prefixed
//	               with "v" are skipped.
//	--dry-run:     Walk through the prompts and print the git commands that would run.
//	--plain:       Use line-based prompts even when stdin is a terminal.
//	--log-level:   debug, info, warn or error. (Defaults to $LOG_LEVEL, else warn)
//	--version:     Displays the version of the gitrelease CLI tool and exits.
//
// The version question accepts 1 (major), 2 (minor, the default), 3 (patch) or an
// explicit version like 1.2.3. The changelog ends at the first empty line. Only "y"
// or "Y" confirms the release.
//
// Defaults for remote, branch, log_level and bump_files can be set in a
// .gitrelease.toml file at the repository root:
//
//	remote = "upstream"
//	branch = "main"
//	bump_files = ["package.json"]
//
// Examples:
//
//	# Release the repository in the current directory
//	gitrelease
//
//	# Release another checkout and push to a different remote
//	gitrelease -C ../service --remote upstream
//
//	# Keep package.json in step with the tag
//	gitrelease --bump-file package.json
//
//	# Preview the commands without changing anything
//	gitrelease --dry-run
//
// For more detailed API documentation, please see the documentation in the "pkg" package
// or visit [PkgGoDev](https://pkg.go.dev/github.com/bcomnes/gitrelease).
package main
