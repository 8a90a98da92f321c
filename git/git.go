package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const (
	// DefaultRemote is the canonical remote the base branch is fetched from
	DefaultRemote = "origin"
	// DefaultRenameThreshold is the default threshold for detecting file renames
	DefaultRenameThreshold = "90%"
	// DefaultDiffAlgorithm is the default algorithm for computing diffs
	DefaultDiffAlgorithm = "minimal"
)

// Runner defines an interface for running git commands
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// Ensure DefaultRunner implements Runner interface
var _ Runner = (*DefaultRunner)(nil)

// DefaultRunner implements the Runner interface using exec.Command
type DefaultRunner struct {
	RepoPath string
}

// NewDefaultRunner creates a new instance of DefaultRunner
func NewDefaultRunner(repoPath string) *DefaultRunner {
	return &DefaultRunner{
		RepoPath: repoPath,
	}
}

// Run executes a git command and returns its output
func (r *DefaultRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	if r.RepoPath != "" {
		cmd.Dir = r.RepoPath
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("error running command: %s\nstderr: %s", err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Client provides the git operations needed to produce a reviewable diff
type Client struct {
	runner Runner
}

// NewClient creates a new Git client
func NewClient(runner Runner) *Client {
	return &Client{
		runner: runner,
	}
}

// EnsureBaseRef makes sure the remote-tracking ref for the base branch is
// resolvable locally, fetching it from the canonical remote when the CI
// checkout is shallow or single-branch.
func (c *Client) EnsureBaseRef(baseBranch string) error {
	if baseBranch == "" {
		return errors.New("base branch cannot be empty")
	}

	remoteRef := fmt.Sprintf("%s/%s", DefaultRemote, baseBranch)
	if _, err := c.runner.Run("git", "rev-parse", "--verify", "--quiet", remoteRef); err == nil {
		return nil
	}

	if _, err := c.runner.Run("git", "fetch", DefaultRemote, baseBranch); err != nil {
		return fmt.Errorf("error fetching base branch %q: %w", baseBranch, err)
	}
	return nil
}

// DiffAgainstBase returns the three-dot diff between the merge base of the
// base branch and the given revision, i.e. only the changes introduced by
// the revision. An empty string is a valid result meaning nothing changed.
func (c *Client) DiffAgainstBase(baseBranch, revision string) (string, error) {
	if baseBranch == "" || revision == "" {
		return "", errors.New("base branch and revision cannot be empty")
	}

	if err := c.EnsureBaseRef(baseBranch); err != nil {
		return "", err
	}

	return c.runner.Run("git",
		"diff",
		"--no-color",
		"--no-ext-diff",
		"--diff-algorithm="+DefaultDiffAlgorithm,
		"--find-renames="+DefaultRenameThreshold,
		fmt.Sprintf("%s/%s...%s", DefaultRemote, baseBranch, revision),
	)
}
