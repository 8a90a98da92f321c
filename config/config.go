package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultBaseBranch is used when BASE_BRANCH is not set in the environment.
const DefaultBaseBranch = "main"

// Config holds every process input sourced from the CI environment.
// It is built once at startup and handed to the pipeline, so components
// never read the environment themselves.
type Config struct {
	GeminiAPIKey string // GEMINI_API_KEY
	GitHubToken  string // GITHUB_TOKEN
	RepoOwner    string // from GITHUB_REPOSITORY (owner/name)
	RepoName     string // from GITHUB_REPOSITORY (owner/name)
	PRNumber     int    // PR_NUMBER
	CommitSHA    string // COMMIT_SHA
	BaseBranch   string // BASE_BRANCH, defaults to DefaultBaseBranch
	GitHubAPIURL string // GITHUB_API_URL, optional (GitHub Enterprise)
}

// Load reads and validates the configuration from the environment.
// Every missing or malformed required variable is collected so the
// failure names all of them at once.
func Load() (Config, error) {
	cfg := Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),
		CommitSHA:    os.Getenv("COMMIT_SHA"),
		BaseBranch:   os.Getenv("BASE_BRANCH"),
		GitHubAPIURL: os.Getenv("GITHUB_API_URL"),
	}

	var missing []string

	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if cfg.GitHubToken == "" {
		missing = append(missing, "GITHUB_TOKEN")
	}
	if cfg.CommitSHA == "" {
		missing = append(missing, "COMMIT_SHA")
	}

	repo := os.Getenv("GITHUB_REPOSITORY")
	if repo == "" {
		missing = append(missing, "GITHUB_REPOSITORY")
	} else {
		owner, name, ok := splitRepository(repo)
		if !ok {
			missing = append(missing, "GITHUB_REPOSITORY (expected owner/name)")
		}
		cfg.RepoOwner = owner
		cfg.RepoName = name
	}

	prNumber := os.Getenv("PR_NUMBER")
	if prNumber == "" {
		missing = append(missing, "PR_NUMBER")
	} else {
		pr, err := strconv.Atoi(prNumber)
		if err != nil || pr <= 0 {
			missing = append(missing, "PR_NUMBER (expected a positive integer)")
		}
		cfg.PRNumber = pr
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing or invalid environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.BaseBranch == "" {
		cfg.BaseBranch = DefaultBaseBranch
	}

	return cfg, nil
}

func splitRepository(repo string) (owner, name string, ok bool) {
	parts := strings.SplitN(repo, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
