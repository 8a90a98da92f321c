package cmd

import (
	"strings"

	"github.com/codetrail/gemini-reviewer/common"
	"github.com/codetrail/gemini-reviewer/config"
	"github.com/codetrail/gemini-reviewer/git"
	"github.com/codetrail/gemini-reviewer/llm"
	"github.com/codetrail/gemini-reviewer/logger"
	"github.com/codetrail/gemini-reviewer/prompt"
	"github.com/codetrail/gemini-reviewer/review"
	"github.com/spf13/cobra"
)

// diffSource produces the diff to review. Satisfied by *git.Client.
type diffSource interface {
	DiffAgainstBase(baseBranch, revision string) (string, error)
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the current pull request using Gemini",
	Long: `Diff the pull request revision against its base branch, request a
structured review from the Gemini API, and post each resulting comment
as an inline review comment on the pull request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Starting Gemini code review")
		defer logger.Sync()

		// Missing configuration is the only failure that exits non-zero,
		// and it happens before any git or network call.
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		model, _ := cmd.Flags().GetString("model")
		repoPath, _ := cmd.Flags().GetString("repo-path")

		settings := common.WithYamlFile(repoPath)
		logger.Debugf("Using review settings: %+v", settings)

		gitClient := git.NewClient(git.NewDefaultRunner(repoPath))

		llmClient, err := llm.NewGemini(cfg.GeminiAPIKey, llm.WithModel(model))
		if err != nil {
			logger.Errorf("Failed to create Gemini client: %v", err)
			return nil
		}

		reviewerOpts := []review.Option{review.WithAPIToken(cfg.GitHubToken)}
		if cfg.GitHubAPIURL != "" {
			reviewerOpts = append(reviewerOpts, review.WithBaseURL(cfg.GitHubAPIURL))
		}

		reviewer, err := review.NewGitHub(reviewerOpts...)
		if err != nil {
			logger.Errorf("Failed to create GitHub client: %v", err)
			return nil
		}

		return runReview(cfg, gitClient, llmClient, reviewer, settings)
	},
}

// runReview drives the pipeline: diff, review request, publish. Every
// failure past configuration degrades with a log entry and a nil return
// so the CI run itself stays green.
func runReview(cfg config.Config, diffs diffSource, llmClient llm.LLM, reviewer review.Reviewer, settings common.Settings) error {
	diff, err := diffs.DiffAgainstBase(cfg.BaseBranch, cfg.CommitSHA)
	if err != nil {
		// Treated as "nothing to review" rather than a crash so a broken
		// checkout does not fail the whole CI run.
		logger.Errorf("Could not retrieve diff: %v", err)
		return nil
	}

	if strings.TrimSpace(diff) == "" {
		logger.Info("Diff is empty, nothing to review")
		return nil
	}

	truncatedDiff, truncated := prompt.TruncateDiff(diff)
	if truncated {
		logger.Warnf("Diff exceeds %d characters and was truncated; issues past the cut will not be reviewed", prompt.MaxDiffChars)
	}

	resp := llmClient.Prompt(llm.Request{
		SystemPrompt: prompt.GetSystemPrompt(settings),
		UserPrompt:   prompt.GetReviewPrompt(),
		Diff:         prompt.GetDiffPrompt(truncatedDiff, truncated),
	})
	if resp.Error != nil {
		logger.Errorf("Error getting review from Gemini: %v", resp.Error)
		return nil
	}

	comments, err := common.ParseReviewComments(resp.Content)
	if err != nil {
		logger.Errorf("Could not parse model output, producing no comments: %v", err)
		logger.Errorf("Raw model output: %s", resp.Content)
	} else if len(comments) == 0 {
		logger.Info("Model reviewed the diff and found no issues")
	}

	result := reviewer.PostReviewComments(cfg.RepoOwner, cfg.RepoName, cfg.PRNumber, cfg.CommitSHA, comments)
	logger.Infof("Review finished: %d comment(s) posted, %d skipped, %d failed", result.Posted, result.Skipped, result.Failed)

	return nil
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().StringP("model", "m", llm.DefaultGeminiModel, "Gemini model to use for the review")
	reviewCmd.Flags().StringP("repo-path", "r", ".", "Path to the repository checkout")
}
