package review

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/codetrail/gemini-reviewer/common"
	"github.com/codetrail/gemini-reviewer/logger"
	"github.com/google/go-github/v48/github"
	"golang.org/x/oauth2"
)

// GitHub implements the Reviewer interface for GitHub PRs
type GitHub struct {
	client   *github.Client
	apiToken string
	baseURL  string
	timeout  int
}

// NewGitHub creates a new GitHub reviewer client
func NewGitHub(opts ...Option) (*GitHub, error) {
	gh := &GitHub{
		timeout: 60, // Default timeout
	}

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case APITokenOption:
			if token, ok := opt.Value.(string); ok {
				gh.apiToken = token
			}
		case TimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				gh.timeout = timeout
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok {
				gh.baseURL = baseURL
			}
		}
	}

	// Validate required options
	if gh.apiToken == "" {
		return nil, fmt.Errorf("API token is required for GitHub")
	}

	// Create GitHub client
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: gh.apiToken})
	tc := oauth2.NewClient(context.Background(), ts)
	gh.client = github.NewClient(tc)

	if gh.baseURL != "" {
		endpoint, err := url.Parse(gh.baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", gh.baseURL, err)
		}
		if !strings.HasSuffix(endpoint.Path, "/") {
			endpoint.Path += "/"
		}
		gh.client.BaseURL = endpoint
	}

	return gh, nil
}

// PostReviewComments posts each valid comment as an inline review comment
// on the pull request. Records missing a required field are skipped, and a
// rejected post is logged and does not stop the remaining posts.
func (gh *GitHub) PostReviewComments(repoOwner, repoName string, pr int, commitSHA string, comments []common.ReviewComment) PublishResult {
	result := PublishResult{}

	if len(comments) == 0 {
		logger.Info("No review comments to post")
		return result
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(gh.timeout)*time.Second)
	defer cancel()

	for _, comment := range comments {
		if !comment.IsValid() {
			logger.Warnf("Skipping malformed review comment (path=%q, line=%d): all of path, line and comment are required",
				comment.Path, comment.Line)
			result.Skipped++
			continue
		}

		prComment := &github.PullRequestComment{
			Body:     github.String(comment.Comment),
			CommitID: github.String(commitSHA),
			Path:     github.String(comment.Path),
			Line:     github.Int(comment.Line),
			Side:     github.String("RIGHT"),
		}

		_, resp, err := gh.client.PullRequests.CreateComment(ctx, repoOwner, repoName, pr, prComment)
		if err != nil {
			// The platform rejecting one comment (e.g. a line outside the
			// diff) must not block the rest.
			status := 0
			if resp != nil {
				status = resp.StatusCode
			}
			logger.Errorf("Failed to post comment for %s:%d (status %d): %v", comment.Path, comment.Line, status, err)
			result.Failed++
			continue
		}

		logger.Infof("Posted review comment for %s:%d", comment.Path, comment.Line)
		result.Posted++
	}

	return result
}
