package review

import (
	"github.com/codetrail/gemini-reviewer/common"
)

// OptionType defines the type of option for review providers
type OptionType string

// Available option types
const (
	APITokenOption OptionType = "api_token"
	TimeoutOption  OptionType = "timeout"
	BaseURLOption  OptionType = "base_url"
)

// Option represents a generic configuration option for the review provider
type Option struct {
	Type  OptionType
	Value any
}

// WithAPIToken creates an option to set the API token
func WithAPIToken(token string) Option {
	return Option{
		Type:  APITokenOption,
		Value: token,
	}
}

// WithTimeout creates an option to set the API timeout in seconds
func WithTimeout(timeout int) Option {
	return Option{
		Type:  TimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to set the base URL for GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// PublishResult summarizes a best-effort publishing pass. Failures are
// observability-only; they never fail the run.
type PublishResult struct {
	Posted  int // comments accepted by the platform
	Skipped int // records discarded for missing fields
	Failed  int // posts rejected by the platform or the network
}

// Reviewer defines the interface for posting review feedback onto the
// hosting platform.
type Reviewer interface {
	// PostReviewComments posts each valid comment as an inline review
	// comment anchored to the given commit. One rejected comment never
	// blocks the rest.
	PostReviewComments(repoOwner, repoName string, pr int, commitSHA string, comments []common.ReviewComment) PublishResult
}
