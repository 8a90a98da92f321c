package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ReviewComment is a single inline review comment produced by the model.
// Line numbers refer to lines of the new side of the diff; whether the
// line actually exists is left to the hosting platform to enforce.
type ReviewComment struct {
	Path    string `json:"path"`    // Path to the file being commented on
	Line    int    `json:"line"`    // Line number in the new version of the file
	Comment string `json:"comment"` // Body of the review comment
}

// IsValid reports whether the record carries all fields required to be
// posted as an inline comment.
func (c ReviewComment) IsValid() bool {
	return c.Path != "" && c.Line > 0 && c.Comment != ""
}

// ParseReviewComments parses the model output into a list of review
// comments. The text is first parsed as-is, then with a wrapping code
// fence stripped, and finally by extracting the outermost [...] span,
// as models routinely wrap the array in prose or fences.
func ParseReviewComments(text string) ([]ReviewComment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("empty model output")
	}

	if comments, err := unmarshalComments(trimmed); err == nil {
		return comments, nil
	}

	if stripped := stripCodeFence(trimmed); stripped != trimmed {
		if comments, err := unmarshalComments(stripped); err == nil {
			return comments, nil
		}
	}

	span, ok := extractJSONArray(trimmed)
	if !ok {
		return nil, fmt.Errorf("no JSON array found in model output")
	}

	comments, err := unmarshalComments(span)
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted JSON array: %w", err)
	}
	return comments, nil
}

func unmarshalComments(text string) ([]ReviewComment, error) {
	var comments []ReviewComment
	if err := json.Unmarshal([]byte(text), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// extractJSONArray returns the outermost bracketed span of the text,
// from the first '[' to the last ']'.
func extractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// stripCodeFence removes a wrapping ```json ... ``` fence that some
// models add around their output.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}

	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return s
	}
	inner := trimmed[idx+1:]
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.TrimSpace(inner)
}
