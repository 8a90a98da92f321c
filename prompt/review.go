package prompt

import "unicode/utf8"

// MaxDiffChars is the character budget for the diff embedded in the
// prompt, a conservative bound below the model's input-token ceiling.
// Diffs past the cut point are silently not reviewed.
const MaxDiffChars = 30000

// GetReviewPrompt returns the instruction half of the user prompt,
// demanding a machine-parseable JSON array and nothing else.
func GetReviewPrompt() string {
	return `Review the pull request diff below.

Respond ONLY with a JSON array of objects, each shaped exactly as:
  {"path": "<file path>", "line": <line number>, "comment": "<review comment>"}

Rules:
- "line" must be a line that is added or modified in the diff, numbered in the new version of the file.
- Report only real issues; do not pad the review.
- If there are no issues, respond with an empty array: []
- Do not write any prose, explanation, or code fences outside the JSON array.`
}

// GetDiffPrompt embeds the (possibly truncated) diff into the prompt.
// When the diff was truncated the model is told so it does not invent
// line numbers past the cut.
func GetDiffPrompt(diffContent string, truncated bool) string {
	header := "[PR Diff Start]"
	if truncated {
		header = "[PR Diff Start - truncated, review only what is shown]"
	}

	return header + `
` + diffContent + `
[PR Diff End]`
}

// TruncateDiff cuts the diff to the prompt character budget. The budget
// counts characters, not bytes, so a multibyte diff is never cut inside
// a rune. It reports whether anything was cut so the caller can log the
// loss.
func TruncateDiff(diff string) (string, bool) {
	if len(diff) <= MaxDiffChars {
		return diff, false
	}
	if utf8.RuneCountInString(diff) <= MaxDiffChars {
		return diff, false
	}
	return string([]rune(diff)[:MaxDiffChars]), true
}
