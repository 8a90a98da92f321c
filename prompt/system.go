package prompt

import (
	"fmt"

	"github.com/codetrail/gemini-reviewer/common"
)

func GetSystemPrompt(settings common.Settings) string {
	basePrompt := getTone(settings) + `
` + getProfile(settings) + `
- Focus feedback on security, correctness, performance, design, and maintainability.
- Ignore minor code style issues unless they cause confusion or bugs.`
	if settings.Language != "" && settings.Language != "en-US" {
		basePrompt += fmt.Sprintf("\n- Use %s language.", settings.Language)
	}

	return basePrompt
}

func getProfile(settings common.Settings) string {
	switch settings.Reviews.Profile {
	case common.ProfileChill:
		return "- You are relaxed and friendly, providing feedback in a casual tone."
	case common.ProfileAssertive:
		return "- You are direct and confident, providing clear and concise feedback."
	}

	return ""
}

func getTone(settings common.Settings) string {
	tone := "You are an expert code reviewer assisting development teams from their CI pipeline."
	if settings.Tone != "" {
		tone = settings.Tone
	}

	return tone + `
You will be given the diff of a pull request and must report the issues it introduces.`
}
