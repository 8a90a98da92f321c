package llm

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption       OptionType = "model"
	MaxOutputTokensOption OptionType = "max_output_tokens"
	APITimeoutOption      OptionType = "api_timeout"
	BaseURLOption         OptionType = "base_url"
)

// Option represents a generic configuration option for the LLM client
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxOutputTokens creates an option to set the output token cap
func WithMaxOutputTokens(maxTokens int) Option {
	return Option{
		Type:  MaxOutputTokensOption,
		Value: maxTokens,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to override the API endpoint
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// Request represents the data needed to generate a prompt for the LLM
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Diff         string
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Error   error
}

// LLM defines the interface for language model prompting
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(req Request) Response
}
