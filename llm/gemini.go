package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codetrail/gemini-reviewer/logger"
)

const (
	// DefaultGeminiBaseURL is the production generateContent endpoint root
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// DefaultGeminiModel is used when no model option is provided
	DefaultGeminiModel = "gemini-2.0-flash"
)

// GeminiModel implements the LLM interface over the Gemini REST API.
// Exactly one synchronous call per Prompt, no retry, explicit timeout.
type GeminiModel struct {
	client          *http.Client
	apiKey          string
	baseURL         string
	modelName       string
	maxOutputTokens int
	apiTimeout      int // in seconds
}

// NewGemini creates a new Gemini client
func NewGemini(apiKey string, opts ...Option) (*GeminiModel, error) {
	if apiKey == "" {
		errMsg := "Gemini API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	model := &GeminiModel{
		client:          &http.Client{},
		apiKey:          apiKey,
		baseURL:         DefaultGeminiBaseURL,
		modelName:       DefaultGeminiModel,
		maxOutputTokens: 4096,
		apiTimeout:      120,
	}

	// Apply options
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok && modelName != "" {
				model.modelName = modelName
			}
		case MaxOutputTokensOption:
			if maxTokens, ok := opt.Value.(int); ok {
				model.maxOutputTokens = maxTokens
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				model.apiTimeout = timeout
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok && baseURL != "" {
				model.baseURL = strings.TrimSuffix(baseURL, "/")
			}
		}
	}

	logger.Debugf("Gemini client initialized with model: %s, max output tokens: %d, timeout: %d seconds",
		model.modelName, model.maxOutputTokens, model.apiTimeout)

	return model, nil
}

// Prompt sends a single generateContent request to Gemini and returns
// the text of the first candidate.
func (g *GeminiModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to Gemini model: %s", g.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(g.apiTimeout)*time.Second)
	defer cancel()

	prompt := buildPromptText(req)

	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			// Constrain the response to structured output so the strict
			// JSON parse succeeds without extraction.
			ResponseMimeType: "application/json",
			MaxOutputTokens:  g.maxOutputTokens,
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		errMsg := fmt.Sprintf("failed to marshal Gemini request: %v", err)
		logger.Error(errMsg)
		return Response{Error: errors.New(errMsg)}
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.modelName, g.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		errMsg := fmt.Sprintf("failed to create Gemini request: %v", err)
		logger.Error(errMsg)
		return Response{Error: errors.New(errMsg)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logger.Infof("Sending request to Gemini with model %s, max output tokens %d", g.modelName, g.maxOutputTokens)

	httpResp, err := g.client.Do(httpReq)
	if err != nil {
		errMsg := fmt.Sprintf("failed to call Gemini API: %v", err)
		logger.Error(errMsg)
		return Response{Error: errors.New(errMsg)}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		errMsg := fmt.Sprintf("failed to read Gemini response: %v", err)
		logger.Error(errMsg)
		return Response{Error: errors.New(errMsg)}
	}

	if httpResp.StatusCode != http.StatusOK {
		errMsg := fmt.Sprintf("Gemini API returned status %d", httpResp.StatusCode)
		logger.Error(errMsg)
		logger.Errorf("Response body: %s", string(respBody))
		return Response{Error: errors.New(errMsg)}
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		errMsg := fmt.Sprintf("failed to parse Gemini response: %v", err)
		logger.Error(errMsg)
		logger.Errorf("Response body: %s", string(respBody))
		return Response{Error: errors.New(errMsg)}
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		errMsg := "Gemini response contained no candidates"
		logger.Error(errMsg)
		logger.Errorf("Response body: %s", string(respBody))
		return Response{Error: errors.New(errMsg)}
	}

	var content strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		content.WriteString(part.Text)
	}

	return Response{
		Content: content.String(),
	}
}

func buildPromptText(req Request) string {
	sections := make([]string, 0, 3)
	for _, section := range []string{req.SystemPrompt, req.UserPrompt, req.Diff} {
		if section != "" {
			sections = append(sections, section)
		}
	}
	return strings.Join(sections, "\n\n")
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
	MaxOutputTokens  int    `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}
