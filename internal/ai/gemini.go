package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

type GeminiClient struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, model, endpoint string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends a single-turn prompt and returns the first candidate's first part.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	jsonData, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal gemini request")
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.endpoint, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", errors.Wrap(err, "failed to create http request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "http request failed")
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response body")
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(bodyBytes, &gemResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", errors.Errorf("gemini API returned status %d: %s", resp.StatusCode, string(bodyBytes))
		}
		return "", errors.Wrap(err, "failed to decode response")
	}
	if gemResp.Error != nil {
		return "", errors.Errorf("gemini API error %d: %s", gemResp.Error.Code, gemResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("gemini API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidates
	}
	text := gemResp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrNoCandidates
	}
	return text, nil
}
