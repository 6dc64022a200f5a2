package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yourusername/social-dl-go/api/handlers"
	"github.com/yourusername/social-dl-go/internal/domain"
	"github.com/yourusername/social-dl-go/pkg/logger"
)

// apiClient talks to the social-dl server
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Minute},
	}
}

// Submit posts a URL and waits for the submission to settle
func (c *apiClient) Submit(videoURL string) (*handlers.SubmitResponse, error) {
	data, err := json.Marshal(handlers.SubmitRequest{URL: videoURL})
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Post(c.baseURL+"/api/v1/downloads", "application/json", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return nil, domain.ErrSubmissionInProgress
	}

	var result handlers.SubmitResponse
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// State fetches the current widget state
func (c *apiClient) State() (*domain.State, error) {
	resp, err := c.http.Get(c.baseURL + "/api/v1/state")
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	var state domain.State
	if err := decode(resp, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Logs fetches entries of a log category; an empty date means today
func (c *apiClient) Logs(category, date string, limit int) ([]logger.LogEntry, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if date != "" {
		query.Set("date", date)
	}

	resp, err := c.http.Get(c.baseURL + "/api/v1/logs/" + url.PathEscape(category) + "?" + query.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Entries []logger.LogEntry `json:"entries"`
	}
	if err := decode(resp, &result); err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// decode reads a JSON body, turning non-2xx responses into errors carrying the server's message
func decode(resp *http.Response, v interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
