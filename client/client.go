package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/jsonapi"
	"github.com/a-h/neosearch/models"
)

func New(baseURL, apiKey string) Client {
	return Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type Client struct {
	baseURL string
	apiKey  string
}

// Error is returned when the server responds with a non-2xx status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("neosearch: server returned status %d: %s", e.Status, e.Message)
}

func (c Client) Search(ctx context.Context, query string) (resp models.SearchResponse, err error) {
	buf, err := json.Marshal(models.SearchRequest{Query: query})
	if err != nil {
		return resp, fmt.Errorf("failed to marshal request: %w", err)
	}
	err = c.do(ctx, http.MethodPost, bytes.NewReader(buf), &resp)
	return resp, err
}

func (c Client) Health(ctx context.Context) (resp models.HealthResponse, err error) {
	err = c.do(ctx, http.MethodGet, nil, &resp)
	return resp, err
}

func (c Client) do(ctx context.Context, method string, body io.Reader, v any) (err error) {
	url, err := jsonapi.URL(c.baseURL).String()
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	res, err := jsonapi.Raw(httpReq)
	if err != nil {
		return fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		var er models.ErrorResponse
		respBody, _ := io.ReadAll(res.Body)
		if json.Unmarshal(respBody, &er) != nil || er.Error == "" {
			er.Error = string(respBody)
		}
		return &Error{Status: res.StatusCode, Message: er.Error}
	}
	if err = json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
