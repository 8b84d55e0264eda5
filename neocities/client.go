package neocities

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/jsonapi"
)

const (
	DefaultAPIURL          = "https://neocities.org/api"
	DefaultSiteURLTemplate = "https://%s.neocities.org"
)

// New creates a client for the Neocities API.
// siteURLTemplate is a fmt template that receives the site name, e.g. https://%s.neocities.org
func New(apiURL, siteURLTemplate, apiKey string) Client {
	return Client{
		apiURL:          apiURL,
		siteURLTemplate: siteURLTemplate,
		apiKey:          apiKey,
	}
}

type Client struct {
	apiURL          string
	siteURLTemplate string
	apiKey          string
}

type File struct {
	Path        string `json:"path"`
	IsDirectory bool   `json:"is_directory"`
	Size        int64  `json:"size,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type SiteInfo struct {
	Sitename string `json:"sitename"`
}

type ListResponse struct {
	Result    string   `json:"result"`
	ErrorType string   `json:"error_type,omitempty"`
	Message   string   `json:"message,omitempty"`
	Info      SiteInfo `json:"info"`
	Files     []File   `json:"files"`
}

type InfoResponse struct {
	Result    string   `json:"result"`
	ErrorType string   `json:"error_type,omitempty"`
	Message   string   `json:"message,omitempty"`
	Info      SiteInfo `json:"info"`
}

// ListError is returned when the API responds, but does not report success.
type ListError struct {
	Result  string
	Message string
}

func (e *ListError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("neocities: list returned result %q", e.Result)
	}
	return fmt.Sprintf("neocities: list returned result %q: %s", e.Result, e.Message)
}

// List the files of the site that owns the API key.
func (c Client) List(ctx context.Context) (resp ListResponse, err error) {
	if err = c.getAPI(ctx, "list", &resp); err != nil {
		return resp, fmt.Errorf("neocities: list failed: %w", err)
	}
	if resp.Result != "success" {
		return resp, &ListError{Result: resp.Result, Message: resp.Message}
	}
	return resp, nil
}

// Info returns information about the site that owns the API key.
func (c Client) Info(ctx context.Context) (resp InfoResponse, err error) {
	if err = c.getAPI(ctx, "info", &resp); err != nil {
		return resp, fmt.Errorf("neocities: info failed: %w", err)
	}
	if resp.Result != "success" {
		return resp, fmt.Errorf("neocities: info returned result %q: %s", resp.Result, resp.Message)
	}
	return resp, nil
}

// getAPI decodes the response body regardless of status, because the API
// reports failures as JSON with a result of "error".
func (c Client) getAPI(ctx context.Context, path string, v any) (err error) {
	u, err := jsonapi.URL(c.apiURL).Path(path).String()
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	res, err := jsonapi.Raw(req, jsonapi.WithRequestHeader("Authorization", "Bearer "+c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to perform HTTP request: %w", err)
	}
	defer res.Body.Close()
	if err = json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", res.StatusCode, err)
	}
	return nil
}

// SiteURL returns the public URL of a file on the site.
func (c Client) SiteURL(sitename, path string) (string, error) {
	return jsonapi.URL(fmt.Sprintf(c.siteURLTemplate, sitename)).Path(strings.TrimPrefix(path, "/")).String()
}

// Content downloads the raw content of a file from the public site.
func (c Client) Content(ctx context.Context, sitename, path string) (content string, err error) {
	u, err := c.SiteURL(sitename, path)
	if err != nil {
		return "", fmt.Errorf("neocities: failed to create URL for %q: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("neocities: failed to create request: %w", err)
	}
	res, err := jsonapi.Raw(req)
	if err != nil {
		return "", fmt.Errorf("neocities: failed to get %q: %w", u, err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("neocities: failed to read %q: %w", u, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", jsonapi.InvalidStatusError{
			Status: res.StatusCode,
			Body:   string(body),
		}
	}
	return string(body), nil
}
