// Package github provides the hosting-platform client for pull requests
// and issues.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/git-review/internal/domain"
)

// Client talks to a GitHub-compatible JSON API with basic auth.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new client for the given API base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Ensure Client implements domain.Forge interface.
var _ domain.Forge = (*Client)(nil)

// apiPull is the wire shape of a pull request.
type apiPull struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
	Head    struct {
		Label string `json:"label"`
		Ref   string `json:"ref"`
	} `json:"head"`
	Base struct {
		Ref string `json:"ref"`
	} `json:"base"`
}

func (p apiPull) toDomain() domain.Pull {
	return domain.Pull{
		Number:    p.Number,
		Title:     p.Title,
		URL:       p.HTMLURL,
		HeadLabel: p.Head.Label,
		HeadRef:   p.Head.Ref,
		BaseRef:   p.Base.Ref,
	}
}

// apiIssue is the wire shape of an issue.
type apiIssue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// OpenPulls lists all open pull requests of a repository.
func (c *Client) OpenPulls(ctx context.Context, auth domain.Credentials, repo domain.RepoRef) ([]domain.Pull, error) {
	body, err := c.do(ctx, auth, http.MethodGet, "/repos/"+repo.Path()+"/pulls", nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var pulls []apiPull
	if err := json.Unmarshal(body, &pulls); err != nil {
		return nil, fmt.Errorf("decode pull request list: %w", err)
	}
	res := make([]domain.Pull, 0, len(pulls))
	for _, p := range pulls {
		res = append(res, p.toDomain())
	}
	return res, nil
}

// CreatePull opens a new pull request.
func (c *Client) CreatePull(ctx context.Context, auth domain.Credentials, repo domain.RepoRef, spec domain.PullSpec) (*domain.Pull, error) {
	payload, err := json.Marshal(map[string]string{
		"title": spec.Title,
		"body":  spec.Body,
		"head":  spec.Head,
		"base":  spec.Base,
	})
	if err != nil {
		return nil, fmt.Errorf("encode pull request: %w", err)
	}
	body, err := c.do(ctx, auth, http.MethodPost, "/repos/"+repo.Path()+"/pulls", payload, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	var pull apiPull
	if err := json.Unmarshal(body, &pull); err != nil {
		return nil, fmt.Errorf("decode pull request: %w", err)
	}
	res := pull.toDomain()
	return &res, nil
}

// Issue retrieves a single issue.
func (c *Client) Issue(ctx context.Context, auth domain.Credentials, repo domain.RepoRef, number int) (*domain.Issue, error) {
	body, err := c.do(ctx, auth, http.MethodGet, "/repos/"+repo.Path()+"/issues/"+strconv.Itoa(number), nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var issue apiIssue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("decode issue: %w", err)
	}
	return &domain.Issue{Number: issue.Number, Title: issue.Title, Body: issue.Body}, nil
}

// do performs one API call. Any status other than wantStatus is fatal for
// the caller; the response body is surfaced for diagnosis.
func (c *Client) do(ctx context.Context, auth domain.Credentials, method, path string, payload []byte, wantStatus int) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(auth.User, auth.Token)
	req.Header.Set("Accept", "application/vnd.github+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	if resp.StatusCode != wantStatus {
		return nil, fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
