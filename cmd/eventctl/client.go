package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/ghiac/eventdesk/guard"
)

// deskClient talks to an Event Desk server with a cookie session
type deskClient struct {
	base *url.URL
	http *http.Client
}

func newDeskClient(rawURL string) (*deskClient, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", rawURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", rawURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &deskClient{base: base, http: &http.Client{Jar: jar}}, nil
}

func (c *deskClient) resolve(path string) string {
	return c.base.ResolveReference(&url.URL{Path: path}).String()
}

// login posts the login form. The server redirects to the event list on
// success and renders the login page again otherwise.
func (c *deskClient) login(ctx context.Context, username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.resolve("/login"), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("login failed: %s", resp.Status)
	}
	if resp.Request.URL.Path != "/" {
		return fmt.Errorf("login failed: invalid username or password")
	}
	return nil
}

// page fetches and parses a page, wired to submit its forms through this client
func (c *deskClient) page(ctx context.Context, path string) (*guard.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolve(path), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("failed to fetch %s: %s", path, resp.Status)
	}

	doc, err := guard.Parse(resp.Body, resp.Request.URL)
	if err != nil {
		return nil, err
	}
	doc.SetSubmitter(&guard.HTTPSubmitter{Client: c.http})
	return doc, nil
}

func connect(ctx context.Context) (*deskClient, error) {
	client, err := newDeskClient(baseURL)
	if err != nil {
		return nil, err
	}
	if username != "" {
		if err := client.login(ctx, username, password); err != nil {
			return nil, err
		}
	}
	return client, nil
}
