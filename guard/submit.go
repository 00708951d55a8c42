package guard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Submitter sends a form to its action
type Submitter interface {
	Submit(ctx context.Context, f *Form) error
}

// SubmitterFunc adapts a plain function to Submitter
type SubmitterFunc func(ctx context.Context, f *Form) error

// Submit implements Submitter
func (fn SubmitterFunc) Submit(ctx context.Context, f *Form) error {
	return fn(ctx, f)
}

// HTTPSubmitter sends forms over HTTP the way a browser would:
// urlencoded body for POST, query string for GET. The target, method and
// payload are taken from the form as-is.
type HTTPSubmitter struct {
	Client *http.Client

	// OnResponse, when set, receives the final response and decides the result.
	// Otherwise any status >= 400 is returned as an error.
	OnResponse func(f *Form, resp *http.Response) error
}

// Submit implements Submitter. Transport errors are returned unwrapped.
// Forms with method "dialog" only close their dialog and send nothing.
func (s *HTTPSubmitter) Submit(ctx context.Context, f *Form) error {
	if f.Method() == "dialog" {
		return nil
	}
	req, err := s.newRequest(ctx, f)
	if err != nil {
		return err
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if s.OnResponse != nil {
		return s.OnResponse(f, resp)
	}
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: %s", req.Method, req.URL, resp.Status)
	}
	return nil
}

func (s *HTTPSubmitter) newRequest(ctx context.Context, f *Form) (*http.Request, error) {
	target, err := f.ResolvedAction()
	if err != nil {
		return nil, err
	}
	values := f.Values()

	if f.Method() == "post" {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), strings.NewReader(values.Encode()))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req, nil
	}

	u := *target
	u.RawQuery = values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return req, nil
}
