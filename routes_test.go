package eventdesk

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghiac/eventdesk/config"
	"github.com/ghiac/eventdesk/guard"
	"github.com/ghiac/eventdesk/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDesk(t *testing.T) (*EventDesk, *httptest.Server, *http.Client) {
	t.Helper()
	cfg := config.Default()
	cfg.Session.SecretKey = "test-secret"
	cfg.Session.TTL = time.Hour

	ed := New(cfg, store.NewMemoryStore())
	srv := httptest.NewServer(ed.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("Failed to create cookie jar: %v", err)
	}
	return ed, srv, &http.Client{Jar: jar}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return string(b)
}

func get(t *testing.T, client *http.Client, u string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(u)
	if err != nil {
		t.Fatalf("GET %s failed: %v", u, err)
	}
	return resp, readBody(t, resp)
}

func post(t *testing.T, client *http.Client, u string, values url.Values) (*http.Response, string) {
	t.Helper()
	resp, err := client.PostForm(u, values)
	if err != nil {
		t.Fatalf("POST %s failed: %v", u, err)
	}
	return resp, readBody(t, resp)
}

func signupAndLogin(t *testing.T, srv *httptest.Server, client *http.Client) {
	t.Helper()
	creds := url.Values{"username": {"ada"}, "password": {"lovelace"}}

	resp, body := post(t, client, srv.URL+"/signup", creds)
	if resp.Request.URL.Path != "/login" || !strings.Contains(body, "Account created successfully! Please login.") {
		t.Fatalf("signup did not land on login: path=%s", resp.Request.URL.Path)
	}

	resp, body = post(t, client, srv.URL+"/login", creds)
	if resp.Request.URL.Path != "/" || !strings.Contains(body, "Logged in successfully") {
		t.Fatalf("login did not land on index: path=%s", resp.Request.URL.Path)
	}
}

func addEvent(t *testing.T, srv *httptest.Server, client *http.Client, title, date, clock string) string {
	t.Helper()
	_, body := post(t, client, srv.URL+"/add", url.Values{
		"title":       {title},
		"description": {"desc of " + title},
		"date":        {date},
		"time":        {clock},
		"location":    {"Main hall"},
	})
	return body
}

func TestHealth(t *testing.T) {
	_, srv, client := newTestDesk(t)
	resp, body := get(t, client, srv.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body, `"status":"ok"`) || !strings.Contains(body, Version()) {
		t.Errorf("body = %s", body)
	}
}

func TestScriptServed(t *testing.T) {
	_, srv, client := newTestDesk(t)
	resp, body := get(t, client, srv.URL+guard.ScriptPath)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body != string(guard.Script()) {
		t.Error("served script differs from the embedded one")
	}
}

func TestPrivatePagesRequireLogin(t *testing.T) {
	_, srv, client := newTestDesk(t)
	client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }

	for _, path := range []string{"/", "/add", "/edit/1", "/stats"} {
		resp, _ := get(t, client, srv.URL+path)
		if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/login" {
			t.Errorf("GET %s: status=%d location=%q", path, resp.StatusCode, resp.Header.Get("Location"))
		}
	}

	resp, _ := post(t, client, srv.URL+"/delete/1", nil)
	if resp.StatusCode != http.StatusFound {
		t.Errorf("anonymous delete: status=%d", resp.StatusCode)
	}

	client.CheckRedirect = nil
	_, body := get(t, client, srv.URL+"/")
	if !strings.Contains(body, "Please login to access this page") {
		t.Error("missing login warning flash")
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	_, srv, client := newTestDesk(t)
	signupAndLogin(t, srv, client)

	resp, body := post(t, client, srv.URL+"/signup", url.Values{"username": {"ada"}, "password": {"x"}})
	if resp.Request.URL.Path != "/signup" {
		t.Errorf("path = %s, want /signup", resp.Request.URL.Path)
	}
	if !strings.Contains(body, "Username already exists. Please choose another.") {
		t.Error("missing duplicate username flash")
	}
}

func TestLogin_Invalid(t *testing.T) {
	_, srv, client := newTestDesk(t)
	signupAndLogin(t, srv, client)
	get(t, client, srv.URL+"/logout")

	resp, body := post(t, client, srv.URL+"/login", url.Values{"username": {"ada"}, "password": {"wrong"}})
	if resp.StatusCode != http.StatusOK || resp.Request.URL.Path != "/login" {
		t.Fatalf("status=%d path=%s", resp.StatusCode, resp.Request.URL.Path)
	}
	if !strings.Contains(body, "Invalid username or password") {
		t.Error("missing invalid credentials flash")
	}
}

func TestLogin_MissingPassword(t *testing.T) {
	_, srv, client := newTestDesk(t)
	signupAndLogin(t, srv, client)
	get(t, client, srv.URL+"/logout")

	resp, body := post(t, client, srv.URL+"/login", url.Values{"username": {"ada"}})
	if resp.StatusCode != http.StatusOK || resp.Request.URL.Path != "/login" {
		t.Fatalf("status=%d path=%s", resp.StatusCode, resp.Request.URL.Path)
	}
	if !strings.Contains(body, "Invalid username or password") {
		t.Error("missing invalid credentials flash")
	}
	if !strings.Contains(body, `value="ada"`) {
		t.Error("username not kept in the form")
	}

	resp, _ = get(t, client, srv.URL+"/")
	if resp.Request.URL.Path != "/login" {
		t.Error("login without a password was accepted")
	}
}

func TestLogout(t *testing.T) {
	_, srv, client := newTestDesk(t)
	signupAndLogin(t, srv, client)

	resp, body := get(t, client, srv.URL+"/logout")
	if resp.Request.URL.Path != "/login" || !strings.Contains(body, "Logged out successfully") {
		t.Fatalf("logout: path=%s", resp.Request.URL.Path)
	}

	resp, _ = get(t, client, srv.URL+"/")
	if resp.Request.URL.Path != "/login" {
		t.Error("index reachable after logout")
	}
}

func TestEventLifecycle(t *testing.T) {
	ed, srv, client := newTestDesk(t)
	signupAndLogin(t, srv, client)

	body := addEvent(t, srv, client, "Retro", "2025-05-02", "16:30")
	if !strings.Contains(body, "Event added successfully") || !strings.Contains(body, "Retro") {
		t.Fatal("added event not shown")
	}
	addEvent(t, srv, client, "Kickoff", "2025-05-01", "09:00")

	body = addEvent(t, srv, client, "Broken", "05/01/2025", "9am")
	if !strings.Contains(body, "Invalid date or time format") {
		t.Error("missing invalid date flash")
	}

	ctx := context.Background()
	events, err := ed.Store().ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 2 || events[0].Title != "Kickoff" {
		t.Fatalf("events = %+v", events)
	}

	_, body = get(t, client, srv.URL+"/")
	if strings.Index(body, "Kickoff") > strings.Index(body, "Retro") {
		t.Error("index is not ordered by date")
	}

	retro := events[1]
	editURL := srv.URL + "/edit/" + itoa(retro.ID)
	_, body = get(t, client, editURL)
	if !strings.Contains(body, `value="2025-05-02"`) {
		t.Error("edit form not prefilled")
	}

	_, body = post(t, client, editURL, url.Values{
		"title": {"Retro v2"}, "description": {""}, "date": {"2025-05-03"}, "time": {"10:00"}, "location": {""},
	})
	if !strings.Contains(body, "Event updated successfully") {
		t.Error("missing update flash")
	}
	updated, err := ed.Store().GetEvent(ctx, retro.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if updated.Title != "Retro v2" || updated.Date != "2025-05-03" {
		t.Errorf("updated = %+v", updated)
	}

	resp, body := post(t, client, editURL, url.Values{
		"title": {"Retro v3"}, "date": {"2025-13-40"}, "time": {"10:00"},
	})
	if resp.Request.URL.Path != "/edit/"+itoa(retro.ID) || !strings.Contains(body, "Invalid date or time format") {
		t.Errorf("invalid edit: path=%s", resp.Request.URL.Path)
	}
	unchanged, _ := ed.Store().GetEvent(ctx, retro.ID)
	if unchanged.Title != "Retro v2" {
		t.Error("invalid edit was persisted")
	}
}

func TestMissingEvent(t *testing.T) {
	_, srv, client := newTestDesk(t)
	signupAndLogin(t, srv, client)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/edit/999"},
		{http.MethodPost, "/edit/999"},
		{http.MethodPost, "/delete/999"},
		{http.MethodPost, "/delete/abc"},
	} {
		var resp *http.Response
		if tc.method == http.MethodGet {
			resp, _ = get(t, client, srv.URL+tc.path)
		} else {
			resp, _ = post(t, client, srv.URL+tc.path, url.Values{})
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s %s: status=%d, want 404", tc.method, tc.path, resp.StatusCode)
		}
	}
}

func TestStats(t *testing.T) {
	_, srv, client := newTestDesk(t)
	signupAndLogin(t, srv, client)
	addEvent(t, srv, client, "Kickoff", "2025-05-01", "09:00")

	resp, body := get(t, client, srv.URL+"/stats")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "/stats/chart") {
		t.Fatalf("stats: status=%d", resp.StatusCode)
	}
	resp, body = get(t, client, srv.URL+"/stats/chart")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "2025-05-01") {
		t.Errorf("chart: status=%d", resp.StatusCode)
	}
}

// TestDeleteGuard_EndToEnd drives the index page the way a browser would:
// the guarded delete form only reaches the server once the user confirms.
func TestDeleteGuard_EndToEnd(t *testing.T) {
	ed, srv, client := newTestDesk(t)
	signupAndLogin(t, srv, client)
	addEvent(t, srv, client, "Kickoff", "2025-05-01", "09:00")
	addEvent(t, srv, client, "Retro", "2025-05-02", "16:30")

	ctx := context.Background()
	countEvents := func() int {
		events, err := ed.Store().ListEvents(ctx)
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		return len(events)
	}

	resp, err := client.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	doc, err := guard.Parse(resp.Body, resp.Request.URL)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// the submitter follows the redirect, so the final page carries the flash
	var finalPath, finalBody string
	doc.SetSubmitter(&guard.HTTPSubmitter{
		Client: client,
		OnResponse: func(_ *guard.Form, resp *http.Response) error {
			finalPath = resp.Request.URL.Path
			b, err := io.ReadAll(resp.Body)
			finalBody = string(b)
			return err
		},
	})

	answer := false
	var prompts []string
	g := guard.New(guard.DeciderFunc(func(_ context.Context, message string) bool {
		prompts = append(prompts, message)
		return answer
	}))
	n, err := g.Activate(doc)
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("guarded %d forms, want 2", n)
	}

	forms := doc.FormsWithClass(guard.DefaultMarker)
	if err := forms[0].RequestSubmit(ctx); err != nil {
		t.Fatalf("declined RequestSubmit failed: %v", err)
	}
	if countEvents() != 2 {
		t.Fatal("declined delete reached the server")
	}
	if finalPath != "" {
		t.Fatalf("declined delete produced a response for %s", finalPath)
	}

	answer = true
	if err := forms[0].RequestSubmit(ctx); err != nil {
		t.Fatalf("confirmed RequestSubmit failed: %v", err)
	}
	if countEvents() != 1 {
		t.Fatal("confirmed delete did not reach the server")
	}
	remaining, _ := ed.Store().ListEvents(ctx)
	if remaining[0].Title != "Retro" {
		t.Errorf("wrong event deleted, remaining %q", remaining[0].Title)
	}

	if len(prompts) != 2 || prompts[0] != guard.DefaultMessage {
		t.Errorf("prompts = %q", prompts)
	}

	if finalPath != "/" {
		t.Errorf("delete redirected to %q, want /", finalPath)
	}
	if !strings.Contains(finalBody, "Event deleted successfully") {
		t.Error("missing delete flash")
	}
}

func TestStatsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Session.SecretKey = "test-secret"
	cfg.Features.StatsEnabled = false
	ed := New(cfg, store.NewMemoryStore())

	rec := httptest.NewRecorder()
	ed.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
