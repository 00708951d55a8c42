package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"

	"github.com/ghiac/eventdesk"
	"github.com/ghiac/eventdesk/config"
	"github.com/ghiac/eventdesk/guard"
	"github.com/ghiac/eventdesk/model"
	"github.com/ghiac/eventdesk/store"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m confirmModel, keys ...string) confirmModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(confirmModel)
	}
	return m
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"yes key", []string{"y"}, true},
		{"no key", []string{"n"}, false},
		{"escape", []string{"esc"}, false},
		{"enter on default", []string{"enter"}, true},
		{"enter after moving to cancel", []string{"right", "enter"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newConfirmModel("Delete?"), tt.keys...)
			if !m.done {
				t.Fatal("dialog did not finish")
			}
			if m.confirmed != tt.want {
				t.Errorf("confirmed = %v, want %v", m.confirmed, tt.want)
			}
		})
	}
}

func TestConfirmModel_View(t *testing.T) {
	m := newConfirmModel(guard.DefaultMessage)
	if !strings.Contains(m.View(), guard.DefaultMessage) {
		t.Error("view does not show the message")
	}
	if press(m, "y").View() != "" {
		t.Error("finished dialog should render nothing")
	}
}

func newTestServer(t *testing.T) (model.Store, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Session.SecretKey = "test-secret"

	st := store.NewMemoryStore()
	srv := httptest.NewServer(eventdesk.New(cfg, st).Handler())
	t.Cleanup(srv.Close)

	user, err := model.NewUser("ada", "lovelace")
	if err != nil {
		t.Fatalf("NewUser failed: %v", err)
	}
	ctx := context.Background()
	if err := st.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	for _, title := range []string{"Kickoff", "Retro"} {
		e := &model.Event{Title: title, Date: "2025-05-01", Time: "09:00"}
		if err := st.CreateEvent(ctx, e); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}
	return st, srv
}

func loggedInClient(t *testing.T, srv *httptest.Server) *deskClient {
	t.Helper()
	client, err := newDeskClient(srv.URL)
	if err != nil {
		t.Fatalf("newDeskClient failed: %v", err)
	}
	if err := client.login(context.Background(), "ada", "lovelace"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	return client
}

func TestLogin_WrongPassword(t *testing.T) {
	_, srv := newTestServer(t)
	client, err := newDeskClient(srv.URL)
	if err != nil {
		t.Fatalf("newDeskClient failed: %v", err)
	}
	if err := client.login(context.Background(), "ada", "nope"); err == nil {
		t.Error("expected login to fail")
	}
}

func TestRunDelete(t *testing.T) {
	st, srv := newTestServer(t)
	client := loggedInClient(t, srv)
	ctx := context.Background()

	events, _ := st.ListEvents(ctx)
	id := events[0].ID

	var out bytes.Buffer
	if err := runDelete(ctx, client, id, guard.AlwaysDecline{}, &out); err != nil {
		t.Fatalf("declined runDelete failed: %v", err)
	}
	if _, err := st.GetEvent(ctx, id); err != nil {
		t.Fatal("declined delete removed the event")
	}
	if !strings.Contains(out.String(), "Cancelled") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := runDelete(ctx, client, id, guard.AlwaysConfirm{}, &out); err != nil {
		t.Fatalf("confirmed runDelete failed: %v", err)
	}
	if _, err := st.GetEvent(ctx, id); err == nil {
		t.Fatal("confirmed delete left the event in place")
	}

	if err := runDelete(ctx, client, id, guard.AlwaysConfirm{}, &out); err == nil {
		t.Error("expected an error for an event no longer listed")
	}
}

func TestPrintForms(t *testing.T) {
	_, srv := newTestServer(t)
	client := loggedInClient(t, srv)

	doc, err := client.page(context.Background(), "/")
	if err != nil {
		t.Fatalf("page failed: %v", err)
	}
	if _, err := guard.New(nil).Activate(doc); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	var out bytes.Buffer
	printForms(&out, doc)
	if strings.Count(out.String(), "/delete/") != 2 {
		t.Errorf("output = %q", out.String())
	}
}

func TestNewDeskClient_InvalidURL(t *testing.T) {
	if _, err := newDeskClient("localhost"); err == nil {
		t.Error("expected an error for a URL without scheme")
	}
	client, err := newDeskClient("http://example.com/base/")
	if err != nil {
		t.Fatalf("newDeskClient failed: %v", err)
	}
	if got := client.resolve("/login"); got != (&url.URL{Scheme: "http", Host: "example.com", Path: "/login"}).String() {
		t.Errorf("resolve = %q", got)
	}
}
