package store

import (
	"context"
	"errors"
	"testing"

	"github.com/ghiac/eventdesk/model"
)

// testStoreContract exercises the behavior every backend must share
func testStoreContract(t *testing.T, s model.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("events CRUD", func(t *testing.T) {
		later := &model.Event{Title: "Retro", Date: "2025-06-02", Time: "10:00", Location: "Room 1"}
		sooner := &model.Event{Title: "Kickoff", Description: "All hands", Date: "2025-06-01", Time: "09:30"}

		if err := s.CreateEvent(ctx, later); err != nil {
			t.Fatalf("Failed to create event: %v", err)
		}
		if err := s.CreateEvent(ctx, sooner); err != nil {
			t.Fatalf("Failed to create event: %v", err)
		}
		if later.ID == 0 || sooner.ID == 0 || later.ID == sooner.ID {
			t.Fatalf("expected distinct non-zero ids, got %d and %d", later.ID, sooner.ID)
		}

		events, err := s.ListEvents(ctx)
		if err != nil {
			t.Fatalf("Failed to list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("Expected 2 events, got %d", len(events))
		}
		if events[0].ID != sooner.ID || events[1].ID != later.ID {
			t.Errorf("events not in date order: got %d, %d", events[0].ID, events[1].ID)
		}

		got, err := s.GetEvent(ctx, sooner.ID)
		if err != nil {
			t.Fatalf("Failed to get event: %v", err)
		}
		if got.Title != "Kickoff" || got.Description != "All hands" || got.Time != "09:30" {
			t.Errorf("event mismatch: got %+v", got)
		}

		got.Title = "Kickoff (moved)"
		got.Date = "2025-06-03"
		if err := s.UpdateEvent(ctx, got); err != nil {
			t.Fatalf("Failed to update event: %v", err)
		}
		reloaded, err := s.GetEvent(ctx, sooner.ID)
		if err != nil {
			t.Fatalf("Failed to get updated event: %v", err)
		}
		if reloaded.Title != "Kickoff (moved)" || reloaded.Date != "2025-06-03" {
			t.Errorf("update not persisted: got %+v", reloaded)
		}

		if err := s.DeleteEvent(ctx, later.ID); err != nil {
			t.Fatalf("Failed to delete event: %v", err)
		}
		if _, err := s.GetEvent(ctx, later.ID); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := s.DeleteEvent(ctx, later.ID); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
		}
		missing := &model.Event{ID: 999999, Title: "x", Date: "2025-01-01", Time: "00:00"}
		if err := s.UpdateEvent(ctx, missing); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("Expected ErrNotFound updating missing event, got %v", err)
		}
	})

	t.Run("users", func(t *testing.T) {
		u, err := model.NewUser("alice", "pw")
		if err != nil {
			t.Fatalf("NewUser failed: %v", err)
		}
		if err := s.CreateUser(ctx, u); err != nil {
			t.Fatalf("Failed to create user: %v", err)
		}
		if u.ID == 0 {
			t.Fatal("user id was not assigned")
		}

		byName, err := s.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("Failed to get user by username: %v", err)
		}
		if byName.ID != u.ID || !byName.CheckPassword("pw") {
			t.Errorf("user mismatch: got %+v", byName)
		}

		byID, err := s.GetUser(ctx, u.ID)
		if err != nil {
			t.Fatalf("Failed to get user: %v", err)
		}
		if byID.Username != "alice" {
			t.Errorf("Username mismatch: got %s, want alice", byID.Username)
		}

		dup, _ := model.NewUser("alice", "other")
		if err := s.CreateUser(ctx, dup); !errors.Is(err, model.ErrUsernameTaken) {
			t.Errorf("Expected ErrUsernameTaken, got %v", err)
		}
		if _, err := s.GetUserByUsername(ctx, "nobody"); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for unknown user, got %v", err)
		}
	})
}

func TestMemoryStore_Contract(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	testStoreContract(t, s)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	e := &model.Event{Title: "Original", Date: "2025-01-01", Time: "12:00"}
	if err := s.CreateEvent(ctx, e); err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	got, _ := s.GetEvent(ctx, e.ID)
	got.Title = "Mutated"

	again, _ := s.GetEvent(ctx, e.ID)
	if again.Title != "Original" {
		t.Errorf("store state changed through a returned pointer: %q", again.Title)
	}
}
