package store_test

import (
	"context"
	"fmt"

	"github.com/ghiac/eventdesk/model"
	"github.com/ghiac/eventdesk/store"
)

func ExampleOpen() {
	ctx := context.Background()

	// An empty path after sqlite:// gives an in-memory database
	s, err := store.Open(ctx, "sqlite://")
	if err != nil {
		fmt.Printf("Error opening store: %v\n", err)
		return
	}
	defer s.Close()

	e := &model.Event{Title: "Launch", Date: "2025-03-01", Time: "18:30"}
	if err := s.CreateEvent(ctx, e); err != nil {
		fmt.Printf("Error creating event: %v\n", err)
		return
	}

	events, _ := s.ListEvents(ctx)
	fmt.Println(len(events), events[0].Title)
	// Output: 1 Launch
}
