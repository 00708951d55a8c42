package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ghiac/eventdesk/guard"
)

var assumeYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <event-id>",
	Short: "Delete an event after confirming it.",
	Long:  "Delete an event by submitting its delete form from the event list. You are asked to confirm first unless --yes is given.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		var decider guard.Decider = guard.AlwaysConfirm{}
		if !assumeYes {
			decider = &terminalDecider{in: os.Stdin, out: cmd.OutOrStdout()}
		}

		client, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		return runDelete(cmd.Context(), client, id, decider, cmd.OutOrStdout())
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation.")
}

// recordingDecider remembers the last answer of the wrapped decider
type recordingDecider struct {
	guard.Decider
	asked     bool
	confirmed bool
}

func (d *recordingDecider) Confirm(ctx context.Context, message string) bool {
	d.asked = true
	d.confirmed = d.Decider.Confirm(ctx, message)
	return d.confirmed
}

// runDelete finds the delete form for id on the event list and requests its
// submission, which goes through the confirmation guard.
func runDelete(ctx context.Context, client *deskClient, id int64, decider guard.Decider, out io.Writer) error {
	doc, err := client.page(ctx, "/")
	if err != nil {
		return err
	}

	rec := &recordingDecider{Decider: decider}
	g := guard.New(rec)
	if _, err := g.Activate(doc); err != nil {
		return err
	}

	target := fmt.Sprintf("/delete/%d", id)
	var form *guard.Form
	for _, f := range doc.FormsWithClass(g.Marker()) {
		action, err := f.ResolvedAction()
		if err == nil && action.Path == target {
			form = f
			break
		}
	}
	if form == nil {
		return fmt.Errorf("event %d is not on the event list", id)
	}

	if err := form.RequestSubmit(ctx); err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}
	if rec.asked && !rec.confirmed {
		fmt.Fprintln(out, mutedStyle.Render("Cancelled."))
		return nil
	}
	fmt.Fprintf(out, "Event %d deleted.\n", id)
	return nil
}
