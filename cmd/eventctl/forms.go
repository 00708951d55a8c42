package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ghiac/eventdesk/guard"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5DADE2"))
	guardedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
)

var formsCmd = &cobra.Command{
	Use:   "forms [path]",
	Short: "List the forms on a page and whether deletes are confirmed.",
	Long:  "List the forms on a page and whether deletes are confirmed.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/"
		if len(args) == 1 {
			path = args[0]
		}

		client, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		doc, err := client.page(cmd.Context(), path)
		if err != nil {
			return err
		}
		g := guard.New(guard.AlwaysDecline{})
		if _, err := g.Activate(doc); err != nil {
			return err
		}
		printForms(cmd.OutOrStdout(), doc)
		return nil
	},
}

func printForms(w io.Writer, doc *guard.Document) {
	forms := doc.Forms()
	if len(forms) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("no forms on this page"))
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-4s %-7s %-30s %s", "#", "METHOD", "ACTION", "CONFIRMED")))
	for _, f := range forms {
		confirmed := mutedStyle.Render("no")
		if f.Intercepted() {
			confirmed = guardedStyle.Render("yes")
		}
		fmt.Fprintf(w, "%-4d %-7s %-30s %s\n", f.Index(), f.Method(), f.Action(), confirmed)
	}
}
