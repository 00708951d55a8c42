package guard

import "context"

// Decider is the blocking yes/no boundary between the guard and a human.
// Confirm returns only once an answer is available; a dismissed prompt is a no.
type Decider interface {
	Confirm(ctx context.Context, message string) bool
}

// DeciderFunc adapts a plain function to Decider
type DeciderFunc func(ctx context.Context, message string) bool

// Confirm implements Decider
func (f DeciderFunc) Confirm(ctx context.Context, message string) bool {
	return f(ctx, message)
}

// AlwaysConfirm answers yes without asking (automation, --yes)
type AlwaysConfirm struct{}

// Confirm implements Decider
func (AlwaysConfirm) Confirm(context.Context, string) bool { return true }

// AlwaysDecline answers no without asking
type AlwaysDecline struct{}

// Confirm implements Decider
func (AlwaysDecline) Confirm(context.Context, string) bool { return false }
