package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgCartReady is sent once the cart finished its initial load.
type MsgCartReady struct{}

// MsgCartChanged is sent after a mutation triggered from the view completed.
type MsgCartChanged struct {
	ID  string
	Err error
}

// WaitForReady returns a command that blocks until the cart is ready or ctx is done.
func WaitForReady(ctx context.Context, c Cart) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-c.Ready():
			return MsgCartReady{}
		case <-ctx.Done():
			return tea.Quit()
		}
	}
}

func mutate(ctx context.Context, id string, op func(context.Context, string) error) tea.Cmd {
	return func() tea.Msg {
		return MsgCartChanged{ID: id, Err: op(ctx, id)}
	}
}
