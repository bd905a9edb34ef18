// Package tui provides the terminal storefront view of the cart.
//
// Model is a gate: it shows a spinner until the cart finished loading and only
// then renders the cart itself.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/gostore/internal/core/domain"
	"go.trai.ch/gostore/internal/core/ports"
)

// Cart is the part of the cart manager the view consumes.
type Cart interface {
	Ready() <-chan struct{}
	Loading() bool
	Products() domain.Cart
	Summary() domain.Summary
	Increment(ctx context.Context, id string) error
	Decrement(ctx context.Context, id string) error
}

// Model is the Bubble Tea model gating the cart view on the cart's readiness.
type Model struct {
	ctx     context.Context
	cart    Cart
	logger  ports.Logger
	spinner spinner.Model

	ready   bool
	items   domain.Cart
	summary domain.Summary
	cursor  int
	err     error
	width   int
	height  int
}

// NewModel creates the gate for c. Mutations issued from the view run with ctx.
func NewModel(ctx context.Context, c Cart, logger ports.Logger) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &Model{
		ctx:     ctx,
		cart:    c,
		logger:  logger,
		spinner: s,
	}
}

// Init starts the spinner and waits for the cart.
func (m *Model) Init() tea.Cmd {
	if !m.cart.Loading() {
		return func() tea.Msg { return MsgCartReady{} }
	}
	return tea.Batch(m.spinner.Tick, WaitForReady(m.ctx, m.cart))
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgCartReady:
		m.ready = true
		m.refresh()
		return m, nil
	case MsgCartChanged:
		m.err = msg.Err
		if msg.Err != nil {
			m.logger.Error(msg.Err)
		}
		m.refresh()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	if !m.ready || len(m.items) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "+", "=", "right", "l":
		return m, mutate(m.ctx, m.items[m.cursor].ID, m.cart.Increment)
	case "-", "left", "h":
		return m, mutate(m.ctx, m.items[m.cursor].ID, m.cart.Decrement)
	}
	return m, nil
}

// refresh re-reads the cart snapshot and keeps the cursor in range.
func (m *Model) refresh() {
	m.items = m.cart.Products()
	m.summary = m.cart.Summary()
	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
}

// Ready reports whether the gate has opened.
func (m *Model) Ready() bool {
	return m.ready
}

// Cursor returns the index of the selected item.
func (m *Model) Cursor() int {
	return m.cursor
}
