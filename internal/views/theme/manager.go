package theme

import "context"

// Manager tracks the mode for one visitor interaction.
type Manager struct {
	store Store
	mode  Mode
}

// NewManager resolves the initial mode from store and the system hint.
func NewManager(ctx context.Context, store Store, prefersDark bool) *Manager {
	return &Manager{
		store: store,
		mode:  InitialMode(ctx, store, prefersDark),
	}
}

// Mode returns the current mode.
func (m *Manager) Mode() Mode {
	return m.mode
}

// Toggle flips the mode and persists the result once.
func (m *Manager) Toggle(ctx context.Context) Mode {
	m.mode = m.mode.Toggle()
	Persist(ctx, m.store, m.mode)
	return m.mode
}

// Presentation returns the presentation context for the current mode.
func (m *Manager) Presentation() Presentation {
	return Apply(m.mode)
}
