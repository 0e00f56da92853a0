package workflow

import "time"

// StatusSummary represents lightweight sweeper diagnostics.
type StatusSummary struct {
	Running    bool
	LastSweep  time.Time
	LastError  string
	SweptLeads int
}

// Status returns the latest sweeper information.
func (m *Manager) Status() StatusSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summary := StatusSummary{
		Running:    m.running,
		LastSweep:  m.lastSweep,
		SweptLeads: m.swept,
	}
	if m.lastErr != nil {
		summary.LastError = m.lastErr.Error()
	}
	return summary
}
