package workflow

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"leadstage/internal/config"
	"leadstage/internal/leadstore"
	"leadstage/internal/logging"
)

// FollowupReason is appended to the follow-up stage label when the sweeper
// moves a lead.
const FollowupReason = "No contact"

// Manager coordinates the periodic follow-up sweep.
type Manager struct {
	cfg          *config.Config
	store        *leadstore.Store
	logger       *slog.Logger
	pollInterval time.Duration
	staleAfter   time.Duration

	mu        sync.RWMutex
	running   bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	lastSweep time.Time
	lastErr   error
	swept     int
}

// NewManager constructs a sweeper bound to the given store.
func NewManager(cfg *config.Config, store *leadstore.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Manager{
		cfg:          cfg,
		store:        store,
		logger:       logging.NewComponentLogger(logger, "workflow"),
		pollInterval: time.Duration(cfg.Workflow.PollInterval) * time.Second,
		staleAfter:   time.Duration(cfg.Workflow.StaleAfterHours) * time.Hour,
	}
}

// Start begins background sweeping. It returns an error when the manager is
// already running or the configuration leaves nothing to sweep.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return errors.New("workflow already running")
	}
	if m.cfg.Workflow.FollowupStage == "" || len(m.cfg.Workflow.ActiveStages) == 0 {
		m.mu.Unlock()
		return errors.New("workflow sweep not configured")
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true
	m.wg.Add(1)
	m.mu.Unlock()

	go m.run(runCtx)
	return nil
}

// Stop terminates background sweeping and waits for completion.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	m.running = false
	m.cancel = nil
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
}

func (m *Manager) run(ctx context.Context) {
	defer m.wg.Done()

	for {
		swept, err := m.SweepOnce(ctx)
		m.recordSweep(swept, err)
		if err != nil && !errors.Is(err, context.Canceled) {
			m.logger.Error("follow-up sweep failed", logging.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(m.pollInterval):
		}
	}
}

func (m *Manager) recordSweep(swept int, err error) {
	m.mu.Lock()
	m.lastSweep = time.Now()
	m.lastErr = err
	m.swept = swept
	m.mu.Unlock()
}
