package testsupport

import (
	"path/filepath"
	"testing"

	"leadstage/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.APIBind = "127.0.0.1:0"
	cfgVal.Workflow.PollInterval = 1

	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithAPIToken sets the API bearer token on the test config.
func WithAPIToken(token string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.APIToken = token
	}
}

// WithFollowupStage overrides the sweeper's follow-up stage.
func WithFollowupStage(stage string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Workflow.FollowupStage = stage
	}
}

// WithActiveStages overrides the sweeper's active stage list.
func WithActiveStages(stages ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Workflow.ActiveStages = stages
	}
}
