package testsupport

import (
	"context"
	"testing"

	"leadstage/internal/config"
	"leadstage/internal/leadstore"
)

// MustOpenStore opens a leadstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *leadstore.Store {
	t.Helper()

	store, err := leadstore.Open(cfg)
	if err != nil {
		t.Fatalf("leadstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewLead inserts a lead for tests using the provided store.
func NewLead(t testing.TB, store *leadstore.Store, params leadstore.NewLeadParams) *leadstore.Lead {
	t.Helper()

	lead, err := store.NewLead(context.Background(), params)
	if err != nil {
		t.Fatalf("store.NewLead: %v", err)
	}
	return lead
}

// SeedStages replaces the store's stage collection with labels only; class
// hints stay empty, which the taxonomy treats as valid.
func SeedStages(t testing.TB, store *leadstore.Store, labels ...string) {
	t.Helper()

	rows := make([]leadstore.StageRow, len(labels))
	for i, label := range labels {
		rows[i] = leadstore.StageRow{Label: label}
	}
	if err := store.ReplaceStageRecords(context.Background(), rows); err != nil {
		t.Fatalf("store.ReplaceStageRecords: %v", err)
	}
}
