package leadstore

import (
	"context"
	"fmt"
	"os"

	"leadstage/internal/stagetaxonomy"
)

// Health inspects the database file and reports diagnostics without failing.
func (s *Store) Health(ctx context.Context) DatabaseHealth {
	health := DatabaseHealth{DBPath: s.path}

	if _, err := os.Stat(s.path); err != nil {
		health.Error = fmt.Sprintf("stat database: %v", err)
		return health
	}
	health.DatabaseExists = true

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		health.Error = fmt.Sprintf("read schema version: %v", err)
		return health
	}
	health.DatabaseReadable = true
	health.SchemaVersion = fmt.Sprintf("%d", version)

	var tableExists int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='leads'",
	).Scan(&tableExists); err != nil {
		health.Error = fmt.Sprintf("check leads table: %v", err)
		return health
	}
	health.TableExists = tableExists > 0

	var integrity string
	if err := s.db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&integrity); err != nil {
		health.Error = fmt.Sprintf("integrity check: %v", err)
		return health
	}
	health.IntegrityCheck = integrity == "ok"

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM leads").Scan(&health.TotalLeads); err != nil {
		health.Error = fmt.Sprintf("count leads: %v", err)
		return health
	}
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM stage_records").Scan(&health.TotalStages); err != nil {
		health.Error = fmt.Sprintf("count stage records: %v", err)
		return health
	}
	return health
}

// ListByParentKey returns leads whose status resolves to the given parent
// stage key under the current stage records, in creation order.
func (s *Store) ListByParentKey(ctx context.Context, key string) ([]*Lead, error) {
	stages, err := s.ListStageRecords(ctx)
	if err != nil {
		return nil, err
	}
	records := TaxonomyRecords(stages)
	parents := stagetaxonomy.DeriveParentStages(records)

	leads, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []*Lead
	for _, lead := range leads {
		if stagetaxonomy.DeriveParentKey(lead.Status, records, parents) == key {
			out = append(out, lead)
		}
	}
	return out, nil
}

// Summary aggregates lead counts per parent stage key via the taxonomy.
// Leads whose status resolves to no key are counted under the positional
// default, matching how the board buckets them.
func (s *Store) Summary(ctx context.Context) (HealthSummary, error) {
	stages, err := s.ListStageRecords(ctx)
	if err != nil {
		return HealthSummary{}, err
	}
	records := TaxonomyRecords(stages)
	parents := stagetaxonomy.DeriveParentStages(records)

	leads, err := s.List(ctx)
	if err != nil {
		return HealthSummary{}, err
	}

	summary := HealthSummary{
		Total:    len(leads),
		ByParent: make(map[string]int, len(parents)),
	}
	for _, parent := range parents {
		summary.ByParent[parent.Key] = 0
	}
	for _, lead := range leads {
		key := stagetaxonomy.DeriveParentKey(lead.Status, records, parents)
		summary.ByParent[key]++
	}
	return summary, nil
}
