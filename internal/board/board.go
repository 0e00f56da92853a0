package board

import (
	"context"

	"leadstage/internal/leadstore"
	"leadstage/internal/services"
	"leadstage/internal/stagetaxonomy"
)

// Column is one kanban column: a derived parent stage and the leads whose
// status resolves to it, in creation order.
type Column struct {
	Stage stagetaxonomy.ParentStage
	Leads []*leadstore.Lead
}

// Board is a point-in-time kanban view. Records carries the stage collection
// the snapshot was derived from so follow-up resolutions see the same input.
type Board struct {
	Columns []Column
	Records []stagetaxonomy.StageRecord
}

// Snapshot builds a board from the current stage records and leads. Leads
// whose status resolves to no known parent land in the first column, which
// is the taxonomy's positional default.
func Snapshot(ctx context.Context, store *leadstore.Store) (*Board, error) {
	stages, err := store.ListStageRecords(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "board", "snapshot", "load stage records", err)
	}
	records := leadstore.TaxonomyRecords(stages)
	parents := stagetaxonomy.DeriveParentStages(records)

	leads, err := store.List(ctx)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "board", "snapshot", "load leads", err)
	}

	columns := make([]Column, len(parents))
	index := make(map[string]int, len(parents))
	for i, parent := range parents {
		columns[i] = Column{Stage: parent}
		index[parent.Key] = i
	}

	for _, lead := range leads {
		key := stagetaxonomy.DeriveParentKey(lead.Status, records, parents)
		i, ok := index[key]
		if !ok {
			// Empty parents would have yielded "", and with no columns there
			// is nowhere to put the lead; skip rather than invent a column.
			continue
		}
		columns[i].Leads = append(columns[i].Leads, lead)
	}

	return &Board{Columns: columns, Records: records}, nil
}

// ColumnByKey returns the column for a parent key, or nil.
func (b *Board) ColumnByKey(key string) *Column {
	if b == nil {
		return nil
	}
	for i := range b.Columns {
		if b.Columns[i].Stage.Key == key {
			return &b.Columns[i]
		}
	}
	return nil
}

// Reasons returns up to limit distinct reason suggestions for a column, in
// first-seen order. The underlying taxonomy keeps duplicates; deduplication
// happens only here at the view edge.
func Reasons(b *Board, parentKey string, limit int) []string {
	column := b.ColumnByKey(parentKey)
	if column == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(column.Stage.Reasons))
	var out []string
	for _, reason := range column.Stage.Reasons {
		if _, dup := seen[reason]; dup {
			continue
		}
		seen[reason] = struct{}{}
		out = append(out, reason)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
